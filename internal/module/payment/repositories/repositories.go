package repositories

import (
	"context"
	"database/sql"
	"time"

	ordersentity "ticketing-service/internal/module/order/models/entity"
	"ticketing-service/internal/module/payment/models/entity"
	"ticketing-service/internal/module/payment/models/request"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db         *sqlx.DB
	log        log.Logger
	taskClient *asynq.Client
}

type Repositories interface {
	// db
	FindOrderByID(ctx context.Context, orderID string) (ordersentity.Order, error)
	FindParticipantByID(ctx context.Context, participantID string) (ordersentity.Participant, error)
	FindTicketByOrderID(ctx context.Context, orderID string) (entity.Ticket, error)
	InsertPayment(ctx context.Context, payment entity.Payment) error
	ApplyPaid(ctx context.Context, orderID, gatewayTransactionID, channel string) (entity.Ticket, entity.Payment, bool, error)
	ApplyStatus(ctx context.Context, orderID, status string) (bool, error)
	ExpirePayment(ctx context.Context, paymentID, orderID string) error
	CountPendingPayments(ctx context.Context, orderID string) (int64, error)
	// scheduler
	EnqueuePaymentExpiration(ctx context.Context, payload request.PaymentExpiration, delay time.Duration) error
}

func New(db *sqlx.DB, log log.Logger, taskClient *asynq.Client) Repositories {
	return &repositories{
		db:         db,
		log:        log,
		taskClient: taskClient,
	}
}

// EnqueuePaymentExpiration implements Repositories. Schedules the
// local expiry sweep for a charge attempt.
func (r *repositories) EnqueuePaymentExpiration(ctx context.Context, payload request.PaymentExpiration, delay time.Duration) error {
	if delay < 0 {
		delay = 0
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal expiration payload")
	}

	task := asynq.NewTask(scheduler.TypeSetPaymentExpired, jsonPayload)
	if _, err := r.taskClient.EnqueueContext(ctx, task, asynq.ProcessIn(delay)); err != nil {
		return errors.InternalServerError("error enqueue expiration task")
	}

	return nil
}

// FindOrderByID implements Repositories.
func (r *repositories) FindOrderByID(ctx context.Context, orderID string) (ordersentity.Order, error) {
	query := `SELECT id, event_id, participant_id, price, admin_fee, total_amount, status, created_at FROM orders WHERE id = $1`
	var order ordersentity.Order
	err := r.db.GetContext(ctx, &order, query, orderID)
	if err == sql.ErrNoRows {
		return ordersentity.Order{}, errors.NotFound("order not found")
	}
	if err != nil {
		return ordersentity.Order{}, errors.InternalServerError("error find order by id")
	}
	return order, nil
}

// FindParticipantByID implements Repositories.
func (r *repositories) FindParticipantByID(ctx context.Context, participantID string) (ordersentity.Participant, error) {
	query := `SELECT id, name, email, phone, created_at FROM participant WHERE id = $1`
	var participant ordersentity.Participant
	err := r.db.GetContext(ctx, &participant, query, participantID)
	if err == sql.ErrNoRows {
		return ordersentity.Participant{}, errors.NotFound("participant not found")
	}
	if err != nil {
		return ordersentity.Participant{}, errors.InternalServerError("error find participant by id")
	}
	return participant, nil
}

// FindTicketByOrderID implements Repositories. Returns the zero Ticket
// when none has been issued yet.
func (r *repositories) FindTicketByOrderID(ctx context.Context, orderID string) (entity.Ticket, error) {
	query := `SELECT id, order_id, qr_token, is_valid, created_at FROM ticket WHERE order_id = $1`
	var ticket entity.Ticket
	err := r.db.GetContext(ctx, &ticket, query, orderID)
	if err == sql.ErrNoRows {
		return entity.Ticket{}, nil
	}
	if err != nil {
		return entity.Ticket{}, errors.InternalServerError("error find ticket by order id")
	}
	return ticket, nil
}

// InsertPayment implements Repositories. Used for the pending attempt
// row written at charge initiation.
func (r *repositories) InsertPayment(ctx context.Context, payment entity.Payment) error {
	query := `INSERT INTO payment (id, order_id, gateway_transaction_id, channel, status, paid_at, created_at)
		VALUES (:id, :order_id, :gateway_transaction_id, :channel, :status, :paid_at, :created_at)`
	_, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		return errors.InternalServerError("error insert payment")
	}
	return nil
}

// ApplyPaid implements Repositories. It is the single settle path:
// lock the order row, re-check the status under the lock, flip it to
// paid, issue the ticket if absent and append the paid payment row,
// all in one transaction. Returns applied=false when a concurrent or
// earlier delivery already settled the order.
func (r *repositories) ApplyPaid(ctx context.Context, orderID, gatewayTransactionID, channel string) (entity.Ticket, entity.Payment, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Ticket{}, entity.Payment{}, false, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var status string
	err = tx.GetContext(ctx, &status, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID)
	if err == sql.ErrNoRows {
		return entity.Ticket{}, entity.Payment{}, false, errors.NotFound("order not found")
	}
	if err != nil {
		return entity.Ticket{}, entity.Payment{}, false, errors.InternalServerError("error locking order row")
	}

	if status != ordersentity.OrderStatusPending {
		return entity.Ticket{}, entity.Payment{}, false, nil
	}

	if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = 'paid' WHERE id = $1`, orderID); err != nil {
		return entity.Ticket{}, entity.Payment{}, false, errors.InternalServerError("error update order status")
	}

	ticket, err := r.issueTicketIfAbsent(ctx, tx, orderID)
	if err != nil {
		return entity.Ticket{}, entity.Payment{}, false, err
	}

	payment := entity.Payment{
		ID:                   uuid.New(),
		OrderID:              uuid.MustParse(orderID),
		GatewayTransactionID: sql.NullString{String: gatewayTransactionID, Valid: gatewayTransactionID != ""},
		Channel:              channel,
		Status:               entity.PaymentStatusPaid,
		PaidAt:               sql.NullTime{Time: time.Now(), Valid: true},
		CreatedAt:            time.Now(),
	}
	_, err = tx.NamedExecContext(ctx, `INSERT INTO payment (id, order_id, gateway_transaction_id, channel, status, paid_at, created_at)
		VALUES (:id, :order_id, :gateway_transaction_id, :channel, :status, :paid_at, :created_at)`, payment)
	if err != nil {
		return entity.Ticket{}, entity.Payment{}, false, errors.InternalServerError("error insert payment row")
	}

	if err := tx.Commit(); err != nil {
		return entity.Ticket{}, entity.Payment{}, false, errors.InternalServerError("error committing transaction")
	}

	return ticket, payment, true, nil
}

// ApplyStatus implements Repositories. Handles the failed and
// challenge transitions, which touch the order row only. Returns
// applied=false when the order already left pending.
func (r *repositories) ApplyStatus(ctx context.Context, orderID, status string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var current string
	err = tx.GetContext(ctx, &current, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID)
	if err == sql.ErrNoRows {
		return false, errors.NotFound("order not found")
	}
	if err != nil {
		return false, errors.InternalServerError("error locking order row")
	}

	if current != ordersentity.OrderStatusPending {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID); err != nil {
		return false, errors.InternalServerError("error update order status")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.InternalServerError("error committing transaction")
	}

	return true, nil
}

// ExpirePayment implements Repositories. Marks a still-pending charge
// attempt failed and the owning order with it. Applied only while both
// are pending, so a settlement racing the expiry wins.
func (r *repositories) ExpirePayment(ctx context.Context, paymentID, orderID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var status string
	err = tx.GetContext(ctx, &status, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID)
	if err == sql.ErrNoRows {
		return errors.NotFound("order not found")
	}
	if err != nil {
		return errors.InternalServerError("error locking order row")
	}

	if _, err := tx.ExecContext(ctx, `UPDATE payment SET status = 'failed' WHERE id = $1 AND status = 'pending'`, paymentID); err != nil {
		return errors.InternalServerError("error expire payment attempt")
	}

	if status == ordersentity.OrderStatusPending {
		if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = 'failed' WHERE id = $1`, orderID); err != nil {
			return errors.InternalServerError("error expire order")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// CountPendingPayments implements Repositories.
func (r *repositories) CountPendingPayments(ctx context.Context, orderID string) (int64, error) {
	query := `SELECT COUNT(id) FROM payment WHERE order_id = $1 AND status = 'pending'`
	var count int64
	err := r.db.GetContext(ctx, &count, query, orderID)
	if err != nil {
		return 0, errors.InternalServerError("error count pending payments")
	}
	return count, nil
}
