package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ticketing-service/config"
	"ticketing-service/internal/module/order/models/entity"
	"ticketing-service/internal/module/order/models/response"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	db              *sqlx.DB
	log             log.Logger
	httpClient      *circuit.HTTPClient
	redisClient     *redis.Client
	cfgEventService *config.EventServiceConfig
}

type Repositories interface {
	// event service collaborator
	FindEventByID(ctx context.Context, eventID string) (response.Event, error)
	// db
	FindParticipantByEmail(ctx context.Context, email string) (entity.Participant, error)
	InsertParticipant(ctx context.Context, participant entity.Participant) error
	UpdateParticipantContact(ctx context.Context, participant entity.Participant) error
	HasSettledOrder(ctx context.Context, eventID, participantID string) (bool, error)
	InsertOrder(ctx context.Context, order entity.Order) error
	FindOrderByID(ctx context.Context, orderID string) (entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
	CountOrderDependents(ctx context.Context, orderID string) (int64, error)
	DeleteOrder(ctx context.Context, orderID string) error
	FindPaymentsByOrderID(ctx context.Context, orderID string) ([]response.OrderPayment, error)
	FindTicketByOrderID(ctx context.Context, orderID string) (response.OrderTicket, error)
}

func New(db *sqlx.DB, log log.Logger, httpClient *circuit.HTTPClient, redisClient *redis.Client, cfgEventService *config.EventServiceConfig) Repositories {
	return &repositories{
		db:              db,
		log:             log,
		httpClient:      httpClient,
		redisClient:     redisClient,
		cfgEventService: cfgEventService,
	}
}

// FindEventByID implements Repositories. Event reads are cached in
// redis; the event service stays the source of truth for price
// changes, which only affect orders created after the cache expires.
func (r *repositories) FindEventByID(ctx context.Context, eventID string) (response.Event, error) {
	cacheKey := fmt.Sprintf("event:%s", eventID)

	var event response.Event
	cached, err := r.redisClient.Get(ctx, cacheKey).Result()
	if err == nil {
		if err := json.Unmarshal([]byte(cached), &event); err == nil {
			return event, nil
		}
	}

	url := fmt.Sprintf("http://%s:%s/api/private/events/%s", r.cfgEventService.Host, r.cfgEventService.Port, eventID)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.Event{}, errors.BadGateway("error reach event service")
	}
	defer resp.Body.Close()

	if resp.StatusCode == 404 {
		return response.Event{}, errors.NotFound("event not found")
	}
	if resp.StatusCode != 200 {
		r.log.Error(ctx, "unexpected event service status", resp.StatusCode)
		return response.Event{}, errors.BadGateway("error get event")
	}

	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return response.Event{}, errors.BadGateway("error decode event response")
	}

	payload, _ := json.Marshal(event)
	ttl := time.Duration(r.cfgEventService.CacheTTL) * time.Second
	if err := r.redisClient.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
		r.log.Error(ctx, "error cache event", err)
	}

	return event, nil
}

// FindParticipantByEmail implements Repositories. Returns the zero
// Participant when no row matches.
func (r *repositories) FindParticipantByEmail(ctx context.Context, email string) (entity.Participant, error) {
	query := `SELECT id, name, email, phone, created_at FROM participant WHERE email = $1`
	var participant entity.Participant
	err := r.db.GetContext(ctx, &participant, query, email)
	if err == sql.ErrNoRows {
		return entity.Participant{}, nil
	}
	if err != nil {
		return entity.Participant{}, errors.InternalServerError("error find participant by email")
	}
	return participant, nil
}

// InsertParticipant implements Repositories.
func (r *repositories) InsertParticipant(ctx context.Context, participant entity.Participant) error {
	query := `INSERT INTO participant (id, name, email, phone, created_at) VALUES (:id, :name, :email, :phone, :created_at)`
	_, err := r.db.NamedExecContext(ctx, query, participant)
	if err != nil {
		return errors.InternalServerError("error insert participant")
	}
	return nil
}

// UpdateParticipantContact implements Repositories. Keeps the latest
// name and phone supplied at order creation.
func (r *repositories) UpdateParticipantContact(ctx context.Context, participant entity.Participant) error {
	query := `UPDATE participant SET name = :name, phone = :phone WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, participant)
	if err != nil {
		return errors.InternalServerError("error update participant")
	}
	return nil
}

// HasSettledOrder implements Repositories. A participant may hold at
// most one paid order per event.
func (r *repositories) HasSettledOrder(ctx context.Context, eventID, participantID string) (bool, error) {
	query := `SELECT COUNT(id) FROM orders WHERE event_id = $1 AND participant_id = $2 AND status = 'paid'`
	var count int64
	err := r.db.GetContext(ctx, &count, query, eventID, participantID)
	if err != nil {
		return false, errors.InternalServerError("error check settled order")
	}
	return count > 0, nil
}

// InsertOrder implements Repositories.
func (r *repositories) InsertOrder(ctx context.Context, order entity.Order) error {
	query := `INSERT INTO orders (id, event_id, participant_id, price, admin_fee, total_amount, status, created_at)
		VALUES (:id, :event_id, :participant_id, :price, :admin_fee, :total_amount, :status, :created_at)`
	_, err := r.db.NamedExecContext(ctx, query, order)
	if err != nil {
		return errors.InternalServerError("error insert order")
	}
	return nil
}

// FindOrderByID implements Repositories.
func (r *repositories) FindOrderByID(ctx context.Context, orderID string) (entity.Order, error) {
	query := `SELECT id, event_id, participant_id, price, admin_fee, total_amount, status, created_at FROM orders WHERE id = $1`
	var order entity.Order
	err := r.db.GetContext(ctx, &order, query, orderID)
	if err == sql.ErrNoRows {
		return entity.Order{}, errors.NotFound("order not found")
	}
	if err != nil {
		return entity.Order{}, errors.InternalServerError("error find order by id")
	}
	return order, nil
}

// UpdateOrderStatus implements Repositories. Setting the status an
// order already has is a no-op success.
func (r *repositories) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, orderID)
	if err != nil {
		return errors.InternalServerError("error update order status")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error update order status")
	}
	if rows == 0 {
		return errors.NotFound("order not found")
	}
	return nil
}

// CountOrderDependents implements Repositories. Payments and tickets
// are the audit trail; an order carrying either must not be deleted.
func (r *repositories) CountOrderDependents(ctx context.Context, orderID string) (int64, error) {
	query := `SELECT
		(SELECT COUNT(id) FROM payment WHERE order_id = $1) +
		(SELECT COUNT(id) FROM ticket WHERE order_id = $1)`
	var count int64
	err := r.db.GetContext(ctx, &count, query, orderID)
	if err != nil {
		return 0, errors.InternalServerError("error count order dependents")
	}
	return count, nil
}

// DeleteOrder implements Repositories.
func (r *repositories) DeleteOrder(ctx context.Context, orderID string) error {
	query := `DELETE FROM orders WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, orderID)
	if err != nil {
		// FK RESTRICT backstop if a payment or ticket appeared between
		// the dependents check and the delete
		return errors.Conflict("cannot delete order with related payments or tickets")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error delete order")
	}
	if rows == 0 {
		return errors.NotFound("order not found")
	}
	return nil
}

// FindPaymentsByOrderID implements Repositories.
func (r *repositories) FindPaymentsByOrderID(ctx context.Context, orderID string) ([]response.OrderPayment, error) {
	query := `SELECT id, gateway_transaction_id, channel, status, paid_at, created_at FROM payment WHERE order_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryxContext(ctx, query, orderID)
	if err != nil {
		return nil, errors.InternalServerError("error find payments by order id")
	}
	defer rows.Close()

	payments := []response.OrderPayment{}
	for rows.Next() {
		var (
			id, channel, status  string
			gatewayTransactionID sql.NullString
			paidAt               sql.NullTime
			createdAt            time.Time
		)
		if err := rows.Scan(&id, &gatewayTransactionID, &channel, &status, &paidAt, &createdAt); err != nil {
			return nil, errors.InternalServerError("error scan payment row")
		}

		payment := response.OrderPayment{
			ID:        id,
			Channel:   channel,
			Status:    status,
			CreatedAt: createdAt.Format(time.RFC3339),
		}
		if gatewayTransactionID.Valid {
			payment.GatewayTransactionID = gatewayTransactionID.String
		}
		if paidAt.Valid {
			payment.PaidAt = paidAt.Time.Format(time.RFC3339)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

// FindTicketByOrderID implements Repositories.
func (r *repositories) FindTicketByOrderID(ctx context.Context, orderID string) (response.OrderTicket, error) {
	query := `SELECT id, order_id, qr_token, is_valid, created_at FROM ticket WHERE order_id = $1`
	var (
		id, ownerID, qrToken string
		isValid              bool
		createdAt            time.Time
	)
	err := r.db.QueryRowxContext(ctx, query, orderID).Scan(&id, &ownerID, &qrToken, &isValid, &createdAt)
	if err == sql.ErrNoRows {
		return response.OrderTicket{}, errors.NotFound("ticket not found")
	}
	if err != nil {
		return response.OrderTicket{}, errors.InternalServerError("error find ticket by order id")
	}

	return response.OrderTicket{
		ID:        id,
		OrderID:   ownerID,
		QRToken:   qrToken,
		IsValid:   isValid,
		CreatedAt: createdAt.Format(time.RFC3339),
	}, nil
}
