package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	ordersentity "ticketing-service/internal/module/order/models/entity"
	"ticketing-service/internal/module/payment/gateway"
	"ticketing-service/internal/module/payment/models/entity"
	"ticketing-service/internal/module/payment/models/request"
	"ticketing-service/internal/module/payment/models/response"
	"ticketing-service/internal/module/payment/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.elastic.co/apm"
)

const TopicSendTicket = "send_ticket"

type usecase struct {
	repo    repositories.Repositories
	gateway gateway.Gateway
	log     log.Logger
	publish message.Publisher
	locker  *redsync.Redsync
}

type Usecase interface {
	InitiateCharge(ctx context.Context, payload *request.InitiateCharge) (response.Charge, error)
	Reconcile(ctx context.Context, raw []byte) error
	SetPaymentExpired(ctx context.Context, payload *request.PaymentExpiration) error
	CountPendingPayment(ctx context.Context, orderID string) (response.PendingPayment, error)
}

func New(repo repositories.Repositories, gw gateway.Gateway, log log.Logger, publish message.Publisher, locker *redsync.Redsync) Usecase {
	return &usecase{
		repo:    repo,
		gateway: gw,
		log:     log,
		publish: publish,
		locker:  locker,
	}
}

// InitiateCharge builds a gateway charge for a pending order and
// records the attempt as a pending payment row. Re-initiating for the
// same pending order is safe; a settled order is rejected before any
// gateway call.
func (u *usecase) InitiateCharge(ctx context.Context, payload *request.InitiateCharge) (response.Charge, error) {
	span, ctx := apm.StartSpan(ctx, "InitiateCharge", "usecase")
	defer span.End()

	order, err := u.repo.FindOrderByID(ctx, payload.OrderID)
	if err != nil {
		return response.Charge{}, err
	}

	if order.IsSettled() {
		return response.Charge{}, errors.BadRequest("order already settled")
	}
	if order.Status != ordersentity.OrderStatusPending {
		return response.Charge{}, errors.BadRequest(fmt.Sprintf("order is not payable in status %s", order.Status))
	}

	// one charge creation at a time per order across instances
	if u.locker != nil {
		mutex := u.locker.NewMutex(fmt.Sprintf("charge:%s", payload.OrderID), redsync.WithExpiry(30*time.Second))
		if err := mutex.LockContext(ctx); err != nil {
			return response.Charge{}, errors.Conflict("charge initiation already in progress for this order")
		}
		defer mutex.UnlockContext(ctx)
	}

	participant, err := u.repo.FindParticipantByID(ctx, order.ParticipantID.String())
	if err != nil {
		return response.Charge{}, err
	}

	action, err := u.gateway.CreateCharge(ctx, order.ID.String(), order.TotalAmount, participant.Name, participant.Email, participant.Phone)
	if err != nil {
		return response.Charge{}, err
	}

	attempt := entity.Payment{
		ID:                   uuid.New(),
		OrderID:              order.ID,
		GatewayTransactionID: sql.NullString{String: action.GatewayTransactionID, Valid: action.GatewayTransactionID != ""},
		Channel:              "qris",
		Status:               entity.PaymentStatusPending,
		CreatedAt:            time.Now(),
	}
	if err := u.repo.InsertPayment(ctx, attempt); err != nil {
		return response.Charge{}, err
	}

	expiration := request.PaymentExpiration{
		OrderID:   order.ID.String(),
		PaymentID: attempt.ID.String(),
	}
	if err := u.repo.EnqueuePaymentExpiration(ctx, expiration, time.Until(action.ExpiresAt)); err != nil {
		// the gateway enforces its own expiry; losing the local task is
		// not fatal to correctness
		u.log.Error(ctx, "error enqueue payment expiration task", err)
	}

	return response.Charge{
		OrderID:              order.ID.String(),
		PaymentID:            attempt.ID.String(),
		GatewayTransactionID: action.GatewayTransactionID,
		Channel:              "qris",
		GrossAmount:          order.TotalAmount,
		QRString:             action.QRString,
		QRCodeURL:            action.QRCodeURL,
		ExpiresAt:            action.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// Reconcile consumes one raw gateway notification and drives the order
// state machine. Unknown statuses are acknowledged without side
// effects; duplicate deliveries hit the idempotency guard and succeed
// without mutating anything.
func (u *usecase) Reconcile(ctx context.Context, raw []byte) error {
	span, ctx := apm.StartSpan(ctx, "Reconcile", "usecase")
	defer span.End()

	notif, err := u.gateway.VerifyNotification(raw)
	if err != nil {
		return err
	}

	target, relevant := targetOrderStatus(notif)
	if !relevant {
		u.log.Info(ctx, "ignoring gateway notification", notif.TransactionStatus, notif.FraudStatus)
		return nil
	}

	order, err := u.repo.FindOrderByID(ctx, notif.OrderID)
	if err != nil {
		return err
	}

	// idempotency guard: a redelivery of an already-applied
	// notification is acknowledged as success
	if order.Status == target {
		return nil
	}

	if target != ordersentity.OrderStatusPaid {
		_, err := u.repo.ApplyStatus(ctx, notif.OrderID, target)
		return err
	}

	ticket, payment, applied, err := u.repo.ApplyPaid(ctx, notif.OrderID, notif.GatewayTransactionID, notif.Channel)
	if err != nil {
		return err
	}
	if applied {
		u.sendTicket(ctx, order, ticket, payment)
	}

	return nil
}

// sendTicket hands the issued ticket to the notifier queue. Delivery
// problems are logged and swallowed; they must never fail the
// reconciliation that already committed.
func (u *usecase) sendTicket(ctx context.Context, order ordersentity.Order, ticket entity.Ticket, payment entity.Payment) {
	participant, err := u.repo.FindParticipantByID(ctx, order.ParticipantID.String())
	if err != nil {
		u.log.Error(ctx, "error load participant for ticket notification", err)
		return
	}

	notification := request.SendTicket{
		OrderID:              order.ID.String(),
		EventID:              order.EventID.String(),
		ParticipantName:      participant.Name,
		EmailRecipient:       participant.Email,
		Phone:                participant.Phone,
		QRToken:              ticket.QRToken,
		Price:                order.Price,
		AdminFee:             order.AdminFee,
		TotalAmount:          order.TotalAmount,
		Channel:              payment.Channel,
		GatewayTransactionID: payment.GatewayTransactionID.String,
	}
	if payment.PaidAt.Valid {
		notification.PaidAt = payment.PaidAt.Time.Format(time.RFC3339)
	}

	jsonPayload, err := json.Marshal(notification)
	if err != nil {
		u.log.Error(ctx, "error marshal ticket notification", err)
		return
	}

	if err := u.publish.Publish(TopicSendTicket, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish ticket notification", err)
	}
}

// SetPaymentExpired handles the delayed expiry task scheduled at
// charge initiation.
func (u *usecase) SetPaymentExpired(ctx context.Context, payload *request.PaymentExpiration) error {
	span, ctx := apm.StartSpan(ctx, "SetPaymentExpired", "usecase")
	defer span.End()

	return u.repo.ExpirePayment(ctx, payload.PaymentID, payload.OrderID)
}

func (u *usecase) CountPendingPayment(ctx context.Context, orderID string) (response.PendingPayment, error) {
	count, err := u.repo.CountPendingPayments(ctx, orderID)
	if err != nil {
		return response.PendingPayment{}, err
	}
	return response.PendingPayment{OrderID: orderID, Count: count}, nil
}

// targetOrderStatus maps the gateway status vocabulary onto the order
// state machine. Anything unmapped is acknowledged but ignored.
func targetOrderStatus(notif gateway.Notification) (string, bool) {
	switch notif.TransactionStatus {
	case "capture":
		switch notif.FraudStatus {
		case "accept":
			return ordersentity.OrderStatusPaid, true
		case "challenge":
			return ordersentity.OrderStatusChallenge, true
		default:
			return "", false
		}
	case "settlement":
		return ordersentity.OrderStatusPaid, true
	case "cancel", "deny", "expire":
		return ordersentity.OrderStatusFailed, true
	default:
		return "", false
	}
}
