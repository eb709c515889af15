package usecases

import (
	"context"
	"time"

	"ticketing-service/internal/module/order/models/entity"
	"ticketing-service/internal/module/order/models/request"
	"ticketing-service/internal/module/order/models/response"
	"ticketing-service/internal/module/order/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/fees"
	"ticketing-service/internal/pkg/log"

	"github.com/google/uuid"
	"go.elastic.co/apm"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
	fee  fees.Policy
}

type Usecase interface {
	CreateOrder(ctx context.Context, payload *request.CreateOrder) (response.Order, error)
	GetOrder(ctx context.Context, orderID string) (response.Order, error)
	GetOrderPayments(ctx context.Context, orderID string) ([]response.OrderPayment, error)
	GetOrderTicket(ctx context.Context, orderID string) (response.OrderTicket, error)
	UpdateOrderStatus(ctx context.Context, orderID string, payload *request.UpdateOrderStatus) error
	DeleteOrder(ctx context.Context, orderID string) error
}

func New(repo repositories.Repositories, log log.Logger, fee fees.Policy) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
		fee:  fee,
	}
}

// CreateOrder resolves or creates the participant by email, snapshots
// the event price, computes the admin fee and inserts a pending order.
// A participant who already settled an order for the event is rejected.
func (u *usecase) CreateOrder(ctx context.Context, payload *request.CreateOrder) (response.Order, error) {
	span, ctx := apm.StartSpan(ctx, "CreateOrder", "usecase")
	defer span.End()

	participant, err := u.repo.FindParticipantByEmail(ctx, payload.Email)
	if err != nil {
		return response.Order{}, err
	}

	if participant.ID != uuid.Nil {
		settled, err := u.repo.HasSettledOrder(ctx, payload.EventID, participant.ID.String())
		if err != nil {
			return response.Order{}, err
		}
		if settled {
			return response.Order{}, errors.Conflict("email already registered and paid for this event")
		}

		participant.Name = payload.Name
		participant.Phone = payload.Phone
		if err := u.repo.UpdateParticipantContact(ctx, participant); err != nil {
			return response.Order{}, err
		}
	} else {
		participant = entity.Participant{
			ID:        uuid.New(),
			Name:      payload.Name,
			Email:     payload.Email,
			Phone:     payload.Phone,
			CreatedAt: time.Now(),
		}
		if err := u.repo.InsertParticipant(ctx, participant); err != nil {
			return response.Order{}, err
		}
	}

	event, err := u.repo.FindEventByID(ctx, payload.EventID)
	if err != nil {
		return response.Order{}, err
	}

	adminFee := u.fee.AdminFee(event.Price)
	order := entity.Order{
		ID:            uuid.New(),
		EventID:       uuid.MustParse(payload.EventID),
		ParticipantID: participant.ID,
		Price:         event.Price,
		AdminFee:      adminFee,
		TotalAmount:   event.Price + adminFee,
		Status:        entity.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := u.repo.InsertOrder(ctx, order); err != nil {
		return response.Order{}, err
	}

	return toOrderResponse(order), nil
}

func (u *usecase) GetOrder(ctx context.Context, orderID string) (response.Order, error) {
	order, err := u.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return response.Order{}, err
	}
	return toOrderResponse(order), nil
}

func (u *usecase) GetOrderPayments(ctx context.Context, orderID string) ([]response.OrderPayment, error) {
	if _, err := u.repo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return u.repo.FindPaymentsByOrderID(ctx, orderID)
}

func (u *usecase) GetOrderTicket(ctx context.Context, orderID string) (response.OrderTicket, error) {
	if _, err := u.repo.FindOrderByID(ctx, orderID); err != nil {
		return response.OrderTicket{}, err
	}
	return u.repo.FindTicketByOrderID(ctx, orderID)
}

// UpdateOrderStatus is the admin manual override. Re-applying the
// current status succeeds without touching the row.
func (u *usecase) UpdateOrderStatus(ctx context.Context, orderID string, payload *request.UpdateOrderStatus) error {
	span, ctx := apm.StartSpan(ctx, "UpdateOrderStatus", "usecase")
	defer span.End()

	order, err := u.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status == payload.Status {
		return nil
	}

	return u.repo.UpdateOrderStatus(ctx, orderID, payload.Status)
}

// DeleteOrder refuses while payments or tickets still reference the
// order so the audit trail stays intact.
func (u *usecase) DeleteOrder(ctx context.Context, orderID string) error {
	span, ctx := apm.StartSpan(ctx, "DeleteOrder", "usecase")
	defer span.End()

	if _, err := u.repo.FindOrderByID(ctx, orderID); err != nil {
		return err
	}

	dependents, err := u.repo.CountOrderDependents(ctx, orderID)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return errors.Conflict("cannot delete order with related payments or tickets")
	}

	return u.repo.DeleteOrder(ctx, orderID)
}

func toOrderResponse(order entity.Order) response.Order {
	return response.Order{
		ID:            order.ID.String(),
		EventID:       order.EventID.String(),
		ParticipantID: order.ParticipantID.String(),
		Price:         order.Price,
		AdminFee:      order.AdminFee,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
}
