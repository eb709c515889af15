package usecases_test

import (
	"context"
	"testing"
	"time"

	"ticketing-service/config"
	"ticketing-service/internal/module/order/mocks"
	"ticketing-service/internal/module/order/models/entity"
	"ticketing-service/internal/module/order/models/request"
	"ticketing-service/internal/module/order/models/response"
	"ticketing-service/internal/module/order/usecases"
	"ticketing-service/internal/pkg/fees"
	log_internal "ticketing-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	logZap := log_internal.Setup()
	log_internal.Init(logZap)
	policy := fees.NewPolicy(&config.FeeConfig{Rate: 0.02, Minimum: 1000})
	uc = usecases.New(repoMock, log_internal.GetLogger(), policy)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreateOrder(t *testing.T) {
	eventID := uuid.New().String()
	eventMock := response.Event{
		ID:       eventID,
		Title:    "Cermin Conference",
		Location: "Jakarta",
		Datetime: time.Now().Add(72 * time.Hour),
		Price:    49000,
	}

	t.Run("new participant gets a pending order with computed fee", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payloadMock := request.CreateOrder{
			EventID: eventID,
			Name:    "Tirta",
			Email:   "tirta@test.com",
			Phone:   "0811111111",
		}

		repoMock.On("FindParticipantByEmail", ctx, "tirta@test.com").Return(entity.Participant{}, nil).Once()
		repoMock.On("InsertParticipant", ctx, mock.AnythingOfType("entity.Participant")).Return(nil).Once()
		repoMock.On("FindEventByID", ctx, eventID).Return(eventMock, nil).Once()
		repoMock.On("InsertOrder", ctx, mock.AnythingOfType("entity.Order")).Return(nil).Once()

		resp, err := uc.CreateOrder(ctx, &payloadMock)
		assert.NoError(t, err)
		assert.Equal(t, int64(49000), resp.Price)
		assert.Equal(t, int64(1000), resp.AdminFee)
		assert.Equal(t, int64(50000), resp.TotalAmount)
		assert.Equal(t, entity.OrderStatusPending, resp.Status)
		repoMock.AssertExpectations(t)
	})

	t.Run("existing participant is reused and contact refreshed", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		participantMock := entity.Participant{
			ID:    uuid.New(),
			Name:  "Old Name",
			Email: "tirta@test.com",
		}
		payloadMock := request.CreateOrder{
			EventID: eventID,
			Name:    "Tirta",
			Email:   "tirta@test.com",
			Phone:   "0822222222",
		}

		repoMock.On("FindParticipantByEmail", ctx, "tirta@test.com").Return(participantMock, nil).Once()
		repoMock.On("HasSettledOrder", ctx, eventID, participantMock.ID.String()).Return(false, nil).Once()
		repoMock.On("UpdateParticipantContact", ctx, mock.AnythingOfType("entity.Participant")).Return(nil).Once()
		repoMock.On("FindEventByID", ctx, eventID).Return(eventMock, nil).Once()
		repoMock.On("InsertOrder", ctx, mock.AnythingOfType("entity.Order")).Return(nil).Once()

		_, err := uc.CreateOrder(ctx, &payloadMock)
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("participant with a paid order for the event is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		participantMock := entity.Participant{
			ID:    uuid.New(),
			Email: "paid@test.com",
		}
		payloadMock := request.CreateOrder{
			EventID: eventID,
			Name:    "Paid User",
			Email:   "paid@test.com",
		}

		repoMock.On("FindParticipantByEmail", ctx, "paid@test.com").Return(participantMock, nil).Once()
		repoMock.On("HasSettledOrder", ctx, eventID, participantMock.ID.String()).Return(true, nil).Once()

		_, err := uc.CreateOrder(ctx, &payloadMock)
		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "InsertOrder", mock.Anything, mock.Anything)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("setting the current status is a no-op success", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		orderMock := entity.Order{
			ID:     orderID,
			Status: entity.OrderStatusFailed,
		}

		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(orderMock, nil).Once()

		err := uc.UpdateOrderStatus(ctx, orderID.String(), &request.UpdateOrderStatus{Status: entity.OrderStatusFailed})
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("different status is written", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		orderMock := entity.Order{
			ID:     orderID,
			Status: entity.OrderStatusPending,
		}

		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(orderMock, nil).Once()
		repoMock.On("UpdateOrderStatus", ctx, orderID.String(), entity.OrderStatusCancelled).Return(nil).Once()

		err := uc.UpdateOrderStatus(ctx, orderID.String(), &request.UpdateOrderStatus{Status: entity.OrderStatusCancelled})
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})
}

func TestDeleteOrder(t *testing.T) {
	t.Run("order with payments or tickets is kept", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()

		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(entity.Order{ID: orderID}, nil).Once()
		repoMock.On("CountOrderDependents", ctx, orderID.String()).Return(int64(2), nil).Once()

		err := uc.DeleteOrder(ctx, orderID.String())
		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
	})

	t.Run("bare order is deleted", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()

		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(entity.Order{ID: orderID}, nil).Once()
		repoMock.On("CountOrderDependents", ctx, orderID.String()).Return(int64(0), nil).Once()
		repoMock.On("DeleteOrder", ctx, orderID.String()).Return(nil).Once()

		err := uc.DeleteOrder(ctx, orderID.String())
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})
}
