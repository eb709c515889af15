package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	ordersentity "ticketing-service/internal/module/order/models/entity"
	"ticketing-service/internal/module/payment/gateway"
	"ticketing-service/internal/module/payment/mocks"
	"ticketing-service/internal/module/payment/models/entity"
	"ticketing-service/internal/module/payment/models/request"
	"ticketing-service/internal/module/payment/usecases"
	log_internal "ticketing-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc          usecases.Usecase
	repoMock    *mocks.Repositories
	gatewayMock *mocks.Gateway
	p           message.Publisher
	dateTimeNow = time.Now()
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	gatewayMock = new(mocks.Gateway)
	p = NewMockPublisher()
	logZap := log_internal.Setup()
	log_internal.Init(logZap)
	uc = usecases.New(repoMock, gatewayMock, log_internal.GetLogger(), p, nil)
}

func teardown() {
	repoMock = nil
	gatewayMock = nil
	uc = nil
}

func pendingOrder(id uuid.UUID) ordersentity.Order {
	return ordersentity.Order{
		ID:            id,
		EventID:       uuid.New(),
		ParticipantID: uuid.New(),
		Price:         49000,
		AdminFee:      1000,
		TotalAmount:   50000,
		Status:        ordersentity.OrderStatusPending,
		CreatedAt:     dateTimeNow,
	}
}

func TestReconcile(t *testing.T) {
	raw := []byte(`{"transaction_status":"settlement"}`)

	t.Run("settlement settles a pending order and issues one ticket", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		order := pendingOrder(orderID)

		notifMock := gateway.Notification{
			OrderID:              orderID.String(),
			GatewayTransactionID: "trx-1",
			TransactionStatus:    "settlement",
			Channel:              "qris",
		}
		ticketMock := entity.Ticket{
			ID:        uuid.New(),
			OrderID:   orderID,
			QRToken:   "token-1",
			IsValid:   true,
			CreatedAt: dateTimeNow,
		}
		paymentMock := entity.Payment{
			ID:                   uuid.New(),
			OrderID:              orderID,
			GatewayTransactionID: sql.NullString{String: "trx-1", Valid: true},
			Channel:              "qris",
			Status:               entity.PaymentStatusPaid,
			PaidAt:               sql.NullTime{Time: dateTimeNow, Valid: true},
			CreatedAt:            dateTimeNow,
		}
		participantMock := ordersentity.Participant{
			ID:    order.ParticipantID,
			Name:  "Tirta",
			Email: "tirta@test.com",
		}

		gatewayMock.On("VerifyNotification", raw).Return(notifMock, nil).Once()
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(order, nil).Once()
		repoMock.On("ApplyPaid", ctx, orderID.String(), "trx-1", "qris").Return(ticketMock, paymentMock, true, nil).Once()
		repoMock.On("FindParticipantByID", ctx, order.ParticipantID.String()).Return(participantMock, nil).Once()

		err := uc.Reconcile(ctx, raw)
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("duplicate delivery of a settled notification mutates nothing", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		order := pendingOrder(orderID)
		order.Status = ordersentity.OrderStatusPaid

		notifMock := gateway.Notification{
			OrderID:           orderID.String(),
			TransactionStatus: "settlement",
		}

		gatewayMock.On("VerifyNotification", raw).Return(notifMock, nil).Once()
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(order, nil).Once()

		err := uc.Reconcile(ctx, raw)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "ApplyPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("expire moves a pending order to failed without ticket or payment", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		order := pendingOrder(orderID)

		notifMock := gateway.Notification{
			OrderID:           orderID.String(),
			TransactionStatus: "expire",
		}

		gatewayMock.On("VerifyNotification", raw).Return(notifMock, nil).Once()
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(order, nil).Once()
		repoMock.On("ApplyStatus", ctx, orderID.String(), ordersentity.OrderStatusFailed).Return(true, nil).Once()

		err := uc.Reconcile(ctx, raw)
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("capture with challenge fraud status holds the order", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		order := pendingOrder(orderID)

		notifMock := gateway.Notification{
			OrderID:           orderID.String(),
			TransactionStatus: "capture",
			FraudStatus:       "challenge",
		}

		gatewayMock.On("VerifyNotification", raw).Return(notifMock, nil).Once()
		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(order, nil).Once()
		repoMock.On("ApplyStatus", ctx, orderID.String(), ordersentity.OrderStatusChallenge).Return(true, nil).Once()

		err := uc.Reconcile(ctx, raw)
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("unknown gateway status is acknowledged without side effects", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()

		notifMock := gateway.Notification{
			OrderID:           uuid.New().String(),
			TransactionStatus: "pending",
		}

		gatewayMock.On("VerifyNotification", raw).Return(notifMock, nil).Once()

		err := uc.Reconcile(ctx, raw)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "FindOrderByID", mock.Anything, mock.Anything)
	})

	t.Run("unverified notification is rejected before any lookup", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		bad := []byte(`{"signature_key":"bogus"}`)

		gatewayMock.On("VerifyNotification", bad).Return(gateway.Notification{}, assert.AnError).Once()

		err := uc.Reconcile(ctx, bad)
		assert.Error(t, err)
	})
}

func TestInitiateCharge(t *testing.T) {
	t.Run("pending order gets a charge and a pending payment row", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		order := pendingOrder(orderID)

		participantMock := ordersentity.Participant{
			ID:    order.ParticipantID,
			Name:  "Tirta",
			Email: "tirta@test.com",
			Phone: "0811111111",
		}
		actionMock := gateway.ChargeAction{
			GatewayTransactionID: "trx-9",
			QRString:             "qr-data",
			ExpiresAt:            dateTimeNow.Add(15 * time.Minute),
		}

		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(order, nil).Once()
		repoMock.On("FindParticipantByID", ctx, order.ParticipantID.String()).Return(participantMock, nil).Once()
		gatewayMock.On("CreateCharge", ctx, orderID.String(), int64(50000), "Tirta", "tirta@test.com", "0811111111").Return(actionMock, nil).Once()
		repoMock.On("InsertPayment", ctx, mock.AnythingOfType("entity.Payment")).Return(nil).Once()
		repoMock.On("EnqueuePaymentExpiration", ctx, mock.AnythingOfType("request.PaymentExpiration"), mock.AnythingOfType("time.Duration")).Return(nil).Once()

		resp, err := uc.InitiateCharge(ctx, &request.InitiateCharge{OrderID: orderID.String()})
		assert.NoError(t, err)
		assert.Equal(t, orderID.String(), resp.OrderID)
		assert.Equal(t, "trx-9", resp.GatewayTransactionID)
		assert.Equal(t, int64(50000), resp.GrossAmount)
		assert.Equal(t, "qr-data", resp.QRString)
		repoMock.AssertExpectations(t)
	})

	t.Run("settled order is rejected before the gateway call", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		order := pendingOrder(orderID)
		order.Status = ordersentity.OrderStatusPaid

		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(order, nil).Once()

		_, err := uc.InitiateCharge(ctx, &request.InitiateCharge{OrderID: orderID.String()})
		assert.Error(t, err)
		gatewayMock.AssertNotCalled(t, "CreateCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed order needs a new order, not a new charge", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New()
		order := pendingOrder(orderID)
		order.Status = ordersentity.OrderStatusFailed

		repoMock.On("FindOrderByID", ctx, orderID.String()).Return(order, nil).Once()

		_, err := uc.InitiateCharge(ctx, &request.InitiateCharge{OrderID: orderID.String()})
		assert.Error(t, err)
	})
}

func TestSetPaymentExpired(t *testing.T) {
	t.Run("expiry task marks the attempt failed", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payloadMock := request.PaymentExpiration{
			OrderID:   uuid.New().String(),
			PaymentID: uuid.New().String(),
		}

		repoMock.On("ExpirePayment", ctx, payloadMock.PaymentID, payloadMock.OrderID).Return(nil).Once()

		err := uc.SetPaymentExpired(ctx, &payloadMock)
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})
}

func TestCountPendingPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		orderID := uuid.New().String()

		repoMock.On("CountPendingPayments", ctx, orderID).Return(int64(2), nil).Once()

		resp, err := uc.CountPendingPayment(ctx, orderID)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), resp.Count)
		assert.Equal(t, orderID, resp.OrderID)
	})
}
