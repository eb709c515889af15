package handler

import (
	"context"
	"fmt"

	"ticketing-service/internal/module/payment/models/request"
	"ticketing-service/internal/module/payment/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PaymentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PaymentHandler) InitiateCharge(ctx *fiber.Ctx) error {
	var req request.InitiateCharge
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.InitiateCharge(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error initiate charge: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "charge created, scan the code to pay")
}

// Notification is the inbound gateway webhook. Any 2xx acknowledges
// the delivery; any other status makes the gateway redeliver, which is
// exactly what we want after a storage failure.
func (h *PaymentHandler) Notification(ctx *fiber.Ctx) error {
	raw := ctx.Body()
	if len(raw) == 0 {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("empty notification body"))
	}

	if err := h.Usecase.Reconcile(ctx.UserContext(), raw); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reconcile notification: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "ok")
}

func (h *PaymentHandler) CountPendingPayment(ctx *fiber.Ctx) error {
	orderID := ctx.Query("order_id")
	if _, err := uuid.Parse(orderID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse order id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid order id"))
	}

	resp, err := h.Usecase.CountPendingPayment(ctx.UserContext(), orderID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error count pending payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success count pending payment")
}

func (h *PaymentHandler) SetPaymentExpired(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.SetPaymentExpired(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error set payment expired: %v", err))
		return err
	}

	return nil
}
