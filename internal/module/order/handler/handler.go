package handler

import (
	"fmt"

	"ticketing-service/internal/module/order/models/request"
	"ticketing-service/internal/module/order/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type OrderHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *OrderHandler) CreateOrder(ctx *fiber.Ctx) error {
	var req request.CreateOrder
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateOrder(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "order created successfully")
}

func (h *OrderHandler) GetOrder(ctx *fiber.Ctx) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetOrder(ctx.UserContext(), orderID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get order")
}

func (h *OrderHandler) GetOrderPayments(ctx *fiber.Ctx) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetOrderPayments(ctx.UserContext(), orderID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get order payments: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get order payments")
}

func (h *OrderHandler) GetOrderTicket(ctx *fiber.Ctx) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetOrderTicket(ctx.UserContext(), orderID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get order ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get order ticket")
}

func (h *OrderHandler) UpdateOrderStatus(ctx *fiber.Ctx) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateOrderStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.UpdateOrderStatus(ctx.UserContext(), orderID, &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update order status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "order status updated successfully")
}

func (h *OrderHandler) DeleteOrder(ctx *fiber.Ctx) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteOrder(ctx.UserContext(), orderID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "order deleted successfully")
}

func parseOrderID(ctx *fiber.Ctx) (string, error) {
	orderID := ctx.Params("id")
	if _, err := uuid.Parse(orderID); err != nil {
		return "", errors.BadRequest("invalid order id")
	}
	return orderID, nil
}
