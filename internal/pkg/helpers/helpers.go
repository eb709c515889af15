package helpers

import (
	"fmt"

	"ticketing-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type successEnvelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(successEnvelope{
		Message: message,
		Data:    data,
	})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(successEnvelope{
		Message: message,
		Data:    data,
	})
}

// RespError writes the taxonomy code for *errors.AppError and hides
// everything else behind a generic 500.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.HttpCode(err)
	message := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
		message = "internal server error"
	}
	return ctx.Status(code).JSON(errorEnvelope{Message: message})
}
