package router

import (
	orderhandler "ticketing-service/internal/module/order/handler"
	paymenthandler "ticketing-service/internal/module/payment/handler"
	"ticketing-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerOrder *orderhandler.OrderHandler, handlerPayment *paymenthandler.PaymentHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1")
	v1.Post("/orders", m.ValidateToken, handlerOrder.CreateOrder)
	v1.Get("/orders/:id", m.ValidateToken, handlerOrder.GetOrder)
	v1.Get("/orders/:id/payments", m.ValidateToken, handlerOrder.GetOrderPayments)
	v1.Get("/orders/:id/ticket", m.ValidateToken, handlerOrder.GetOrderTicket)
	v1.Put("/orders/:id/status", m.ValidateToken, m.RequireAdmin, handlerOrder.UpdateOrderStatus)
	v1.Delete("/orders/:id", m.ValidateToken, m.RequireAdmin, handlerOrder.DeleteOrder)

	v1.Post("/payments/charge", m.ValidateToken, handlerPayment.InitiateCharge)
	// gateway webhook, authenticated by its payload signature
	v1.Post("/payments/notification", handlerPayment.Notification)

	private := Api.Group("/private")
	private.Get("/payments/pending", handlerPayment.CountPendingPayment)

	return app

}
