package handler

import (
	"context"
	"fmt"

	"ticketing-service/internal/module/notification/models/request"
	"ticketing-service/internal/module/notification/usecases"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type NotificationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

// ConsumeSendTicketQueue delivers one issued ticket by email. Messages
// that cannot be parsed or delivered are parked on the poisoned queue
// so a broken payload cannot block the subscription.
func (h *NotificationHandler) ConsumeSendTicketQueue(msg *message.Message) error {
	msg.Ack()

	var req request.SendTicket
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	ctx := context.Background()
	if err := h.Usecase.SendTicket(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error send ticket: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *NotificationHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: "send_ticket",
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}
