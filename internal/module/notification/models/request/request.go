package request

// SendTicket is the message consumed from the send_ticket queue.
type SendTicket struct {
	OrderID              string `json:"order_id" validate:"required"`
	EventID              string `json:"event_id" validate:"required"`
	ParticipantName      string `json:"participant_name" validate:"required"`
	EmailRecipient       string `json:"email_recipient" validate:"required,email"`
	Phone                string `json:"phone"`
	QRToken              string `json:"qr_token" validate:"required"`
	Price                int64  `json:"price"`
	AdminFee             int64  `json:"admin_fee"`
	TotalAmount          int64  `json:"total_amount"`
	Channel              string `json:"channel"`
	GatewayTransactionID string `json:"gateway_transaction_id"`
	PaidAt               string `json:"paid_at"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
