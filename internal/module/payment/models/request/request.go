package request

type InitiateCharge struct {
	OrderID string `json:"order_id" validate:"required,uuid4"`
}

// GatewayNotification mirrors the loose JSON shape the gateway posts.
// Everything arrives as strings; the adapter normalizes it before the
// reconciliation engine sees it.
type GatewayNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	FraudStatus       string `json:"fraud_status"`
}

type PaymentExpiration struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
}

// SendTicket is the message published for the notifier after a
// successful paid transition.
type SendTicket struct {
	OrderID              string `json:"order_id"`
	EventID              string `json:"event_id"`
	ParticipantName      string `json:"participant_name"`
	EmailRecipient       string `json:"email_recipient"`
	Phone                string `json:"phone"`
	QRToken              string `json:"qr_token"`
	Price                int64  `json:"price"`
	AdminFee             int64  `json:"admin_fee"`
	TotalAmount          int64  `json:"total_amount"`
	Channel              string `json:"channel"`
	GatewayTransactionID string `json:"gateway_transaction_id"`
	PaidAt               string `json:"paid_at"`
}
