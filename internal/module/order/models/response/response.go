package response

import "time"

// Event is the read model returned by the event service collaborator.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	Datetime time.Time `json:"datetime"`
	Price    int64     `json:"price"`
}

type Order struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	Price         int64  `json:"price"`
	AdminFee      int64  `json:"admin_fee"`
	TotalAmount   int64  `json:"total_amount"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type OrderPayment struct {
	ID                   string `json:"id"`
	GatewayTransactionID string `json:"gateway_transaction_id,omitempty"`
	Channel              string `json:"channel"`
	Status               string `json:"status"`
	PaidAt               string `json:"paid_at,omitempty"`
	CreatedAt            string `json:"created_at"`
}

type OrderTicket struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	QRToken   string `json:"qr_token"`
	IsValid   bool   `json:"is_valid"`
	CreatedAt string `json:"created_at"`
}
