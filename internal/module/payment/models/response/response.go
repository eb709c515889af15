package response

type Charge struct {
	OrderID              string `json:"order_id"`
	PaymentID            string `json:"payment_id"`
	GatewayTransactionID string `json:"gateway_transaction_id"`
	Channel              string `json:"channel"`
	GrossAmount          int64  `json:"gross_amount"`
	QRString             string `json:"qr_string"`
	QRCodeURL            string `json:"qr_code_url,omitempty"`
	ExpiresAt            string `json:"expires_at"`
}

type PendingPayment struct {
	OrderID string `json:"order_id"`
	Count   int64  `json:"count"`
}
