package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Payment is an append-only audit row. A row that reached a terminal
// status is never mutated; retries create new rows.
type Payment struct {
	ID                   uuid.UUID      `db:"id"`
	OrderID              uuid.UUID      `db:"order_id"`
	GatewayTransactionID sql.NullString `db:"gateway_transaction_id"`
	Channel              string         `db:"channel"`
	Status               string         `db:"status"`
	PaidAt               sql.NullTime   `db:"paid_at"`
	CreatedAt            time.Time      `db:"created_at"`
}

// Ticket is issued exactly once per paid order, enforced by the unique
// constraint on order_id.
type Ticket struct {
	ID        uuid.UUID `db:"id"`
	OrderID   uuid.UUID `db:"order_id"`
	QRToken   string    `db:"qr_token"`
	IsValid   bool      `db:"is_valid"`
	CreatedAt time.Time `db:"created_at"`
}
