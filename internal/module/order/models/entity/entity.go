package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusFailed    = "failed"
	OrderStatusChallenge = "challenge"
	OrderStatusCancelled = "cancelled"
)

// Order carries the price snapshot taken at creation time. The event
// price may change later without touching existing orders.
type Order struct {
	ID            uuid.UUID `db:"id"`
	EventID       uuid.UUID `db:"event_id"`
	ParticipantID uuid.UUID `db:"participant_id"`
	Price         int64     `db:"price"`
	AdminFee      int64     `db:"admin_fee"`
	TotalAmount   int64     `db:"total_amount"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type Participant struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

// IsSettled reports whether the order already reached its paid
// terminal state.
func (o Order) IsSettled() bool {
	return o.Status == OrderStatusPaid
}
