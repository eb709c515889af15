package repositories

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"time"

	"ticketing-service/internal/module/payment/models/entity"
	"ticketing-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// issueTicketIfAbsent runs inside the settle transaction. If a ticket
// already exists for the order it is returned unchanged; otherwise one
// is inserted with a fresh random token. The unique constraint on
// ticket.order_id backstops the check against a concurrent insert.
func (r *repositories) issueTicketIfAbsent(ctx context.Context, tx *sqlx.Tx, orderID string) (entity.Ticket, error) {
	var existing entity.Ticket
	err := tx.GetContext(ctx, &existing, `SELECT id, order_id, qr_token, is_valid, created_at FROM ticket WHERE order_id = $1`, orderID)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		r.log.Error(ctx, "error find ticket by order id", err)
		return entity.Ticket{}, errors.InternalServerError("error find ticket by order id")
	}

	token, err := newQRToken()
	if err != nil {
		return entity.Ticket{}, errors.InternalServerError("error generate ticket token")
	}

	ticket := entity.Ticket{
		ID:        uuid.New(),
		OrderID:   uuid.MustParse(orderID),
		QRToken:   token,
		IsValid:   true,
		CreatedAt: time.Now(),
	}
	// A unique violation aborts the whole transaction in postgres, so
	// the insert runs under a savepoint the race handler can roll back
	// to before loading the winner.
	if _, err := tx.ExecContext(ctx, `SAVEPOINT issue_ticket`); err != nil {
		r.log.Error(ctx, "error savepoint ticket", err)
		return entity.Ticket{}, errors.InternalServerError("error insert ticket")
	}
	_, err = tx.NamedExecContext(ctx, `INSERT INTO ticket (id, order_id, qr_token, is_valid, created_at)
		VALUES (:id, :order_id, :qr_token, :is_valid, :created_at)`, ticket)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			// lost the race, load the winner
			if _, err := tx.ExecContext(ctx, `ROLLBACK TO SAVEPOINT issue_ticket`); err != nil {
				r.log.Error(ctx, "error rollback ticket savepoint", err)
				return entity.Ticket{}, errors.InternalServerError("error insert ticket")
			}
			if err := tx.GetContext(ctx, &existing, `SELECT id, order_id, qr_token, is_valid, created_at FROM ticket WHERE order_id = $1`, orderID); err != nil {
				r.log.Error(ctx, "error find ticket by order id", err)
				return entity.Ticket{}, errors.InternalServerError("error insert ticket")
			}
			return existing, nil
		}
		r.log.Error(ctx, "error insert ticket", err)
		return entity.Ticket{}, errors.InternalServerError("error insert ticket")
	}

	return ticket, nil
}

// newQRToken returns 32 bytes of crypto randomness, base64url encoded.
// Tokens must not be derivable from the order id.
func newQRToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
