package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	ordersentity "ticketing-service/internal/module/order/models/entity"
	"ticketing-service/internal/module/payment/models/entity"
	"ticketing-service/internal/module/payment/repositories"
	log_internal "ticketing-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
)

func setup() repositories.Repositories {
	dbx, mock, _ = sqlxmock.Newx()
	log_internal.Init(log_internal.Setup())
	return repositories.New(dbx, log_internal.GetLogger(), nil)
}

func TestFindOrderByID(t *testing.T) {
	repo := setup()
	orderID := uuid.New()
	createdAt := time.Now()

	t.Run("order found", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "event_id", "participant_id", "price", "admin_fee", "total_amount", "status", "created_at"}).
			AddRow(orderID, uuid.New(), uuid.New(), int64(49000), int64(1000), int64(50000), "pending", createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, event_id, participant_id, price, admin_fee, total_amount, status, created_at FROM orders WHERE id = $1`)).
			WithArgs(orderID.String()).
			WillReturnRows(rows)

		order, err := repo.FindOrderByID(context.Background(), orderID.String())
		assert.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, int64(50000), order.TotalAmount)
		assert.Equal(t, ordersentity.OrderStatusPending, order.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, event_id, participant_id, price, admin_fee, total_amount, status, created_at FROM orders WHERE id = $1`)).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))

		_, err := repo.FindOrderByID(context.Background(), orderID.String())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindTicketByOrderID(t *testing.T) {
	repo := setup()
	orderID := uuid.New()

	t.Run("ticket issued", func(t *testing.T) {
		ticketID := uuid.New()
		rows := sqlxmock.NewRows([]string{"id", "order_id", "qr_token", "is_valid", "created_at"}).
			AddRow(ticketID, orderID, "tok-123", true, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, order_id, qr_token, is_valid, created_at FROM ticket WHERE order_id = $1`)).
			WithArgs(orderID.String()).
			WillReturnRows(rows)

		ticket, err := repo.FindTicketByOrderID(context.Background(), orderID.String())
		assert.NoError(t, err)
		assert.Equal(t, ticketID, ticket.ID)
		assert.Equal(t, "tok-123", ticket.QRToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no ticket yet returns the zero value", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, order_id, qr_token, is_valid, created_at FROM ticket WHERE order_id = $1`)).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))

		ticket, err := repo.FindTicketByOrderID(context.Background(), orderID.String())
		assert.NoError(t, err)
		assert.Equal(t, entity.Ticket{}, ticket)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountPendingPayments(t *testing.T) {
	repo := setup()
	orderID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(id) FROM payment WHERE order_id = $1 AND status = 'pending'`)).
		WithArgs(orderID.String()).
		WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.CountPendingPayments(context.Background(), orderID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPaid(t *testing.T) {
	repo := setup()
	orderID := uuid.New()
	lockQuery := regexp.QuoteMeta(`SELECT status FROM orders WHERE id = $1 FOR UPDATE`)
	ticketQuery := regexp.QuoteMeta(`SELECT id, order_id, qr_token, is_valid, created_at FROM ticket WHERE order_id = $1`)

	t.Run("pending order is settled and a fresh ticket issued", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("pending"))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status = 'paid' WHERE id = $1`)).
			WithArgs(orderID.String()).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectQuery(ticketQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))
		mock.ExpectExec(`^SAVEPOINT issue_ticket$`).
			WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO ticket").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO payment").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		ticket, payment, applied, err := repo.ApplyPaid(context.Background(), orderID.String(), "trx-1", "qris")
		assert.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, orderID, ticket.OrderID)
		assert.NotEmpty(t, ticket.QRToken)
		assert.Equal(t, entity.PaymentStatusPaid, payment.Status)
		assert.Equal(t, "trx-1", payment.GatewayTransactionID.String)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing ticket is reused, never reissued", func(t *testing.T) {
		ticketID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("pending"))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status = 'paid' WHERE id = $1`)).
			WithArgs(orderID.String()).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectQuery(ticketQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "order_id", "qr_token", "is_valid", "created_at"}).
				AddRow(ticketID, orderID, "tok-keep", true, time.Now()))
		mock.ExpectExec("INSERT INTO payment").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		ticket, _, applied, err := repo.ApplyPaid(context.Background(), orderID.String(), "trx-2", "qris")
		assert.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, "tok-keep", ticket.QRToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already settled order applies nothing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("paid"))
		mock.ExpectRollback()

		_, _, applied, err := repo.ApplyPaid(context.Background(), orderID.String(), "trx-3", "qris")
		assert.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert race loser rolls back to the savepoint and keeps the winner", func(t *testing.T) {
		winnerID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("pending"))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status = 'paid' WHERE id = $1`)).
			WithArgs(orderID.String()).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectQuery(ticketQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))
		mock.ExpectExec(`^SAVEPOINT issue_ticket$`).
			WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO ticket").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectExec(`^ROLLBACK TO SAVEPOINT issue_ticket$`).
			WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectQuery(ticketQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "order_id", "qr_token", "is_valid", "created_at"}).
				AddRow(winnerID, orderID, "tok-winner", true, time.Now()))
		mock.ExpectExec("INSERT INTO payment").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		ticket, _, applied, err := repo.ApplyPaid(context.Background(), orderID.String(), "trx-4", "qris")
		assert.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, winnerID, ticket.ID)
		assert.Equal(t, "tok-winner", ticket.QRToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failing ticket lookup aborts the settle", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("pending"))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status = 'paid' WHERE id = $1`)).
			WithArgs(orderID.String()).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectQuery(ticketQuery).
			WithArgs(orderID.String()).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, _, applied, err := repo.ApplyPaid(context.Background(), orderID.String(), "trx-5", "qris")
		assert.Error(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApplyStatus(t *testing.T) {
	repo := setup()
	orderID := uuid.New()
	lockQuery := regexp.QuoteMeta(`SELECT status FROM orders WHERE id = $1 FOR UPDATE`)

	t.Run("pending order transitions and applies", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("pending"))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status = $1 WHERE id = $2`)).
			WithArgs(ordersentity.OrderStatusFailed, orderID.String()).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		applied, err := repo.ApplyStatus(context.Background(), orderID.String(), ordersentity.OrderStatusFailed)
		assert.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already settled order is left untouched", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(orderID.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("paid"))
		mock.ExpectRollback()

		applied, err := repo.ApplyStatus(context.Background(), orderID.String(), ordersentity.OrderStatusFailed)
		assert.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
