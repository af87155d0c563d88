package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentCols = []string{
	"id", "booking_id", "user_id", "amount", "payment_method", "status",
	"qr_reference", "card_brand", "card_last4", "transaction_id",
	"external_session_id", "external_payment_id", "failure_reason",
	"completed_at", "created_at", "updated_at",
}

func paymentRow(status string, failure any, completedAt any) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(paymentCols).AddRow(
		"p1", "b1", "u1", 198.0, "qr", status,
		"ref-1", nil, nil, nil,
		nil, nil, failure,
		completedAt, now, now,
	)
}

func bookingRow(status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(bookingCols).
		AddRow("b1", "u1", 198.0, status, nil, nil, nil, now, now, now)
}

func TestPaymentRepo_Complete_Applied(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)
	completedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM payments p WHERE p.id = \$1 FOR UPDATE`).
		WithArgs("p1").
		WillReturnRows(paymentRow("pending", nil, nil))
	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1 FOR UPDATE`).
		WithArgs("b1").
		WillReturnRows(bookingRow("confirmed"))
	mock.ExpectQuery(`UPDATE payments p SET status = \$2`).
		WithArgs("p1", "completed", "TXN-1", nil, nil, nil, nil, completedAt).
		WillReturnRows(paymentRow("completed", nil, completedAt))
	mock.ExpectQuery(`UPDATE bookings b SET status = \$2`).
		WithArgs("b1", "completed").
		WillReturnRows(bookingRow("completed"))
	mock.ExpectCommit()

	res, err := repo.Complete(context.Background(), "p1", domain.PaymentCompletion{
		TransactionID: "TXN-1",
		CompletedAt:   completedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CompletionApplied, res.Outcome)
	assert.Equal(t, domain.PaymentStatusCompleted, res.Payment.Status)
	assert.Equal(t, domain.BookingStatusCompleted, res.Booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Complete_BookingNoLongerPayable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)
	completedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM payments p WHERE p.id = \$1 FOR UPDATE`).
		WillReturnRows(paymentRow("pending", nil, nil))
	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1 FOR UPDATE`).
		WillReturnRows(bookingRow("completed"))
	mock.ExpectQuery(`UPDATE payments p SET status = \$2`).
		WithArgs("p1", "refunded", "TXN-2", nil, nil, nil, domain.ReasonBookingNotPayable, completedAt).
		WillReturnRows(paymentRow("refunded", domain.ReasonBookingNotPayable, completedAt))
	mock.ExpectCommit()

	res, err := repo.Complete(context.Background(), "p1", domain.PaymentCompletion{
		TransactionID: "TXN-2",
		CompletedAt:   completedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CompletionBookingNotPayable, res.Outcome)
	assert.Equal(t, domain.PaymentStatusRefunded, res.Payment.Status)
	assert.Equal(t, domain.BookingStatusCompleted, res.Booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Complete_AlreadyCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM payments p WHERE p.id = \$1 FOR UPDATE`).
		WillReturnRows(paymentRow("completed", nil, time.Now()))
	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1 FOR UPDATE`).
		WillReturnRows(bookingRow("completed"))
	mock.ExpectRollback()

	res, err := repo.Complete(context.Background(), "p1", domain.PaymentCompletion{TransactionID: "TXN-3"})

	require.NoError(t, err)
	assert.Equal(t, domain.CompletionAlreadyDone, res.Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Complete_FailedPaymentRecordedRefunded(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)
	completedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM payments p WHERE p.id = \$1 FOR UPDATE`).
		WillReturnRows(paymentRow("failed", domain.ReasonCancelledByUser, nil))
	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1 FOR UPDATE`).
		WillReturnRows(bookingRow("confirmed"))
	mock.ExpectQuery(`UPDATE payments p SET status = \$2`).
		WithArgs("p1", "refunded", "TXN-4", nil, nil, nil, domain.ReasonPaymentClosed, completedAt).
		WillReturnRows(paymentRow("refunded", domain.ReasonPaymentClosed, completedAt))
	mock.ExpectCommit()

	res, err := repo.Complete(context.Background(), "p1", domain.PaymentCompletion{
		TransactionID: "TXN-4",
		CompletedAt:   completedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CompletionPaymentClosed, res.Outcome)
	assert.True(t, res.Outcome.NeedsReversal())
	assert.Equal(t, domain.PaymentStatusRefunded, res.Payment.Status)
	// бронь не трогаем: confirmed остаётся ждать другой оплаты или планировщика
	assert.Equal(t, domain.BookingStatusConfirmed, res.Booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Complete_RefundedPayment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM payments p WHERE p.id = \$1 FOR UPDATE`).
		WillReturnRows(paymentRow("refunded", domain.ReasonPaymentClosed, time.Now()))
	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1 FOR UPDATE`).
		WillReturnRows(bookingRow("confirmed"))
	mock.ExpectRollback()

	_, err := repo.Complete(context.Background(), "p1", domain.PaymentCompletion{TransactionID: "TXN-5"})

	assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Refund_NotCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM payments p WHERE p.id = \$1 FOR UPDATE`).
		WillReturnRows(paymentRow("pending", nil, nil))
	mock.ExpectRollback()

	_, _, err := repo.Refund(context.Background(), "p1")

	assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Refund_CancelsBooking(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM payments p WHERE p.id = \$1 FOR UPDATE`).
		WillReturnRows(paymentRow("completed", nil, time.Now()))
	mock.ExpectQuery(`UPDATE payments p SET status = \$2, updated_at`).
		WithArgs("p1", "refunded").
		WillReturnRows(paymentRow("refunded", nil, time.Now()))
	mock.ExpectQuery(`UPDATE bookings b SET status = \$3`).
		WithArgs("b1", "completed", "cancelled").
		WillReturnRows(bookingRow("cancelled"))
	mock.ExpectCommit()

	p, b, err := repo.Refund(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, p.Status)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_FindPending_None(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	mock.ExpectQuery(`p.booking_id = \$1 AND p.payment_method = \$2 AND p.status = \$3`).
		WithArgs("b1", "qr", "pending").
		WillReturnRows(sqlmock.NewRows(paymentCols))

	_, err := repo.FindPending(context.Background(), "b1", domain.PaymentMethodQR)

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentRepo_List_Filters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	status := domain.PaymentStatusPending
	mock.ExpectQuery(`\(\$1::text IS NULL OR p.status = \$1\)`).
		WithArgs("pending", nil).
		WillReturnRows(paymentRow("pending", nil, nil))

	res, err := repo.List(context.Background(), domain.PaymentFilter{Status: &status})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, domain.PaymentMethodQR, res[0].Method)
}
