package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `p.id, p.booking_id, p.user_id, p.amount, p.payment_method, p.status,
		p.qr_reference, p.card_brand, p.card_last4, p.transaction_id,
		p.external_session_id, p.external_payment_id, p.failure_reason,
		p.completed_at, p.created_at, p.updated_at`

const uniqueViolation = "23505"

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanPayment(s scanner, p *domain.Payment) error {
	return s.Scan(
		&p.ID, &p.BookingID, &p.UserID, &p.Amount, &p.Method, &p.Status,
		&p.QRReference, &p.CardBrand, &p.CardLast4, &p.TransactionID,
		&p.ExternalSessionID, &p.ExternalPaymentID, &p.FailureReason,
		&p.CompletedAt, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create вставляет платёж. Второй pending-платёж того же способа на бронь
// отсекается частичным уникальным индексом.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, booking_id, user_id, amount, payment_method, status,
			  qr_reference, external_session_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.BookingID, p.UserID, p.Amount, p.Method, p.Status,
		p.QRReference, p.ExternalSessionID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrPendingPaymentExists
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) getOne(ctx context.Context, where string, args ...any) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments p
			  WHERE ` + where + `
			  ORDER BY p.created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	if err = scanPayment(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return r.getOne(ctx, `p.id = $1`, id)
}

func (r *PaymentRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Payment, error) {
	return r.getOne(ctx, `p.external_session_id = $1`, sessionID)
}

func (r *PaymentRepository) FindPending(ctx context.Context, bookingID string, method domain.PaymentMethod) (*domain.Payment, error) {
	return r.getOne(ctx, `p.booking_id = $1 AND p.payment_method = $2 AND p.status = $3`,
		bookingID, method, domain.PaymentStatusPending)
}

func (r *PaymentRepository) LatestByBooking(ctx context.Context, bookingID string) (*domain.Payment, error) {
	return r.getOne(ctx, `p.booking_id = $1`, bookingID)
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments p
			  WHERE p.user_id = $1
			  ORDER BY p.created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *PaymentRepository) List(ctx context.Context, filter domain.PaymentFilter) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments p
			  WHERE ($1::text IS NULL OR p.status = $1)
			    AND ($2::text IS NULL OR p.payment_method = $2)
			  ORDER BY p.created_at DESC`

	return r.list(ctx, query, filter.Status, filter.Method)
}

func (r *PaymentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Payment, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err = scanPayment(rows, &p); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

// Complete фиксирует успешную оплату. Платёж и бронь блокируются
// FOR UPDATE: первая завершённая оплата переводит бронь в completed,
// любая следующая застаёт бронь не в confirmed и записывается как
// refunded, деньги по ней должен вернуть вызывающий. Так же записываются
// деньги, пришедшие по уже failed платежу.
func (r *PaymentRepository) Complete(ctx context.Context, id string, c domain.PaymentCompletion) (*domain.CompletionResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var p domain.Payment
	lockPayment := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.id = $1 FOR UPDATE`
	if err = scanPayment(tx.QueryRowContext(ctx, lockPayment, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("lock payment: %w", err)
	}

	var b domain.Booking
	lockBooking := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1 FOR UPDATE`
	if err = scanBooking(tx.QueryRowContext(ctx, lockBooking, p.BookingID), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	res := &domain.CompletionResult{Outcome: domain.CompletionApplied}
	status := domain.PaymentStatusCompleted
	var reason *string

	switch {
	case p.Status == domain.PaymentStatusCompleted:
		return &domain.CompletionResult{Payment: &p, Booking: &b, Outcome: domain.CompletionAlreadyDone}, nil
	case p.Status == domain.PaymentStatusFailed:
		status = domain.PaymentStatusRefunded
		reason = ptr(domain.ReasonPaymentClosed)
		res.Outcome = domain.CompletionPaymentClosed
	case p.Status != domain.PaymentStatusPending && p.Status != domain.PaymentStatusProcessing:
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotPending, p.Status)
	case b.Status != domain.BookingStatusConfirmed:
		status = domain.PaymentStatusRefunded
		reason = ptr(domain.ReasonBookingNotPayable)
		res.Outcome = domain.CompletionBookingNotPayable
	}

	updPayment := `UPDATE payments p
				   SET status = $2, transaction_id = $3, external_payment_id = COALESCE($4, p.external_payment_id),
				       card_brand = $5, card_last4 = $6, failure_reason = $7,
				       completed_at = $8, updated_at = now()
				   WHERE p.id = $1
				   RETURNING ` + paymentColumns
	var updated domain.Payment
	if err = scanPayment(tx.QueryRowContext(
		ctx, updPayment, p.ID, status, c.TransactionID, c.ExternalPaymentID,
		c.CardBrand, c.CardLast4, reason, c.CompletedAt,
	), &updated); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: booking already has a completed payment", domain.ErrPaymentNotPending)
		}
		return nil, fmt.Errorf("update payment: %w", err)
	}
	res.Payment = &updated
	res.Booking = &b

	if res.Outcome == domain.CompletionApplied {
		updBooking := `UPDATE bookings b
					   SET status = $2, updated_at = now()
					   WHERE b.id = $1
					   RETURNING ` + bookingColumns
		var nb domain.Booking
		if err = scanBooking(tx.QueryRowContext(ctx, updBooking, b.ID, domain.BookingStatusCompleted), &nb); err != nil {
			return nil, fmt.Errorf("complete booking: %w", err)
		}
		res.Booking = &nb
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}

// MarkFailed переводит pending-платёж в failed с причиной.
func (r *PaymentRepository) MarkFailed(ctx context.Context, id string, reason string) (*domain.Payment, error) {
	query := `UPDATE payments p
			  SET status = $3, failure_reason = $4, updated_at = now()
			  WHERE p.id = $1 AND p.status = $2
			  RETURNING ` + paymentColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		id, domain.PaymentStatusPending, domain.PaymentStatusFailed, reason)
	if err == nil {
		var p domain.Payment
		if err = scanPayment(row, &p); err == nil {
			return &p, nil
		}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mark payment failed: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotPending, current.Status)
}

// Refund возвращает завершённый платёж и отменяет связанную бронь.
func (r *PaymentRepository) Refund(ctx context.Context, id string) (*domain.Payment, *domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var p domain.Payment
	lockPayment := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.id = $1 FOR UPDATE`
	if err = scanPayment(tx.QueryRowContext(ctx, lockPayment, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrPaymentNotFound
		}
		return nil, nil, fmt.Errorf("lock payment: %w", err)
	}

	if p.Status != domain.PaymentStatusCompleted {
		return nil, nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotCompleted, p.Status)
	}

	updPayment := `UPDATE payments p
				   SET status = $2, updated_at = now()
				   WHERE p.id = $1
				   RETURNING ` + paymentColumns
	var updated domain.Payment
	if err = scanPayment(tx.QueryRowContext(ctx, updPayment, p.ID, domain.PaymentStatusRefunded), &updated); err != nil {
		return nil, nil, fmt.Errorf("refund payment: %w", err)
	}

	// Бронь отменяется только из completed, иначе оставляем как есть
	var b domain.Booking
	updBooking := `UPDATE bookings b
				   SET status = $3, updated_at = now()
				   WHERE b.id = $1 AND b.status = $2
				   RETURNING ` + bookingColumns
	err = scanBooking(tx.QueryRowContext(
		ctx, updBooking, p.BookingID,
		domain.BookingStatusCompleted, domain.BookingStatusCancelled,
	), &b)
	if errors.Is(err, sql.ErrNoRows) {
		getBooking := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`
		err = scanBooking(tx.QueryRowContext(ctx, getBooking, p.BookingID), &b)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("cancel booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return &updated, &b, nil
}

func ptr[T any](v T) *T {
	return &v
}
