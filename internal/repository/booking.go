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

const bookingColumns = `b.id, b.user_id, b.total_price, b.status, b.rejection_reason,
		b.guest_date_of_birth, b.guest_phone, b.confirmed_at, b.created_at, b.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanBooking(s scanner, b *domain.Booking, extra ...any) error {
	dest := []any{
		&b.ID, &b.UserID, &b.TotalPrice, &b.Status, &b.RejectionReason,
		&b.GuestDateOfBirth, &b.GuestPhone, &b.ConfirmedAt, &b.CreatedAt, &b.UpdatedAt,
	}
	return s.Scan(append(dest, extra...)...)
}

// Create сохраняет бронь и её позиции в одной транзакции. Строки номеров
// блокируются FOR UPDATE, поэтому параллельные брони на тот же номер ждут
// друг друга, а наличие перепроверяется уже под блокировкой.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, demands []domain.RoomDemand) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	roomIDs := make([]string, 0, len(demands))
	seen := make(map[string]struct{}, len(demands))
	for _, d := range demands {
		if _, ok := seen[d.RoomID]; ok {
			continue
		}
		seen[d.RoomID] = struct{}{}
		roomIDs = append(roomIDs, d.RoomID)
	}

	lockQuery := `SELECT id, available FROM rooms WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	rows, err := tx.QueryContext(ctx, lockQuery, pq.Array(roomIDs))
	if err != nil {
		return fmt.Errorf("lock rooms: %w", err)
	}
	units := make(map[string]int, len(roomIDs))
	for rows.Next() {
		var (
			id        string
			available int
		)
		if err = rows.Scan(&id, &available); err != nil {
			rows.Close()
			return fmt.Errorf("scan room: %w", err)
		}
		units[id] = available
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("lock rooms: %w", err)
	}
	rows.Close()

	heldQuery := `SELECT COUNT(*)
				  FROM booking_items bi
				  JOIN bookings b ON b.id = bi.booking_id
				  WHERE bi.room_id = $1
				    AND b.status = ANY($2)
				    AND bi.check_in < $4
				    AND bi.check_out > $3`
	for _, d := range demands {
		total, ok := units[d.RoomID]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrRoomNotFound, d.RoomID)
		}

		var held int
		if err = tx.QueryRowContext(
			ctx, heldQuery, d.RoomID,
			pq.Array(domain.HoldingStatuses), d.CheckIn, d.CheckOut,
		).Scan(&held); err != nil {
			return fmt.Errorf("count held rooms: %w", err)
		}

		if free := total - held; free < d.Quantity {
			return fmt.Errorf("%w: room %s has %d of %d requested",
				domain.ErrInsufficientAvailability, d.RoomID, max(free, 0), d.Quantity)
		}
	}

	query := `INSERT INTO bookings (id, user_id, total_price, status, guest_date_of_birth,
			  guest_phone, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = tx.ExecContext(
		ctx, query, b.ID, b.UserID, b.TotalPrice, b.Status,
		b.GuestDateOfBirth, b.GuestPhone, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	itemQuery := `INSERT INTO booking_items (id, booking_id, room_id, room_name, hotel_name,
				  check_in, check_out, price_at_booking)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, it := range b.Items {
		if _, err = tx.ExecContext(
			ctx, itemQuery, it.ID, b.ID, it.RoomID, it.RoomName, it.HotelName,
			it.CheckIn, it.CheckOut, it.PriceAtBooking,
		); err != nil {
			return fmt.Errorf("insert booking item: %w", err)
		}
	}

	return tx.Commit()
}

// AvailableCount - сколько единиц номера свободно на [checkIn, checkOut).
// Для несуществующего номера 0.
func (r *BookingRepository) AvailableCount(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	query := `SELECT GREATEST(r.available - (
				  SELECT COUNT(*)
				  FROM booking_items bi
				  JOIN bookings b ON b.id = bi.booking_id
				  WHERE bi.room_id = r.id
				    AND b.status = ANY($2)
				    AND bi.check_in < $4
				    AND bi.check_out > $3
			  ), 0)
			  FROM rooms r
			  WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID, pq.Array(domain.HoldingStatuses), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("available count: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("scan available count: %w", err)
	}

	return n, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = scanBooking(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if err = r.loadItems(ctx, []*domain.Booking{&b}); err != nil {
		return nil, err
	}

	return &b, nil
}

// GetDetails - бронь с позициями и сводкой по пользователю для админки.
func (r *BookingRepository) GetDetails(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, u.email, u.full_name
			  FROM bookings b
			  LEFT JOIN users u ON u.id = b.user_id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking details: %w", err)
	}

	var (
		b               domain.Booking
		email, fullName sql.NullString
	)
	if err = scanBooking(row, &b, &email, &fullName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking details: %w", err)
	}
	b.User = userSummary(b.UserID, email, fullName)

	if err = r.loadItems(ctx, []*domain.Booking{&b}); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.user_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}

	if err = r.loadItems(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, u.email, u.full_name
			  FROM bookings b
			  LEFT JOIN users u ON u.id = b.user_id
			  WHERE ($1::text IS NULL OR b.status = $1)
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var (
			b               domain.Booking
			email, fullName sql.NullString
		)
		if err = scanBooking(rows, &b, &email, &fullName); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.User = userSummary(b.UserID, email, fullName)
		res = append(res, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	if err = r.loadItems(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

// UpdateStatus переводит бронь из from в to. Если за время между чтением
// и записью статус успел измениться, возвращается ErrInvalidTransition.
func (r *BookingRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to domain.BookingStatus,
	reason *string,
) (*domain.Booking, error) {
	query := `UPDATE bookings b
			  SET status = $3::text,
			      rejection_reason = COALESCE($4, b.rejection_reason),
			      confirmed_at = CASE WHEN $3::text = 'confirmed' THEN now() ELSE b.confirmed_at END,
			      updated_at = now()
			  WHERE b.id = $1 AND b.status = $2
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, from, to, reason)
	if err == nil {
		var b domain.Booking
		if err = scanBooking(row, &b); err == nil {
			if err = r.loadItems(ctx, []*domain.Booking{&b}); err != nil {
				return nil, err
			}
			return &b, nil
		}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	// Определяем причину: брони нет или статус уже другой
	var current domain.BookingStatus
	checkRow, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
	if err == nil {
		err = checkRow.Scan(&current)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("check booking status: %w", err)
	}

	return nil, fmt.Errorf("%w: booking is %s, expected %s", domain.ErrInvalidTransition, current, from)
}

// FailExpired одним запросом переводит в failed подтверждённые брони,
// подтверждённые больше window назад и так и не получившие завершённого платежа.
// Платежи не трогаются. Граница считается по часам базы: confirmed_at
// проставляет тоже она.
func (r *BookingRepository) FailExpired(ctx context.Context, window time.Duration, reason string) ([]*domain.Booking, error) {
	query := `UPDATE bookings b
			  SET status = $2, rejection_reason = $4, updated_at = now()
			  WHERE b.status = $1
			    AND b.confirmed_at < now() - make_interval(secs => $3::double precision)
			    AND NOT EXISTS (
			        SELECT 1 FROM payments p
			        WHERE p.booking_id = b.id AND p.status = $5
			    )
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusConfirmed, domain.BookingStatusFailed,
		window.Seconds(), reason, domain.PaymentStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("fail expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// loadItems подтягивает позиции броней. Имена номера и отеля берутся
// актуальные, а если номер удалён - из снимка в позиции.
func (r *BookingRepository) loadItems(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]string, 0, len(bookings))
	byID := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
		byID[b.ID] = b
		b.Items = []domain.BookingItem{}
	}

	query := `SELECT bi.id, bi.booking_id, bi.room_id,
			         COALESCE(r.name, bi.room_name), COALESCE(h.name, bi.hotel_name),
			         bi.check_in, bi.check_out, bi.price_at_booking
			  FROM booking_items bi
			  LEFT JOIN rooms r ON r.id = bi.room_id
			  LEFT JOIN hotels h ON h.id = r.hotel_id
			  WHERE bi.booking_id = ANY($1)
			  ORDER BY bi.check_in, bi.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load booking items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.BookingItem
		if err = rows.Scan(
			&it.ID, &it.BookingID, &it.RoomID, &it.RoomName, &it.HotelName,
			&it.CheckIn, &it.CheckOut, &it.PriceAtBooking,
		); err != nil {
			return fmt.Errorf("scan booking item: %w", err)
		}
		if b, ok := byID[it.BookingID]; ok {
			b.Items = append(b.Items, it)
		}
	}

	return rows.Err()
}

func userSummary(id string, email, fullName sql.NullString) *domain.UserSummary {
	if !email.Valid {
		return nil
	}
	return &domain.UserSummary{ID: id, Email: email.String, FullName: fullName.String}
}
