package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var bookingCols = []string{
	"id", "user_id", "total_price", "status", "rejection_reason",
	"guest_date_of_birth", "guest_phone", "confirmed_at", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &dbpg.DB{Master: db}, mock
}

func day(d int) time.Time {
	return time.Date(2026, 11, d, 0, 0, 0, 0, time.UTC)
}

func newBooking() *domain.Booking {
	roomID := "r1"
	now := time.Now().UTC()
	return &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		TotalPrice: 198,
		Status:     domain.BookingStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
		Items: []domain.BookingItem{{
			ID: "i1", BookingID: "b1", RoomID: &roomID, RoomName: "Deluxe", HotelName: "Grand",
			CheckIn: day(10), CheckOut: day(12), PriceAtBooking: 180,
		}},
	}
}

func TestBookingRepo_Create_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, available FROM rooms WHERE id = ANY\(\$1\) ORDER BY id FOR UPDATE`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "available"}).AddRow("r1", 2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM booking_items`).
		WithArgs("r1", sqlmock.AnyArg(), day(10), day(12)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO booking_items`).
		WithArgs("i1", "b1", "r1", "Deluxe", "Grand", day(10), day(12), 180.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), newBooking(), []domain.RoomDemand{
		{RoomID: "r1", CheckIn: day(10), CheckOut: day(12), Quantity: 1},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_Create_InsufficientAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, available FROM rooms`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "available"}).AddRow("r1", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM booking_items`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), newBooking(), []domain.RoomDemand{
		{RoomID: "r1", CheckIn: day(10), CheckOut: day(12), Quantity: 1},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailability)
	assert.Contains(t, err.Error(), "room r1 has 0 of 1 requested")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_Create_RoomMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, available FROM rooms`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "available"}))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), newBooking(), []domain.RoomDemand{
		{RoomID: "r1", CheckIn: day(10), CheckOut: day(12), Quantity: 1},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_AvailableCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`SELECT GREATEST`).
		WithArgs("r1", sqlmock.AnyArg(), day(10), day(12)).
		WillReturnRows(sqlmock.NewRows([]string{"greatest"}).AddRow(3))

	n, err := repo.AvailableCount(context.Background(), "r1", day(10), day(12))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBookingRepo_AvailableCount_UnknownRoom(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`SELECT GREATEST`).
		WillReturnRows(sqlmock.NewRows([]string{"greatest"}))

	n, err := repo.AvailableCount(context.Background(), "missing", day(10), day(12))

	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBookingRepo_GetByID_FallsBackToSnapshotNames(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow("b1", "u1", 198.0, "pending", nil, nil, nil, nil, now, now))
	mock.ExpectQuery(`COALESCE\(r.name, bi.room_name\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "room_id", "room_name", "hotel_name", "check_in", "check_out", "price_at_booking",
		}).AddRow("i1", "b1", nil, "Deluxe (deleted)", "Grand", day(10), day(12), 180.0))

	b, err := repo.GetByID(context.Background(), "b1")

	require.NoError(t, err)
	require.Len(t, b.Items, 1)
	assert.Nil(t, b.Items[0].RoomID)
	assert.Equal(t, "Deluxe (deleted)", b.Items[0].RoomName)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
}

func TestBookingRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookingCols))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepo_UpdateStatus_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`UPDATE bookings b SET status`).
		WithArgs("b1", "pending", "confirmed", nil).
		WillReturnRows(sqlmock.NewRows(bookingCols))
	mock.ExpectQuery(`SELECT status FROM bookings WHERE id = \$1`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))

	_, err := repo.UpdateStatus(context.Background(), "b1",
		domain.BookingStatusPending, domain.BookingStatusConfirmed, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_FailExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	confirmedAt := time.Now().Add(-7 * time.Hour)
	reason := "Payment session expired"

	mock.ExpectQuery(`UPDATE bookings b SET status = \$2, rejection_reason = \$4.*` +
		`AND b.confirmed_at < now\(\) - make_interval\(secs => \$3::double precision\)`).
		WithArgs("confirmed", "failed", 21600.0, reason, "completed").
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow("b1", "u1", 198.0, "failed", reason, nil, nil, confirmedAt, confirmedAt, time.Now()))

	res, err := repo.FailExpired(context.Background(), 6*time.Hour, reason)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, domain.BookingStatusFailed, res[0].Status)
	require.NotNil(t, res[0].RejectionReason)
	assert.Equal(t, reason, *res[0].RejectionReason)
}
