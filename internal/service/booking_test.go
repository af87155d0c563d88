package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func day(d int) time.Time {
	return time.Date(2026, 11, d, 0, 0, 0, 0, time.UTC)
}

var testBookingOptions = BookingOptions{
	TaxRate:       0.10,
	MinGuestAge:   16,
	PaymentWindow: 6 * time.Hour,
}

type bookingMocks struct {
	bookings *mocks.MockBookingRepo
	rooms    *mocks.MockRoomRepo
	locker   *mocks.MockRoomLocker
	notifier *mocks.MockNotifier
}

func newBookingSvc(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookings: mocks.NewMockBookingRepo(t),
		rooms:    mocks.NewMockRoomRepo(t),
		locker:   mocks.NewMockRoomLocker(t),
		notifier: mocks.NewMockNotifier(t),
	}
	m.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return().Maybe()

	svc := NewBookingService(m.bookings, m.rooms, nil, m.locker, m.notifier, testBookingOptions, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func scenarioRooms() map[string]*domain.Room {
	return map[string]*domain.Room{
		"R1": {ID: "R1", Name: "Deluxe", HotelName: "Grand", Price: 100, DiscountPercentage: 10, Available: 5},
		"R2": {ID: "R2", Name: "Single", HotelName: "Grand", Price: 50, Available: 5},
	}
}

func TestBookingService_Create_Scenario(t *testing.T) {
	svc, m := newBookingSvc(t)

	selections := []domain.Selection{
		{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)},
		{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)},
		{RoomID: "R2", CheckIn: day(11), CheckOut: day(14)},
	}

	m.rooms.EXPECT().GetByIDs(mock.Anything, []string{"R1", "R2"}).Return(scenarioRooms(), nil)
	m.locker.EXPECT().Lock(mock.Anything, []string{"R1", "R2"}).Return(func() {}, nil)
	m.bookings.EXPECT().AvailableCount(mock.Anything, "R1", day(10), day(12)).Return(5, nil)
	m.bookings.EXPECT().AvailableCount(mock.Anything, "R2", day(11), day(14)).Return(5, nil)

	var demands []domain.RoomDemand
	m.bookings.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking"), mock.Anything).
		Run(func(_ context.Context, _ *domain.Booking, d []domain.RoomDemand) { demands = d }).
		Return(nil)

	b, err := svc.Create(context.Background(), domain.CreateBookingInput{UserID: "u1", Selections: selections})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, 561.0, b.TotalPrice)
	require.Len(t, b.Items, 3)
	assert.Equal(t, 180.0, b.Items[0].PriceAtBooking)
	assert.Equal(t, 180.0, b.Items[1].PriceAtBooking)
	assert.Equal(t, 150.0, b.Items[2].PriceAtBooking)
	assert.Equal(t, "Deluxe", b.Items[0].RoomName)
	assert.Equal(t, "Grand", b.Items[2].HotelName)
	for _, it := range b.Items {
		assert.Equal(t, b.ID, it.BookingID)
	}

	assert.Equal(t, []domain.RoomDemand{
		{RoomID: "R1", CheckIn: day(10), CheckOut: day(12), Quantity: 2},
		{RoomID: "R2", CheckIn: day(11), CheckOut: day(14), Quantity: 1},
	}, demands)
}

func TestBookingService_Create_Underage(t *testing.T) {
	svc, _ := newBookingSvc(t)

	dob := fixedNow.AddDate(-16, 0, 1)
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:           "u1",
		Selections:       []domain.Selection{{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)}},
		GuestDateOfBirth: &dob,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnderage)
	assert.Contains(t, err.Error(), "at least 16 years old")
}

func TestBookingService_Create_ExactlyMinimumAge(t *testing.T) {
	svc, m := newBookingSvc(t)

	dob := time.Date(fixedNow.Year()-16, fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, time.UTC)
	phone := "+100000000"

	m.rooms.EXPECT().GetByIDs(mock.Anything, []string{"R1"}).Return(scenarioRooms(), nil)
	m.locker.EXPECT().Lock(mock.Anything, []string{"R1"}).Return(func() {}, nil)
	m.bookings.EXPECT().AvailableCount(mock.Anything, "R1", day(10), day(12)).Return(1, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:           "u1",
		Selections:       []domain.Selection{{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)}},
		GuestDateOfBirth: &dob,
		GuestPhone:       &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, &dob, b.GuestDateOfBirth)
	assert.Equal(t, 198.0, b.TotalPrice)
}

func TestBookingService_Create_CheckOutNotAfterCheckIn(t *testing.T) {
	svc, _ := newBookingSvc(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:     "u1",
		Selections: []domain.Selection{{RoomID: "R1", CheckIn: day(12), CheckOut: day(12)}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_NoSelections(t *testing.T) {
	svc, _ := newBookingSvc(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{UserID: "u1"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RoomNotFound(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.rooms.EXPECT().GetByIDs(mock.Anything, []string{"R9"}).Return(map[string]*domain.Room{}, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:     "u1",
		Selections: []domain.Selection{{RoomID: "R9", CheckIn: day(10), CheckOut: day(12)}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Contains(t, err.Error(), "R9")
}

func TestBookingService_Create_InsufficientAvailability(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.rooms.EXPECT().GetByIDs(mock.Anything, []string{"R1"}).Return(scenarioRooms(), nil)
	m.locker.EXPECT().Lock(mock.Anything, []string{"R1"}).Return(func() {}, nil)
	m.bookings.EXPECT().AvailableCount(mock.Anything, "R1", day(10), day(12)).Return(1, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID: "u1",
		Selections: []domain.Selection{
			{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)},
			{RoomID: "R1", CheckIn: day(11), CheckOut: day(13)},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailability)
	assert.Contains(t, err.Error(), "room R1 has 1 of 2 requested")
}

func TestBookingService_Create_LockFailure(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.rooms.EXPECT().GetByIDs(mock.Anything, []string{"R1"}).Return(scenarioRooms(), nil)
	m.locker.EXPECT().Lock(mock.Anything, []string{"R1"}).Return(nil, context.DeadlineExceeded)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:     "u1",
		Selections: []domain.Selection{{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)}},
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, m := newBookingSvc(t)

	b := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.BookingStatusCancelled, (*string)(nil)).
		Return(&domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled}, nil)

	res, err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, res.Status)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", UserID: "someone-else", Status: domain.BookingStatusPending}, nil)

	_, err := svc.Cancel(context.Background(), "b1", "u1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_TerminalStates(t *testing.T) {
	for _, st := range []domain.BookingStatus{
		domain.BookingStatusCancelled, domain.BookingStatusCompleted, domain.BookingStatusFailed,
	} {
		t.Run(string(st), func(t *testing.T) {
			svc, m := newBookingSvc(t)
			m.bookings.EXPECT().GetByID(mock.Anything, "b1").
				Return(&domain.Booking{ID: "b1", UserID: "u1", Status: st}, nil)

			_, err := svc.Cancel(context.Background(), "b1", "u1")

			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestBookingService_Approve(t *testing.T) {
	svc, m := newBookingSvc(t)

	confirmedAt := fixedNow
	m.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPending}, nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusConfirmed, (*string)(nil)).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed, ConfirmedAt: &confirmedAt}, nil)

	res, err := svc.Approve(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
	assert.NotNil(t, res.ConfirmedAt)
}

func TestBookingService_Approve_NotPending(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, nil)

	_, err := svc.Approve(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Approve_ConcurrentChange(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPending}, nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusConfirmed, (*string)(nil)).
		Return(nil, domain.ErrInvalidTransition)

	_, err := svc.Approve(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Reject(t *testing.T) {
	svc, m := newBookingSvc(t)

	reason := "no rooms for pets"
	m.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPending}, nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusCancelled, &reason).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled, RejectionReason: &reason}, nil)

	res, err := svc.Reject(context.Background(), "b1", "  no rooms for pets ")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, res.Status)
	assert.Equal(t, reason, *res.RejectionReason)
}

func TestBookingService_Reject_OnlyFromPending(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, nil)

	_, err := svc.Reject(context.Background(), "b1", "overbooked")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Reject_EmptyReason(t *testing.T) {
	svc, _ := newBookingSvc(t)

	_, err := svc.Reject(context.Background(), "b1", "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_FailExpired(t *testing.T) {
	svc, m := newBookingSvc(t)

	failed := []*domain.Booking{{ID: "b1", UserID: "u1", Status: domain.BookingStatusFailed}}
	m.bookings.EXPECT().
		FailExpired(mock.Anything, 6*time.Hour, "Payment session expired: no completed payment within 6h0m0s of approval").
		Return(failed, nil)

	res, err := svc.FailExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, failed, res)
}

func TestBookingService_FailExpired_WindowNotAppClock(t *testing.T) {
	svc, m := newBookingSvc(t)
	// часы приложения убежали вперёд, граница всё равно считается в базе
	svc.now = func() time.Time { return fixedNow.Add(3 * time.Hour) }

	m.bookings.EXPECT().FailExpired(mock.Anything, 6*time.Hour, mock.Anything).Return(nil, nil)

	res, err := svc.FailExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestBookingService_FailExpired_Error(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.bookings.EXPECT().FailExpired(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.FailExpired(context.Background())

	assert.Error(t, err)
}

func TestBookingService_CalculatePrice(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.rooms.EXPECT().GetByIDs(mock.Anything, []string{"R1", "R2"}).Return(scenarioRooms(), nil)

	q, err := svc.CalculatePrice(context.Background(), []domain.Selection{
		{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)},
		{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)},
		{RoomID: "R2", CheckIn: day(11), CheckOut: day(14)},
	})

	require.NoError(t, err)
	require.Len(t, q.Items, 2)
	assert.Equal(t, 2, q.Items[0].Quantity)
	assert.Equal(t, 360.0, q.Items[0].ItemTotal)
	assert.Equal(t, 510.0, q.Subtotal)
	assert.Equal(t, 51.0, q.Tax)
	assert.Equal(t, 561.0, q.Total)
}

func TestBookingService_CalculatePrice_UnknownRoom(t *testing.T) {
	svc, m := newBookingSvc(t)

	m.rooms.EXPECT().GetByIDs(mock.Anything, []string{"R9"}).Return(map[string]*domain.Room{}, nil)

	_, err := svc.CalculatePrice(context.Background(), []domain.Selection{
		{RoomID: "R9", CheckIn: day(10), CheckOut: day(12)},
	})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBuildDemands_OverlappingRangesCountTogether(t *testing.T) {
	demands := buildDemands([]domain.Selection{
		{RoomID: "R1", CheckIn: day(10), CheckOut: day(12)},
		{RoomID: "R1", CheckIn: day(11), CheckOut: day(13)},
		{RoomID: "R1", CheckIn: day(13), CheckOut: day(15)},
	})

	require.Len(t, demands, 3)
	assert.Equal(t, 2, demands[0].Quantity)
	assert.Equal(t, 2, demands[1].Quantity)
	assert.Equal(t, 1, demands[2].Quantity)
}
