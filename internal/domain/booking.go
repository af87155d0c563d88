package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusFailed    BookingStatus = "failed"
)

// HoldingStatuses are the statuses whose items consume room inventory.
var HoldingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}

// IsTerminal reports whether no lifecycle operation may move the booking further.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusFailed:
		return true
	}
	return false
}

type Booking struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	TotalPrice       float64       `json:"total_price"`
	Status           BookingStatus `json:"status"`
	RejectionReason  *string       `json:"rejection_reason,omitempty"`
	GuestDateOfBirth *time.Time    `json:"guest_date_of_birth,omitempty"`
	GuestPhone       *string       `json:"guest_phone,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	ConfirmedAt      *time.Time    `json:"confirmed_at,omitempty"`
	Items            []BookingItem `json:"items"`
	User             *UserSummary  `json:"user,omitempty"`
}

// BookingItem is one unit of one room type for one stay. RoomName and
// HotelName are snapshots taken at booking time.
type BookingItem struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"booking_id"`
	RoomID         *string   `json:"room_id"`
	RoomName       string    `json:"room_name"`
	HotelName      string    `json:"hotel_name"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	PriceAtBooking float64   `json:"price_at_booking"`
}

// Selection is one requested room unit for one date range.
type Selection struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
}

type CreateBookingInput struct {
	UserID           string
	Selections       []Selection
	GuestDateOfBirth *time.Time
	GuestPhone       *string
}

// RoomDemand is the number of units of a room requested for one date range.
type RoomDemand struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Quantity int
}

type BookingFilter struct {
	Status *BookingStatus
}

// Overlaps reports whether two half-open date ranges [aIn, aOut) and
// [bIn, bOut) intersect. Same-day checkout and checkin do not overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// AgeOn returns the age in whole years of someone born on dob at the date of now.
func AgeOn(dob, now time.Time) int {
	dob = dob.UTC()
	now = now.UTC()

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled, BookingStatusFailed:
		return true
	}
	return false
}
