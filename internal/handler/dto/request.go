package dto

import (
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/pricing"
)

// SelectionRequest выбирает Quantity единиц номера на одни даты.
type SelectionRequest struct {
	RoomID   string `json:"room_id"   binding:"required,uuid"`
	CheckIn  string `json:"check_in"  binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Quantity int    `json:"quantity"  binding:"omitempty,min=1,max=20"`
}

type QuoteRequest struct {
	Rooms []SelectionRequest `json:"rooms" binding:"required,min=1,dive"`
}

type CreateBookingRequest struct {
	Rooms            []SelectionRequest `json:"rooms"               binding:"required,min=1,dive"`
	GuestDateOfBirth *string            `json:"guest_date_of_birth"`
	GuestPhone       *string            `json:"guest_phone"         binding:"omitempty,max=32"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type QRPaymentRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
}

type CheckoutRequest struct {
	BookingID  string `json:"booking_id"  binding:"required,uuid"`
	SuccessURL string `json:"success_url" binding:"omitempty,url"`
	CancelURL  string `json:"cancel_url"  binding:"omitempty,url"`
}

// ToSelections expands each request line into Quantity unit selections.
func ToSelections(reqs []SelectionRequest) ([]domain.Selection, error) {
	var res []domain.Selection
	for _, r := range reqs {
		checkIn, err := ParseDate(r.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid check_in %q, expected %s", domain.ErrValidation, r.CheckIn, pricing.DateLayout)
		}
		checkOut, err := ParseDate(r.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid check_out %q, expected %s", domain.ErrValidation, r.CheckOut, pricing.DateLayout)
		}

		qty := r.Quantity
		if qty == 0 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			res = append(res, domain.Selection{RoomID: r.RoomID, CheckIn: checkIn, CheckOut: checkOut})
		}
	}
	return res, nil
}

func (r CreateBookingRequest) ToInput(userID string) (domain.CreateBookingInput, error) {
	selections, err := ToSelections(r.Rooms)
	if err != nil {
		return domain.CreateBookingInput{}, err
	}

	input := domain.CreateBookingInput{
		UserID:     userID,
		Selections: selections,
		GuestPhone: r.GuestPhone,
	}
	if r.GuestDateOfBirth != nil && *r.GuestDateOfBirth != "" {
		dob, err := ParseDate(*r.GuestDateOfBirth)
		if err != nil {
			return domain.CreateBookingInput{}, fmt.Errorf("%w: invalid guest_date_of_birth, expected %s", domain.ErrValidation, pricing.DateLayout)
		}
		input.GuestDateOfBirth = &dob
	}
	return input, nil
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(pricing.DateLayout, s, time.UTC)
}
