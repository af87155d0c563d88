package dto

import (
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/pricing"
)

type BookingItemResponse struct {
	ID             string  `json:"id"`
	RoomID         *string `json:"room_id"`
	RoomName       string  `json:"room_name"`
	HotelName      string  `json:"hotel_name"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	PriceAtBooking float64 `json:"price_at_booking"`
}

type BookingResponse struct {
	ID               string                `json:"id"`
	UserID           string                `json:"user_id"`
	Status           string                `json:"status"`
	TotalPrice       float64               `json:"total_price"`
	RejectionReason  *string               `json:"rejection_reason,omitempty"`
	GuestDateOfBirth *string               `json:"guest_date_of_birth,omitempty"`
	GuestPhone       *string               `json:"guest_phone,omitempty"`
	Items            []BookingItemResponse `json:"items"`
	User             *domain.UserSummary   `json:"user,omitempty"`
	CreatedAt        string                `json:"created_at"`
	UpdatedAt        string                `json:"updated_at"`
	ConfirmedAt      *string               `json:"confirmed_at,omitempty"`
}

type PaymentResponse struct {
	ID                string  `json:"id"`
	BookingID         string  `json:"booking_id"`
	UserID            string  `json:"user_id"`
	Amount            float64 `json:"amount"`
	PaymentMethod     string  `json:"payment_method"`
	Status            string  `json:"status"`
	QRReference       *string `json:"qr_reference,omitempty"`
	CardBrand         *string `json:"card_brand,omitempty"`
	CardLast4         *string `json:"card_last4,omitempty"`
	TransactionID     *string `json:"transaction_id,omitempty"`
	ExternalSessionID *string `json:"external_session_id,omitempty"`
	FailureReason     *string `json:"failure_reason,omitempty"`
	CreatedAt         string  `json:"created_at"`
	CompletedAt       *string `json:"completed_at,omitempty"`
}

type PaymentDetailsResponse struct {
	Payment PaymentResponse     `json:"payment"`
	Booking *BookingResponse    `json:"booking"`
	User    *domain.UserSummary `json:"user,omitempty"`
}

type QRPaymentResponse struct {
	Payment   PaymentResponse `json:"payment"`
	Reference string          `json:"reference"`
	Payload   string          `json:"qr_payload"`
	ExpiresAt string          `json:"expires_at"`
}

type CheckoutSessionResponse struct {
	Payment   PaymentResponse `json:"payment"`
	SessionID string          `json:"session_id"`
	URL       string          `json:"url"`
	Reused    bool            `json:"reused"`
}

type CheckoutVerificationResponse struct {
	Payment PaymentResponse `json:"payment"`
	Paid    bool            `json:"paid"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	items := make([]BookingItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BookingItemResponse{
			ID:             it.ID,
			RoomID:         it.RoomID,
			RoomName:       it.RoomName,
			HotelName:      it.HotelName,
			CheckIn:        it.CheckIn.Format(pricing.DateLayout),
			CheckOut:       it.CheckOut.Format(pricing.DateLayout),
			PriceAtBooking: it.PriceAtBooking,
		})
	}

	resp := BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		Status:          string(b.Status),
		TotalPrice:      b.TotalPrice,
		RejectionReason: b.RejectionReason,
		GuestPhone:      b.GuestPhone,
		Items:           items,
		User:            b.User,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
		ConfirmedAt:     formatTime(b.ConfirmedAt),
	}
	if b.GuestDateOfBirth != nil {
		dob := b.GuestDateOfBirth.Format(pricing.DateLayout)
		resp.GuestDateOfBirth = &dob
	}
	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		BookingID:         p.BookingID,
		UserID:            p.UserID,
		Amount:            p.Amount,
		PaymentMethod:     string(p.Method),
		Status:            string(p.Status),
		QRReference:       p.QRReference,
		CardBrand:         p.CardBrand,
		CardLast4:         p.CardLast4,
		TransactionID:     p.TransactionID,
		ExternalSessionID: p.ExternalSessionID,
		FailureReason:     p.FailureReason,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		CompletedAt:       formatTime(p.CompletedAt),
	}
}

func ToPaymentResponses(payments []*domain.Payment) []PaymentResponse {
	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, ToPaymentResponse(p))
	}
	return resp
}

func ToPaymentDetailsResponse(d *domain.PaymentDetails) PaymentDetailsResponse {
	resp := PaymentDetailsResponse{
		Payment: ToPaymentResponse(&d.Payment),
		User:    d.User,
	}
	if d.Booking != nil {
		b := ToBookingResponse(d.Booking)
		resp.Booking = &b
	}
	return resp
}

func ToQRPaymentResponse(q *domain.QRInitiation) QRPaymentResponse {
	return QRPaymentResponse{
		Payment:   ToPaymentResponse(q.Payment),
		Reference: q.Reference,
		Payload:   q.Payload,
		ExpiresAt: q.ExpiresAt.Format(time.RFC3339),
	}
}

func ToCheckoutSessionResponse(s *domain.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		Payment:   ToPaymentResponse(s.Payment),
		SessionID: s.SessionID,
		URL:       s.URL,
		Reused:    s.Reused,
	}
}

func ToCheckoutVerificationResponse(v *domain.CheckoutVerification) CheckoutVerificationResponse {
	return CheckoutVerificationResponse{
		Payment: ToPaymentResponse(v.Payment),
		Paid:    v.Paid,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
