package domain

import (
	"math"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodQR       PaymentMethod = "qr"
	PaymentMethodCheckout PaymentMethod = "checkout"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodQR || m == PaymentMethodCheckout
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

const (
	ReasonCancelledByUser   = "cancelled by user"
	ReasonSessionExpired    = "session expired"
	ReasonBookingNotPayable = "booking no longer awaiting payment, amount refunded"
	ReasonPaymentClosed     = "payment was closed before the money arrived, amount refunded"
)

type Payment struct {
	ID                string        `json:"id"`
	BookingID         string        `json:"booking_id"`
	UserID            string        `json:"user_id"`
	Amount            float64       `json:"amount"`
	Method            PaymentMethod `json:"payment_method"`
	Status            PaymentStatus `json:"status"`
	QRReference       *string       `json:"qr_reference,omitempty"`
	CardBrand         *string       `json:"card_brand,omitempty"`
	CardLast4         *string       `json:"card_last4,omitempty"`
	TransactionID     *string       `json:"transaction_id,omitempty"`
	ExternalSessionID *string       `json:"external_session_id,omitempty"`
	ExternalPaymentID *string       `json:"external_payment_id,omitempty"`
	FailureReason     *string       `json:"failure_reason,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

// PaymentCompletion carries what a rail learned when the payment settled.
type PaymentCompletion struct {
	TransactionID     string
	ExternalPaymentID *string
	CardBrand         *string
	CardLast4         *string
	CompletedAt       time.Time
}

type PaymentFilter struct {
	Status *PaymentStatus
	Method *PaymentMethod
}

// PaymentDetails is the admin view of a payment with its relation graph.
type PaymentDetails struct {
	Payment Payment      `json:"payment"`
	Booking *Booking     `json:"booking"`
	User    *UserSummary `json:"user,omitempty"`
}

// QRInitiation is returned to the client to render a QR code.
type QRInitiation struct {
	Payment   *Payment  `json:"payment"`
	Reference string    `json:"reference"`
	Payload   string    `json:"payload"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CheckoutSession struct {
	Payment   *Payment `json:"payment"`
	SessionID string   `json:"session_id"`
	URL       string   `json:"url"`
	Reused    bool     `json:"reused"`
}

type CheckoutVerification struct {
	Payment *Payment `json:"payment"`
	Paid    bool     `json:"paid"`
}

// MinorUnits converts a 2-decimal amount into integer cents.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// SessionState is the provider's view of a payable reference.
type SessionState string

const (
	// SessionOpen: the guest can still pay.
	SessionOpen SessionState = "open"
	// SessionComplete: the guest finished checkout, money may still be settling.
	SessionComplete SessionState = "complete"
	// SessionExpired: the provider closed the session, it can never be paid.
	SessionExpired SessionState = "expired"
)

// RailSession is what a payment rail reports about one payable reference.
// Only State == SessionExpired allows failing the local payment.
type RailSession struct {
	Reference         string
	URL               string
	Payload           string
	ExpiresAt         time.Time
	State             SessionState
	Paid              bool
	ExternalPaymentID *string
	CardBrand         *string
	CardLast4         *string
}

type InitiateOptions struct {
	SuccessURL  string
	CancelURL   string
	Description string
}

type CompletionOutcome int

const (
	// CompletionApplied: payment completed and booking moved to completed.
	CompletionApplied CompletionOutcome = iota
	// CompletionAlreadyDone: payment was completed earlier, nothing changed.
	CompletionAlreadyDone
	// CompletionBookingNotPayable: booking left confirmed before the money
	// arrived, payment is recorded refunded and must be reversed at the rail.
	CompletionBookingNotPayable
	// CompletionPaymentClosed: money arrived for a payment already failed,
	// it is recorded refunded and must be reversed at the rail.
	CompletionPaymentClosed
)

// NeedsReversal reports whether the rail must return the money.
func (o CompletionOutcome) NeedsReversal() bool {
	return o == CompletionBookingNotPayable || o == CompletionPaymentClosed
}

type CompletionResult struct {
	Payment *Payment
	Booking *Booking
	Outcome CompletionOutcome
}

type ProviderEventKind string

const (
	ProviderEventCompleted ProviderEventKind = "completed"
	ProviderEventExpired   ProviderEventKind = "expired"
	ProviderEventIgnored   ProviderEventKind = "ignored"
)

// ProviderEvent is a verified asynchronous notification from a rail.
type ProviderEvent struct {
	ID      string
	Type    string
	Kind    ProviderEventKind
	Session RailSession
}
