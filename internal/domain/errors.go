package domain

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

var (
	ErrInsufficientAvailability = errors.New("not enough rooms available")
	ErrInvalidTransition        = errors.New("invalid booking status transition")
	ErrBookingNotPayable        = errors.New("booking must be approved before payment")
	ErrUnderage                 = errors.New("guest is under the minimum age")
	ErrPaymentNotPending        = errors.New("payment is not pending")
	ErrPaymentNotCompleted      = errors.New("only completed payments can be refunded")
	ErrPendingPaymentExists     = errors.New("a pending payment already exists for this booking")
	ErrPaymentMethodMismatch    = errors.New("payment method does not match this operation")
)

var (
	ErrProviderNotConfigured = errors.New("payment provider is not configured")
	ErrProviderUnavailable   = errors.New("payment provider is unavailable")
	ErrProviderRejected      = errors.New("payment provider rejected the request")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
)

var (
	ErrValidation = errors.New("validation error")
)
