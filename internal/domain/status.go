package domain

import "fmt"

type BookingEvent string

const (
	BookingEventApprove BookingEvent = "approve"
	BookingEventReject  BookingEvent = "reject"
	BookingEventCancel  BookingEvent = "cancel"
	BookingEventPay     BookingEvent = "pay"
	BookingEventExpire  BookingEvent = "expire"
	BookingEventRefund  BookingEvent = "refund"
)

var bookingTransitions = map[BookingStatus]map[BookingEvent]BookingStatus{
	BookingStatusPending: {
		BookingEventApprove: BookingStatusConfirmed,
		BookingEventReject:  BookingStatusCancelled,
		BookingEventCancel:  BookingStatusCancelled,
	},
	BookingStatusConfirmed: {
		BookingEventCancel: BookingStatusCancelled,
		BookingEventPay:    BookingStatusCompleted,
		BookingEventExpire: BookingStatusFailed,
	},
	// refund of the completed payment is the only way out of completed
	BookingStatusCompleted: {
		BookingEventRefund: BookingStatusCancelled,
	},
	BookingStatusCancelled: {},
	BookingStatusFailed:    {},
}

// NextBookingStatus returns the status reached by applying ev to from.
func NextBookingStatus(from BookingStatus, ev BookingEvent) (BookingStatus, error) {
	to, ok := bookingTransitions[from][ev]
	if !ok {
		return "", fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidTransition, ev, from)
	}
	return to, nil
}

// SourcesFor lists the statuses from which ev is allowed.
func SourcesFor(ev BookingEvent) []BookingStatus {
	var res []BookingStatus
	for _, from := range []BookingStatus{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled, BookingStatusFailed,
	} {
		if _, ok := bookingTransitions[from][ev]; ok {
			res = append(res, from)
		}
	}
	return res
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	// pending -> refunded: деньги пришли, но бронь уже не ждёт оплаты
	PaymentStatusPending:    {PaymentStatusProcessing, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded},
	PaymentStatusProcessing: {PaymentStatusCompleted, PaymentStatusFailed},
	PaymentStatusCompleted:  {PaymentStatusRefunded},
	// failed -> refunded: провайдер списал деньги уже после закрытия платежа
	PaymentStatusFailed:     {PaymentStatusRefunded},
	PaymentStatusRefunded:   {},
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, s := range paymentTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
