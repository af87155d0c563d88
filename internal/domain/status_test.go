package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allBookingStatuses = []BookingStatus{
	BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
	BookingStatusCancelled, BookingStatusFailed,
}

var allBookingEvents = []BookingEvent{
	BookingEventApprove, BookingEventReject, BookingEventCancel,
	BookingEventPay, BookingEventExpire, BookingEventRefund,
}

func TestNextBookingStatus_AllowedTransitions(t *testing.T) {
	cases := []struct {
		from BookingStatus
		ev   BookingEvent
		to   BookingStatus
	}{
		{BookingStatusPending, BookingEventApprove, BookingStatusConfirmed},
		{BookingStatusPending, BookingEventReject, BookingStatusCancelled},
		{BookingStatusPending, BookingEventCancel, BookingStatusCancelled},
		{BookingStatusConfirmed, BookingEventCancel, BookingStatusCancelled},
		{BookingStatusConfirmed, BookingEventPay, BookingStatusCompleted},
		{BookingStatusConfirmed, BookingEventExpire, BookingStatusFailed},
		{BookingStatusCompleted, BookingEventRefund, BookingStatusCancelled},
	}

	for _, tc := range cases {
		to, err := NextBookingStatus(tc.from, tc.ev)
		require.NoError(t, err, "%s + %s", tc.from, tc.ev)
		assert.Equal(t, tc.to, to)
	}
}

func TestNextBookingStatus_Closure(t *testing.T) {
	allowed := 0
	for _, from := range allBookingStatuses {
		for _, ev := range allBookingEvents {
			_, err := NextBookingStatus(from, ev)
			if err == nil {
				allowed++
				continue
			}
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s + %s", from, ev)
		}
	}
	assert.Equal(t, 7, allowed)
}

func TestNextBookingStatus_TerminalStatesRejectLifecycleEvents(t *testing.T) {
	for _, from := range []BookingStatus{BookingStatusCancelled, BookingStatusFailed} {
		for _, ev := range allBookingEvents {
			_, err := NextBookingStatus(from, ev)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}

	for _, ev := range []BookingEvent{BookingEventApprove, BookingEventReject, BookingEventCancel, BookingEventPay, BookingEventExpire} {
		_, err := NextBookingStatus(BookingStatusCompleted, ev)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestSourcesFor(t *testing.T) {
	assert.Equal(t, []BookingStatus{BookingStatusPending, BookingStatusConfirmed}, SourcesFor(BookingEventCancel))
	assert.Equal(t, []BookingStatus{BookingStatusPending}, SourcesFor(BookingEventApprove))
	assert.Equal(t, []BookingStatus{BookingStatusCompleted}, SourcesFor(BookingEventRefund))
}

func TestCanTransitionPayment(t *testing.T) {
	assert.True(t, CanTransitionPayment(PaymentStatusPending, PaymentStatusCompleted))
	assert.True(t, CanTransitionPayment(PaymentStatusPending, PaymentStatusFailed))
	assert.True(t, CanTransitionPayment(PaymentStatusCompleted, PaymentStatusRefunded))
	assert.False(t, CanTransitionPayment(PaymentStatusFailed, PaymentStatusCompleted))
	assert.False(t, CanTransitionPayment(PaymentStatusRefunded, PaymentStatusCompleted))
	assert.True(t, CanTransitionPayment(PaymentStatusPending, PaymentStatusRefunded))
	assert.True(t, CanTransitionPayment(PaymentStatusFailed, PaymentStatusRefunded))
	assert.False(t, CanTransitionPayment(PaymentStatusRefunded, PaymentStatusFailed))
}
