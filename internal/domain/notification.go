package domain

import "time"

type NotificationKind string

const (
	NotifyBookingCreated   NotificationKind = "booking.created"
	NotifyBookingApproved  NotificationKind = "booking.approved"
	NotifyBookingRejected  NotificationKind = "booking.rejected"
	NotifyBookingCancelled NotificationKind = "booking.cancelled"
	NotifyBookingExpired   NotificationKind = "booking.expired"
	NotifyPaymentCompleted NotificationKind = "payment.completed"
	NotifyPaymentFailed    NotificationKind = "payment.failed"
	NotifyPaymentRefunded  NotificationKind = "payment.refunded"
)

// Notification describes a lifecycle change worth telling someone about.
type Notification struct {
	Kind       NotificationKind `json:"kind"`
	BookingID  string           `json:"booking_id"`
	UserID     string           `json:"user_id"`
	PaymentID  string           `json:"payment_id,omitempty"`
	Amount     float64          `json:"amount"`
	Status     string           `json:"status"`
	Reason     string           `json:"reason,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func BookingNotification(kind NotificationKind, b *Booking) Notification {
	n := Notification{
		Kind:       kind,
		BookingID:  b.ID,
		UserID:     b.UserID,
		Amount:     b.TotalPrice,
		Status:     string(b.Status),
		OccurredAt: time.Now().UTC(),
	}
	if b.RejectionReason != nil {
		n.Reason = *b.RejectionReason
	}
	return n
}

func PaymentNotification(kind NotificationKind, p *Payment) Notification {
	n := Notification{
		Kind:       kind,
		BookingID:  p.BookingID,
		UserID:     p.UserID,
		PaymentID:  p.ID,
		Amount:     p.Amount,
		Status:     string(p.Status),
		OccurredAt: time.Now().UTC(),
	}
	if p.FailureReason != nil {
		n.Reason = *p.FailureReason
	}
	return n
}
