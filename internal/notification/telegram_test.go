package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestFormatMessage(t *testing.T) {
	msg := FormatMessage(domain.Notification{
		Kind:      domain.NotifyBookingRejected,
		BookingID: "b1",
		Amount:    561,
		Status:    "cancelled",
		Reason:    "no rooms",
	})

	assert.Equal(t, "*Бронь отклонена*\n\nБронь: `b1`\nСумма: 561.00\nСтатус: cancelled\nПричина: no rooms", msg)
}

func TestFormatMessage_Payment(t *testing.T) {
	msg := FormatMessage(domain.Notification{
		Kind:      domain.NotifyPaymentCompleted,
		BookingID: "b1",
		PaymentID: "p1",
		Amount:    198,
		Status:    "completed",
	})

	assert.Contains(t, msg, "*Оплата получена*")
	assert.Contains(t, msg, "Платёж: `p1`")
	assert.NotContains(t, msg, "Причина")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.Notification{Kind: domain.NotifyBookingCreated, OccurredAt: time.Now()})
	})
}

func TestMulti_FansOut(t *testing.T) {
	first := mocks.NewMockNotifier(t)
	second := mocks.NewMockNotifier(t)
	n := domain.Notification{Kind: domain.NotifyBookingApproved, BookingID: "b1"}

	first.EXPECT().Notify(context.Background(), n).Return().Once()
	second.EXPECT().Notify(context.Background(), n).Return().Once()

	Multi{first, nil, second}.Notify(context.Background(), n)
}
