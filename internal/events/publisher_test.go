package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stpnv0/HotelBooker/internal/domain"
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

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestPublisher_EnvelopeAndKey(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "hotel-booker", 8, newTestLogger(t))
	p.Start(context.Background())

	occurred := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	p.Notify(context.Background(), domain.Notification{
		Kind:       domain.NotifyBookingApproved,
		BookingID:  "b1",
		UserID:     "u1",
		Amount:     561,
		Status:     "confirmed",
		OccurredAt: occurred,
	})
	p.Close()

	require.Len(t, w.msgs, 1)
	assert.True(t, w.closed)
	assert.Equal(t, "b1", string(w.msgs[0].Key))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &env))
	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, "booking.approved", env.EventType)
	assert.Equal(t, 1, env.EventVersion)
	assert.Equal(t, "hotel-booker", env.Producer)
	assert.Equal(t, "b1", env.CorrelationID)
	assert.True(t, occurred.Equal(env.OccurredAt))

	var n domain.Notification
	require.NoError(t, json.Unmarshal(env.Payload, &n))
	assert.Equal(t, "u1", n.UserID)
	assert.Equal(t, 561.0, n.Amount)
}

func TestPublisher_NotifyAfterCloseIsDropped(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "hotel-booker", 8, newTestLogger(t))
	p.Start(context.Background())
	p.Close()

	assert.NotPanics(t, func() {
		p.Notify(context.Background(), domain.Notification{Kind: domain.NotifyBookingCreated, BookingID: "b1"})
	})
	assert.Empty(t, w.msgs)
	p.Close()
}

func TestPublisher_FullBufferDrops(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "hotel-booker", 1, newTestLogger(t))

	// без Start никто не читает inbox
	p.Notify(context.Background(), domain.Notification{Kind: domain.NotifyBookingCreated, BookingID: "b1"})
	p.Notify(context.Background(), domain.Notification{Kind: domain.NotifyBookingCreated, BookingID: "b2"})

	p.Start(context.Background())
	p.Close()

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "b1", string(w.msgs[0].Key))
}

func TestPublisher_WriteErrorDoesNotStopLoop(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newPublisher(w, "hotel-booker", 8, newTestLogger(t))
	p.Start(context.Background())

	p.Notify(context.Background(), domain.Notification{Kind: domain.NotifyBookingCreated, BookingID: "b1"})
	p.Notify(context.Background(), domain.Notification{Kind: domain.NotifyBookingCreated, BookingID: "b2"})
	p.Close()

	assert.Len(t, w.msgs, 2)
}

func TestPublisher_StopsOnContextCancel(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "hotel-booker", 8, newTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	cancel()

	select {
	case <-p.done:
	case <-time.After(time.Second):
		t.Fatal("publisher did not stop")
	}
	assert.True(t, w.closed)
}
