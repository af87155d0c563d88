package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c := NewClient(Config{
		BaseURL:       baseURL,
		APIKey:        "sk_test",
		WebhookSecret: "whsec_test",
		Timeout:       2 * time.Second,
	}, newTestLogger(t))
	c.retry = retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}
	return c
}

func TestClient_CreateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "pay-1", r.Header.Get("Idempotency-Key"))

		var params CreateSessionParams
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&params)) {
			return
		}
		assert.Equal(t, int64(56100), params.Amount)
		assert.Equal(t, "usd", params.Currency)
		assert.Equal(t, "b-1", params.Metadata["booking_id"])

		_ = json.NewEncoder(w).Encode(Session{
			ID:        "cs_1",
			URL:       "https://pay.example/cs_1",
			Status:    SessionStatusOpen,
			ExpiresAt: 1800000000,
		})
	}))
	defer srv.Close()

	s, err := newTestClient(t, srv.URL).CreateSession(context.Background(), CreateSessionParams{
		Amount:            56100,
		Currency:          "usd",
		ClientReferenceID: "pay-1",
		Metadata:          map[string]string{"booking_id": "b-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_1", s.ID)
	assert.Equal(t, SessionStatusOpen, s.Status)
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{}, newTestLogger(t))

	_, err := c.GetSession(context.Background(), "cs_1")

	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
	assert.False(t, c.Configured())
}

func TestClient_GetSession_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(Session{ID: "cs_1", Status: SessionStatusComplete, PaymentStatus: PaymentStatusPaid})
	}))
	defer srv.Close()

	s, err := newTestClient(t, srv.URL).GetSession(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, s.PaymentStatus)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GetSession_GivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetSession(context.Background(), "cs_1")

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GetSession_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"no such session"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetSession(context.Background(), "cs_missing")

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	assert.Contains(t, err.Error(), "no such session")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RejectedRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"amount too small"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).CreateSession(context.Background(), CreateSessionParams{Amount: 1})

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusBadRequest, perr.StatusCode)
	assert.Equal(t, "amount too small", perr.Message)
	assert.NotErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	for i := 0; i < 5; i++ {
		err := c.ExpireSession(context.Background(), "cs_1")
		require.ErrorIs(t, err, domain.ErrProviderUnavailable)
	}

	err := c.ExpireSession(context.Background(), "cs_1")

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(5), calls.Load())
}

func TestClient_Refund(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/refunds", r.URL.Path)
		assert.Equal(t, "refund-pi_1", r.Header.Get("Idempotency-Key"))
		_, _ = w.Write([]byte(`{"id":"re_1","status":"succeeded"}`))
	}))
	defer srv.Close()

	r, err := newTestClient(t, srv.URL).Refund(context.Background(), RefundParams{PaymentID: "pi_1", Amount: 100})

	require.NoError(t, err)
	assert.Equal(t, "re_1", r.ID)
}
