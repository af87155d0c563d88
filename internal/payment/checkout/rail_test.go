package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRail_Initiate_UsesConfiguredCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params CreateSessionParams
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&params)) {
			return
		}
		assert.Equal(t, "eur", params.Currency)
		assert.Equal(t, int64(56100), params.Amount)
		assert.Equal(t, "p1", params.ClientReferenceID)

		_ = json.NewEncoder(w).Encode(Session{ID: "cs_1", URL: "https://pay.example/cs_1", Status: SessionStatusOpen})
	}))
	defer srv.Close()

	rail := NewRail(newTestClient(t, srv.URL), "EUR")

	s, err := rail.Initiate(context.Background(), &domain.Payment{ID: "p1", BookingID: "b1", UserID: "u1", Amount: 561},
		domain.InitiateOptions{SuccessURL: "https://app/ok", CancelURL: "https://app/cancel"})

	require.NoError(t, err)
	assert.Equal(t, "cs_1", s.Reference)
	assert.Equal(t, domain.SessionOpen, s.State)
}

func TestToRailSession_State(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		payStatus string
		wantState domain.SessionState
		wantPaid  bool
	}{
		{name: "open unpaid", status: SessionStatusOpen, payStatus: "unpaid", wantState: domain.SessionOpen},
		{name: "complete awaiting funds", status: SessionStatusComplete, payStatus: "unpaid", wantState: domain.SessionComplete},
		{name: "complete paid", status: SessionStatusComplete, payStatus: PaymentStatusPaid, wantState: domain.SessionComplete, wantPaid: true},
		{name: "expired", status: SessionStatusExpired, payStatus: "unpaid", wantState: domain.SessionExpired},
		{name: "unknown status", status: "processing", payStatus: "unpaid", wantState: domain.SessionOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := toRailSession(&Session{ID: "cs_1", Status: tt.status, PaymentStatus: tt.payStatus})

			assert.Equal(t, tt.wantState, rs.State)
			assert.Equal(t, tt.wantPaid, rs.Paid)
		})
	}
}
