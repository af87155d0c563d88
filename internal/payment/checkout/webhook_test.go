package checkout

import (
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var webhookNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

const completedEvent = `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1","status":"complete","payment_status":"paid","payment_id":"pi_1","card":{"brand":"visa","last4":"4242"}}}}`

func TestVerifySignature(t *testing.T) {
	payload := []byte(completedEvent)
	valid := Sign("secret", payload, webhookNow)

	tests := []struct {
		name    string
		secret  string
		payload []byte
		header  string
		wantErr error
	}{
		{name: "valid", secret: "secret", payload: payload, header: valid},
		{name: "tampered payload", secret: "secret", payload: []byte(completedEvent + " "), header: valid, wantErr: domain.ErrInvalidSignature},
		{name: "wrong secret", secret: "other", payload: payload, header: valid, wantErr: domain.ErrInvalidSignature},
		{name: "empty header", secret: "secret", payload: payload, header: "", wantErr: domain.ErrInvalidSignature},
		{name: "no v1", secret: "secret", payload: payload, header: "t=1800000000", wantErr: domain.ErrInvalidSignature},
		{name: "bad timestamp", secret: "secret", payload: payload, header: "t=abc,v1=00", wantErr: domain.ErrInvalidSignature},
		{name: "stale", secret: "secret", payload: payload, header: Sign("secret", payload, webhookNow.Add(-6*time.Minute)), wantErr: domain.ErrInvalidSignature},
		{name: "no secret fails closed", secret: "", payload: payload, header: valid, wantErr: domain.ErrProviderNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignature(tt.secret, tt.payload, tt.header, webhookNow, DefaultTolerance)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifySignature_AnyV1Matches(t *testing.T) {
	payload := []byte(completedEvent)
	good := Sign("secret", payload, webhookNow)
	header := "t=" + good[2:12] + ",v1=deadbeef," + good[13:]

	assert.NoError(t, VerifySignature("secret", payload, header, webhookNow, DefaultTolerance))
}

func TestRail_ParseEvent(t *testing.T) {
	rail := NewRail(NewClient(Config{WebhookSecret: "whsec"}, nil), "usd")
	rail.now = func() time.Time { return webhookNow }
	payload := []byte(completedEvent)

	ev, err := rail.ParseEvent(payload, Sign("whsec", payload, webhookNow))

	require.NoError(t, err)
	assert.Equal(t, domain.ProviderEventCompleted, ev.Kind)
	assert.Equal(t, "cs_1", ev.Session.Reference)
	assert.True(t, ev.Session.Paid)
	require.NotNil(t, ev.Session.ExternalPaymentID)
	assert.Equal(t, "pi_1", *ev.Session.ExternalPaymentID)
	require.NotNil(t, ev.Session.CardLast4)
	assert.Equal(t, "4242", *ev.Session.CardLast4)
}

func TestRail_ParseEvent_UnknownTypeIgnored(t *testing.T) {
	rail := NewRail(NewClient(Config{WebhookSecret: "whsec"}, nil), "usd")
	rail.now = func() time.Time { return webhookNow }
	payload := []byte(`{"id":"evt_2","type":"charge.updated","data":{"object":{"id":"cs_1"}}}`)

	ev, err := rail.ParseEvent(payload, Sign("whsec", payload, webhookNow))

	require.NoError(t, err)
	assert.Equal(t, domain.ProviderEventIgnored, ev.Kind)
}

func TestRail_ParseEvent_BadSignature(t *testing.T) {
	rail := NewRail(NewClient(Config{WebhookSecret: "whsec"}, nil), "usd")
	rail.now = func() time.Time { return webhookNow }
	payload := []byte(completedEvent)

	_, err := rail.ParseEvent(payload, Sign("wrong", payload, webhookNow))

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}
