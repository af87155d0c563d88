package checkout

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

const (
	SignatureHeader  = "Checkout-Signature"
	DefaultTolerance = 5 * time.Minute

	EventSessionCompleted = "checkout.session.completed"
	EventSessionExpired   = "checkout.session.expired"
)

type Event struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object Session `json:"object"`
	} `json:"data"`
}

// Sign builds a signature header value for payload: t=<unix>,v1=<hex hmac>.
func Sign(secret string, payload []byte, ts time.Time) string {
	unix := ts.Unix()
	return fmt.Sprintf("t=%d,v1=%s", unix, computeSignature(secret, unix, payload))
}

// VerifySignature checks header against payload. Any v1 entry may match;
// timestamps further than tolerance from now are rejected.
func VerifySignature(secret string, payload []byte, header string, now time.Time, tolerance time.Duration) error {
	if secret == "" {
		return domain.ErrProviderNotConfigured
	}

	var (
		ts         int64
		haveTS     bool
		signatures []string
	)
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: bad timestamp", domain.ErrInvalidSignature)
			}
			ts, haveTS = parsed, true
		case "v1":
			signatures = append(signatures, v)
		}
	}
	if !haveTS || len(signatures) == 0 {
		return fmt.Errorf("%w: malformed header", domain.ErrInvalidSignature)
	}

	age := now.Sub(time.Unix(ts, 0))
	if age < 0 {
		age = -age
	}
	if tolerance > 0 && age > tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", domain.ErrInvalidSignature)
	}

	expected := []byte(computeSignature(secret, ts, payload))
	for _, sig := range signatures {
		if hmac.Equal(expected, []byte(sig)) {
			return nil
		}
	}
	return domain.ErrInvalidSignature
}

func computeSignature(secret string, ts int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseWebhook verifies and decodes an event. Without a webhook secret every
// event is refused.
func (c *Client) ParseWebhook(payload []byte, header string, now time.Time) (*Event, error) {
	if err := VerifySignature(c.webhookSecret, payload, header, now, DefaultTolerance); err != nil {
		return nil, err
	}

	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("%w: decode event: %v", domain.ErrValidation, err)
	}
	if ev.Type == "" || ev.Data.Object.ID == "" {
		return nil, fmt.Errorf("%w: event without type or session", domain.ErrValidation)
	}
	return &ev, nil
}
