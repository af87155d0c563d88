// Package checkout talks to the hosted card checkout provider over its JSON
// API and verifies the webhooks it sends back.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	SessionStatusOpen     = "open"
	SessionStatusComplete = "complete"
	SessionStatusExpired  = "expired"

	PaymentStatusPaid = "paid"
)

type Config struct {
	BaseURL       string
	APIKey        string
	WebhookSecret string
	Timeout       time.Duration
}

type Card struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

type Session struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	PaymentID     string            `json:"payment_id,omitempty"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	ExpiresAt     int64             `json:"expires_at"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Card          *Card             `json:"card,omitempty"`
}

type CreateSessionParams struct {
	Amount            int64             `json:"amount"`
	Currency          string            `json:"currency"`
	Description       string            `json:"description,omitempty"`
	SuccessURL        string            `json:"success_url"`
	CancelURL         string            `json:"cancel_url"`
	ClientReferenceID string            `json:"client_reference_id"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

type RefundParams struct {
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
}

type Refund struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	baseURL       string
	apiKey        string
	webhookSecret string
	httpClient    *http.Client
	breaker       *Breaker
	retry         retry.Strategy
	logger        logger.Logger
}

func NewClient(cfg Config, log logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		webhookSecret: cfg.WebhookSecret,
		httpClient:    &http.Client{Timeout: timeout},
		breaker:       NewBreaker(5, 30*time.Second),
		retry: retry.Strategy{
			Attempts: 3,
			Delay:    200 * time.Millisecond,
			Backoff:  2,
		},
		logger: log,
	}
}

// Configured reports whether outbound calls can be made at all.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

func (c *Client) CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error) {
	var s Session
	// client_reference_id is our payment id, the provider dedupes on it
	err := c.call(ctx, http.MethodPost, "/v1/checkout/sessions", params, &s, params.ClientReferenceID)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &s, nil
}

func (c *Client) GetSession(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := c.withRetry(ctx, func() error {
		return c.call(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(id), nil, &s, "")
	})
	if err != nil {
		return nil, fmt.Errorf("get checkout session %s: %w", id, err)
	}
	return &s, nil
}

func (c *Client) ExpireSession(ctx context.Context, id string) error {
	err := c.call(ctx, http.MethodPost, "/v1/checkout/sessions/"+url.PathEscape(id)+"/expire", nil, nil, "")
	if err != nil {
		return fmt.Errorf("expire checkout session %s: %w", id, err)
	}
	return nil
}

func (c *Client) Refund(ctx context.Context, params RefundParams) (*Refund, error) {
	var r Refund
	err := c.call(ctx, http.MethodPost, "/v1/refunds", params, &r, "refund-"+params.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("refund %s: %w", params.PaymentID, err)
	}
	return &r, nil
}

func (c *Client) call(ctx context.Context, method, path string, body, out any, idempotencyKey string) error {
	if !c.Configured() {
		return domain.ErrProviderNotConfigured
	}

	err := c.breaker.Execute(func() error {
		return c.do(ctx, method, path, body, out, idempotencyKey)
	}, isProviderFailure)
	if errors.Is(err, ErrCircuitOpen) {
		return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, idempotencyKey string) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrProviderUnavailable, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, resp.StatusCode, errorMessage(raw))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, errorMessage(raw))
	case resp.StatusCode >= http.StatusBadRequest:
		return &ProviderError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrProviderUnavailable, err)
	}
	return nil
}

// withRetry повторяет только идемпотентные чтения и только при сбоях провайдера.
// Остальные ошибки не ретраятся: DoContext получает nil, ошибка отдаётся после.
func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	var (
		permanent error
		attempt   int
	)
	err := retry.DoContext(ctx, c.retry, func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if !isProviderFailure(err) || errors.Is(err, ErrCircuitOpen) {
			permanent = err
			return nil
		}
		if c.logger != nil && attempt < c.retry.Attempts {
			c.logger.Warn("checkout provider call failed, retrying",
				logger.Int("attempt", attempt),
				logger.String("error", err.Error()),
			)
		}
		return err
	})
	if permanent != nil {
		return permanent
	}
	if err == nil && attempt == 0 {
		// нулевое число попыток в стратегии: хотя бы один вызов
		return fn()
	}
	return err
}

// ProviderError is a request the provider understood and refused.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("checkout provider rejected request (status %d): %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return domain.ErrProviderRejected
}

func isProviderFailure(err error) bool {
	return errors.Is(err, domain.ErrProviderUnavailable)
}

func errorMessage(raw []byte) string {
	var e apiError
	if err := json.Unmarshal(raw, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
