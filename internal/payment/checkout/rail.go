package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// Rail adapts Client to the payment service.
type Rail struct {
	client   *Client
	currency string
	now      func() time.Time
}

func NewRail(client *Client, currency string) *Rail {
	if currency == "" {
		currency = "usd"
	}
	return &Rail{
		client:   client,
		currency: strings.ToLower(currency),
		now:      time.Now,
	}
}

func (r *Rail) Method() domain.PaymentMethod {
	return domain.PaymentMethodCheckout
}

func (r *Rail) Initiate(ctx context.Context, p *domain.Payment, opts domain.InitiateOptions) (*domain.RailSession, error) {
	s, err := r.client.CreateSession(ctx, CreateSessionParams{
		Amount:            domain.MinorUnits(p.Amount),
		Currency:          r.currency,
		Description:       opts.Description,
		SuccessURL:        opts.SuccessURL,
		CancelURL:         opts.CancelURL,
		ClientReferenceID: p.ID,
		Metadata: map[string]string{
			"booking_id": p.BookingID,
			"payment_id": p.ID,
			"user_id":    p.UserID,
		},
	})
	if err != nil {
		return nil, err
	}
	return toRailSession(s), nil
}

func (r *Rail) Lookup(ctx context.Context, reference string) (*domain.RailSession, error) {
	s, err := r.client.GetSession(ctx, reference)
	if err != nil {
		return nil, err
	}
	return toRailSession(s), nil
}

func (r *Rail) Cancel(ctx context.Context, reference string) error {
	return r.client.ExpireSession(ctx, reference)
}

func (r *Rail) Refund(ctx context.Context, p *domain.Payment) error {
	if p.ExternalPaymentID == nil || *p.ExternalPaymentID == "" {
		return fmt.Errorf("%w: payment %s has no provider payment id", domain.ErrValidation, p.ID)
	}
	_, err := r.client.Refund(ctx, RefundParams{
		PaymentID: *p.ExternalPaymentID,
		Amount:    domain.MinorUnits(p.Amount),
	})
	return err
}

// ParseEvent implements ports.WebhookVerifier.
func (r *Rail) ParseEvent(payload []byte, signature string) (*domain.ProviderEvent, error) {
	ev, err := r.client.ParseWebhook(payload, signature, r.now())
	if err != nil {
		return nil, err
	}

	kind := domain.ProviderEventIgnored
	switch ev.Type {
	case EventSessionCompleted:
		kind = domain.ProviderEventCompleted
	case EventSessionExpired:
		kind = domain.ProviderEventExpired
	}

	return &domain.ProviderEvent{
		ID:      ev.ID,
		Type:    ev.Type,
		Kind:    kind,
		Session: *toRailSession(&ev.Data.Object),
	}, nil
}

func toRailSession(s *Session) *domain.RailSession {
	rs := &domain.RailSession{
		Reference: s.ID,
		URL:       s.URL,
		State:     sessionState(s.Status),
		Paid:      s.PaymentStatus == PaymentStatusPaid,
	}
	if s.ExpiresAt > 0 {
		rs.ExpiresAt = time.Unix(s.ExpiresAt, 0).UTC()
	}
	if s.PaymentID != "" {
		id := s.PaymentID
		rs.ExternalPaymentID = &id
	}
	if s.Card != nil {
		brand, last4 := s.Card.Brand, s.Card.Last4
		rs.CardBrand = &brand
		rs.CardLast4 = &last4
	}
	return rs
}

// sessionState: неизвестный статус считаем открытым, платёж при этом не закрывается.
func sessionState(status string) domain.SessionState {
	switch status {
	case SessionStatusComplete:
		return domain.SessionComplete
	case SessionStatusExpired:
		return domain.SessionExpired
	}
	return domain.SessionOpen
}
