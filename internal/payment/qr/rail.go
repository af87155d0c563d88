// Package qr implements the bank-transfer QR rail. There is no provider to
// call: the rail mints a reference and the payload the client renders, and
// the bank's confirmation arrives through a callback.
package qr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const referencePrefix = "QR-"

type Config struct {
	Merchant   string
	Currency   string
	DisplayTTL time.Duration
}

type Rail struct {
	cfg    Config
	logger logger.Logger
	now    func() time.Time
}

func NewRail(cfg Config, log logger.Logger) *Rail {
	if cfg.DisplayTTL <= 0 {
		cfg.DisplayTTL = 15 * time.Minute
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	return &Rail{
		cfg:    cfg,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *Rail) Method() domain.PaymentMethod {
	return domain.PaymentMethodQR
}

// Initiate: ExpiresAt только подсказка для экрана, платёж по ней не истекает.
func (r *Rail) Initiate(_ context.Context, p *domain.Payment, _ domain.InitiateOptions) (*domain.RailSession, error) {
	ref := NewReference()
	return &domain.RailSession{
		Reference: ref,
		Payload:   Payload(ref, p.Amount, r.cfg.Merchant, r.cfg.Currency),
		ExpiresAt: r.now().Add(r.cfg.DisplayTTL),
		State:     domain.SessionOpen,
	}, nil
}

func (r *Rail) Lookup(_ context.Context, reference string) (*domain.RailSession, error) {
	return &domain.RailSession{Reference: reference, State: domain.SessionOpen}, nil
}

func (r *Rail) Cancel(_ context.Context, _ string) error {
	return nil
}

// Refund is settled by the bank out of band; the rail only records intent.
func (r *Rail) Refund(_ context.Context, p *domain.Payment) error {
	r.logger.Info("qr refund requires manual bank reversal",
		logger.String("payment_id", p.ID),
		logger.String("booking_id", p.BookingID),
		logger.Any("amount", p.Amount),
	)
	return nil
}

func NewReference() string {
	return referencePrefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}

// Payload is the string encoded into the QR image.
func Payload(reference string, amount float64, merchant, currency string) string {
	return fmt.Sprintf("%s|%.2f|%s|%s", reference, amount, merchant, strings.ToUpper(currency))
}
