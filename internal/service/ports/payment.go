package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Payment, error)
	FindPending(ctx context.Context, bookingID string, method domain.PaymentMethod) (*domain.Payment, error)
	LatestByBooking(ctx context.Context, bookingID string) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Payment, error)
	List(ctx context.Context, filter domain.PaymentFilter) ([]*domain.Payment, error)
	Complete(ctx context.Context, id string, c domain.PaymentCompletion) (*domain.CompletionResult, error)
	MarkFailed(ctx context.Context, id string, reason string) (*domain.Payment, error)
	Refund(ctx context.Context, id string) (*domain.Payment, *domain.Booking, error)
}

// PaymentRail - адаптер конкретного способа оплаты. Связь платежа с бронью
// живёт в сервисе, rail только разговаривает с провайдером.
type PaymentRail interface {
	Method() domain.PaymentMethod
	Initiate(ctx context.Context, p *domain.Payment, opts domain.InitiateOptions) (*domain.RailSession, error)
	Lookup(ctx context.Context, reference string) (*domain.RailSession, error)
	Cancel(ctx context.Context, reference string) error
	Refund(ctx context.Context, p *domain.Payment) error
}

// WebhookVerifier проверяет подпись входящего события провайдера и
// разбирает его. Неподписанные события отвергаются.
type WebhookVerifier interface {
	ParseEvent(payload []byte, signature string) (*domain.ProviderEvent, error)
}
