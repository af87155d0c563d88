package ports

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingRepo interface {
	// Create сохраняет бронь с позициями одной транзакцией, повторно проверяя
	// наличие номеров под блокировкой строк rooms.
	Create(ctx context.Context, b *domain.Booking, demands []domain.RoomDemand) error
	AvailableCount(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetDetails(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, reason *string) (*domain.Booking, error)
	FailExpired(ctx context.Context, window time.Duration, reason string) ([]*domain.Booking, error)
}
