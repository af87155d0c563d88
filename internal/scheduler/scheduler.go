package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	FailExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler периодически переводит в failed подтверждённые брони, которые
// не дождались оплаты. Платежи не трогает.
type Scheduler struct {
	bookingService bookingExpirer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

// Start sweeps once immediately to catch up after downtime, then on every tick.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry sweeper started",
		logger.Duration("interval", s.interval),
	)

	s.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *Scheduler) Sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	failed, err := s.bookingService.FailExpired(ctx)
	if err != nil {
		s.logger.Error("failed to expire unpaid bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range failed {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
		)
	}
}
