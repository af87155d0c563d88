package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/stpnv0/HotelBooker/internal/pricing"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingOptions struct {
	TaxRate     float64
	MinGuestAge int
	// PaymentWindow - сколько подтверждённая бронь ждёт оплату до перевода в failed.
	PaymentWindow time.Duration
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	quoteRooms  ports.RoomRepo
	locker      ports.RoomLocker
	notifier    ports.Notifier
	opts        BookingOptions
	logger      logger.Logger
	now         func() time.Time
}

// NewBookingService: quoteRooms обслуживает публичный расчёт цены и может
// отдавать закэшированные номера, бронь всегда считается по roomRepo.
func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	quoteRooms ports.RoomRepo,
	locker ports.RoomLocker,
	notifier ports.Notifier,
	opts BookingOptions,
	logger logger.Logger,
) *BookingService {
	if quoteRooms == nil {
		quoteRooms = roomRepo
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		quoteRooms:  quoteRooms,
		locker:      locker,
		notifier:    notifier,
		opts:        opts,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *BookingService) CalculatePrice(ctx context.Context, selections []domain.Selection) (*domain.PriceQuote, error) {
	if len(selections) == 0 {
		return nil, fmt.Errorf("%w: at least one room must be selected", domain.ErrValidation)
	}

	rooms, err := s.quoteRooms.GetByIDs(ctx, roomIDs(selections))
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	return pricing.Quote(rooms, selections, s.opts.TaxRate)
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if len(input.Selections) == 0 {
		return nil, fmt.Errorf("%w: at least one room must be selected", domain.ErrValidation)
	}

	now := s.now()
	if input.GuestDateOfBirth != nil && domain.AgeOn(*input.GuestDateOfBirth, now) < s.opts.MinGuestAge {
		return nil, fmt.Errorf("%w: guest must be at least %d years old", domain.ErrUnderage, s.opts.MinGuestAge)
	}

	for _, sel := range input.Selections {
		if !sel.CheckOut.After(sel.CheckIn) {
			return nil, fmt.Errorf("%w: check-out must be after check-in for room %s", domain.ErrValidation, sel.RoomID)
		}
	}

	ids := roomIDs(input.Selections)
	rooms, err := s.roomRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	for _, id := range ids {
		if _, ok := rooms[id]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, id)
		}
	}

	demands := buildDemands(input.Selections)

	// проверка и вставка под одной блокировкой номеров
	unlock, err := s.locker.Lock(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lock rooms: %w", err)
	}
	defer unlock()

	for _, d := range demands {
		available, err := s.bookingRepo.AvailableCount(ctx, d.RoomID, d.CheckIn, d.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}
		if available < d.Quantity {
			metrics.RecordAvailabilityConflict()
			return nil, fmt.Errorf("%w: room %s has %d of %d requested",
				domain.ErrInsufficientAvailability, d.RoomID, available, d.Quantity)
		}
	}

	bookingID := uuid.New().String()
	items := make([]domain.BookingItem, 0, len(input.Selections))
	prices := make([]float64, 0, len(input.Selections))
	for _, sel := range input.Selections {
		room := rooms[sel.RoomID]
		price := pricing.Round2(pricing.ItemTotal(room, sel.CheckIn, sel.CheckOut))
		roomID := room.ID

		items = append(items, domain.BookingItem{
			ID:             uuid.New().String(),
			BookingID:      bookingID,
			RoomID:         &roomID,
			RoomName:       room.Name,
			HotelName:      room.HotelName,
			CheckIn:        sel.CheckIn,
			CheckOut:       sel.CheckOut,
			PriceAtBooking: price,
		})
		prices = append(prices, price)
	}

	booking := &domain.Booking{
		ID:               bookingID,
		UserID:           input.UserID,
		TotalPrice:       pricing.BookingTotal(prices, s.opts.TaxRate),
		Status:           domain.BookingStatusPending,
		GuestDateOfBirth: input.GuestDateOfBirth,
		GuestPhone:       input.GuestPhone,
		CreatedAt:        now,
		UpdatedAt:        now,
		Items:            items,
	}

	if err = s.bookingRepo.Create(ctx, booking, demands); err != nil {
		if errors.Is(err, domain.ErrInsufficientAvailability) {
			metrics.RecordAvailabilityConflict()
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
		logger.Int("items", len(items)),
		logger.Any("total_price", booking.TotalPrice),
	)
	metrics.RecordBookingTransition(string(booking.Status))
	s.notify(ctx, domain.BookingNotification(domain.NotifyBookingCreated, booking))

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// GetForUser возвращает бронь только владельцу. Чужая бронь неотличима
// от несуществующей.
func (s *BookingService) GetForUser(ctx context.Context, id, userID string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.UserID != userID {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

func (s *BookingService) GetAdmin(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *BookingService) ListAdmin(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, filter)
}

func (s *BookingService) Cancel(ctx context.Context, id, userID string) (*domain.Booking, error) {
	b, err := s.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, b, domain.BookingEventCancel, nil, domain.NotifyBookingCancelled)
}

func (s *BookingService) Approve(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return s.transition(ctx, b, domain.BookingEventApprove, nil, domain.NotifyBookingApproved)
}

func (s *BookingService) Reject(ctx context.Context, id, reason string) (*domain.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return s.transition(ctx, b, domain.BookingEventReject, &reason, domain.NotifyBookingRejected)
}

// FailExpired переводит в failed подтверждённые брони без завершённой
// оплаты дольше PaymentWindow. Вызывается планировщиком.
func (s *BookingService) FailExpired(ctx context.Context) ([]*domain.Booking, error) {
	reason := fmt.Sprintf("Payment session expired: no completed payment within %s of approval", s.opts.PaymentWindow)

	failed, err := s.bookingRepo.FailExpired(ctx, s.opts.PaymentWindow, reason)
	if err != nil {
		return nil, fmt.Errorf("fail expired: %w", err)
	}

	if len(failed) > 0 {
		s.logger.Info("expired bookings failed",
			logger.Int("count", len(failed)),
		)
		metrics.RecordExpired(len(failed))

		for _, b := range failed {
			metrics.RecordBookingTransition(string(b.Status))
			s.notify(ctx, domain.BookingNotification(domain.NotifyBookingExpired, b))
		}
	}

	return failed, nil
}

func (s *BookingService) transition(
	ctx context.Context,
	b *domain.Booking,
	ev domain.BookingEvent,
	reason *string,
	kind domain.NotificationKind,
) (*domain.Booking, error) {
	to, err := domain.NextBookingStatus(b.Status, ev)
	if err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, b.ID, b.Status, to, reason)
	if err != nil {
		return nil, fmt.Errorf("%s booking: %w", ev, err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("from", string(b.Status)),
		logger.String("to", string(to)),
	)
	metrics.RecordBookingTransition(string(to))
	s.notify(ctx, domain.BookingNotification(kind, updated))

	return updated, nil
}

func (s *BookingService) notify(ctx context.Context, n domain.Notification) {
	go s.notifier.Notify(context.WithoutCancel(ctx), n)
}

func roomIDs(selections []domain.Selection) []string {
	seen := make(map[string]struct{}, len(selections))
	ids := make([]string, 0, len(selections))
	for _, sel := range selections {
		if _, ok := seen[sel.RoomID]; ok {
			continue
		}
		seen[sel.RoomID] = struct{}{}
		ids = append(ids, sel.RoomID)
	}
	return ids
}

// buildDemands сводит выбор к проверкам наличия: по одной на каждый
// номер с датами. Quantity учитывает все единицы того же номера из этой
// брони, чьи даты пересекаются с проверяемыми.
func buildDemands(selections []domain.Selection) []domain.RoomDemand {
	var demands []domain.RoomDemand
	seen := make(map[string]struct{}, len(selections))

	for _, sel := range selections {
		key := sel.RoomID + "|" + sel.CheckIn.Format(time.DateOnly) + "|" + sel.CheckOut.Format(time.DateOnly)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		d := domain.RoomDemand{RoomID: sel.RoomID, CheckIn: sel.CheckIn, CheckOut: sel.CheckOut}
		for _, other := range selections {
			if other.RoomID == sel.RoomID && domain.Overlaps(sel.CheckIn, sel.CheckOut, other.CheckIn, other.CheckOut) {
				d.Quantity++
			}
		}
		demands = append(demands, d)
	}

	return demands
}
