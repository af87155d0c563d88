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
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PaymentService сводит оплату с бронированием. Все рельсы завершают платёж
// через один путь complete, который и переводит бронь в completed.
type PaymentService struct {
	paymentRepo ports.PaymentRepo
	bookingRepo ports.BookingRepo
	rails       map[domain.PaymentMethod]ports.PaymentRail
	webhooks    ports.WebhookVerifier
	notifier    ports.Notifier
	logger      logger.Logger
	now         func() time.Time
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	bookingRepo ports.BookingRepo,
	webhooks ports.WebhookVerifier,
	notifier ports.Notifier,
	logger logger.Logger,
	rails ...ports.PaymentRail,
) *PaymentService {
	byMethod := make(map[domain.PaymentMethod]ports.PaymentRail, len(rails))
	for _, r := range rails {
		byMethod[r.Method()] = r
	}
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		rails:       byMethod,
		webhooks:    webhooks,
		notifier:    notifier,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *PaymentService) InitializeQR(ctx context.Context, bookingID, userID string) (*domain.QRInitiation, error) {
	rail, err := s.rail(domain.PaymentMethodQR)
	if err != nil {
		return nil, err
	}

	b, err := s.payableBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	_, err = s.paymentRepo.FindPending(ctx, b.ID, domain.PaymentMethodQR)
	switch {
	case err == nil:
		return nil, domain.ErrPendingPaymentExists
	case !errors.Is(err, domain.ErrPaymentNotFound):
		return nil, fmt.Errorf("find pending payment: %w", err)
	}

	p := s.newPayment(b, domain.PaymentMethodQR)
	session, err := rail.Initiate(ctx, p, domain.InitiateOptions{})
	if err != nil {
		return nil, fmt.Errorf("initiate qr payment: %w", err)
	}
	p.QRReference = &session.Reference

	if err = s.paymentRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("qr payment initialized",
		logger.String("payment_id", p.ID),
		logger.String("booking_id", b.ID),
		logger.String("reference", session.Reference),
	)
	metrics.RecordPayment(string(p.Method), string(p.Status))

	return &domain.QRInitiation{
		Payment:   p,
		Reference: session.Reference,
		Payload:   session.Payload,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// ConfirmQR is the bank callback for a scanned QR payment.
func (s *PaymentService) ConfirmQR(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p.Method != domain.PaymentMethodQR {
		return nil, domain.ErrPaymentMethodMismatch
	}
	if p.Status != domain.PaymentStatusPending {
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotPending, p.Status)
	}

	res, err := s.complete(ctx, p, domain.PaymentCompletion{
		TransactionID: newTransactionID(),
		CompletedAt:   s.now(),
	})
	if err != nil {
		return nil, err
	}
	return res.Payment, nil
}

// CreateCheckoutSession переиспользует открытую сессию ожидающего платежа.
// Протухшую сессию сначала закрывает, потом создаёт новую.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, bookingID, userID, successURL, cancelURL string) (*domain.CheckoutSession, error) {
	rail, err := s.rail(domain.PaymentMethodCheckout)
	if err != nil {
		return nil, err
	}

	b, err := s.payableBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.paymentRepo.FindPending(ctx, b.ID, domain.PaymentMethodCheckout)
	switch {
	case err == nil:
		reused, err := s.reuseSession(ctx, rail, pending)
		if err != nil || reused != nil {
			return reused, err
		}
	case !errors.Is(err, domain.ErrPaymentNotFound):
		return nil, fmt.Errorf("find pending payment: %w", err)
	}

	p := s.newPayment(b, domain.PaymentMethodCheckout)
	session, err := rail.Initiate(ctx, p, domain.InitiateOptions{
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
		Description: fmt.Sprintf("Hotel booking %s", b.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	p.ExternalSessionID = &session.Reference

	if err = s.paymentRepo.Create(ctx, p); err != nil {
		if cerr := rail.Cancel(ctx, session.Reference); cerr != nil {
			s.logger.Warn("expire orphaned checkout session failed",
				logger.String("session_id", session.Reference),
				logger.String("error", cerr.Error()),
			)
		}
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("checkout session created",
		logger.String("payment_id", p.ID),
		logger.String("booking_id", b.ID),
		logger.String("session_id", session.Reference),
	)
	metrics.RecordPayment(string(p.Method), string(p.Status))

	return &domain.CheckoutSession{
		Payment:   p,
		SessionID: session.Reference,
		URL:       session.URL,
	}, nil
}

// reuseSession returns nil, nil when a fresh session must be created.
func (s *PaymentService) reuseSession(ctx context.Context, rail ports.PaymentRail, p *domain.Payment) (*domain.CheckoutSession, error) {
	if p.ExternalSessionID == nil {
		return nil, s.failStale(ctx, p)
	}

	session, err := rail.Lookup(ctx, *p.ExternalSessionID)
	if err != nil {
		return nil, fmt.Errorf("lookup checkout session: %w", err)
	}

	switch {
	case session.Paid:
		res, err := s.complete(ctx, p, completionFromSession(session, s.now()))
		if err != nil {
			return nil, err
		}
		return &domain.CheckoutSession{Payment: res.Payment, SessionID: session.Reference, URL: session.URL, Reused: true}, nil

	case session.State == domain.SessionComplete:
		// гость прошёл оплату, деньги ещё в пути: вторую сессию не открываем
		return nil, fmt.Errorf("%w: checkout payment is being processed", domain.ErrPendingPaymentExists)

	case session.State == domain.SessionOpen && (session.ExpiresAt.IsZero() || session.ExpiresAt.After(s.now())):
		return &domain.CheckoutSession{Payment: p, SessionID: session.Reference, URL: session.URL, Reused: true}, nil

	case session.State == domain.SessionOpen:
		// срок вышел, но провайдер её не закрыл: закрываем сами, иначе по ней ещё можно заплатить
		if err = rail.Cancel(ctx, session.Reference); err != nil {
			return nil, fmt.Errorf("expire stale checkout session: %w", err)
		}
	}

	return nil, s.failStale(ctx, p)
}

func (s *PaymentService) failStale(ctx context.Context, p *domain.Payment) error {
	if _, err := s.fail(ctx, p, domain.ReasonSessionExpired); err != nil && !errors.Is(err, domain.ErrPaymentNotPending) {
		return err
	}
	return nil
}

// VerifyCheckout опрашивает провайдера. Повторные вызовы безопасны.
func (s *PaymentService) VerifyCheckout(ctx context.Context, sessionID, userID string) (*domain.CheckoutVerification, error) {
	p, err := s.paymentRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p.UserID != userID {
		return nil, domain.ErrPaymentNotFound
	}

	switch p.Status {
	case domain.PaymentStatusCompleted:
		return &domain.CheckoutVerification{Payment: p, Paid: true}, nil
	case domain.PaymentStatusPending, domain.PaymentStatusProcessing:
	default:
		return &domain.CheckoutVerification{Payment: p}, nil
	}

	rail, err := s.rail(domain.PaymentMethodCheckout)
	if err != nil {
		return nil, err
	}
	session, err := rail.Lookup(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("lookup checkout session: %w", err)
	}

	switch {
	case session.Paid:
		res, err := s.complete(ctx, p, completionFromSession(session, s.now()))
		if err != nil {
			return nil, err
		}
		return &domain.CheckoutVerification{
			Payment: res.Payment,
			Paid:    res.Payment.Status == domain.PaymentStatusCompleted,
		}, nil
	case session.State == domain.SessionExpired:
		failed, err := s.fail(ctx, p, domain.ReasonSessionExpired)
		if err != nil {
			return nil, err
		}
		return &domain.CheckoutVerification{Payment: failed}, nil
	}

	return &domain.CheckoutVerification{Payment: p}, nil
}

// HandleCheckoutWebhook применяет подписанное событие провайдера. События по
// неизвестным сессиям подтверждаются без изменений, чтобы провайдер не ретраил.
func (s *PaymentService) HandleCheckoutWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.webhooks == nil {
		return domain.ErrProviderNotConfigured
	}

	ev, err := s.webhooks.ParseEvent(payload, signature)
	if err != nil {
		s.logger.Warn("checkout webhook rejected",
			logger.String("error", err.Error()),
		)
		return err
	}

	if ev.Kind == domain.ProviderEventIgnored {
		s.logger.Debug("checkout webhook ignored",
			logger.String("event_id", ev.ID),
			logger.String("type", ev.Type),
		)
		return nil
	}

	p, err := s.paymentRepo.GetBySessionID(ctx, ev.Session.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			s.logger.Warn("checkout webhook for unknown session",
				logger.String("event_id", ev.ID),
				logger.String("session_id", ev.Session.Reference),
			)
			return nil
		}
		return fmt.Errorf("get payment: %w", err)
	}

	switch ev.Kind {
	case domain.ProviderEventCompleted:
		if !ev.Session.Paid {
			return nil
		}
		_, err = s.complete(ctx, p, completionFromSession(&ev.Session, s.now()))
		if errors.Is(err, domain.ErrPaymentNotPending) {
			// повтор события по уже возвращённому платежу
			s.logger.Warn("checkout completion for closed payment skipped",
				logger.String("event_id", ev.ID),
				logger.String("payment_id", p.ID),
				logger.String("error", err.Error()),
			)
			return nil
		}
		return err
	case domain.ProviderEventExpired:
		// бронь не трогаем, её переведёт планировщик
		_, err = s.fail(ctx, p, domain.ReasonSessionExpired)
		if errors.Is(err, domain.ErrPaymentNotPending) {
			return nil
		}
		return err
	}

	return nil
}

func (s *PaymentService) GetStatus(ctx context.Context, paymentID, userID string) (*domain.Payment, error) {
	return s.ownedPayment(ctx, paymentID, userID)
}

// GetByBooking returns the most recent payment of the user's booking.
func (s *PaymentService) GetByBooking(ctx context.Context, bookingID, userID string) (*domain.Payment, error) {
	p, err := s.paymentRepo.LatestByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p.UserID != userID {
		return nil, domain.ErrPaymentNotFound
	}
	return p, nil
}

func (s *PaymentService) ListByUser(ctx context.Context, userID string) ([]*domain.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}

func (s *PaymentService) AdminList(ctx context.Context, filter domain.PaymentFilter) ([]*domain.Payment, error) {
	return s.paymentRepo.List(ctx, filter)
}

func (s *PaymentService) AdminGet(ctx context.Context, paymentID string) (*domain.PaymentDetails, error) {
	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	b, err := s.bookingRepo.GetDetails(ctx, p.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &domain.PaymentDetails{Payment: *p, Booking: b, User: b.User}, nil
}

func (s *PaymentService) Cancel(ctx context.Context, paymentID, userID string) (*domain.Payment, error) {
	p, err := s.ownedPayment(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PaymentStatusPending {
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotPending, p.Status)
	}

	// Пока сессия у провайдера не закрыта, по ней можно заплатить, поэтому
	// без успешного expire платёж остаётся pending.
	if p.Method == domain.PaymentMethodCheckout && p.ExternalSessionID != nil {
		rail, err := s.rail(p.Method)
		if err != nil {
			return nil, err
		}
		err = rail.Cancel(ctx, *p.ExternalSessionID)
		if err != nil && !errors.Is(err, domain.ErrPaymentNotFound) {
			s.logger.Warn("expire checkout session failed",
				logger.String("payment_id", p.ID),
				logger.String("session_id", *p.ExternalSessionID),
				logger.String("error", err.Error()),
			)
			return nil, fmt.Errorf("expire checkout session: %w", err)
		}
	}

	return s.fail(ctx, p, domain.ReasonCancelledByUser)
}

// Refund возвращает деньги через рельс и только потом меняет локальное
// состояние: при ошибке провайдера платёж остаётся completed.
func (s *PaymentService) Refund(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p.Status != domain.PaymentStatusCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}

	rail, err := s.rail(p.Method)
	if err != nil {
		return nil, err
	}
	if err = rail.Refund(ctx, p); err != nil {
		return nil, fmt.Errorf("provider refund: %w", err)
	}

	refunded, b, err := s.paymentRepo.Refund(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("refund payment: %w", err)
	}

	s.logger.Info("payment refunded",
		logger.String("payment_id", refunded.ID),
		logger.String("booking_id", refunded.BookingID),
		logger.String("booking_status", string(b.Status)),
	)
	metrics.RecordPayment(string(refunded.Method), string(refunded.Status))
	s.notify(ctx, domain.PaymentNotification(domain.NotifyPaymentRefunded, refunded))
	if b.Status == domain.BookingStatusCancelled {
		metrics.RecordBookingTransition(string(b.Status))
		s.notify(ctx, domain.BookingNotification(domain.NotifyBookingCancelled, b))
	}

	return refunded, nil
}

func (s *PaymentService) complete(ctx context.Context, p *domain.Payment, c domain.PaymentCompletion) (*domain.CompletionResult, error) {
	res, err := s.paymentRepo.Complete(ctx, p.ID, c)
	if err != nil {
		return nil, fmt.Errorf("complete payment: %w", err)
	}

	switch {
	case res.Outcome == domain.CompletionApplied:
		s.logger.Info("payment completed",
			logger.String("payment_id", res.Payment.ID),
			logger.String("booking_id", res.Payment.BookingID),
			logger.String("method", string(res.Payment.Method)),
		)
		metrics.RecordPayment(string(res.Payment.Method), string(res.Payment.Status))
		metrics.RecordBookingTransition(string(domain.BookingStatusCompleted))
		s.notify(ctx, domain.PaymentNotification(domain.NotifyPaymentCompleted, res.Payment))

	case res.Outcome.NeedsReversal():
		msg := "payment arrived for booking that is no longer payable"
		if res.Outcome == domain.CompletionPaymentClosed {
			msg = "payment arrived after it was closed"
		}
		s.logger.Warn(msg,
			logger.String("payment_id", res.Payment.ID),
			logger.String("booking_id", res.Payment.BookingID),
		)
		metrics.RecordPayment(string(res.Payment.Method), string(res.Payment.Status))
		s.compensate(ctx, res.Payment)
		s.notify(ctx, domain.PaymentNotification(domain.NotifyPaymentRefunded, res.Payment))
	}

	return res, nil
}

// compensate returns money for a payment recorded refunded without a prior
// provider refund. Failures need manual follow-up and are only logged.
func (s *PaymentService) compensate(ctx context.Context, p *domain.Payment) {
	rail, err := s.rail(p.Method)
	if err == nil {
		err = rail.Refund(ctx, p)
	}
	if err != nil {
		s.logger.Error("compensating refund failed",
			logger.String("payment_id", p.ID),
			logger.String("booking_id", p.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *PaymentService) fail(ctx context.Context, p *domain.Payment, reason string) (*domain.Payment, error) {
	failed, err := s.paymentRepo.MarkFailed(ctx, p.ID, reason)
	if err != nil {
		return nil, fmt.Errorf("fail payment: %w", err)
	}

	s.logger.Info("payment failed",
		logger.String("payment_id", failed.ID),
		logger.String("reason", reason),
	)
	metrics.RecordPayment(string(failed.Method), string(failed.Status))
	s.notify(ctx, domain.PaymentNotification(domain.NotifyPaymentFailed, failed))

	return failed, nil
}

func (s *PaymentService) payableBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.UserID != userID {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrBookingNotPayable, b.Status)
	}
	return b, nil
}

func (s *PaymentService) ownedPayment(ctx context.Context, paymentID, userID string) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p.UserID != userID {
		return nil, domain.ErrPaymentNotFound
	}
	return p, nil
}

func (s *PaymentService) rail(method domain.PaymentMethod) (ports.PaymentRail, error) {
	r, ok := s.rails[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotConfigured, method)
	}
	return r, nil
}

func (s *PaymentService) newPayment(b *domain.Booking, method domain.PaymentMethod) *domain.Payment {
	now := s.now()
	return &domain.Payment{
		ID:        uuid.New().String(),
		BookingID: b.ID,
		UserID:    b.UserID,
		Amount:    b.TotalPrice,
		Method:    method,
		Status:    domain.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *PaymentService) notify(ctx context.Context, n domain.Notification) {
	go s.notifier.Notify(context.WithoutCancel(ctx), n)
}

func completionFromSession(session *domain.RailSession, now time.Time) domain.PaymentCompletion {
	txID := session.Reference
	if session.ExternalPaymentID != nil {
		txID = *session.ExternalPaymentID
	}
	return domain.PaymentCompletion{
		TransactionID:     txID,
		ExternalPaymentID: session.ExternalPaymentID,
		CardBrand:         session.CardBrand,
		CardLast4:         session.CardLast4,
		CompletedAt:       now,
	}
}

func newTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
