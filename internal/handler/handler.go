package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	CalculatePrice(ctx context.Context, selections []domain.Selection) (*domain.PriceQuote, error)
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	GetForUser(ctx context.Context, id, userID string) (*domain.Booking, error)
	Cancel(ctx context.Context, id, userID string) (*domain.Booking, error)
	GetAdmin(ctx context.Context, id string) (*domain.Booking, error)
	ListAdmin(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Approve(ctx context.Context, id string) (*domain.Booking, error)
	Reject(ctx context.Context, id, reason string) (*domain.Booking, error)
}

type PaymentSvc interface {
	InitializeQR(ctx context.Context, bookingID, userID string) (*domain.QRInitiation, error)
	ConfirmQR(ctx context.Context, paymentID string) (*domain.Payment, error)
	CreateCheckoutSession(ctx context.Context, bookingID, userID, successURL, cancelURL string) (*domain.CheckoutSession, error)
	VerifyCheckout(ctx context.Context, sessionID, userID string) (*domain.CheckoutVerification, error)
	HandleCheckoutWebhook(ctx context.Context, payload []byte, signature string) error
	GetStatus(ctx context.Context, paymentID, userID string) (*domain.Payment, error)
	GetByBooking(ctx context.Context, bookingID, userID string) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Payment, error)
	AdminList(ctx context.Context, filter domain.PaymentFilter) ([]*domain.Payment, error)
	AdminGet(ctx context.Context, paymentID string) (*domain.PaymentDetails, error)
	Cancel(ctx context.Context, paymentID, userID string) (*domain.Payment, error)
	Refund(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// CheckoutURLs are used when the client does not send its own return URLs.
type CheckoutURLs struct {
	Success string
	Cancel  string
}

type Handler struct {
	bookingService BookingSvc
	paymentService PaymentSvc
	checkoutURLs   CheckoutURLs
}

func NewHandler(bookingService BookingSvc, paymentService PaymentSvc, checkoutURLs CheckoutURLs) *Handler {
	return &Handler{
		bookingService: bookingService,
		paymentService: paymentService,
		checkoutURLs:   checkoutURLs,
	}
}

// errorStatuses: порядок важен, первая совпавшая ошибка задаёт код ответа.
var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrBookingNotFound, http.StatusNotFound},
	{domain.ErrRoomNotFound, http.StatusNotFound},
	{domain.ErrPaymentNotFound, http.StatusNotFound},

	{domain.ErrInsufficientAvailability, http.StatusConflict},
	{domain.ErrInvalidTransition, http.StatusConflict},
	{domain.ErrBookingNotPayable, http.StatusConflict},
	{domain.ErrPaymentNotPending, http.StatusConflict},
	{domain.ErrPaymentNotCompleted, http.StatusConflict},
	{domain.ErrPendingPaymentExists, http.StatusConflict},
	{domain.ErrPaymentMethodMismatch, http.StatusConflict},

	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnderage, http.StatusBadRequest},
	{domain.ErrInvalidSignature, http.StatusBadRequest},

	{middleware.ErrNoIdentity, http.StatusUnauthorized},

	{domain.ErrProviderNotConfigured, http.StatusServiceUnavailable},
	{domain.ErrProviderUnavailable, http.StatusBadGateway},
	{domain.ErrProviderRejected, http.StatusBadGateway},
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	// полный текст с обёртками уходит только в лог запроса
	c.Set("error", err.Error())

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			c.JSON(e.status, dto.ErrorResponse{Error: publicMessage(err, e.err, e.status)})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
}

// publicMessage отрезает внутренние префиксы ("get payment: ...") и
// оставляет текст ошибки домена с её уточнением. Для 5xx уточнение это
// ответ провайдера, клиенту отдаём только саму ошибку.
func publicMessage(err, sentinel error, status int) string {
	if status >= http.StatusInternalServerError {
		return sentinel.Error()
	}
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}

// pathID достаёт uuid из параметра пути, при ошибке отвечает 400.
func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return id, true
}

func (h *Handler) currentUser(c *ginext.Context) (string, bool) {
	userID, err := middleware.UserID(c)
	if err != nil {
		h.handleError(c, err)
		return "", false
	}
	return userID, true
}
