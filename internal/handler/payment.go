package handler

import (
	"io"
	"net/http"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/payment/checkout"
	"github.com/wb-go/wbf/ginext"
)

const maxWebhookBody = 1 << 20

func (h *Handler) InitializeQRPayment(c *ginext.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.QRPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.paymentService.InitializeQR(c.Request.Context(), req.BookingID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQRPaymentResponse(res))
}

// ConfirmQRPayment имитирует callback банка после оплаты по QR.
func (h *Handler) ConfirmQRPayment(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.paymentService.ConfirmQR(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

func (h *Handler) CreateCheckoutSession(c *ginext.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if req.SuccessURL == "" {
		req.SuccessURL = h.checkoutURLs.Success
	}
	if req.CancelURL == "" {
		req.CancelURL = h.checkoutURLs.Cancel
	}

	res, err := h.paymentService.CreateCheckoutSession(c.Request.Context(), req.BookingID, userID, req.SuccessURL, req.CancelURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Reused {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToCheckoutSessionResponse(res))
}

func (h *Handler) VerifyCheckout(c *ginext.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	sessionID := c.Param("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session_id"})
		return
	}

	res, err := h.paymentService.VerifyCheckout(c.Request.Context(), sessionID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutVerificationResponse(res))
}

// CheckoutWebhook принимает события провайдера. Подпись проверяется по
// сырому телу, поэтому тело читается до любого разбора JSON.
func (h *Handler) CheckoutWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read body"})
		return
	}

	err = h.paymentService.HandleCheckoutWebhook(c.Request.Context(), payload, c.GetHeader(checkout.SignatureHeader))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"received": true})
}

func (h *Handler) GetPayment(c *ginext.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.paymentService.GetStatus(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

func (h *Handler) GetBookingPayment(c *ginext.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "booking_id")
	if !ok {
		return
	}

	p, err := h.paymentService.GetByBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

func (h *Handler) ListMyPayments(c *ginext.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

func (h *Handler) CancelPayment(c *ginext.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.paymentService.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

// Admin

func (h *Handler) AdminListPayments(c *ginext.Context) {
	var filter domain.PaymentFilter
	if s := c.Query("status"); s != "" {
		st := domain.PaymentStatus(s)
		if !st.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status filter"})
			return
		}
		filter.Status = &st
	}
	if m := c.Query("method"); m != "" {
		method := domain.PaymentMethod(m)
		if !method.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid method filter"})
			return
		}
		filter.Method = &method
	}

	payments, err := h.paymentService.AdminList(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

func (h *Handler) AdminGetPayment(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.paymentService.AdminGet(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentDetailsResponse(details))
}

func (h *Handler) RefundPayment(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.paymentService.Refund(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}
