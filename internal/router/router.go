package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	QuotePrice(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	AdminListBookings(c *ginext.Context)
	AdminGetBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)

	InitializeQRPayment(c *ginext.Context)
	ConfirmQRPayment(c *ginext.Context)
	CreateCheckoutSession(c *ginext.Context)
	VerifyCheckout(c *ginext.Context)
	CheckoutWebhook(c *ginext.Context)
	GetPayment(c *ginext.Context)
	GetBookingPayment(c *ginext.Context)
	ListMyPayments(c *ginext.Context)
	CancelPayment(c *ginext.Context)
	AdminListPayments(c *ginext.Context)
	AdminGetPayment(c *ginext.Context)
	RefundPayment(c *ginext.Context)
}

// InitRouter: auth проверяет JWT, без него доступны только расчёт цены,
// webhook провайдера и служебные ручки.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.POST("/bookings/quote", h.QuotePrice)
		api.POST("/payments/checkout/webhook", h.CheckoutWebhook)
	}

	user := api.Group("", auth)
	{
		user.POST("/bookings", h.CreateBooking)
		user.GET("/bookings", h.ListMyBookings)
		user.GET("/bookings/:id", h.GetBooking)
		user.POST("/bookings/:id/cancel", h.CancelBooking)

		user.POST("/payments/qr", h.InitializeQRPayment)
		user.POST("/payments/checkout", h.CreateCheckoutSession)
		user.GET("/payments/checkout/:session_id/verify", h.VerifyCheckout)
		user.GET("/payments", h.ListMyPayments)
		user.GET("/payments/:id", h.GetPayment)
		user.GET("/payments/booking/:booking_id", h.GetBookingPayment)
		user.POST("/payments/:id/cancel", h.CancelPayment)
	}

	admin := api.Group("", auth, middleware.RequireRole(middleware.RoleAdmin))
	{
		// simulated bank callback
		admin.POST("/payments/qr/:id/confirm", h.ConfirmQRPayment)

		admin.GET("/admin/bookings", h.AdminListBookings)
		admin.GET("/admin/bookings/:id", h.AdminGetBooking)
		admin.POST("/admin/bookings/:id/approve", h.ApproveBooking)
		admin.POST("/admin/bookings/:id/reject", h.RejectBooking)

		admin.GET("/admin/payments", h.AdminListPayments)
		admin.GET("/admin/payments/:id", h.AdminGetPayment)
		admin.POST("/admin/payments/:id/refund", h.RefundPayment)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
