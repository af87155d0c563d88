// Package metrics holds the Prometheus collectors shared by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	bookingTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Booking lifecycle transitions by resulting status",
		},
		[]string{"status"},
	)

	bookingConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_availability_conflicts_total",
			Help: "Booking attempts rejected for insufficient availability",
		},
	)

	paymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Payment state changes by method and resulting status",
		},
		[]string{"method", "status"},
	)

	panicsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_total",
			Help: "Handler panics recovered by endpoint",
		},
		[]string{"endpoint"},
	)

	expiredBookingsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "expired_bookings_total",
			Help: "Confirmed bookings failed by the expiry sweep",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(bookingTransitionsTotal)
	prometheus.MustRegister(bookingConflictsTotal)
	prometheus.MustRegister(paymentsTotal)
	prometheus.MustRegister(expiredBookingsTotal)
	prometheus.MustRegister(panicsTotal)
}

func RecordBookingTransition(status string) {
	bookingTransitionsTotal.WithLabelValues(status).Inc()
}

func RecordAvailabilityConflict() {
	bookingConflictsTotal.Inc()
}

func RecordPayment(method, status string) {
	paymentsTotal.WithLabelValues(method, status).Inc()
}

func RecordPanic(endpoint string) {
	panicsTotal.WithLabelValues(endpoint).Inc()
}

func RecordExpired(n int) {
	expiredBookingsTotal.Add(float64(n))
}
