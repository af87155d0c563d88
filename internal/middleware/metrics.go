package middleware

import (
	"strconv"
	"time"

	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics записывает счётчик и длительность запросов по шаблону маршрута.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
