package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery перехватывает панику хендлера, отвечает 500 и пишет стек.
// Ошибка кладётся в контекст, чтобы RequestLogger залогировал её вместе с запросом.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			endpoint := c.FullPath()
			if endpoint == "" {
				endpoint = "unmatched"
			}
			metrics.RecordPanic(endpoint)

			msg := fmt.Sprint(rec)
			c.Set("error", "panic: "+msg)
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("panic", msg),
				logger.String("method", c.Request.Method),
				logger.String("endpoint", endpoint),
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
		}()

		c.Next()
	}
}
