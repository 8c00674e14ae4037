// Package middleware provides gin middleware shared by services: request
// trace propagation and structured request logging.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aimarket/mcore/consts"
	"github.com/aimarket/mcore/ctxutil"
	"github.com/aimarket/mcore/logging/logger"
)

// Trace ensures every request carries a trace ID, taken from the incoming
// header when present, and echoes it back on the response.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(consts.TraceKey)
		ctx := c.Request.Context()
		if traceID != "" {
			ctx = ctxutil.SetTraceID(ctx, traceID)
		} else {
			ctx, traceID = ctxutil.EnsureTraceID(ctx)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header(consts.TraceKey, traceID)
		c.Next()
	}
}

// Logging logs each request through the shared logger with method, path,
// status, and duration fields.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		durationMs := float64(time.Since(start).Microseconds()) / 1000.0
		logger.LogRequest(ctx, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), durationMs, ctxutil.GetUserID(ctx))
	}
}
