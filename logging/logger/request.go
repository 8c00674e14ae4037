package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogRequest logs an HTTP request with structured data.
func LogRequest(ctx context.Context, method, path string, statusCode int, durationMs float64, userID string) {
	fields := logrus.Fields{
		"method":      method,
		"path":        path,
		"status_code": statusCode,
		"duration_ms": durationMs,
	}
	if userID != "" {
		fields["user_id"] = userID
	}
	WithFields(ctx, fields).Info("http request")
}
