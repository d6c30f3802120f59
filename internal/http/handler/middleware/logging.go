package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := ""
		if id, ok := r.Context().Value(RequestIDKey).(string); ok {
			requestID = id
		}

		m.logs.Infow("request received",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID)

		next.ServeHTTP(w, r)

		m.logs.Infow("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
			"request_id", requestID)
	})
}
