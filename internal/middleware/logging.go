package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggingMiddleware emits one structured line per completed request: request
// id, method, path, status, and elapsed milliseconds.
func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-Id")
			if rid == "" {
				// chi's RequestID middleware stores the id on the context
				if v, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
					rid = v
				}
			}

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, Status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("request completed",
				"request_id", rid,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		}
		return http.HandlerFunc(fn)
	}
}
