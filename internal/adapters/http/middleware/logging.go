package middleware

import (
	"log/slog"
	"net/http"
	"time"

	appctx "github.com/jsamuelsen11/project-service/internal/app/context"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// Logging puts a request-scoped logger on the context and brackets each
// request with a start and a completion line. Every line from the request
// carries request_id, correlation_id, method and path. The completion line
// adds the user Authenticate resolved, if any, and is logged at warn for 4xx
// and error for 5xx. Masked headers are logged at debug.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			user := appctx.NewRef("")
			ctx := withUserSlot(logging.WithLogger(r.Context(), reqLog), user)

			reqLog.InfoContext(ctx, "request started")
			reqLog.DebugContext(ctx, "request headers", logging.Headers(r.Header))

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLog.LogAttrs(ctx, completionLevel(rw.statusCode), "request completed",
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("user_id", user.Get()),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
