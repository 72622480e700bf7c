package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
)

// Timeout gives the request context a deadline of limit. Storage and
// directory calls observe it and their errors already map to 504; if the
// handler returns after the deadline without writing, Timeout writes the
// 504 itself. The response is not buffered.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.headerWritten && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				dto.WriteErrorResponse(rw, r, fmt.Errorf("request exceeded %s: %w", limit, ctx.Err()))
			}
		})
	}
}
