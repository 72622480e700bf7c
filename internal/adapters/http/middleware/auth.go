package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	appctx "github.com/jsamuelsen11/project-service/internal/app/context"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// TokenVerifier turns a raw bearer token into the principal it names.
// Implemented by *auth.Verifier.
type TokenVerifier interface {
	Verify(raw string) (domain.Principal, error)
}

type principalKey struct{}

// userSlotKey carries the slot Logging reads the user id from once the
// handler chain has returned.
type userSlotKey struct{}

// WithPrincipal returns a new context carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

func withUserSlot(ctx context.Context, slot *appctx.SafeRef[string]) context.Context {
	return context.WithValue(ctx, userSlotKey{}, slot)
}

func userSlotFromContext(ctx context.Context) *appctx.SafeRef[string] {
	slot, _ := ctx.Value(userSlotKey{}).(*appctx.SafeRef[string])
	return slot
}

// Authenticate returns middleware that resolves the caller from an
// "Authorization: Bearer" header. Requests without the header continue
// anonymously; a malformed or invalid token is answered with 401.
//
// On success the principal is stored in the context and the request logger
// gains a user_id attribute. Register it after Logging.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(raw) == "" {
				dto.WriteErrorResponse(w, r, fmt.Errorf("malformed authorization header: %w", domain.ErrUnauthenticated))
				return
			}

			p, err := verifier.Verify(strings.TrimSpace(raw))
			if err != nil {
				logging.FromContext(r.Context()).InfoContext(r.Context(), "bearer token rejected",
					slog.String("error", err.Error()),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			userID := p.UserID.String()
			if slot := userSlotFromContext(r.Context()); slot != nil {
				slot.Set(userID)
			}

			ctx := WithPrincipal(r.Context(), p)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("user_id", userID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth returns middleware that answers 401 unless Authenticate
// resolved a principal for the request.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				dto.WriteErrorResponse(w, r, fmt.Errorf("bearer token required: %w", domain.ErrUnauthenticated))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission returns middleware that admits callers holding any of
// codes. Anonymous requests get 401 and callers without a matching grant 403.
func RequirePermission(codes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				dto.WriteErrorResponse(w, r, fmt.Errorf("bearer token required: %w", domain.ErrUnauthenticated))
				return
			}
			if !slices.ContainsFunc(codes, p.HasPermission) {
				dto.WriteErrorResponse(w, r, fmt.Errorf("requires one of %s: %w", strings.Join(codes, ", "), domain.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
