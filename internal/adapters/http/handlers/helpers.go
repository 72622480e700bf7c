package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// parseID reads the named chi route parameter as a UUID.
func parseID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid UUID"},
		}
	}
	return id, nil
}

// parseQueryID extracts an optional UUID query parameter. A missing value
// yields uuid.Nil.
func parseQueryID(r *http.Request, param string) (uuid.UUID, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid UUID"},
		}
	}
	return id, nil
}

// parsePage reads the limit and offset query parameters. Missing values take
// the port defaults.
func parsePage(r *http.Request) (ports.PageRequest, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	atoi := func(key string) int {
		raw := q.Get(key)
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields[key] = "must be a valid integer"
		}
		return n
	}

	limit, offset := atoi("limit"), atoi("offset")
	if len(fields) > 0 {
		return ports.PageRequest{}, &domain.ValidationError{Fields: fields}
	}
	return ports.NewPageRequest(limit, offset)
}

// principal returns the authenticated caller or an unauthenticated error.
func principal(r *http.Request) (domain.Principal, error) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return domain.Principal{}, fmt.Errorf("bearer token required: %w", domain.ErrUnauthenticated)
	}
	return p, nil
}

// fail writes the problem response for err and reports whether it did.
func fail(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil {
		return false
	}
	dto.WriteErrorResponse(w, r, err)
	return true
}

// writeJSON encodes v with status. Encoding errors surface only in the log
// because the header is already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

const maxJSONBodyBytes = 1 << 20

// decodeJSONBody reads at most maxJSONBodyBytes of JSON into dst, answering
// 400 on malformed input.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable request bodies check their own field rules.
type validatable interface {
	Validate() error
}

// decodeAndValidate is decodeJSONBody followed by dst.Validate. It returns
// false once a response has been written.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	return !fail(w, r, dst.Validate())
}
