package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// Problem is the RFC 9457 body every failed request receives.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError names one rejected input, e.g. {"location": "body.name"}.
type FieldError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemStatuses is checked in order; the first sentinel err wraps wins.
var problemStatuses = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// statusFor maps err to the response status. Anything unrecognised is a 500.
func statusFor(err error) int {
	for _, m := range problemStatuses {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// NewProblem describes err for the request r. A 500 hides err's text behind
// the status title.
func NewProblem(r *http.Request, err error) Problem {
	status := statusFor(err)
	p := Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		p.Detail = p.Title
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = toFieldErrors(verr.Fields)
	}
	return p
}

// WriteErrorResponse renders err as application/problem+json. A 401 also
// carries the bearer challenge.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	p := NewProblem(r, err)

	h := w.Header()
	h.Set("Content-Type", "application/problem+json")
	if p.Status == http.StatusUnauthorized {
		h.Set("WWW-Authenticate", `Bearer realm="api"`)
	}
	w.WriteHeader(p.Status)

	if encErr := json.NewEncoder(w).Encode(p); encErr != nil {
		slog.ErrorContext(r.Context(), "writing problem response", slog.Any("error", encErr))
	}
}

func toFieldErrors(fields map[string]string) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldError{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(out, func(a, b FieldError) int { return cmp.Compare(a.Location, b.Location) })
	return out
}
