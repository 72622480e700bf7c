package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
)

func TestRequestAndCorrelationIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		requestID       string
		correlationID   string
		wantRequestID   string // "uuid" means a freshly minted id
		wantCorrelation string // "request" means equal to the request id
	}{
		{name: "both supplied", requestID: "req-1", correlationID: "corr-1", wantRequestID: "req-1", wantCorrelation: "corr-1"},
		{name: "none supplied", wantRequestID: "uuid", wantCorrelation: "request"},
		{name: "correlation falls back to request id", requestID: "req-2", wantRequestID: "req-2", wantCorrelation: "request"},
		{name: "oversized request id is replaced", requestID: strings.Repeat("x", 129), wantRequestID: "uuid", wantCorrelation: "request"},
		{name: "request id with spaces is replaced", requestID: "req 3", wantRequestID: "uuid", wantCorrelation: "request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxRequest, ctxCorrelation string
			handler := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				ctxRequest = middleware.RequestIDFromContext(r.Context())
				ctxCorrelation = middleware.CorrelationIDFromContext(r.Context())
			})))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody)
			if tt.requestID != "" {
				req.Header.Set("X-Request-ID", tt.requestID)
			}
			if tt.correlationID != "" {
				req.Header.Set("X-Correlation-ID", tt.correlationID)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if tt.wantRequestID == "uuid" {
				if _, err := uuid.Parse(ctxRequest); err != nil {
					t.Errorf("RequestIDFromContext() = %q, want a UUID", ctxRequest)
				}
			} else if ctxRequest != tt.wantRequestID {
				t.Errorf("RequestIDFromContext() = %q, want %q", ctxRequest, tt.wantRequestID)
			}

			wantCorrelation := tt.wantCorrelation
			if wantCorrelation == "request" {
				wantCorrelation = ctxRequest
			}
			if ctxCorrelation != wantCorrelation {
				t.Errorf("CorrelationIDFromContext() = %q, want %q", ctxCorrelation, wantCorrelation)
			}

			assert.Equal(t, ctxRequest, rec.Header().Get("X-Request-ID"))
			assert.Equal(t, ctxCorrelation, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestIDsFromContext_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	assert.Empty(t, middleware.RequestIDFromContext(req.Context()))
	assert.Empty(t, middleware.CorrelationIDFromContext(req.Context()))
}
