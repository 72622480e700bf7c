package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-service/internal/adapters/clients/acl/identity"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/platform/config"
	"github.com/jsamuelsen11/project-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "identity-api", nil, slog.Default())
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func TestUserClient_GetUserInfo(t *testing.T) {
	t.Parallel()

	ada := uuid.MustParse("0c6a2a4e-3f7b-4f64-9d0a-5d8f1c2b7e01")
	bob := uuid.MustParse("9b1f0e57-6a1d-4c3e-8f2b-2d4c6e8a0b13")
	unknown := uuid.MustParse("5e3c1a2b-7d4f-4e6a-8b9c-0d1e2f3a4b5c")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != lookupPath {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		var req identity.LookupRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		assert.Equal(t, []string{ada.String(), bob.String(), unknown.String()}, req.IDs)

		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"users": []map[string]any{
				{"id": ada.String(), "username": "ada", "email": "ada@example.com"},
				{"id": bob.String(), "username": "bob"},
			},
		})
	}))
	defer ts.Close()

	client := NewUserClient(newTestClient(t, ts.URL), slog.Default())
	users, err := client.GetUserInfo(context.Background(), []uuid.UUID{ada, bob, unknown})
	require.NoError(t, err)

	want := []ports.UserInfo{{ID: ada, Username: "ada"}, {ID: bob, Username: "bob"}}
	if !assert.Equal(t, want, users) {
		t.Errorf("GetUserInfo() = %v, want %v", users, want)
	}
}

func TestUserClient_GetUserInfo_EmptyInputSkipsRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewUserClient(newTestClient(t, ts.URL), slog.Default())
	users, err := client.GetUserInfo(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, users)
	assert.Equal(t, int32(0), calls.Load())
}

func TestUserClient_GetUserInfo_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "rejected service credential maps to ErrUnavailable",
			status:  http.StatusUnauthorized,
			body:    `{"title":"Unauthorized","status":401,"detail":"token expired"}`,
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "server error maps to ErrUnavailable",
			status:  http.StatusServiceUnavailable,
			body:    `{"title":"Service Unavailable","status":503}`,
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "bad request maps to ErrValidation",
			status:  http.StatusBadRequest,
			body:    `{"detail":"bad ids","errors":[{"location":"body.ids[0]","message":"must be a UUID"}]}`,
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := NewUserClient(newTestClient(t, ts.URL), slog.Default())
			_, err := client.GetUserInfo(context.Background(), []uuid.UUID{uuid.New()})

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetUserInfo() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserClient_GetUserInfo_MalformedBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":`))
	}))
	defer ts.Close()

	client := NewUserClient(newTestClient(t, ts.URL), slog.Default())
	_, err := client.GetUserInfo(context.Background(), []uuid.UUID{uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestUserClient_Health(t *testing.T) {
	t.Parallel()

	client := NewUserClient(newTestClient(t, "http://localhost"), slog.Default())

	if got := client.Name(); got != "identity-api" {
		t.Errorf("Name() = %q, want %q", got, "identity-api")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
