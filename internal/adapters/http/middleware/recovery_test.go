package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantLog    bool
		wantBody   string
	}{
		{
			name:       "no panic",
			handler:    func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "panic before write",
			handler:    func(http.ResponseWriter, *http.Request) { panic("nil stage") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    true,
			wantBody:   "Internal Server Error",
		},
		{
			name:       "non-string panic value",
			handler:    func(http.ResponseWriter, *http.Request) { panic(42) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    true,
		},
		{
			name: "panic after write keeps the sent status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("partial"))
				panic("stream broke")
			},
			wantStatus: http.StatusOK,
			wantLog:    true,
			wantBody:   "partial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			middleware.Recovery(testLogger(&buf))(tt.handler).ServeHTTP(rec,
				httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantLog {
				assert.Contains(t, buf.String(), "panic recovered")
				assert.Contains(t, buf.String(), "stack=")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestRecovery_RepanicsOnAbort(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(testLogger(&bytes.Buffer{}))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/files/1", http.NoBody))
	})
}
