package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testClock() time.Time { return testTime }

func ptr[T any](v T) *T { return &v }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withPrincipal(r *http.Request, p domain.Principal) *http.Request {
	return r.WithContext(middleware.WithPrincipal(r.Context(), p))
}

// validProject builds Apollo with subproject Backend holding stage Design.
func validProject(t *testing.T) *project.Project {
	t.Helper()

	p, err := project.NewProject("Apollo", ptr("to the moon"), testClock)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	st, err := project.NewStage("Design", nil, testClock)
	if err != nil {
		t.Fatalf("NewStage() error = %v", err)
	}
	sp, err := project.NewSubproject("Backend", nil, testClock, st)
	if err != nil {
		t.Fatalf("NewSubproject() error = %v", err)
	}
	if err := p.AddSubproject(sp); err != nil {
		t.Fatalf("AddSubproject() error = %v", err)
	}
	return p
}

func firstSubproject(p *project.Project) *project.Subproject { return p.Subprojects()[0] }

func firstStage(p *project.Project) *project.Stage { return firstSubproject(p).Stages()[0] }

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

var testUserID = uuid.MustParse("0c6a2a4e-3f7b-4f64-9d0a-5d8f1c2b7e01")
