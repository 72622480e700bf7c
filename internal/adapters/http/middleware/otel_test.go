package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-service/internal/platform/telemetry"
)

// Tracing tests swap the global TracerProvider and so do not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return exporter
}

// stageRouter serves PATCH /api/v1/stages/{id}/status with status.
func stageRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Patch("/api/v1/stages/{id}/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

const stageStatusPath = "/api/v1/stages/7d1c1c1e-5c7e-4c1e-9d1e-2f3a4b5c6d7e/status"

func spanAttrs(s tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(s.Attributes))
	for _, kv := range s.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_Span(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		wantName   string
		wantRoute  string
		wantStatus codes.Code
	}{
		{
			name:      "matched route names the span",
			method:    http.MethodPatch,
			path:      stageStatusPath,
			status:    http.StatusOK,
			wantName:  "HTTP PATCH /api/v1/stages/{id}/status",
			wantRoute: "/api/v1/stages/{id}/status",
		},
		{
			name:       "server error marks the span",
			method:     http.MethodPatch,
			path:       stageStatusPath,
			status:     http.StatusInternalServerError,
			wantName:   "HTTP PATCH /api/v1/stages/{id}/status",
			wantRoute:  "/api/v1/stages/{id}/status",
			wantStatus: codes.Error,
		},
		{
			name:     "unmatched path keeps the method-only name",
			method:   http.MethodGet,
			path:     "/no/such/thing",
			wantName: "HTTP GET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installTracer(t)

			status := tt.status
			if status == 0 {
				status = http.StatusOK
			}
			stageRouter(nil, status).ServeHTTP(httptest.NewRecorder(),
				httptest.NewRequest(tt.method, tt.path, http.NoBody))

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			if spans[0].Name != tt.wantName {
				t.Errorf("span name = %q, want %q", spans[0].Name, tt.wantName)
			}
			assert.Equal(t, tt.wantStatus, spans[0].Status.Code)

			attrs := spanAttrs(spans[0])
			assert.Equal(t, tt.method, attrs[telemetry.AttrHTTPMethod].AsString())
			assert.Equal(t, tt.path, attrs["http.target"].AsString())
			assert.Equal(t, tt.wantRoute, attrs[telemetry.AttrHTTPRoute].AsString())
		})
	}
}

func TestOpenTelemetry_ContinuesCallerTrace(t *testing.T) {
	exporter := installTracer(t)

	const parent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	req := httptest.NewRequest(http.MethodPatch, stageStatusPath, http.NoBody)
	req.Header.Set("traceparent", parent)
	stageRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
}

func TestOpenTelemetry_RecordsRequestMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "project-service")
	require.NoError(t, err)

	h := stageRouter(metrics, http.StatusConflict)
	for range 2 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, stageStatusPath, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok || md.Name != "http.server.request.total" {
				continue
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				assert.Equal(t, "/api/v1/stages/{id}/status", route.AsString())
				assert.Equal(t, "error", result.AsString())
			}
		}
	}
	if total != 2 {
		t.Errorf("http.server.request.total = %d, want 2", total)
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	stageRouter(nil, http.StatusNoContent).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPatch, stageStatusPath, http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
