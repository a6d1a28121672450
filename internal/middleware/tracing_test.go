package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/iliyamo/car-rental-admin/internal/logger"
)

func TestTracing_HandlerLogsCarryTraceIDs(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	var buf bytes.Buffer
	log := logger.New(&buf, "production", "test")

	e := echo.New()
	e.Use(Tracing("test", tp))
	e.GET("/cars", func(c echo.Context) error {
		log.InfoContext(c.Request().Context(), "listing")
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cars", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	require.Contains(t, buf.String(), `"trace_id":"`+spans[0].SpanContext().TraceID().String()+`"`)
	require.Contains(t, buf.String(), `"span_id":"`)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Len(t, sr.Ended(), 1)
}
