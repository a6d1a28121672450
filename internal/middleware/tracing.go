package middleware

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts a server span per request, so handler logs carry trace_id
// and span_id and API calls made by the handler join the same trace.
// Health checks are not traced.
func Tracing(service string, tp trace.TracerProvider) echo.MiddlewareFunc {
	return otelecho.Middleware(service,
		otelecho.WithTracerProvider(tp),
		otelecho.WithSkipper(func(c echo.Context) bool {
			return c.Request().URL.Path == "/healthz"
		}),
	)
}
