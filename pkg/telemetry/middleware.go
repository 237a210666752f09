package telemetry

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TraceIDHeader is the response header carrying the trace ID
	TraceIDHeader = "X-Trace-ID"

	// SpanIDHeader is the response header carrying the span ID
	SpanIDHeader = "X-Span-ID"
)

// TracingMiddleware traces every request as a server span, continuing any
// trace context propagated in the incoming headers.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	tracer := otel.Tracer(serviceName)
	propagator := otel.GetTextMapPropagator()

	return func(c *gin.Context) {
		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		spanName := c.FullPath()
		if spanName == "" {
			spanName = c.Request.URL.Path
		}
		spanName = fmt.Sprintf("%s %s", c.Request.Method, spanName)

		ctx, span := tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPMethod(c.Request.Method),
				semconv.HTTPURL(c.Request.URL.String()),
				semconv.HTTPRoute(c.FullPath()),
				semconv.NetHostName(c.Request.Host),
				attribute.String("http.client_ip", c.ClientIP()),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			semconv.HTTPStatusCode(status),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		if len(c.Errors) > 0 {
			span.RecordError(c.Errors.Last())
		}
		if status >= 500 {
			span.SetAttributes(attribute.Bool("error", true))
		}
	}
}

// TraceHeaderMiddleware echoes the active trace and span IDs on the response
// so clients can reference them in bug reports. Runs after TracingMiddleware.
func TraceHeaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		spanCtx := trace.SpanContextFromContext(c.Request.Context())
		if spanCtx.HasTraceID() {
			c.Header(TraceIDHeader, spanCtx.TraceID().String())
			c.Set("trace_id", spanCtx.TraceID().String())
		}
		if spanCtx.HasSpanID() {
			c.Header(SpanIDHeader, spanCtx.SpanID().String())
		}
		c.Next()
	}
}
