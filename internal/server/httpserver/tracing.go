package httpserver

import (
	"context"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/pulseboard/backend/internal/app/appconfig"
	"github.com/pulseboard/backend/internal/constant"
	"github.com/pulseboard/backend/internal/pkg/bininfo"
	"github.com/pulseboard/backend/internal/pkg/observability"
)

// newTraceExporter resolves an exporter name from the TracingExporters config
// entry. Endpoints are taken from the standard OTEL_EXPORTER_* environment
// variables of each exporter.
func newTraceExporter(name string) (tracesdk.SpanExporter, error) {
	switch name {
	case "jaeger":
		return jaeger.New(jaeger.WithCollectorEndpoint())
	case "otlp":
		return otlptrace.New(context.Background(), otlptracegrpc.NewClient())
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	return nil, errors.Errorf("unknown tracing exporter: %s", name)
}

// Tracing installs a tracer provider built from the configured exporters and
// returns the fiber middleware recording a span per request. Metrics and meta
// endpoints are excluded from tracing to keep scrapes out of the trace store.
func Tracing(conf *appconfig.Config) fiber.Handler {
	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
		)),
	}
	for _, name := range conf.TracingExporters {
		exporter, err := newTraceExporter(name)
		if err != nil {
			panic(err)
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tracerProvider := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)

	return otelfiber.Middleware(
		otelfiber.WithTracerProvider(tracerProvider),
		otelfiber.WithServerName(observability.ServiceName),
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			if c.Get(constant.SlimHeaderKey) != "" {
				return true
			}
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/api/_")
		}),
	)
}
