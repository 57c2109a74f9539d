// Package tracing installs the OpenTelemetry TracerProvider and the echo
// middleware that opens a server span per request.
package tracing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/imsurajj/amsoft/internal/config"
	"github.com/imsurajj/amsoft/internal/version"
	"github.com/imsurajj/amsoft/pkg/logger"
)

// Module installs a TracerProvider (OTLP or no-op) and the echo middleware.
var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(RegisterTracingLifecycle),
	fx.Invoke(RegisterEchoMiddleware),
)

// Provider holds the SDK provider. SDK is nil when tracing is disabled.
type Provider struct {
	SDK *sdktrace.TracerProvider
}

// NewTracerProvider builds and globally registers a TracerProvider. Without an
// OTLP endpoint a no-op provider is installed.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (*Provider, error) {
	oc := cfg.Otel
	log = log.With(logger.Scope("tracing"))

	if !oc.Enabled() {
		log.Debug("tracing disabled, OTEL_EXPORTER_OTLP_ENDPOINT not set")
		otel.SetTracerProvider(noop.NewTracerProvider())
		return &Provider{}, nil
	}

	exp, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpointURL(oc.ExporterEndpoint),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(context.Background(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(oc.ServiceName),
			semconv.ServiceVersion(version.Version),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithFromEnv(),
	)
	if err != nil {
		log.Warn("resource detection failed, using empty resource", logger.Error(err))
		res = resource.Empty()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(oc.SamplingRate)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("tracing enabled",
		slog.String("endpoint", oc.ExporterEndpoint),
		slog.String("service", oc.ServiceName),
		slog.Float64("sampling_rate", oc.SamplingRate),
	)
	return &Provider{SDK: tp}, nil
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
	}
}

// RegisterTracingLifecycle flushes and stops the SDK provider on shutdown.
func RegisterTracingLifecycle(lc fx.Lifecycle, p *Provider, log *slog.Logger) {
	if p.SDK == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer provider")
			return p.SDK.Shutdown(ctx)
		},
	})
}

// RegisterEchoMiddleware traces every request except probes, metrics scrapes
// and static assets.
func RegisterEchoMiddleware(e *echo.Echo, cfg *config.Config) {
	if !cfg.Otel.Enabled() {
		return
	}
	e.Use(otelecho.Middleware(cfg.Otel.ServiceName,
		otelecho.WithSkipper(skipTracing),
	))
}

func skipTracing(c echo.Context) bool {
	switch p := c.Request().URL.Path; {
	case p == "/health", p == "/healthz", p == "/ready", p == "/metrics":
		return true
	default:
		return strings.HasPrefix(p, "/static/")
	}
}
