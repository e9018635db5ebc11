package observability

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstudy/internal/config"
	"github.com/riskibarqy/matchstudy/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitTracing installs a global OpenTelemetry tracer provider so analysis
// spans are recorded and log lines carry trace and span ids. Spans are not
// exported.
func InitTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.TracingEnabled {
		logger.Info("tracing disabled", "reason", "APP_TRACING_ENABLED=false")
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
		attribute.String("deployment.environment", cfg.AppEnv),
	))
	if err != nil {
		return nil, crerr.Wrap(err, "build tracing resource")
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)

	logger.Info("tracing enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)

	return provider.Shutdown, nil
}
