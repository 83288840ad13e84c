package infra

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"tasklog.dev/backend/internal/app/appconfig"
	"tasklog.dev/backend/internal/pkg/bininfo"
)

// Tracing returns the global tracer provider. With tracing enabled, spans are exported
// in the stdout exporter format to conf.TracingOutput.
func Tracing(conf *appconfig.Config, lc fx.Lifecycle) (trace.TracerProvider, error) {
	if !conf.TracingEnabled {
		return otel.GetTracerProvider(), nil
	}

	var out io.Writer = os.Stdout
	if conf.TracingOutput != "" {
		f, err := os.OpenFile(conf.TracingOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open tracing output")
		}
		out = f
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return f.Close()
			},
		})
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create trace exporter")
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(bininfo.Name),
			semconv.ServiceVersionKey.String(bininfo.Version),
		)),
	)
	otel.SetTracerProvider(tp)

	// registered after the file hook so spans are flushed before the file is closed
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	log.Info().Str("evt.name", "infra.tracing.enabled").Str("output", conf.TracingOutput).Msg("tracing enabled")

	return tp, nil
}
