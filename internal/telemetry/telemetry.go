package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KignLeon/hpcf-website/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func InitMeterProvider(ctx context.Context, endpoint, serviceName, serviceVersion string, logger *slog.Logger) (*metric.MeterProvider, error) {
	logger.Info("initializing OTel metrics", "endpoint", endpoint)

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(metricExporter,
			metric.WithInterval(10*time.Second))),
	)

	otel.SetMeterProvider(meterProvider)
	logger.Info("OTel metrics initialized successfully")

	return meterProvider, nil
}

// Telemetry holds the meter provider, nil when export is disabled, and the
// application instruments.
type Telemetry struct {
	MeterProvider *metric.MeterProvider
	Metrics       *metrics.Metrics
}

// Init wires metrics. Without an endpoint the global no-op meter is used, so
// instruments stay callable but nothing leaves the process.
func Init(ctx context.Context, endpoint, serviceName, serviceVersion, env string, logger *slog.Logger) (*Telemetry, error) {
	t := &Telemetry{}

	if endpoint != "" {
		meterProvider, err := InitMeterProvider(ctx, endpoint, serviceName, serviceVersion, logger)
		if err != nil {
			return nil, err
		}
		t.MeterProvider = meterProvider
	} else {
		logger.Info("OTel metrics export disabled")
	}

	meter := otel.Meter(serviceName)

	m, err := metrics.New(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	t.Metrics = m

	if err := metrics.RegisterRuntime(meter); err != nil {
		logger.Warn("failed to register runtime metrics", "error", err)
	}
	if err := metrics.RegisterServiceInfo(meter, serviceName, serviceVersion, env); err != nil {
		logger.Warn("failed to register service info", "error", err)
	}

	return t, nil
}

func (t *Telemetry) Shutdown(ctx context.Context, logger *slog.Logger) error {
	if t == nil || t.MeterProvider == nil {
		return nil
	}

	logger.Info("shutting down OTel meter provider")
	if err := t.MeterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	return nil
}
