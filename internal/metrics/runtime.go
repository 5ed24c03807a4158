package metrics

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RegisterRuntime registers observable gauges for the Go runtime and process uptime.
func RegisterRuntime(meter metric.Meter) error {
	startTime := time.Now()

	goroutines, err := meter.Int64ObservableGauge(
		"runtime.go.goroutines",
		metric.WithDescription("Number of goroutines"),
		metric.WithUnit("{goroutine}"),
	)
	if err != nil {
		return err
	}

	heapAlloc, err := meter.Int64ObservableGauge(
		"runtime.go.mem.heap_alloc",
		metric.WithDescription("Bytes of allocated heap objects"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return err
	}

	gcCount, err := meter.Int64ObservableCounter(
		"runtime.go.gc.count",
		metric.WithDescription("Number of completed GC cycles"),
		metric.WithUnit("{gc}"),
	)
	if err != nil {
		return err
	}

	uptime, err := meter.Float64ObservableCounter(
		"service.uptime",
		metric.WithDescription("Service uptime in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(
		func(ctx context.Context, observer metric.Observer) error {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			observer.ObserveInt64(goroutines, int64(runtime.NumGoroutine()))
			observer.ObserveInt64(heapAlloc, int64(m.HeapAlloc))
			observer.ObserveInt64(gcCount, int64(m.NumGC))
			observer.ObserveFloat64(uptime, time.Since(startTime).Seconds())
			return nil
		},
		goroutines,
		heapAlloc,
		gcCount,
		uptime,
	)
	return err
}

// RegisterServiceInfo exposes a constant gauge carrying service metadata as labels.
func RegisterServiceInfo(meter metric.Meter, serviceName, version, env string) error {
	serviceInfo, err := meter.Int64ObservableGauge(
		"service.info",
		metric.WithDescription("Service metadata information"),
		metric.WithUnit("{info}"),
	)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(
		func(ctx context.Context, observer metric.Observer) error {
			observer.ObserveInt64(serviceInfo, 1, metric.WithAttributes(
				attribute.String("service_name", serviceName),
				attribute.String("version", version),
				attribute.String("environment", env),
			))
			return nil
		},
		serviceInfo,
	)
	return err
}
