package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"time"

	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// InitConsoleMetrics installs a periodic console metrics exporter as the
// global meter provider and returns its shutdown callback. Callers should
// point the exporter at stderr (stdoutmetric.WithWriter) when stdout is an
// interactive protocol.
func InitConsoleMetrics(interval, timeout time.Duration, opts ...stdoutmetric.Option) (func(ctx context.Context) error, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	otel.SetMeterProvider(mp)
	// Go runtime metrics (GC pauses, goroutine counts) give context to the
	// timing samples, since the collector's own scheduler activity can
	// perturb them.
	_ = otelruntime.Start()
	return mp.Shutdown, nil
}
