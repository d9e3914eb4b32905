package measure

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const sampleStatsName = "xtimeres/measure"

// sampleStats publishes run metrics through the global meter provider.
// Every method tolerates a nil receiver so the sampler can stay silent when
// stats were never enabled.
type sampleStats struct {
	runCount     metric.Int64Counter
	avgElapsedMs metric.Float64Histogram
}

func newSampleStats() *sampleStats {
	meter := otel.Meter(sampleStatsName)
	return &sampleStats{
		runCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"measure.runs",
			metric.WithDescription(`The completed measurement runs.`),
		)),
		avgElapsedMs: lo.Must[metric.Float64Histogram](meter.Float64Histogram(
			"measure.sleep.avg.ms",
			metric.WithDescription(`The mean achieved 1ms-sleep duration per run.`),
			metric.WithUnit("ms"),
		)),
	}
}

func (stats *sampleStats) recordRun(avgMs float64) {
	if stats == nil {
		return
	}
	stats.runCount.Add(context.Background(), 1)
	stats.avgElapsedMs.Record(context.Background(), avgMs)
}
