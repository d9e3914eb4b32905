// xtimeres is an interactive tool that adjusts and measures the Windows
// multimedia timer resolution to reduce input latency. It takes no
// arguments; everything happens through the menu on stdin/stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/multierr"

	"github.com/benz9527/xtimeres/guard"
	"github.com/benz9527/xtimeres/measure"
	"github.com/benz9527/xtimeres/menu"
	"github.com/benz9527/xtimeres/observability"
	"github.com/benz9527/xtimeres/timeres"
	"github.com/benz9527/xtimeres/xlog"
)

// MetricsEnvKey turns on the console metrics exporter when set to
// "console". Diagnostics only; the tool itself stays configuration-free.
const MetricsEnvKey = "XTIMERES_METRICS"

const metricsShutdownTimeout = 5 * time.Second

// Failure conditions are communicated via printed text; the process itself
// always exits with a success status.
func main() {
	logger := xlog.NewConsoleLogger("xtimeres")

	locker := guard.NewInstanceLocker(guard.InstanceMutexName)
	if err := locker.Lock(); err != nil {
		if errors.Is(err, guard.ErrAlreadyRunning) {
			fmt.Println("Another instance of this application is already running.")
			fmt.Println("Please close the other instance first.")
		} else {
			logger.Error(err, "failed to acquire the single-instance lock")
			fmt.Println(err)
		}
		menu.WaitForEnter(os.Stdin, os.Stdout)
		return
	}
	// Metrics come up only once the lock is held, so every early exit below
	// runs the deferred drain and the periodic reader never leaks.
	samplerOpts, shutdownMetrics := initMetrics(logger, os.Stderr)
	defer func() {
		// Cleanup is best-effort and surfaces only in diagnostics.
		if err := multierr.Combine(drainMetrics(shutdownMetrics), locker.Unlock()); err != nil {
			logger.Error(err, "cleanup")
		}
		_ = logger.Sync()
	}()

	if !guard.IsElevated() {
		fmt.Println("This application requires administrator privileges.")
		fmt.Println("Please restart the program as administrator.")
		menu.WaitForEnter(os.Stdin, os.Stdout)
		return
	}

	dev := timeres.NewDevice()
	sampler := measure.NewSampler(samplerOpts...)

	loop := menu.NewLoop(os.Stdin, os.Stdout, menu.Actions{
		SetCustom:    func(w io.Writer) { reportSetCustom(w, dev, logger) },
		Measure:      func(w io.Writer) { reportMeasure(w, sampler, logger) },
		ResetDefault: func(w io.Writer) { reportReset(w, dev, logger) },
	})
	if err := loop.Run(); err != nil {
		logger.Error(err, "menu loop terminated")
	}
}

// initMetrics wires the console exporter, the sampler stats, and a one-shot
// host snapshot when MetricsEnvKey asks for them. Both returns are nil when
// metrics are off or unavailable.
func initMetrics(logger *xlog.XLogger, w io.Writer) ([]measure.SamplerOption, func(ctx context.Context) error) {
	if os.Getenv(MetricsEnvKey) != "console" {
		return nil, nil
	}
	shutdown, err := observability.InitConsoleMetrics(
		30*time.Second, metricsShutdownTimeout,
		stdoutmetric.WithWriter(w),
	)
	if err != nil {
		logger.Error(err, "console metrics unavailable")
		return nil, nil
	}
	if snap, err := observability.CaptureHostSnapshot(context.Background()); err == nil {
		logger.Info("host snapshot", snap.Fields()...)
	}
	return []measure.SamplerOption{measure.WithSamplerStats()}, shutdown
}

func drainMetrics(shutdownMetrics func(ctx context.Context) error) error {
	if shutdownMetrics == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	return shutdownMetrics(ctx)
}
