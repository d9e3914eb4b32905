package measure

import (
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/samber/lo"

	"github.com/benz9527/xtimeres/lib/hrtime"
)

// DefaultIterations is the sample count of one measurement run.
const DefaultIterations = 100

const (
	defaultNap = time.Millisecond
	// Latencies are tracked in microseconds; 10s is far beyond any
	// plausible scheduler wakeup.
	minTrackableUs = 1
	maxTrackableUs = 10_000_000
)

// Sampler measures the achieved sleep duration against the effective timer
// resolution. All of its dependencies are injectable; the zero-option
// sampler wires the real OS surfaces.
type Sampler struct {
	open     func() (ResolutionQuerier, error)
	newClock func() (hrtime.Clock, error)
	sleep    func(time.Duration)
	nap      time.Duration
	stats    *sampleStats
}

type SamplerOption func(*Sampler)

func WithQuerierOpener(open func() (ResolutionQuerier, error)) SamplerOption {
	return func(s *Sampler) {
		s.open = open
	}
}

func WithClockSource(newClock func() (hrtime.Clock, error)) SamplerOption {
	return func(s *Sampler) {
		s.newClock = newClock
	}
}

func WithSleeper(sleep func(time.Duration), nap time.Duration) SamplerOption {
	return func(s *Sampler) {
		s.sleep = sleep
		s.nap = nap
	}
}

// WithSamplerStats records run metrics through the global otel meter
// provider. Without it the stats receiver stays nil and recording is a no-op.
func WithSamplerStats() SamplerOption {
	return func(s *Sampler) {
		s.stats = newSampleStats()
	}
}

func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{
		open:     OpenNtQuerier,
		newClock: hrtime.NewPerformanceClock,
		sleep:    osSleep,
		nap:      defaultNap,
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s
}

// Result of one measurement run; discarded after printing.
type Result struct {
	Iterations   int
	AvgElapsedMs float64
	Resolution   Resolution
	// Latencies holds the per-round elapsed times in microseconds.
	Latencies *hdrhistogram.Histogram
}

// Run performs iterations rounds of: query the effective resolution, sample
// the high-resolution counter around a nominal 1ms sleep, accumulate the
// elapsed wall time. Any per-round query failure aborts the whole run with
// no partial average. The querier is released on every exit path, once.
func (s *Sampler) Run(iterations int) (*Result, error) {
	if iterations <= 0 {
		return nil, ErrNoSamples
	}
	q, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = q.Close() // Release is best-effort.
	}()

	clock, err := s.newClock()
	if err != nil {
		return nil, err
	}

	hist := hdrhistogram.New(minTrackableUs, maxTrackableUs, 3)
	var (
		totalElapsedMs float64
		last           Resolution
	)
	for i := 0; i < iterations; i++ {
		if last, err = q.Query(); err != nil {
			return nil, err
		}
		start := clock.Now()
		s.sleep(s.nap)
		elapsed := clock.Now() - start
		totalElapsedMs += float64(elapsed) / float64(time.Millisecond)
		_ = hist.RecordValue(lo.Clamp(elapsed.Microseconds(), minTrackableUs, maxTrackableUs))
	}

	// One more snapshot so the report reflects the post-run state; a
	// failure here keeps the last in-loop reading.
	if snap, qerr := q.Query(); qerr == nil {
		last = snap
	}

	avg := totalElapsedMs / float64(iterations)
	s.stats.recordRun(avg)
	return &Result{
		Iterations:   iterations,
		AvgElapsedMs: avg,
		Resolution:   last,
		Latencies:    hist,
	}, nil
}
