package hrtime

import "time"

// Clock is a monotonic clock for measuring elapsed wall time. Now reports
// the duration elapsed since the clock was constructed; only differences
// between two readings are meaningful.
type Clock interface {
	Now() time.Duration
}

type ClockErr string

const (
	ErrPerformanceFrequencyQuery ClockErr = "QueryPerformanceFrequency failed"
	ErrPerformanceCounterQuery   ClockErr = "QueryPerformanceCounter failed"
)

func (err ClockErr) Error() string {
	return string(err)
}

// NewSdkClock returns a Clock on the Go runtime clock. It is the portable
// fallback; its resolution is bounded by the platform scheduler granularity.
func NewSdkClock() Clock {
	return &sdkClock{start: time.Now()}
}

type sdkClock struct {
	start time.Time
}

func (c *sdkClock) Now() time.Duration {
	return time.Since(c.start)
}
