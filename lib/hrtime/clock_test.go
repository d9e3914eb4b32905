package hrtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSdkClockMonotonic(t *testing.T) {
	clock := NewSdkClock()
	t1 := clock.Now()
	time.Sleep(20 * time.Millisecond)
	t2 := clock.Now()
	assert.Greater(t, t2, t1)
	assert.GreaterOrEqual(t, (t2 - t1).Milliseconds(), int64(15))
}

func TestPerformanceClock(t *testing.T) {
	clock, err := NewPerformanceClock()
	require.NoError(t, err)
	t1 := clock.Now()
	time.Sleep(20 * time.Millisecond)
	elapsed := clock.Now() - t1
	t.Log("elapsed", elapsed)
	assert.GreaterOrEqual(t, elapsed.Milliseconds(), int64(15))
}
