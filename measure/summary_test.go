package measure

import (
	"strings"
	"testing"

	"github.com/codahale/hdrhistogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStringAverageLine(t *testing.T) {
	res := &Result{
		Iterations:   100,
		AvgElapsedMs: 1.9987,
		Resolution:   Resolution{CurrentMs: 0.9766, MinMs: 15.625, MaxMs: 0.5},
	}
	out := res.String()
	require.True(t, strings.HasPrefix(out,
		"Average over 100 iterations: 1.999ms (Resolution: 0.977ms, Min: 15.625ms, Max: 0.500ms)\n"),
		"got: %q", out)
	// Without a histogram there is nothing else to render.
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestResultStringDistributionTable(t *testing.T) {
	hist := hdrhistogram.New(minTrackableUs, maxTrackableUs, 3)
	for _, us := range []int64{900, 1000, 1100, 1500, 4000} {
		require.NoError(t, hist.RecordValue(us))
	}
	res := &Result{
		Iterations:   5,
		AvgElapsedMs: 1.7,
		Latencies:    hist,
	}
	out := res.String()
	assert.Contains(t, out, "PERCENTILE")
	assert.Contains(t, out, "SLEEP (MS)")
	for _, label := range []string{"p50", "p90", "p99", "p100"} {
		assert.Contains(t, out, label)
	}
}
