package measure

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// String renders the average line followed by a latency distribution table.
// The first line's wording is load-bearing: existing scripts scrape it.
func (r *Result) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf,
		"Average over %d iterations: %.3fms (Resolution: %.3fms, Min: %.3fms, Max: %.3fms)\n",
		r.Iterations, r.AvgElapsedMs,
		r.Resolution.CurrentMs, r.Resolution.MinMs, r.Resolution.MaxMs)

	if r.Latencies == nil {
		return buf.String()
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Percentile", "Sleep (ms)"})
	for _, p := range []float64{50, 90, 99, 100} {
		ms := float64(r.Latencies.ValueAtQuantile(p)) / 1000.0
		table.Append([]string{
			"p" + strconv.FormatFloat(p, 'f', -1, 64),
			strconv.FormatFloat(ms, 'f', 3, 64),
		})
	}
	table.Render()

	return buf.String()
}
