package timeres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	caps     Capabilities
	capsErr  error
	beginErr error
	endErr   error
	calls    []string
	begins   []uint32
	ends     []uint32
}

func (d *fakeDevice) Capabilities() (Capabilities, error) {
	d.calls = append(d.calls, "caps")
	if d.capsErr != nil {
		return Capabilities{}, d.capsErr
	}
	return d.caps, nil
}

func (d *fakeDevice) BeginPeriod(periodMs uint32) error {
	d.calls = append(d.calls, "begin")
	d.begins = append(d.begins, periodMs)
	return d.beginErr
}

func (d *fakeDevice) EndPeriod(periodMs uint32) error {
	d.calls = append(d.calls, "end")
	d.ends = append(d.ends, periodMs)
	return d.endErr
}

func TestApplyClampPolicy(t *testing.T) {
	testcases := []struct {
		name       string
		caps       Capabilities
		target     uint32
		wantMs     uint32
		wantBranch Branch
	}{
		{"exact within range", Capabilities{MinPeriodMs: 1, MaxPeriodMs: 1000000}, 1, 1, BranchExact},
		{"exact at minimum", Capabilities{MinPeriodMs: 1, MaxPeriodMs: 16}, 1, 1, BranchExact},
		{"exact at maximum", Capabilities{MinPeriodMs: 1, MaxPeriodMs: 16}, 16, 16, BranchExact},
		{"clamp up to minimum", Capabilities{MinPeriodMs: 2, MaxPeriodMs: 1000000}, 1, 2, BranchClampedToMin},
		{"clamp up far", Capabilities{MinPeriodMs: 15, MaxPeriodMs: 1000000}, 1, 15, BranchClampedToMin},
		{"clamp down to maximum", Capabilities{MinPeriodMs: 1, MaxPeriodMs: 8}, 16, 8, BranchClampedToMax},
		{"degenerate single value", Capabilities{MinPeriodMs: 5, MaxPeriodMs: 5}, 1, 5, BranchClampedToMin},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			dev := &fakeDevice{caps: tc.caps}
			out, err := Apply(dev, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.wantBranch, out.Branch)
			assert.Equal(t, tc.wantMs, out.AppliedMs)
			assert.Equal(t, tc.target, out.RequestedMs)
			assert.Equal(t, tc.caps, out.Caps)
			// Exactly one begin request, for exactly the clamped value.
			require.Equal(t, []uint32{tc.wantMs}, dev.begins)
		})
	}
}

func TestApplyCapabilitiesFailure(t *testing.T) {
	dev := &fakeDevice{capsErr: ErrCapabilitiesQuery}
	_, err := Apply(dev, DefaultTargetMs)
	assert.ErrorIs(t, err, ErrCapabilitiesQuery)
	// No period request after a failed capability query.
	assert.Empty(t, dev.begins)
}

func TestApplyBeginFailure(t *testing.T) {
	dev := &fakeDevice{
		caps:     Capabilities{MinPeriodMs: 1, MaxPeriodMs: 1000000},
		beginErr: TimerErr("rejected"),
	}
	_, err := Apply(dev, DefaultTargetMs)
	assert.Error(t, err)
}

func TestResetToDefaultOrdering(t *testing.T) {
	dev := &fakeDevice{}
	require.NoError(t, ResetToDefault(dev))
	// End of the 1ms-class request always precedes the 16ms begin.
	assert.Equal(t, []string{"end", "begin"}, dev.calls)
	assert.Equal(t, []uint32{DefaultTargetMs}, dev.ends)
	assert.Equal(t, []uint32{DefaultResetMs}, dev.begins)
}

func TestResetToDefaultIgnoresEndFailure(t *testing.T) {
	dev := &fakeDevice{endErr: TimerErr("no outstanding period")}
	require.NoError(t, ResetToDefault(dev))
	assert.Equal(t, []string{"end", "begin"}, dev.calls)
}

func TestResetToDefaultReportsBeginFailure(t *testing.T) {
	dev := &fakeDevice{beginErr: TimerErr("rejected")}
	assert.Error(t, ResetToDefault(dev))
}

func TestBranchString(t *testing.T) {
	assert.Equal(t, "exact", BranchExact.String())
	assert.Equal(t, "clamped-to-min", BranchClampedToMin.String())
	assert.Equal(t, "clamped-to-max", BranchClampedToMax.String())
}
