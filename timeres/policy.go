package timeres

import "github.com/samber/lo"

const (
	// DefaultTargetMs is the low-latency period the tool asks for.
	DefaultTargetMs uint32 = 1
	// DefaultResetMs approximates the OS default scheduler granularity
	// of ~15.6ms.
	DefaultResetMs uint32 = 16
)

// Branch identifies which arm of the clamping policy was taken.
type Branch int8

const (
	BranchExact Branch = iota
	BranchClampedToMin
	BranchClampedToMax
)

func (b Branch) String() string {
	switch b {
	case BranchClampedToMin:
		return "clamped-to-min"
	case BranchClampedToMax:
		return "clamped-to-max"
	default:
		return "exact"
	}
}

// Outcome reports what Apply actually requested from the OS.
type Outcome struct {
	Caps        Capabilities
	Branch      Branch
	RequestedMs uint32
	AppliedMs   uint32
}

// Apply requests the target period, clamped into the device's supported
// range: a target below the minimum is raised to the minimum, one above the
// maximum is lowered to the maximum, anything in range is requested as-is.
// The Outcome records which branch was taken so the caller can report it.
func Apply(dev Device, targetMs uint32) (Outcome, error) {
	caps, err := dev.Capabilities()
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{
		Caps:        caps,
		RequestedMs: targetMs,
		AppliedMs:   lo.Clamp(targetMs, caps.MinPeriodMs, caps.MaxPeriodMs),
	}
	switch {
	case targetMs < caps.MinPeriodMs:
		out.Branch = BranchClampedToMin
	case targetMs > caps.MaxPeriodMs:
		out.Branch = BranchClampedToMax
	default:
		out.Branch = BranchExact
	}
	if err = dev.BeginPeriod(out.AppliedMs); err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// ResetToDefault ends any outstanding low-period request before asking for
// the default granularity again. The end call is best-effort: it fails
// harmlessly when no matching begin is outstanding.
func ResetToDefault(dev Device) error {
	_ = dev.EndPeriod(DefaultTargetMs)
	return dev.BeginPeriod(DefaultResetMs)
}
