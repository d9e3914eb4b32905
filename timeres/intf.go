package timeres

// Capabilities is an immutable snapshot of the supported multimedia timer
// period range, read from the OS once per query.
type Capabilities struct {
	MinPeriodMs uint32
	MaxPeriodMs uint32
}

// Device is the multimedia timer period control surface.
type Device interface {
	Capabilities() (Capabilities, error)
	BeginPeriod(periodMs uint32) error
	EndPeriod(periodMs uint32) error
}

type TimerErr string

const (
	ErrCapabilitiesQuery   TimerErr = "failed to query timer capabilities"
	ErrUnsupportedPlatform TimerErr = "multimedia timer control requires windows"
)

func (err TimerErr) Error() string {
	return string(err)
}
