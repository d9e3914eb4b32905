package measure

// Resolution is a snapshot of the effective timer resolution, converted
// from the platform's native 100-nanosecond units to milliseconds.
type Resolution struct {
	CurrentMs float64
	MinMs     float64
	MaxMs     float64
}

// ResolutionQuerier reads the currently effective timer resolution through
// a dynamically resolved system entry point. It is an optional capability:
// opening one can fail on platform versions that do not export the routine,
// and that is a recoverable condition, never a crash. Close releases the
// loaded library and must be called on every exit path, exactly once.
type ResolutionQuerier interface {
	Query() (Resolution, error)
	Close() error
}

type MeasureErr string

// The user-facing failure texts double as the sentinel errors; the menu
// layer prints them verbatim.
const (
	ErrLibraryLoad         MeasureErr = "LoadLibrary failed"
	ErrSymbolResolve       MeasureErr = "Failed to load NtQueryTimerResolution"
	ErrResolutionQuery     MeasureErr = "NtQueryTimerResolution failed"
	ErrNoSamples           MeasureErr = "measurement needs at least one iteration"
	ErrUnsupportedPlatform MeasureErr = "timer resolution measurement requires windows"
)

func (err MeasureErr) Error() string {
	return string(err)
}

// One millisecond expressed in the native 100ns resolution units.
const hundredNsPerMs = 10000.0
