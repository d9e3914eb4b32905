package guard

// InstanceLocker owns a system-global named lock marking one live instance
// of the tool. Acquisition is all-or-nothing: when the lock is already held
// by another process the caller gets ErrAlreadyRunning, no waiting, no retry.
type InstanceLocker interface {
	Lock() error
	Unlock() error
}

type GuardErr string

const (
	ErrAlreadyRunning      GuardErr = "another instance is already running"
	ErrUnsupportedPlatform GuardErr = "the single-instance guard requires windows"
)

func (err GuardErr) Error() string {
	return string(err)
}

// InstanceMutexName is the entire cross-process protocol: the fixed name of
// the global mutual-exclusion object that identifies a running instance.
const InstanceMutexName = `Global\InputLagApplicationMutex`
