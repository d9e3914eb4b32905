//go:build !windows
// +build !windows

package guard

var _ InstanceLocker = (*unsupportedLocker)(nil)

type unsupportedLocker struct{}

func NewInstanceLocker(string) InstanceLocker {
	return unsupportedLocker{}
}

func (unsupportedLocker) Lock() error {
	return ErrUnsupportedPlatform
}

func (unsupportedLocker) Unlock() error {
	return nil
}
