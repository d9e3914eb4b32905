//go:build !windows
// +build !windows

package measure

import "time"

// OpenNtQuerier reports the capability as absent outside Windows.
func OpenNtQuerier() (ResolutionQuerier, error) {
	return nil, ErrUnsupportedPlatform
}

func osSleep(d time.Duration) {
	time.Sleep(d)
}
