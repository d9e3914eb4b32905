//go:build windows
// +build windows

package measure

import (
	"time"

	"golang.org/x/sys/windows"
)

// osSleep goes through SleepEx instead of time.Sleep: the Go runtime may
// satisfy short sleeps with a high-resolution waitable timer, which would
// hide the very scheduler granularity the measurement is probing.
func osSleep(d time.Duration) {
	windows.SleepEx(uint32(d.Milliseconds()), false)
}
