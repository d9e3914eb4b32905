//go:build windows
// +build windows

// High-resolution time for Windows.

package hrtime

// References:
// https://learn.microsoft.com/en-us/windows/win32/sysinfo/acquiring-high-resolution-time-stamps
// https://learn.microsoft.com/en-us/windows/win32/api/profileapi/nf-profileapi-queryperformancefrequency
// https://learn.microsoft.com/en-us/windows/win32/api/profileapi/nf-profileapi-queryperformancecounter

import (
	"errors"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	// Load windows dynamic link library.
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	// Find windows dynamic link library functions.
	procQPF = kernel32.NewProc("QueryPerformanceFrequency")
	procQPC = kernel32.NewProc("QueryPerformanceCounter")
)

// BOOL QueryPerformanceFrequency(
//
//	[out] LARGE_INTEGER *lpFrequency
//
// );
func queryFrequency() (int64, error) {
	var freq int64
	r1, _, err := procQPF.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 != 1 || freq <= 0 {
		if err != nil && !errors.Is(err, windows.SEVERITY_SUCCESS) {
			return 0, err
		}
		return 0, ErrPerformanceFrequencyQuery
	}
	return freq, nil
}

// BOOL QueryPerformanceCounter(
//
//	[out] LARGE_INTEGER *lpPerformanceCount
//
// );
// In multi-cores CPU, the counter may not be strictly consistent across
// cores (interrupt delays, DVFS, core-to-core scheduling). Good enough for
// millisecond-scale sleep measurement.
func queryCounter() (int64, error) {
	var counter int64
	r1, _, err := procQPC.Call(uintptr(unsafe.Pointer(&counter)))
	if r1 != 1 {
		if err != nil && !errors.Is(err, windows.SEVERITY_SUCCESS) {
			return 0, err
		}
		return 0, ErrPerformanceCounterQuery
	}
	return counter, nil
}

type qpcClock struct {
	baseProcFreq    int64
	baseProcCounter int64
}

// NewPerformanceClock returns a Clock backed by the Windows high-resolution
// performance counter. The counter frequency is fixed at boot, so it is
// sampled once at construction.
func NewPerformanceClock() (Clock, error) {
	freq, err := queryFrequency()
	if err != nil {
		return nil, err
	}
	base, err := queryCounter()
	if err != nil {
		return nil, err
	}
	return &qpcClock{baseProcFreq: freq, baseProcCounter: base}, nil
}

func (c *qpcClock) Now() time.Duration {
	// Counter failures after a successful construction are effectively
	// impossible; a zero reading keeps Now total instead of panicking.
	counter, err := queryCounter()
	if err != nil {
		return 0
	}
	return time.Duration(counter-c.baseProcCounter) * time.Second / (time.Duration(c.baseProcFreq) * time.Nanosecond)
}
