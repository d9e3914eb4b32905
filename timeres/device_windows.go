//go:build windows
// +build windows

package timeres

// References:
// https://learn.microsoft.com/en-us/windows/win32/api/timeapi/nf-timeapi-timegetdevcaps
// https://learn.microsoft.com/en-us/windows/win32/api/timeapi/nf-timeapi-timebeginperiod

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	winmm              = windows.NewLazySystemDLL("winmm.dll")
	procTimeGetDevCaps = winmm.NewProc("timeGetDevCaps")
)

// MMRESULT success value (TIMERR_NOERROR).
const timerrNoError = 0

// MMRESULT timeGetDevCaps(
//
//	LPTIMECAPS ptc,
//	UINT       cbtc
//
// );
type timeCaps struct {
	wPeriodMin uint32
	wPeriodMax uint32
}

var _ Device = (*mmDevice)(nil)

type mmDevice struct{}

// NewDevice returns the multimedia timer device backed by winmm.dll.
func NewDevice() Device {
	return mmDevice{}
}

func (mmDevice) Capabilities() (Capabilities, error) {
	var caps timeCaps
	r1, _, _ := procTimeGetDevCaps.Call(
		uintptr(unsafe.Pointer(&caps)),
		unsafe.Sizeof(caps),
	)
	if r1 != timerrNoError {
		return Capabilities{}, ErrCapabilitiesQuery
	}
	return Capabilities{MinPeriodMs: caps.wPeriodMin, MaxPeriodMs: caps.wPeriodMax}, nil
}

func (mmDevice) BeginPeriod(periodMs uint32) error {
	return windows.TimeBeginPeriod(periodMs)
}

func (mmDevice) EndPeriod(periodMs uint32) error {
	return windows.TimeEndPeriod(periodMs)
}
