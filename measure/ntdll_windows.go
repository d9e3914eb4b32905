//go:build windows
// +build windows

package measure

// NtQueryTimerResolution is undocumented and not part of the static API
// surface, so it is resolved by name from an explicitly loaded ntdll.dll
// mapping that the querier owns until Close.
//
// NTSTATUS NtQueryTimerResolution(
//
//	PULONG MinimumResolution,
//	PULONG MaximumResolution,
//	PULONG CurrentResolution
//
// );

import (
	"sync/atomic"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const ntStatusSuccess = 0

var _ ResolutionQuerier = (*ntQuerier)(nil)

type ntQuerier struct {
	module windows.Handle
	proc   uintptr
	closed atomic.Bool
}

// OpenNtQuerier loads ntdll.dll and resolves NtQueryTimerResolution. The
// underlying OS errors are deliberately collapsed into the two sentinel
// errors; there is nothing actionable in them for the user.
func OpenNtQuerier() (ResolutionQuerier, error) {
	module, err := windows.LoadLibraryEx("ntdll.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, ErrLibraryLoad
	}
	proc, err := windows.GetProcAddress(module, "NtQueryTimerResolution")
	if err != nil {
		_ = windows.FreeLibrary(module)
		return nil, ErrSymbolResolve
	}
	return &ntQuerier{module: module, proc: proc}, nil
}

func (q *ntQuerier) Query() (Resolution, error) {
	var minRes, maxRes, curRes uint32
	status, _, _ := syscall.SyscallN(q.proc,
		uintptr(unsafe.Pointer(&minRes)),
		uintptr(unsafe.Pointer(&maxRes)),
		uintptr(unsafe.Pointer(&curRes)),
	)
	if status != ntStatusSuccess {
		return Resolution{}, ErrResolutionQuery
	}
	return Resolution{
		CurrentMs: float64(curRes) / hundredNsPerMs,
		MinMs:     float64(minRes) / hundredNsPerMs,
		MaxMs:     float64(maxRes) / hundredNsPerMs,
	}, nil
}

func (q *ntQuerier) Close() error {
	if q.closed.Swap(true) {
		return nil
	}
	return windows.FreeLibrary(q.module)
}
