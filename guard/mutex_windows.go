//go:build windows
// +build windows

package guard

// References:
// https://learn.microsoft.com/en-us/windows/win32/api/synchapi/nf-synchapi-createmutexw
// https://learn.microsoft.com/en-us/windows/win32/sync/object-names

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sys/windows"
)

var _ InstanceLocker = (*namedMutex)(nil)

type namedMutex struct {
	name   string
	handle windows.Handle
	held   atomic.Bool
}

// NewInstanceLocker returns a locker over the named, system-global mutex.
// The handle is held for the process lifetime and released by Unlock or,
// failing that, by the OS at process exit.
func NewInstanceLocker(name string) InstanceLocker {
	return &namedMutex{name: name}
}

func (m *namedMutex) Lock() error {
	name16, err := windows.UTF16PtrFromString(m.name)
	if err != nil {
		return err
	}
	handle, err := windows.CreateMutex(nil, false, name16)
	if err != nil {
		// CreateMutex hands back the existing object's handle together
		// with ERROR_ALREADY_EXISTS; that handle must not be kept.
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			if handle != 0 {
				_ = windows.CloseHandle(handle)
			}
			return ErrAlreadyRunning
		}
		return err
	}
	m.handle = handle
	m.held.Store(true)
	return nil
}

func (m *namedMutex) Unlock() error {
	if !m.held.Swap(false) {
		return nil
	}
	// Best-effort release; the OS reclaims the handle at exit anyway.
	_ = windows.CloseHandle(m.handle)
	m.handle = 0
	return nil
}
