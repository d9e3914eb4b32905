//go:build windows
// +build windows

package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedMutexSingleInstance(t *testing.T) {
	// A throwaway session-local name keeps the test independent from a
	// real running tool and from the SeCreateGlobalPrivilege requirement.
	name := `Local\XTimeResGuardTest`

	first := NewInstanceLocker(name)
	require.NoError(t, first.Lock())

	second := NewInstanceLocker(name)
	assert.ErrorIs(t, second.Lock(), ErrAlreadyRunning)
	assert.NoError(t, second.Unlock())

	require.NoError(t, first.Unlock())
	// Idempotent release.
	require.NoError(t, first.Unlock())

	// Once released, the name is free again.
	third := NewInstanceLocker(name)
	require.NoError(t, third.Lock())
	require.NoError(t, third.Unlock())
}
