//go:build windows
// +build windows

package guard

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token carries administrator
// privilege. Any token open or query failure reads as not elevated rather
// than as an error; without elevation the timer-period requests are
// rejected by the OS anyway.
func IsElevated() bool {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false
	}
	defer token.Close()
	return token.IsElevated()
}
