//go:build !windows
// +build !windows

package guard

// IsElevated always reports false outside Windows; there is no elevated
// token concept to query and the tool refuses to run anyway.
func IsElevated() bool {
	return false
}
