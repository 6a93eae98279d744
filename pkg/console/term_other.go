//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package console

// IsTerminal always reports false: colour is only supported on unix.
func IsTerminal(fd uintptr) bool { return false }
