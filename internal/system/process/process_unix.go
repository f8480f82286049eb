// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package process

import (
	"os"

	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var interrupts = []os.Signal{unix.SIGHUP, unix.SIGINT, unix.SIGTERM}

// status follows the shell convention of 128 plus the signal number.
func status(s os.Signal) int {
	if n, ok := s.(unix.Signal); ok {
		return 128 + int(n)
	}

	return 1
}
