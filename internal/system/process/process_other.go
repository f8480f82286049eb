// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package process

import (
	"os"
)

//nolint:gochecknoglobals
var interrupts = []os.Signal{os.Interrupt}

func status(os.Signal) int {
	return 1
}
