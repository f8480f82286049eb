// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where tokens came from.
// The evaluator also uses it to remember the location of the form it is
// currently evaluating so that errors can be decorated.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this token.
	Text string // The text at this location.
}

type loc = T

func (l *loc) String() string {
	name := l.Name
	if name == "" {
		name = "-"
	}

	return name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
