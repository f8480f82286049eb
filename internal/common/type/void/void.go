// Released under an MIT license. See LICENSE.

// Package void provides the unspecified value.
package void

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
)

const name = "void"

// T (void) is the type of the value returned when no value is specified.
type T struct{}

// Void is the only instance of T.
var Void cell.I = &T{} //nolint:gochecknoglobals

// Equal returns true if c is void.
func (v *T) Equal(c cell.I) bool {
	return c == Void
}

// Literal returns the literal representation of void.
func (v *T) Literal() string {
	return "#<void>"
}

// Name returns the name of the void type.
func (v *T) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The void type is a cell.
	_ = cell.I(&t)

	// The void type has a literal representation.
	_ = literal.I(&t)
}
