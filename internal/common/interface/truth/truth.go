// Released under an MIT license. See LICENSE.

// Package truth defines the interface for values that have a truth value.
package truth

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Only values that say otherwise
// are false. Everything else, including the empty list and zero, is true.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
