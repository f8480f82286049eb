// Released under an MIT license. See LICENSE.

// Package literal defines the interface for values that have a written form.
package literal

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	if c == nil {
		return "#<nil>"
	}

	l, ok := c.(I)
	if !ok {
		// Engine-internal cells have no written form.
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
