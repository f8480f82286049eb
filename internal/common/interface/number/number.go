// Released under an MIT license. See LICENSE.

// Package number defines the interface shared by the numeric types.
package number

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
)

// I (number) is anything that can be used in a numeric context.
type I interface {
	Exact() bool
	Float64() float64
}

// Is returns true if c is a number.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}
