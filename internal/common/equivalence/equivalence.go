// Released under an MIT license. See LICENSE.

// Package equivalence implements the three equivalence predicates.
package equivalence

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/common/type/vector"
)

// Eq returns true if a and b are the same object. Numbers and characters
// with the same exactness and value are the same object.
func Eq(a, b cell.I) bool {
	return Eqv(a, b)
}

// Eqv returns true if a and b are the same object or are atoms of the same
// type with the same value.
func Eqv(a, b cell.I) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil || mutable(a) {
		return false
	}

	return a.Equal(b)
}

// Equal returns true if a and b have the same structure and contents.
func Equal(a, b cell.I) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	return a.Equal(b)
}

func mutable(c cell.I) bool {
	return pair.Is(c) || str.Is(c) || vector.Is(c)
}
