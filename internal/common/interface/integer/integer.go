// Released under an MIT license. See LICENSE.

// Package integer converts a cell to an int64 value, if possible.
package integer

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
)

// I (integer) is anything with an exact integer value.
type I interface {
	Int64() int64
}

// Value returns the int64 value for a cell. Only exact integers qualify;
// a real with an integral value is still a type mismatch.
func Value(c cell.I) (int64, error) {
	i, ok := c.(I)
	if !ok {
		return 0, errlogic.TypeMismatch(c, kind.Integer)
	}

	return i.Int64(), nil
}

// Index returns c as an index into the sequence of, of length n.
func Index(c, of cell.I, n int) (int, error) {
	i, err := Value(c)
	if err != nil {
		return 0, err
	}

	if i < 0 || i >= int64(n) {
		return 0, errlogic.Index(of, i, n)
	}

	return int(i), nil
}
