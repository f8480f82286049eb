// Released under an MIT license. See LICENSE.

// Package integer provides the fixed-width exact integer type.
package integer

import (
	"strconv"

	"github.com/ruschm/ruschm/internal/common"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/interface/number"
)

const name = "integer"

// T (integer) wraps Go's int64 type.
type T int64

type integer = T

// New creates a new integer cell.
func New(i int64) *integer {
	v := integer(i)

	return &v
}

// Int creates an integer cell from the int i.
func Int(i int) *integer {
	return New(int64(i))
}

// Equal returns true if c is an integer with the same value.
// An integer is never equal to a real, even one with the same value.
func (i *integer) Equal(c cell.I) bool {
	return Is(c) && *i == *To(c)
}

// Exact returns true. Integers are exact.
func (i *integer) Exact() bool {
	return true
}

// Float64 returns the value of the integer i as a float64.
func (i *integer) Float64() float64 {
	return float64(*i)
}

// Int64 returns the value of the integer i.
func (i *integer) Int64() int64 {
	return int64(*i)
}

// Literal returns the literal representation of the integer i.
func (i *integer) Literal() string {
	return i.String()
}

// Name returns the type name for the integer i.
func (i *integer) Name() string {
	return name
}

// String returns the text of the integer i.
func (i *integer) String() string {
	return strconv.FormatInt(int64(*i), 10)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a cell.
	_ = cell.I(&t)

	// The integer type has a literal representation.
	_ = literal.I(&t)

	// The integer type is a number.
	_ = number.I(&t)

	// The integer type is a stringer.
	_ = common.Stringer(&t)
}
