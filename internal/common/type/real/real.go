// Released under an MIT license. See LICENSE.

// Package real provides the inexact real number type. The precision of a
// real is fixed by its type parameter.
package real //nolint:predeclared

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/ruschm/ruschm/internal/common"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/interface/number"
)

const name = "real"

// Float is the set of types that can be used to represent a real.
type Float interface {
	~float32 | ~float64
}

// I (real) is satisfied by reals of any precision.
type I interface {
	number.I
	Precision() int
}

// T (real) wraps a floating-point value of precision F.
type T[F Float] struct {
	v F
}

// New creates a new real cell.
func New[F Float](v F) *T[F] {
	return &T[F]{v: v}
}

// Equal returns true if c is a real with the same precision and value.
// NaN is not equal to anything, including itself.
func (r *T[F]) Equal(c cell.I) bool {
	o, ok := c.(*T[F])

	return ok && r.v == o.v
}

// Exact returns false. Reals are inexact.
func (r *T[F]) Exact() bool {
	return false
}

// Float64 returns the value of the real r as a float64.
func (r *T[F]) Float64() float64 {
	return float64(r.v)
}

// Literal returns the literal representation of the real r.
func (r *T[F]) Literal() string {
	return r.String()
}

// Name returns the type name for the real r.
func (r *T[F]) Name() string {
	return name
}

// Precision returns the number of bits used to represent r.
func (r *T[F]) Precision() int {
	return int(unsafe.Sizeof(r.v)) * 8
}

// String returns the text of the real r.
func (r *T[F]) String() string {
	f := float64(r.v)

	switch {
	case math.IsNaN(f):
		return "+nan.0"
	case math.IsInf(f, 1):
		return "+inf.0"
	case math.IsInf(f, -1):
		return "-inf.0"
	}

	s := strconv.FormatFloat(f, 'g', -1, r.Precision())
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}

	return s
}

// Value returns the underlying value of the real r.
func (r *T[F]) Value() F {
	return r.v
}

// Is returns true if c is a real of any precision.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T[float64]

	// The real type is a cell.
	_ = cell.I(&t)

	// The real type has a literal representation.
	_ = literal.I(&t)

	// The real type is a number.
	_ = I(&t)

	// The real type is a stringer.
	_ = common.Stringer(&t)
}
