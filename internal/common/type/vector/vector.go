// Released under an MIT license. See LICENSE.

// Package vector provides the fixed-length, mutable vector type.
package vector

import (
	"strings"

	"github.com/ruschm/ruschm/internal/common"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
)

const name = "vector"

// T (vector) is a fixed-length sequence of cells.
type T struct {
	items []cell.I
}

type vector = T

// New creates a new vector that owns items.
func New(items ...cell.I) *vector {
	if items == nil {
		items = []cell.I{}
	}

	return &vector{items: items}
}

// Make creates a new vector of length n with every element set to fill.
func Make(n int, fill cell.I) *vector {
	v := &vector{items: make([]cell.I, n)}
	v.Fill(fill)

	return v
}

// Copy returns a new vector with the same elements as v.
func (v *vector) Copy() *vector {
	return New(append([]cell.I(nil), v.items...)...)
}

// Equal returns true if c is a vector with elements equal to v's.
func (v *vector) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(o.items) != len(v.items) {
		return false
	}

	for i, e := range v.items {
		if !e.Equal(o.items[i]) {
			return false
		}
	}

	return true
}

// Fill sets every element of v to c.
func (v *vector) Fill(c cell.I) {
	for i := range v.items {
		v.items[i] = c
	}
}

// Items returns the elements of v. The slice is shared with v.
func (v *vector) Items() []cell.I {
	return v.items
}

// Len returns the number of elements in v.
func (v *vector) Len() int {
	return len(v.items)
}

// Literal returns the literal representation of the vector v.
func (v *vector) Literal() string {
	return v.text(literal.String)
}

// Name returns the name of the vector type.
func (v *vector) Name() string {
	return name
}

// Ref returns the element at index i.
func (v *vector) Ref(i int) cell.I {
	return v.items[i]
}

// Set sets the element at index i to c.
func (v *vector) Set(i int, c cell.I) {
	v.items[i] = c
}

// String returns the text representation of the vector v.
func (v *vector) String() string {
	return v.text(common.String)
}

func (v *vector) text(repr func(cell.I) string) string {
	s := make([]string, len(v.items))
	for i, e := range v.items {
		s[i] = repr(e)
	}

	return "#(" + strings.Join(s, " ") + ")"
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

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vector

	// The vector type is a cell.
	_ = cell.I(&t)

	// The vector type has a literal representation.
	_ = literal.I(&t)

	// The vector type is a stringer.
	_ = common.Stringer(&t)
}
