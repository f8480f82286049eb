// Released under an MIT license. See LICENSE.

// Package pair provides the mutable cons cell type.
package pair

import (
	"strings"

	"github.com/ruschm/ruschm/internal/common"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
)

const name = "pair"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	// Null is not a pair: Is(Null) is false.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return c == cell.I(p)
	}

	var l cell.I = p

	for Is(l) && Is(c) {
		if !Car(l).Equal(Car(c)) {
			return false
		}

		l, c = Cdr(l), Cdr(c)
	}

	if Is(l) || Is(c) {
		return false
	}

	return l.Equal(c)
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	return p.text(literal.String)
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "null"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.text(common.String)
}

func (p *pair) text(repr func(cell.I) string) string {
	if p == Null {
		return "()"
	}

	var b strings.Builder

	b.WriteByte('(')

	var l cell.I = p

	slow := l

	for n := 1; ; n++ {
		b.WriteString(repr(Car(l)))

		l = Cdr(l)
		if l == Null {
			break
		}

		if !Is(l) {
			b.WriteString(" . ")
			b.WriteString(repr(l))

			break
		}

		if n%2 == 0 {
			slow = Cdr(slow)
		}

		// A circular list is written up to the point where it repeats.
		if l == slow {
			b.WriteString(" ...")

			break
		}

		b.WriteByte(' ')
	}

	b.WriteByte(')')

	return b.String()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return Car(Cdr(c))
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return Cdr(Cdr(c))
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// Is returns true if c is a non-empty pair.
func Is(c cell.I) bool {
	p, ok := c.(*pair)

	return ok && p != Null
}

// To returns a *T if c is a non-empty pair; Otherwise it panics.
func To(c cell.I) *T {
	if p, ok := c.(*pair); ok && p != Null {
		return p
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	Null = cell.I(&pair{})
}
