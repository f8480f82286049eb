// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/common/type/sym"
	"github.com/ruschm/ruschm/internal/common/type/vector"
)

// Clone returns a structural copy of c. Pairs, strings, and vectors are
// copied. Symbols lose their source location. Everything else is shared.
func Clone(c cell.I) cell.I {
	switch t := c.(type) {
	case *sym.Plus:
		return sym.To(t)
	case *str.T:
		return t.Copy()
	case *vector.T:
		items := make([]cell.I, t.Len())
		for i, e := range t.Items() {
			items[i] = Clone(e)
		}

		return vector.New(items...)
	}

	if !pair.Is(c) {
		return c
	}

	start := pair.Cons(Clone(pair.Car(c)), pair.Null)
	end := start

	for c = pair.Cdr(c); pair.Is(c); c = pair.Cdr(c) {
		p := pair.Cons(Clone(pair.Car(c)), pair.Null)
		pair.SetCdr(end, p)
		end = p
	}

	pair.SetCdr(end, Clone(c))

	return start
}

// Dotted creates a new list of elements ending in tail instead of Null.
func Dotted(tail cell.I, elements ...cell.I) cell.I {
	for i := len(elements) - 1; i >= 0; i-- {
		tail = pair.Cons(elements[i], tail)
	}

	return tail
}

// Length returns the number of elements in a proper list, and false if
// list is not a proper list. A circular list is not a proper list.
func Length(list cell.I) (int, bool) {
	n := 0
	slow := list

	for pair.Is(list) {
		n++

		list = pair.Cdr(list)
		if n%2 == 0 {
			slow = pair.Cdr(slow)
		}

		if list == slow {
			return n, false
		}
	}

	return n, list == pair.Null
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Dotted(pair.Null, elements...)
}

// Proper returns true if list is Null or a chain of pairs ending in Null.
func Proper(list cell.I) bool {
	_, ok := Length(list)

	return ok
}

// Reverse returns a new list with the elements of list in reverse order.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Tail returns the sublist of list starting at element index, and false
// if list has fewer than index elements.
// The list must be non-circular.
func Tail(list cell.I, index int) (cell.I, bool) {
	for ; index > 0; index-- {
		if !pair.Is(list) {
			return nil, false
		}

		list = pair.Cdr(list)
	}

	return list, true
}

// ToSlice returns the elements of a proper list, and false if list is not
// a proper list.
func ToSlice(list cell.I) ([]cell.I, bool) {
	n, ok := Length(list)
	if !ok {
		return nil, false
	}

	s := make([]cell.I, 0, n)
	for ; list != pair.Null; list = pair.Cdr(list) {
		s = append(s, pair.Car(list))
	}

	return s, true
}
