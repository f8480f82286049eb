// Released under an MIT license. See LICENSE.

// Package validate checks the number of operands passed to special forms
// and procedures.
package validate

import (
	"fmt"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/pair"
)

// Variadic returns the first max elements of the list actual, and what
// remains. At least min elements are required.
func Variadic(label string, actual cell.I, min, max int) ([]cell.I, cell.I, error) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				return nil, nil, errlogic.Arity(label, atLeast(min, max), i)
			}

			break
		}

		if !pair.Is(actual) {
			return nil, nil, errlogic.Malformed(label, "improper list")
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, nil
}

// Fixed returns the elements of the list actual. There must be between
// min and max elements.
func Fixed(label string, actual cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(label, actual, min, max)
	if err != nil {
		return nil, err
	}

	if rest != pair.Null {
		n, ok := list.Length(actual)
		if !ok {
			return nil, errlogic.Malformed(label, "improper list")
		}

		return nil, errlogic.Arity(label, atLeast(min, max), n)
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Range checks that n arguments is at least min and, unless max is
// negative, at most max.
func Range(label string, n, min, max int) error {
	if n < min || (max >= 0 && n > max) {
		return errlogic.Arity(label, atLeast(min, max), n)
	}

	return nil
}

func atLeast(min, max int) string {
	switch {
	case max < 0:
		return "at least " + Count(min, "argument", "s")
	case min == max:
		return Count(max, "argument", "s")
	}

	return fmt.Sprintf("%d to %s", min, Count(max, "argument", "s"))
}
