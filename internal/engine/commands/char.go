// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/integer"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/char"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	ints "github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/native"
)

// Characters returns character operations.
func Characters() native.Table {
	return native.Table{
		predicate("char?", char.Is),

		pure("char->integer", fixed("char"), func(args []cell.I) (cell.I, error) {
			c, err := toChar(args[0])
			if err != nil {
				return nil, err
			}

			return ints.New(int64(c.Rune())), nil
		}),
		pure("integer->char", fixed("n"), func(args []cell.I) (cell.I, error) {
			n, err := integer.Value(args[0])
			if err != nil {
				return nil, err
			}

			if n < 0 || n > unicode.MaxRune {
				return nil, errlogic.OutOfRange(n, "valid range is [0, "+strconv.Itoa(unicode.MaxRune+1)+")")
			}

			if !utf8.ValidRune(rune(n)) {
				return nil, errlogic.OutOfRange(n, "surrogate code points are not characters")
			}

			return char.New(rune(n)), nil
		}),

		compareChars("char=?", func(a, b rune) bool { return a == b }),
		compareChars("char<?", func(a, b rune) bool { return a < b }),
		compareChars("char>?", func(a, b rune) bool { return a > b }),
		compareChars("char<=?", func(a, b rune) bool { return a <= b }),
		compareChars("char>=?", func(a, b rune) bool { return a >= b }),

		classify("char-alphabetic?", unicode.IsLetter),
		classify("char-numeric?", unicode.IsDigit),
		classify("char-whitespace?", unicode.IsSpace),
		classify("char-upper-case?", unicode.IsUpper),
		classify("char-lower-case?", unicode.IsLower),

		convert("char-upcase", unicode.ToUpper),
		convert("char-downcase", unicode.ToLower),
	}
}

func classify(name string, is func(rune) bool) native.Entry {
	return pure(name, fixed("char"), func(args []cell.I) (cell.I, error) {
		c, err := toChar(args[0])
		if err != nil {
			return nil, err
		}

		return boolean.Bool(is(c.Rune())), nil
	})
}

func compareChars(name string, holds func(a, b rune) bool) native.Entry {
	return pure(name, variadic("rest", "char1", "char2"), func(args []cell.I) (cell.I, error) {
		runes := make([]rune, len(args))

		for i, a := range args {
			c, err := toChar(a)
			if err != nil {
				return nil, err
			}

			runes[i] = c.Rune()
		}

		for i := 1; i < len(runes); i++ {
			if !holds(runes[i-1], runes[i]) {
				return boolean.False, nil
			}
		}

		return boolean.True, nil
	})
}

func convert(name string, fn func(rune) rune) native.Entry {
	return pure(name, fixed("char"), func(args []cell.I) (cell.I, error) {
		c, err := toChar(args[0])
		if err != nil {
			return nil, err
		}

		return char.New(fn(c.Rune())), nil
	})
}
