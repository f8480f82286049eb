// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/integer"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/char"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	ints "github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/common/type/void"
	"github.com/ruschm/ruschm/internal/engine/numeric"
)

// Strings returns string operations.
func Strings(a numeric.Arithmetic) native.Table {
	return native.Table{
		predicate("string?", str.Is),

		pure("make-string", variadic("char", "k"), makeString),
		pure("string", variadic("char"), func(args []cell.I) (cell.I, error) {
			runes, err := toRunes(args)
			if err != nil {
				return nil, err
			}

			return str.Runes(runes), nil
		}),
		pure("string-length", fixed("string"), func(args []cell.I) (cell.I, error) {
			s, err := toString(args[0])
			if err != nil {
				return nil, err
			}

			return ints.Int(s.Len()), nil
		}),
		pure("string-ref", fixed("string", "k"), func(args []cell.I) (cell.I, error) {
			s, err := toString(args[0])
			if err != nil {
				return nil, err
			}

			i, err := integer.Index(args[1], s, s.Len())
			if err != nil {
				return nil, err
			}

			return char.New(s.Ref(i)), nil
		}),
		pure("string-set!", fixed("string", "k", "char"), func(args []cell.I) (cell.I, error) {
			s, err := toString(args[0])
			if err != nil {
				return nil, err
			}

			i, err := integer.Index(args[1], s, s.Len())
			if err != nil {
				return nil, err
			}

			c, err := toChar(args[2])
			if err != nil {
				return nil, err
			}

			s.Set(i, c.Rune())

			return void.Void, nil
		}),
		pure("string-fill!", fixed("string", "char"), func(args []cell.I) (cell.I, error) {
			s, err := toString(args[0])
			if err != nil {
				return nil, err
			}

			c, err := toChar(args[1])
			if err != nil {
				return nil, err
			}

			s.Fill(c.Rune())

			return void.Void, nil
		}),
		pure("string-append", variadic("string"), func(args []cell.I) (cell.I, error) {
			var b strings.Builder

			for _, c := range args {
				s, err := toString(c)
				if err != nil {
					return nil, err
				}

				b.WriteString(s.String())
			}

			return str.New(b.String()), nil
		}),
		pure("substring", variadic("end", "string", "start"), substring("substring")),
		pure("string-copy", variadic("range", "string"), substring("string-copy")),

		pure("string->list", fixed("string"), func(args []cell.I) (cell.I, error) {
			s, err := toString(args[0])
			if err != nil {
				return nil, err
			}

			chars := make([]cell.I, s.Len())
			for i := range chars {
				chars[i] = char.New(s.Ref(i))
			}

			return list.New(chars...), nil
		}),
		pure("list->string", fixed("list"), func(args []cell.I) (cell.I, error) {
			l, err := toList(args[0])
			if err != nil {
				return nil, err
			}

			runes, err := toRunes(l)
			if err != nil {
				return nil, err
			}

			return str.Runes(runes), nil
		}),
		pure("string->number", fixed("string"), func(args []cell.I) (cell.I, error) {
			s, err := toString(args[0])
			if err != nil {
				return nil, err
			}

			if n, ok := a.Parse(s.String()); ok {
				return n, nil
			}

			return boolean.False, nil
		}),

		pure("string-upcase", fixed("string"), mapString(strings.ToUpper)),
		pure("string-downcase", fixed("string"), mapString(strings.ToLower)),

		compareStrings("string=?", func(n int) bool { return n == 0 }),
		compareStrings("string<?", func(n int) bool { return n < 0 }),
		compareStrings("string>?", func(n int) bool { return n > 0 }),
		compareStrings("string<=?", func(n int) bool { return n <= 0 }),
		compareStrings("string>=?", func(n int) bool { return n >= 0 }),
	}
}

func compareStrings(name string, holds func(int) bool) native.Entry {
	return pure(name, variadic("rest", "string1", "string2"), func(args []cell.I) (cell.I, error) {
		texts := make([]string, len(args))

		for i, c := range args {
			s, err := toString(c)
			if err != nil {
				return nil, err
			}

			texts[i] = s.String()
		}

		for i := 1; i < len(texts); i++ {
			if !holds(strings.Compare(texts[i-1], texts[i])) {
				return boolean.False, nil
			}
		}

		return boolean.True, nil
	})
}

func makeString(args []cell.I) (cell.I, error) {
	if len(args) > 2 {
		return nil, errlogic.Arity("make-string", "at most 2 arguments", len(args))
	}

	n, err := count(args[0])
	if err != nil {
		return nil, err
	}

	fill := ' '

	if len(args) == 2 {
		c, err := toChar(args[1])
		if err != nil {
			return nil, err
		}

		fill = c.Rune()
	}

	return str.Make(n, fill), nil
}

func mapString(fn func(string) string) native.Function {
	return func(args []cell.I) (cell.I, error) {
		s, err := toString(args[0])
		if err != nil {
			return nil, err
		}

		return str.New(fn(s.String())), nil
	}
}

// substring copies the characters of a string from start, which defaults
// to 0, up to end, which defaults to the string's length.
func substring(label string) native.Function {
	return func(args []cell.I) (cell.I, error) {
		if len(args) > 3 {
			return nil, errlogic.Arity(label, "at most 3 arguments", len(args))
		}

		s, err := toString(args[0])
		if err != nil {
			return nil, err
		}

		start, end, err := bounds(s, args[1:], s.Len())
		if err != nil {
			return nil, err
		}

		return s.Slice(start, end), nil
	}
}

// bounds returns the optional start and end arguments of a sequence
// operation on a sequence of length n.
func bounds(of cell.I, args []cell.I, n int) (int, int, error) {
	start, end := 0, n

	if len(args) > 0 {
		i, err := integer.Index(args[0], of, n+1)
		if err != nil {
			return 0, 0, err
		}

		start = i
	}

	if len(args) > 1 {
		i, err := integer.Index(args[1], of, n+1)
		if err != nil {
			return 0, 0, err
		}

		end = i
	}

	if start > end {
		return 0, 0, errlogic.OutOfRange(int64(start), "start is after end "+strconv.Itoa(end))
	}

	return start, end, nil
}

func toRunes(args []cell.I) ([]rune, error) {
	runes := make([]rune, len(args))

	for i, a := range args {
		c, err := toChar(a)
		if err != nil {
			return nil, err
		}

		runes[i] = c.Rune()
	}

	return runes, nil
}
