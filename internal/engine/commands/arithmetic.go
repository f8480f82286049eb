// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"strconv"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/integer"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/interface/number"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	ints "github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/real"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/engine/numeric"
)

// Numbers returns the arithmetic, comparison, and numeric predicates.
func Numbers(a numeric.Arithmetic) native.Table {
	return native.Table{
		pure("+", variadic("z"), func(args []cell.I) (cell.I, error) {
			return fold(a.Add, ints.New(0), args)
		}),
		pure("*", variadic("z"), func(args []cell.I) (cell.I, error) {
			return fold(a.Mul, ints.New(1), args)
		}),
		pure("-", variadic("z", "x"), func(args []cell.I) (cell.I, error) {
			if len(args) == 1 {
				return a.Neg(args[0])
			}

			return fold(a.Sub, args[0], args[1:])
		}),
		pure("/", variadic("z", "x"), func(args []cell.I) (cell.I, error) {
			if len(args) == 1 {
				return a.Div(ints.New(1), args[0])
			}

			return fold(a.Div, args[0], args[1:])
		}),

		pure("=", variadic("z", "x", "y"), relation(a, func(n int) bool { return n == 0 })),
		pure("<", variadic("z", "x", "y"), relation(a, func(n int) bool { return n < 0 })),
		pure(">", variadic("z", "x", "y"), relation(a, func(n int) bool { return n > 0 })),
		pure("<=", variadic("z", "x", "y"), relation(a, func(n int) bool { return n <= 0 })),
		pure(">=", variadic("z", "x", "y"), relation(a, func(n int) bool { return n >= 0 })),

		pure("max", variadic("z", "x"), extremum(a, 1)),
		pure("min", variadic("z", "x"), extremum(a, -1)),

		binary("expt", a.Expt),
		binary("modulo", a.Modulo),
		binary("quotient", a.Quotient),
		binary("remainder", a.Remainder),

		unary("abs", a.Abs),
		unary("ceiling", a.Ceiling),
		unary("exact", a.Exact),
		unary("exact->inexact", a.Inexact),
		unary("floor", a.Floor),
		unary("inexact", a.Inexact),
		unary("inexact->exact", a.Exact),
		unary("round", a.Round),
		unary("sqrt", a.Sqrt),
		unary("truncate", a.Truncate),

		inexact(a, "acos", math.Acos),
		inexact(a, "asin", math.Asin),
		inexact(a, "atan", math.Atan),
		inexact(a, "cos", math.Cos),
		inexact(a, "exp", math.Exp),
		inexact(a, "log", math.Log),
		inexact(a, "sin", math.Sin),
		inexact(a, "tan", math.Tan),

		sign(a, "negative?", func(n int) bool { return n < 0 }),
		sign(a, "positive?", func(n int) bool { return n > 0 }),
		sign(a, "zero?", func(n int) bool { return n == 0 }),

		parity("even?", 0),
		parity("odd?", 1),

		predicate("exact?", exact),
		predicate("exact-integer?", ints.Is),
		predicate("inexact?", real.Is),
		predicate("integer?", numeric.IsInteger),
		predicate("number?", number.Is),
		predicate("rational?", rational),
		predicate("real?", number.Is),

		pure("number->string", variadic("radix", "z"), func(args []cell.I) (cell.I, error) {
			if len(args) > 2 {
				return nil, errlogic.Arity("number->string", "1 to 2 arguments", len(args))
			}

			if !number.Is(args[0]) {
				return nil, errlogic.TypeMismatch(args[0], kind.Number)
			}

			if len(args) == 1 {
				return str.New(literal.String(args[0])), nil
			}

			radix, err := integer.Value(args[1])
			if err != nil {
				return nil, err
			}

			if radix < 2 || radix > 36 {
				return nil, errlogic.OutOfRange(radix, "radix must be between 2 and 36")
			}

			n, err := integer.Value(args[0])
			if err != nil {
				return nil, err
			}

			return str.New(strconv.FormatInt(n, int(radix))), nil
		}),
	}
}

// Helpers.

func binary(name string, op func(a, b cell.I) (cell.I, error)) native.Entry {
	return pure(name, fixed("n1", "n2"), func(args []cell.I) (cell.I, error) {
		return op(args[0], args[1])
	})
}

func exact(c cell.I) bool {
	n, ok := c.(number.I)

	return ok && n.Exact()
}

// extremum returns the largest (direction 1) or smallest (direction -1)
// argument. The result is inexact if any argument is inexact.
func extremum(a numeric.Arithmetic, direction int) native.Function {
	return func(args []cell.I) (cell.I, error) {
		result := args[0]
		inexact := !exact(result)

		for _, c := range args[1:] {
			n, ok, err := a.Compare(c, result)
			if err != nil {
				return nil, err
			}

			if !exact(c) {
				inexact = true
			}

			if !ok {
				result = c

				continue
			}

			if n == direction {
				result = c
			}
		}

		if !number.Is(result) {
			return nil, errlogic.TypeMismatch(result, kind.Number)
		}

		if inexact {
			return a.Inexact(result)
		}

		return result, nil
	}
}

// fold applies op to an accumulated value and each argument, left to right.
func fold(op func(a, b cell.I) (cell.I, error), acc cell.I, args []cell.I) (cell.I, error) {
	var err error

	for _, c := range args {
		acc, err = op(acc, c)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func inexact(a numeric.Arithmetic, name string, fn func(float64) float64) native.Entry {
	return pure(name, fixed("z"), func(args []cell.I) (cell.I, error) {
		return a.Float(args[0], fn)
	})
}

func parity(name string, remainder int64) native.Entry {
	return pure(name, fixed("n"), func(args []cell.I) (cell.I, error) {
		if !numeric.IsInteger(args[0]) {
			return nil, errlogic.TypeMismatch(args[0], kind.Integer)
		}

		odd := false
		if n, ok := args[0].(integer.I); ok {
			odd = n.Int64()%2 != 0
		} else {
			odd = math.Mod(args[0].(number.I).Float64(), 2) != 0
		}

		return boolean.Bool(odd == (remainder == 1)), nil
	})
}

func rational(c cell.I) bool {
	if !number.Is(c) {
		return false
	}

	f := c.(number.I).Float64()

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// relation returns true if holds is true for each adjacent pair of args.
func relation(a numeric.Arithmetic, holds func(int) bool) native.Function {
	return func(args []cell.I) (cell.I, error) {
		result := true

		for i := 1; i < len(args); i++ {
			n, ok, err := a.Compare(args[i-1], args[i])
			if err != nil {
				return nil, err
			}

			if !ok || !holds(n) {
				result = false
			}
		}

		return boolean.Bool(result), nil
	}
}

func sign(a numeric.Arithmetic, name string, holds func(int) bool) native.Entry {
	return pure(name, fixed("x"), func(args []cell.I) (cell.I, error) {
		n, ok, err := a.Compare(args[0], ints.New(0))
		if err != nil {
			return nil, err
		}

		return boolean.Bool(ok && holds(n)), nil
	})
}

func unary(name string, op func(a cell.I) (cell.I, error)) native.Entry {
	return pure(name, fixed("z"), func(args []cell.I) (cell.I, error) {
		return op(args[0])
	})
}
