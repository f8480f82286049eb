// Released under an MIT license. See LICENSE.

// Package numeric implements the numeric tower: exact 64-bit integers
// and inexact reals of a fixed precision. Integer arithmetic that leaves
// the 64-bit range is an error. Mixing an integer with a real produces a
// real.
package numeric

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/number"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/real"
)

// Arithmetic is the precision-independent view of a Tower.
type Arithmetic interface {
	Parse(s string) (cell.I, bool)
	Real(f float64) cell.I

	Add(a, b cell.I) (cell.I, error)
	Div(a, b cell.I) (cell.I, error)
	Mul(a, b cell.I) (cell.I, error)
	Sub(a, b cell.I) (cell.I, error)

	Compare(a, b cell.I) (int, bool, error)

	Abs(a cell.I) (cell.I, error)
	Neg(a cell.I) (cell.I, error)

	Modulo(a, b cell.I) (cell.I, error)
	Quotient(a, b cell.I) (cell.I, error)
	Remainder(a, b cell.I) (cell.I, error)

	Ceiling(a cell.I) (cell.I, error)
	Floor(a cell.I) (cell.I, error)
	Round(a cell.I) (cell.I, error)
	Truncate(a cell.I) (cell.I, error)

	Expt(a, b cell.I) (cell.I, error)
	Sqrt(a cell.I) (cell.I, error)
	Float(a cell.I, fn func(float64) float64) (cell.I, error)

	Exact(a cell.I) (cell.I, error)
	Inexact(a cell.I) (cell.I, error)
}

// Tower is the numeric tower with reals of precision F.
type Tower[F real.Float] struct{}

// New creates a tower with reals of precision F.
func New[F real.Float]() *Tower[F] {
	return &Tower[F]{}
}

// IsInteger returns true if c is an exact integer or a real with an
// integral value.
func IsInteger(c cell.I) bool {
	if integer.Is(c) {
		return true
	}

	if !real.Is(c) {
		return false
	}

	f := c.(number.I).Float64()

	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// Real creates a real of precision F.
func (t *Tower[F]) Real(f float64) cell.I {
	return real.New(F(f))
}

// Parse returns the number written as s, if s is a number.
func (t *Tower[F]) Parse(s string) (cell.I, bool) {
	switch s {
	case "+inf.0":
		return t.Real(math.Inf(1)), true
	case "-inf.0":
		return t.Real(math.Inf(-1)), true
	case "+nan.0", "-nan.0":
		return t.Real(math.NaN()), true
	}

	base := 10

	if len(s) > 2 && s[0] == '#' {
		switch s[1] {
		case 'b':
			base = 2
		case 'd':
		case 'o':
			base = 8
		case 'x':
			base = 16
		default:
			return nil, false
		}

		i, err := strconv.ParseInt(s[2:], base, 64)
		if err != nil {
			return nil, false
		}

		return integer.New(i), true
	}

	if !decimal(s) {
		return nil, false
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return integer.New(i), true
	}

	f, err := strconv.ParseFloat(s, real.New(F(0)).Precision())
	if err != nil && f == 0 {
		return nil, false
	}

	return t.Real(f), true
}

// Add returns a + b.
func (t *Tower[F]) Add(a, b cell.I) (cell.I, error) {
	return t.binary(a, b, "+", func(x, y int64) (int64, bool) {
		s := x + y
		if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
			return 0, false
		}

		return s, true
	}, func(x, y F) F {
		return x + y
	})
}

// Div returns a / b. Dividing integers that do not divide evenly
// produces a real. An exact division by zero is an error.
func (t *Tower[F]) Div(a, b cell.I) (cell.I, error) {
	x, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	y, fy, iy, err := t.number(b)
	if err != nil {
		return nil, err
	}

	if !ix || !iy {
		return real.New(fx / fy), nil
	}

	if y == 0 {
		return nil, errlogic.DivideByZero("/")
	}

	if x%y != 0 {
		return real.New(fx / fy), nil
	}

	if x == math.MinInt64 && y == -1 {
		return nil, errlogic.Overflow("/", x, y)
	}

	return integer.New(x / y), nil
}

// Mul returns a * b.
func (t *Tower[F]) Mul(a, b cell.I) (cell.I, error) {
	return t.binary(a, b, "*", func(x, y int64) (int64, bool) {
		return exact((*big.Int).Mul, x, y)
	}, func(x, y F) F {
		return x * y
	})
}

// Sub returns a - b.
func (t *Tower[F]) Sub(a, b cell.I) (cell.I, error) {
	return t.binary(a, b, "-", func(x, y int64) (int64, bool) {
		d := x - y
		if (x >= 0 && y < 0 && d < 0) || (x < 0 && y > 0 && d >= 0) {
			return 0, false
		}

		return d, true
	}, func(x, y F) F {
		return x - y
	})
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater
// than b. The second result is false if a and b are unordered (NaN).
func (t *Tower[F]) Compare(a, b cell.I) (int, bool, error) {
	x, fx, ix, err := t.number(a)
	if err != nil {
		return 0, false, err
	}

	y, fy, iy, err := t.number(b)
	if err != nil {
		return 0, false, err
	}

	if ix && iy {
		switch {
		case x < y:
			return -1, true, nil
		case x > y:
			return 1, true, nil
		}

		return 0, true, nil
	}

	if ix {
		cmp, ok := mixed(x, float64(fy))

		return cmp, ok, nil
	}

	if iy {
		cmp, ok := mixed(y, float64(fx))

		return -cmp, ok, nil
	}

	switch {
	case fx < fy:
		return -1, true, nil
	case fx > fy:
		return 1, true, nil
	case fx == fy:
		return 0, true, nil
	}

	return 0, false, nil
}

// Abs returns the absolute value of a.
func (t *Tower[F]) Abs(a cell.I) (cell.I, error) {
	x, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	if !ix {
		return real.New(F(math.Abs(float64(fx)))), nil
	}

	if x < 0 {
		return t.Neg(a)
	}

	return a, nil
}

// Neg returns -a.
func (t *Tower[F]) Neg(a cell.I) (cell.I, error) {
	_, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	if !ix {
		return real.New(-fx), nil
	}

	return t.Sub(integer.New(0), a)
}

// Modulo returns the remainder of a / b with the sign of b.
func (t *Tower[F]) Modulo(a, b cell.I) (cell.I, error) {
	return t.division(a, b, "modulo", func(x, y int64) int64 {
		m := x % y
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}

		return m
	}, func(x, y float64) float64 {
		m := math.Mod(x, y)
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}

		return m
	})
}

// Quotient returns a / b truncated towards zero.
func (t *Tower[F]) Quotient(a, b cell.I) (cell.I, error) {
	x, _, ix, err := t.number(a)
	if err == nil && ix && x == math.MinInt64 {
		if y, _, iy, _ := t.number(b); iy && y == -1 {
			return nil, errlogic.Overflow("quotient", x, y)
		}
	}

	return t.division(a, b, "quotient", func(x, y int64) int64 {
		return x / y
	}, func(x, y float64) float64 {
		return math.Trunc(x / y)
	})
}

// Remainder returns the remainder of a / b with the sign of a.
func (t *Tower[F]) Remainder(a, b cell.I) (cell.I, error) {
	return t.division(a, b, "remainder", func(x, y int64) int64 {
		return x % y
	}, math.Mod)
}

// Ceiling returns the smallest integral value not less than a.
func (t *Tower[F]) Ceiling(a cell.I) (cell.I, error) {
	return t.rounding(a, math.Ceil)
}

// Floor returns the largest integral value not greater than a.
func (t *Tower[F]) Floor(a cell.I) (cell.I, error) {
	return t.rounding(a, math.Floor)
}

// Round returns the integral value nearest to a, rounding half to even.
func (t *Tower[F]) Round(a cell.I) (cell.I, error) {
	return t.rounding(a, math.RoundToEven)
}

// Truncate returns the integral value of a rounded towards zero.
func (t *Tower[F]) Truncate(a cell.I) (cell.I, error) {
	return t.rounding(a, math.Trunc)
}

// Expt returns a raised to the power b. An exact base raised to a
// non-negative exact power is exact.
func (t *Tower[F]) Expt(a, b cell.I) (cell.I, error) {
	x, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	y, fy, iy, err := t.number(b)
	if err != nil {
		return nil, err
	}

	if !ix || !iy || y < 0 {
		return real.New(F(math.Pow(float64(fx), float64(fy)))), nil
	}

	if y >= 64 && (x < -1 || x > 1) {
		return nil, errlogic.Overflow("expt", x, y)
	}

	r := new(big.Int).Exp(big.NewInt(x), big.NewInt(y), nil)
	if !r.IsInt64() {
		return nil, errlogic.Overflow("expt", x, y)
	}

	return integer.New(r.Int64()), nil
}

// Sqrt returns the square root of a. The square root of an exact perfect
// square is exact.
func (t *Tower[F]) Sqrt(a cell.I) (cell.I, error) {
	x, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	if ix && x >= 0 {
		r := new(big.Int).Sqrt(big.NewInt(x))
		if r.Int64()*r.Int64() == x {
			return integer.New(r.Int64()), nil
		}
	}

	return real.New(F(math.Sqrt(float64(fx)))), nil
}

// Float returns fn applied to a as a real.
func (t *Tower[F]) Float(a cell.I, fn func(float64) float64) (cell.I, error) {
	_, fx, _, err := t.number(a)
	if err != nil {
		return nil, err
	}

	return real.New(F(fn(float64(fx)))), nil
}

// Exact returns the exact integer equal to a. A real with a fractional
// part has no exact equivalent.
func (t *Tower[F]) Exact(a cell.I) (cell.I, error) {
	_, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	if ix {
		return a, nil
	}

	f := float64(fx)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, errlogic.TypeMismatch(a, kind.Integer)
	}

	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, &errlogic.T{Kind: errlogic.NumericOverflow, Actual: "exact"}
	}

	return integer.New(int64(f)), nil
}

// Inexact returns the real nearest to a.
func (t *Tower[F]) Inexact(a cell.I) (cell.I, error) {
	_, fx, _, err := t.number(a)
	if err != nil {
		return nil, err
	}

	return real.New(fx), nil
}

func (t *Tower[F]) binary(
	a, b cell.I, op string,
	ints func(x, y int64) (int64, bool), reals func(x, y F) F,
) (cell.I, error) {
	x, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	y, fy, iy, err := t.number(b)
	if err != nil {
		return nil, err
	}

	if !ix || !iy {
		return real.New(reals(fx, fy)), nil
	}

	r, ok := ints(x, y)
	if !ok {
		return nil, errlogic.Overflow(op, x, y)
	}

	return integer.New(r), nil
}

func (t *Tower[F]) division(
	a, b cell.I, op string,
	ints func(x, y int64) int64, reals func(x, y float64) float64,
) (cell.I, error) {
	x, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	y, fy, iy, err := t.number(b)
	if err != nil {
		return nil, err
	}

	if !IsInteger(a) {
		return nil, errlogic.TypeMismatch(a, kind.Integer)
	}

	if !IsInteger(b) {
		return nil, errlogic.TypeMismatch(b, kind.Integer)
	}

	if !ix || !iy {
		return real.New(F(reals(float64(fx), float64(fy)))), nil
	}

	if y == 0 {
		return nil, errlogic.DivideByZero(op)
	}

	return integer.New(ints(x, y)), nil
}

// number returns the value of c. For an exact integer, the first result
// holds the value and the third result is true.
func (t *Tower[F]) number(c cell.I) (int64, F, bool, error) {
	switch n := c.(type) {
	case *integer.T:
		return n.Int64(), F(n.Int64()), true, nil
	case *real.T[F]:
		return 0, n.Value(), false, nil
	case number.I:
		return 0, F(n.Float64()), false, nil
	}

	return 0, 0, false, errlogic.TypeMismatch(c, kind.Number)
}

// mixed compares the integer i with the real f by value. Every int64 and
// every finite float64 is exactly representable as a big.Float.
func mixed(i int64, f float64) (int, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case math.IsInf(f, 1):
		return -1, true
	case math.IsInf(f, -1):
		return 1, true
	}

	return new(big.Float).SetInt64(i).Cmp(big.NewFloat(f)), true
}

func (t *Tower[F]) rounding(a cell.I, fn func(float64) float64) (cell.I, error) {
	_, fx, ix, err := t.number(a)
	if err != nil {
		return nil, err
	}

	if ix {
		return a, nil
	}

	return real.New(F(fn(float64(fx)))), nil
}

// decimal returns true if s looks like a decimal number.
func decimal(s string) bool {
	digits := false

	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '+' || r == '-':
			if i != 0 && s[i-1] != 'e' && s[i-1] != 'E' {
				return false
			}
		case r == '.', r == 'e', r == 'E':
		default:
			return false
		}
	}

	return digits && !strings.HasPrefix(strings.TrimLeft(s, "+-"), "e")
}

func exact(op func(z, x, y *big.Int) *big.Int, a, b int64) (int64, bool) {
	r := op(new(big.Int), big.NewInt(a), big.NewInt(b))
	if !r.IsInt64() {
		return 0, false
	}

	return r.Int64(), true
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	// Towers of either precision provide arithmetic.
	_ = Arithmetic(New[float32]())
	_ = Arithmetic(New[float64]())
}
