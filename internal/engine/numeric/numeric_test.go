package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/real"
	"github.com/ruschm/ruschm/internal/common/type/str"
)

func parse(t *testing.T, a Arithmetic, s string) cell.I {
	t.Helper()

	c, ok := a.Parse(s)
	if !ok {
		t.Fatalf("%q is not a number", s)
	}

	return c
}

func TestParse(t *testing.T) {
	a := New[float64]()

	for s, expected := range map[string]string{
		"0":      "0",
		"-17":    "-17",
		"+5":     "5",
		"1.5":    "1.5",
		"2.":     "2.0",
		".5":     "0.5",
		"1e3":    "1000.0",
		"#xff":   "255",
		"#b101":  "5",
		"+inf.0": "+inf.0",
		"-inf.0": "-inf.0",
		"+nan.0": "+nan.0",
	} {
		if actual := literal.String(parse(t, a, s)); actual != expected {
			t.Errorf("%q: expected %s, got %s", s, expected, actual)
		}
	}

	for _, s := range []string{"+", "-", "...", "a1", "1+", "0x10", "inf", "nan", "e5"} {
		if c, ok := a.Parse(s); ok {
			t.Errorf("%q should not be a number; got %s", s, literal.String(c))
		}
	}
}

func TestIntegerOverflow(t *testing.T) {
	a := New[float64]()

	max := integer.New(math.MaxInt64)
	min := integer.New(math.MinInt64)
	one := integer.New(1)

	checks := []func() (cell.I, error){
		func() (cell.I, error) { return a.Add(max, one) },
		func() (cell.I, error) { return a.Sub(min, one) },
		func() (cell.I, error) { return a.Mul(max, integer.New(2)) },
		func() (cell.I, error) { return a.Neg(min) },
		func() (cell.I, error) { return a.Abs(min) },
		func() (cell.I, error) { return a.Div(min, integer.New(-1)) },
		func() (cell.I, error) { return a.Quotient(min, integer.New(-1)) },
		func() (cell.I, error) { return a.Expt(integer.New(2), integer.New(63)) },
	}

	target := &errlogic.T{Kind: errlogic.NumericOverflow}

	for i, check := range checks {
		c, err := check()
		if !errors.Is(err, target) {
			t.Errorf("check %d: expected overflow, got %v, %v", i, c, err)
		}
	}

	c, err := a.Expt(integer.New(2), integer.New(62))
	if err != nil || literal.String(c) != "4611686018427387904" {
		t.Errorf("expected 2^62, got %v, %v", c, err)
	}
}

func TestPromotion(t *testing.T) {
	a := New[float64]()

	c, err := a.Add(integer.New(1), real.New(0.5))
	if err != nil || literal.String(c) != "1.5" {
		t.Errorf("expected 1.5, got %v, %v", c, err)
	}

	c, err = a.Div(integer.New(1), integer.New(2))
	if err != nil || literal.String(c) != "0.5" {
		t.Errorf("expected 0.5, got %v, %v", c, err)
	}

	c, err = a.Div(integer.New(6), integer.New(3))
	if err != nil || !integer.Is(c) || literal.String(c) != "2" {
		t.Errorf("expected exact 2, got %v, %v", c, err)
	}

	c, err = a.Div(real.New(1.0), integer.New(0))
	if err != nil || literal.String(c) != "+inf.0" {
		t.Errorf("expected +inf.0, got %v, %v", c, err)
	}

	_, err = a.Div(integer.New(1), integer.New(0))
	if !errors.Is(err, &errlogic.T{Kind: errlogic.DivisionByZero}) {
		t.Errorf("expected division by zero, got %v", err)
	}
}

func TestSinglePrecision(t *testing.T) {
	a := New[float32]()

	c, err := a.Add(parse(t, a, "0.1"), parse(t, a, "0.2"))
	if err != nil {
		t.Fatal(err)
	}

	r, ok := c.(*real.T[float32])
	if !ok {
		t.Fatalf("expected a single precision real, got %T", c)
	}

	if r.Value() != float32(0.1)+float32(0.2) {
		t.Errorf("expected single precision sum, got %v", r.Value())
	}

	if r.Precision() != 32 {
		t.Errorf("expected 32 bits, got %d", r.Precision())
	}
}

func TestCompare(t *testing.T) {
	a := New[float64]()

	for _, c := range []struct {
		x, y     string
		expected int
		ordered  bool
	}{
		{"1", "2", -1, true},
		{"2", "1.5", 1, true},
		{"1", "1.0", 0, true},
		{"+nan.0", "1", 0, false},
	} {
		cmp, ok, err := a.Compare(parse(t, a, c.x), parse(t, a, c.y))
		if err != nil || cmp != c.expected || ok != c.ordered {
			t.Errorf("compare %s %s: got %d, %v, %v", c.x, c.y, cmp, ok, err)
		}
	}

	_, _, err := a.Compare(str.New("1"), integer.New(1))
	if !errors.Is(err, &errlogic.T{Kind: errlogic.TypeMisMatch}) {
		t.Errorf("expected type mismatch, got %v", err)
	}
}

func TestCompareByValue(t *testing.T) {
	double := New[float64]()
	single := New[float32]()

	for _, c := range []struct {
		a        Arithmetic
		x, y     string
		expected int
		ordered  bool
	}{
		{double, "9007199254740993", "9007199254740992.0", 1, true},
		{double, "9007199254740992.0", "9007199254740993", -1, true},
		{double, "9007199254740992", "9007199254740992.0", 0, true},
		{double, "9223372036854775807", "9223372036854775808.0", -1, true},
		{double, "1", "1.5", -1, true},
		{double, "-2", "-1.5", -1, true},
		{double, "5", "+inf.0", -1, true},
		{double, "-inf.0", "5", -1, true},
		{double, "5", "+nan.0", 0, false},
		{single, "16777217", "16777216.0", 1, true},
		{single, "16777216.0", "16777217", -1, true},
		{single, "16777216", "16777216.0", 0, true},
	} {
		cmp, ok, err := c.a.Compare(parse(t, c.a, c.x), parse(t, c.a, c.y))
		if err != nil || cmp != c.expected || ok != c.ordered {
			t.Errorf("compare %s %s: got %d, %v, %v", c.x, c.y, cmp, ok, err)
		}
	}
}

func TestNeg(t *testing.T) {
	a := New[float64]()

	for s, expected := range map[string]string{
		"0.0":    "-0.0",
		"-1.5":   "1.5",
		"3":      "-3",
		"+inf.0": "-inf.0",
	} {
		c, err := a.Neg(parse(t, a, s))
		if err != nil || literal.String(c) != expected {
			t.Errorf("-%s: expected %s, got %v, %v", s, expected, c, err)
		}
	}
}

func TestDivision(t *testing.T) {
	a := New[float64]()

	for _, c := range []struct {
		op       func(x, y cell.I) (cell.I, error)
		x, y     int64
		expected string
	}{
		{a.Quotient, 17, 5, "3"},
		{a.Quotient, -17, 5, "-3"},
		{a.Remainder, -17, 5, "-2"},
		{a.Modulo, -17, 5, "3"},
		{a.Modulo, 17, -5, "-3"},
	} {
		r, err := c.op(integer.New(c.x), integer.New(c.y))
		if err != nil || literal.String(r) != c.expected {
			t.Errorf("%d, %d: expected %s, got %v, %v", c.x, c.y, c.expected, r, err)
		}
	}

	r, err := a.Sqrt(integer.New(16))
	if err != nil || !integer.Is(r) || literal.String(r) != "4" {
		t.Errorf("expected exact 4, got %v, %v", r, err)
	}

	r, err = a.Round(real.New(2.5))
	if err != nil || literal.String(r) != "2.0" {
		t.Errorf("expected 2.0, got %v, %v", r, err)
	}
}
