package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/char"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/common/type/sym"
	"github.com/ruschm/ruschm/internal/common/type/vector"
	"github.com/ruschm/ruschm/internal/engine/numeric"
)

func lookup(t *testing.T, name string) *native.T {
	t.Helper()

	var found *native.T

	for _, table := range Tables(numeric.New[float64](), &bytes.Buffer{}) {
		for _, e := range table {
			if e.Name == name {
				found = native.To(e.Value)
			}
		}
	}

	if found == nil {
		t.Fatalf("No procedure named %s", name)
	}

	return found
}

func call(t *testing.T, name string, args ...cell.I) (cell.I, error) {
	t.Helper()

	return lookup(t, name).Call(args)
}

func check(t *testing.T, expected, name string, args ...cell.I) {
	t.Helper()

	c, err := call(t, name, args...)
	if err != nil {
		t.Fatalf("(%s ...): %v", name, err)
	}

	if s := literal.String(c); s != expected {
		t.Fatalf("(%s ...): expected %s; got %s", name, expected, s)
	}
}

func fails(t *testing.T, target error, name string, args ...cell.I) {
	t.Helper()

	_, err := call(t, name, args...)
	if !errors.Is(err, target) {
		t.Fatalf("(%s ...): expected %v; got %v", name, target, err)
	}
}

func n(i int64) cell.I {
	return integer.New(i)
}

func TestApplyRequest(t *testing.T) {
	plus := lookup(t, "+")

	c, err := call(t, "apply", plus, n(1), list.New(n(2), n(3)))
	if err != nil {
		t.Fatal(err)
	}

	a, ok := c.(*native.Application)
	if !ok {
		t.Fatalf("Expected an application; got %v", c)
	}

	if a.Proc != plus || len(a.Args) != 3 {
		t.Fatalf("Unexpected application %v %v", a.Proc, a.Args)
	}

	fails(t, &errlogic.T{Kind: errlogic.TypeMisMatch, Actual: "1", Expected: kind.Pair},
		"apply", plus, n(1))
	fails(t, &errlogic.T{Kind: errlogic.TypeMisMatch, Expected: kind.Pair},
		"apply", plus, list.Dotted(n(2), n(1)))
	fails(t, &errlogic.T{Kind: errlogic.ArityMismatch}, "apply", plus)
}

func TestArity(t *testing.T) {
	fails(t, &errlogic.T{Kind: errlogic.ArityMismatch}, "car")
	fails(t, &errlogic.T{Kind: errlogic.ArityMismatch}, "cons", n(1))
	fails(t, &errlogic.T{Kind: errlogic.ArityMismatch}, "boolean=?", boolean.True)
	fails(t, &errlogic.T{Kind: errlogic.ArityMismatch}, "substring", str.New("abc"), n(0), n(1), n(2))
}

func TestBooleanEquality(t *testing.T) {
	check(t, "#t", "boolean=?", boolean.False, boolean.False)
	check(t, "#f", "boolean=?", boolean.True, boolean.False, boolean.True)
	fails(t, &errlogic.T{Kind: errlogic.TypeMisMatch, Actual: "()", Expected: kind.Boolean},
		"boolean=?", boolean.True, pair.Null)
}

func TestCharacters(t *testing.T) {
	check(t, "97", "char->integer", char.New('a'))
	check(t, `#\A`, "integer->char", n(65))
	check(t, "#t", "char<?", char.New('a'), char.New('b'), char.New('c'))
	check(t, "#f", "char=?", char.New('a'), char.New('b'))
	check(t, `#\Z`, "char-upcase", char.New('z'))
	check(t, "#t", "char-whitespace?", char.New(' '))

	fails(t, &errlogic.T{
		Kind:   errlogic.IndexOutOfRange,
		Actual: "-1",
		Detail: "valid range is [0, 1114112)",
	}, "integer->char", n(-1))
	fails(t, &errlogic.T{
		Kind:   errlogic.IndexOutOfRange,
		Actual: "55296",
		Detail: "surrogate code points are not characters",
	}, "integer->char", n(55296))
	fails(t, &errlogic.T{Kind: errlogic.TypeMisMatch, Expected: kind.Character}, "char->integer", n(1))
}

func TestEquivalence(t *testing.T) {
	s := str.New("a")

	check(t, "#t", "eq?", s, s)
	check(t, "#f", "eqv?", s, str.New("a"))
	check(t, "#t", "equal?", s, str.New("a"))
	check(t, "#t", "eqv?", n(2), n(2))
	check(t, "#t", "eq?", sym.New("x"), sym.New("x"))
	check(t, "#t", "equal?", list.New(n(1), vector.New(n(2))), list.New(n(1), vector.New(n(2))))
}

func TestErrorProcedure(t *testing.T) {
	fails(t, &errlogic.T{Kind: errlogic.Raised, Actual: "oops 1 (a)"},
		"error", str.New("oops"), n(1), list.New(sym.New("a")))
}

func TestLists(t *testing.T) {
	l := list.New(n(1), n(2), n(3))

	check(t, "3", "length", l)
	check(t, "(2 3)", "list-tail", l, n(1))
	check(t, "3", "list-ref", l, n(2))
	check(t, "(3 2 1)", "reverse", l)
	check(t, "#f", "memq", n(4), l)
	check(t, "#t", "list?", pair.Null)

	fails(t, &errlogic.T{Kind: errlogic.IndexOutOfRange}, "list-ref", l, n(3))
	fails(t, &errlogic.T{Kind: errlogic.TypeMisMatch, Expected: kind.Pair}, "length", list.Dotted(n(2), n(1)))

	c, err := call(t, "list-copy", l)
	if err != nil {
		t.Fatal(err)
	}

	if c == l || !c.Equal(l) {
		t.Fatalf("Expected an equal copy; got %v", literal.String(c))
	}
}

func TestOutput(t *testing.T) {
	var b bytes.Buffer

	display := native.To(Output(&b)[0].Value)

	if _, err := display.Call([]cell.I{str.New("a\"b")}); err != nil {
		t.Fatal(err)
	}

	if b.String() != `a"b` {
		t.Fatalf("Expected a\"b; got %q", b.String())
	}
}

func TestPredicates(t *testing.T) {
	check(t, "#t", "procedure?", lookup(t, "car"))
	check(t, "#f", "procedure?", sym.New("car"))
	check(t, "#t", "symbol?", sym.New("x"))
	check(t, "#t", "string?", str.New(""))
	check(t, "#t", "vector?", vector.New())
	check(t, "#f", "null?", vector.New())
}

func TestStrings(t *testing.T) {
	check(t, `"aaa"`, "make-string", n(3), char.New('a'))
	check(t, `"abc"`, "string", char.New('a'), char.New('b'), char.New('c'))
	check(t, "3", "string-length", str.New("héé"))
	check(t, `#\é`, "string-ref", str.New("héé"), n(1))
	check(t, `"foobar"`, "string-append", str.New("foo"), str.New("bar"))
	check(t, `"ell"`, "substring", str.New("hello"), n(1), n(4))
	check(t, `"llo"`, "string-copy", str.New("hello"), n(2))
	check(t, "#t", "string=?", str.New("a"), str.New("a"))
	check(t, "#t", "string<?", str.New("a"), str.New("b"))
	check(t, `(#\a #\b)`, "string->list", str.New("ab"))
	check(t, `"ab"`, "list->string", list.New(char.New('a'), char.New('b')))
	check(t, "42", "string->number", str.New("42"))
	check(t, "#f", "string->number", str.New("4x2"))
	check(t, `"ABC"`, "string-upcase", str.New("abc"))
	check(t, "x", "string->symbol", str.New("x"))
	check(t, `"x"`, "symbol->string", sym.New("x"))

	s := str.New("abc")

	if _, err := call(t, "string-fill!", s, char.New('z')); err != nil {
		t.Fatal(err)
	}

	if s.String() != "zzz" {
		t.Fatalf("Expected zzz; got %s", s.String())
	}

	fails(t, &errlogic.T{
		Kind:   errlogic.IndexOutOfRange,
		Actual: "3",
		Detail: `valid range for "abc" is [0, 3)`,
	}, "string-ref", str.New("abc"), n(3))
	fails(t, &errlogic.T{
		Kind:   errlogic.IndexOutOfRange,
		Actual: "2",
		Detail: "start is after end 1",
	}, "substring", str.New("abc"), n(2), n(1))
	fails(t, &errlogic.T{Kind: errlogic.TypeMisMatch, Expected: kind.String}, "string-length", n(1))
}

func TestVectors(t *testing.T) {
	v := vector.New(n(1), n(2), n(3))

	check(t, "#()", "vector")
	check(t, "#(0 0)", "make-vector", n(2), n(0))
	check(t, "3", "vector-length", v)
	check(t, "2", "vector-ref", v, n(1))
	check(t, "(1 2 3)", "vector->list", v)
	check(t, "#(2 3)", "vector-copy", v, n(1))

	if _, err := call(t, "vector-set!", v, n(0), sym.New("x")); err != nil {
		t.Fatal(err)
	}

	check(t, "(x 2 3)", "vector->list", v)

	fails(t, &errlogic.T{
		Kind:   errlogic.IndexOutOfRange,
		Actual: "3",
		Detail: "valid range for #(x 2 3) is [0, 3)",
	}, "vector-ref", v, n(3))
	fails(t, &errlogic.T{Kind: errlogic.TypeMisMatch, Expected: kind.Integer}, "vector-ref", v, sym.New("a"))
}
