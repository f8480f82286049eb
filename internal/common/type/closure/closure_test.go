package closure

import (
	"errors"
	"testing"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/type/env"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/sym"
)

func TestBind(t *testing.T) {
	global := env.New(nil)
	global.Define("x", integer.Int(1))

	formals := list.Dotted(sym.New("rest"), sym.New("x"))
	body := list.New(sym.New("x"))

	c, err := New(formals, body, global)
	if err != nil {
		t.Fatal(err)
	}

	s, err := c.Bind([]cell.I{integer.Int(5), integer.Int(6), integer.Int(7)})
	if err != nil {
		t.Fatal(err)
	}

	for k, expected := range map[string]string{"x": "5", "rest": "(6 7)"} {
		v, err := scope.Resolve(s, k)
		if err != nil || literal.String(v) != expected {
			t.Fatalf("Expected %s to be %s; got %v, %v", k, expected, v, err)
		}
	}

	v, _ := scope.Resolve(global, "x")
	if literal.String(v) != "1" {
		t.Fatalf("Expected the call frame to leave the captured scope alone; got %s", literal.String(v))
	}

	if _, err = c.Bind(nil); !errors.Is(err, &errlogic.T{Kind: errlogic.ArityMismatch}) {
		t.Fatalf("Expected arity mismatch; got %v", err)
	}
}

func TestMalformed(t *testing.T) {
	target := &errlogic.T{Kind: errlogic.MalformedSyntax}

	for _, formals := range []cell.I{
		list.New(sym.New("a"), sym.New("a")),
		list.New(integer.Int(1)),
		list.Dotted(sym.New("a"), sym.New("a")),
	} {
		if _, err := New(formals, list.New(integer.Int(1)), env.New(nil)); !errors.Is(err, target) {
			t.Fatalf("Expected %s to be rejected; got %v", literal.String(formals), err)
		}
	}
}
