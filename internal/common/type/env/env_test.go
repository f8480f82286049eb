package env

import (
	"errors"
	"testing"

	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/integer"
)

func resolve(t *testing.T, s scope.I, k string) string {
	t.Helper()

	v, err := scope.Resolve(s, k)
	if err != nil {
		t.Fatalf("Resolving %s: %v", k, err)
	}

	return literal.String(v)
}

func TestExtend(t *testing.T) {
	global := New(nil)
	global.Define("x", integer.Int(1))
	global.Define("y", integer.Int(2))

	child := global.Extend()
	child.Define("x", integer.Int(10))

	if v := resolve(t, child, "x"); v != "10" {
		t.Fatalf("Expected the child binding to shadow; got %s", v)
	}

	if v := resolve(t, global, "x"); v != "1" {
		t.Fatalf("Expected define to leave the enclosing frame alone; got %s", v)
	}

	if err := scope.Assign(child, "y", integer.Int(20)); err != nil {
		t.Fatal(err)
	}

	if v := resolve(t, global, "y"); v != "20" {
		t.Fatalf("Expected assignment to reach the enclosing binding; got %s", v)
	}

	if child.Lookup("y") != global.Lookup("y") {
		t.Fatal("Expected frames to share the binding slot")
	}
}

func TestUnbound(t *testing.T) {
	s := New(nil).Extend()

	target := &errlogic.T{Kind: errlogic.UnboundVariable, Actual: "z"}

	if _, err := scope.Resolve(s, "z"); !errors.Is(err, target) {
		t.Fatalf("Expected unbound variable; got %v", err)
	}

	if err := scope.Assign(s, "z", integer.Int(1)); !errors.Is(err, target) {
		t.Fatalf("Expected assignment to an unbound variable to fail; got %v", err)
	}

	if s.Lookup("z") != nil {
		t.Fatal("Expected a failed assignment not to create a binding")
	}
}
