package task

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/struct/frame"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/env"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/sym"
)

func global() *env.T {
	s := env.New(nil)
	Keywords(s)

	return s
}

func depth(t *T) int {
	n := 0
	for p := t.stack; p != done; p = p.stack {
		n++
	}

	return n
}

func TestArguments(t *testing.T) {
	m := New(nil, frame.New(global()), Settings{})

	m.PushResult(integer.Int(0))
	m.PushResult(nil)
	m.PushResult(integer.Int(1))
	m.PushResult(integer.Int(2))

	args := m.arguments()
	if len(args) != 2 || literal.String(args[0]) != "1" || literal.String(args[1]) != "2" {
		t.Fatalf("Expected [1 2]; got %v", args)
	}

	if literal.String(m.Result()) != "0" {
		t.Fatalf("Expected the marker to be consumed; got %s", literal.String(m.Result()))
	}
}

func TestDescribe(t *testing.T) {
	for _, c := range []struct {
		op       Op
		expected string
	}{
		{nil, "<nil>"},
		{Action(EvalExpression), "EvalExpression"},
		{&registers{code: pair.Null, dump: pair.Null}, "Restore(code, dump)"},
		{&registers{}, "Restore()"},
	} {
		if s := describe(c.op); s != c.expected {
			t.Fatalf("Expected %s; got %s", c.expected, s)
		}
	}
}

func TestEval(t *testing.T) {
	s := global()
	s.Define("x", integer.Int(7))

	for _, c := range []struct {
		expr     cell.I
		expected string
	}{
		{integer.Int(1), "1"},
		{sym.New("x"), "7"},
		{list.New(sym.New("quote"), list.New(sym.New("x"))), "(x)"},
		{list.New(sym.New("if"), boolean.False, integer.Int(1), integer.Int(2)), "2"},
		{list.New(sym.New("if"), pair.Null, integer.Int(1), integer.Int(2)), "1"},
	} {
		v, err := Eval(context.Background(), c.expr, s, Settings{})
		if err != nil {
			t.Fatalf("Evaluating %s: %v", literal.String(c.expr), err)
		}

		if literal.String(v) != c.expected {
			t.Fatalf("Evaluating %s: expected %s; got %s",
				literal.String(c.expr), c.expected, literal.String(v))
		}
	}
}

func TestPushOpCondenses(t *testing.T) {
	f := frame.New(global())
	m := New(nil, f, Settings{})

	m.PushOp(Action(EvalExpression))
	m.PushOp(&registers{code: pair.Null})
	m.PushOp(&registers{frame: f})

	if n := depth(m); n != 2 {
		t.Fatalf("Expected restores to condense into one operation; got %d", n)
	}

	if s := describe(m.Op()); s != "Restore(code, frame)" {
		t.Fatalf("Expected Restore(code, frame); got %s", s)
	}
}

func TestStepLimit(t *testing.T) {
	expr := list.New(sym.New("if"), boolean.True, integer.Int(1), integer.Int(2))

	_, err := Eval(context.Background(), expr, global(), Settings{Steps: 1})
	if !errors.Is(err, &errlogic.T{Kind: errlogic.StepLimitExceeded}) {
		t.Fatalf("Expected step limit error; got %v", err)
	}
}

func TestTrace(t *testing.T) {
	var b bytes.Buffer

	_, err := Eval(context.Background(), integer.Int(1), global(), Settings{Trace: &b})
	if err != nil {
		t.Fatalf("Evaluating 1: %v", err)
	}

	if !strings.Contains(b.String(), "Code: 1") || !strings.Contains(b.String(), "EvalExpression") {
		t.Fatalf("Expected the machine state in the trace; got %q", b.String())
	}
}
