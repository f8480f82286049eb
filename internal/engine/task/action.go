// Released under an MIT license. See LICENSE.

package task

import (
	"errors"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/struct/frame"
	"github.com/ruschm/ruschm/internal/common/type/closure"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/common/type/sym"
	"github.com/ruschm/ruschm/internal/common/type/vector"
	"github.com/ruschm/ruschm/internal/common/type/void"
	"github.com/ruschm/ruschm/internal/common/validate"
)

// Actions.

// EvalExpression evaluates the expression in the code register.
//
// Result:
//
//	dump:  Value ...
//	stack: Previous ...
//
// Requires:
//
//	code:  Expression
//	stack: EvalExpression Previous ...
//
// Symbols are looked up. Applications evaluate their head so that
// execCommand can determine the next step. String and vector literals
// evaluate to a fresh copy. Everything else evaluates to itself.
func EvalExpression(t *T) Op {
	switch c := t.code.(type) {
	case *sym.T, *sym.Plus:
		if p, ok := c.(*sym.Plus); ok {
			t.frame.Update(p.Source())
		}

		v, err := t.frame.Resolve(sym.To(c).String())
		if err != nil {
			return t.Fail(err)
		}

		return t.Return(v)

	case *pair.T:
		if c == pair.Null {
			return t.Return(pair.Null)
		}

		t.ReplaceOp(Action(execCommand))
		t.PushOp(&registers{code: pair.Cdr(c)})

		t.code = pair.Car(c)

		return t.PushOp(Action(EvalExpression))

	case *str.T, *vector.T:
		return t.Return(list.Clone(c))
	}

	return t.Return(t.code)
}

// discard drops the result of an expression whose value is not needed.
func discard(t *T) Op {
	t.PopResult()

	return t.PreviousOp()
}

// evalArgs evaluates each operand of an application, left to right.
//
// Result:
//
//	code:  Arg_0
//	stack: EvalExpression Restore(code: Arg_1 ... Arg_N) evalArgs Previous ...
//
// Requires:
//
//	code:  Arg_0 ... Arg_N
//	dump:  nil Procedure ...
//	stack: evalArgs Previous ...
func evalArgs(t *T) Op {
	if t.code == pair.Null {
		return t.PreviousOp()
	}

	if !pair.Is(t.code) {
		return t.Fail(errlogic.Malformed("application", "improper argument list"))
	}

	next := pair.Cdr(t.code)
	if next == pair.Null {
		t.RemoveOp()
	} else {
		t.PushOp(&registers{code: next})
	}

	t.code = pair.Car(t.code)

	return t.PushOp(Action(EvalExpression))
}

// evalSequence evaluates a body, or the operands of begin, in order.
// The value of the last expression is the value of the sequence.
// The last expression is evaluated in tail position.
func evalSequence(t *T) Op {
	if t.code == pair.Null {
		return t.Return(void.Void)
	}

	if !pair.Is(t.code) {
		return t.Fail(errlogic.Malformed("begin", "improper body"))
	}

	next := pair.Cdr(t.code)
	if next == pair.Null {
		t.RemoveOp()
	} else {
		t.PushOp(&registers{code: next})
		t.PushOp(Action(discard))
	}

	t.code = pair.Car(t.code)

	return t.PushOp(Action(EvalExpression))
}

// execApplication applies a procedure to its evaluated arguments.
//
// Requires:
//
//	dump:  Arg_N ... Arg_0 nil Procedure ...
//	stack: execApplication Previous ...
func execApplication(t *T) Op {
	args := t.arguments()

	return t.apply(t.PopResult(), args)
}

// execCommand determines how the evaluated head of an application is used.
// The operands of a special form are not evaluated. The operands of a
// procedure call are evaluated before the procedure is applied.
func execCommand(t *T) Op {
	switch c := t.Result().(type) {
	case *Syntax:
		t.PopResult()

		return t.ReplaceOp(c.Op)

	case *closure.T, *native.T:
		t.ReplaceOp(Action(execApplication))
		t.PushResult(nil)

		return t.PushOp(Action(evalArgs))

	default:
		return t.Fail(errlogic.NotProcedure(c))
	}
}

// Helpers.

// apply applies the procedure p to args. A closure's body replaces the
// current operation so the call does not grow the stack when it is in
// tail position.
func (t *T) apply(p cell.I, args []cell.I) Op {
	for {
		switch c := p.(type) {
		case *native.T:
			v, err := c.Call(args)
			if err != nil {
				return t.Fail(err)
			}

			if a, ok := v.(*native.Application); ok {
				p, args = a.Proc, a.Args

				continue
			}

			return t.Return(v)

		case *closure.T:
			s, err := c.Bind(args)
			if err != nil {
				return t.Fail(err)
			}

			t.ReplaceOp(&registers{frame: t.frame})

			t.frame = frame.Dup(s, t.frame)
			t.code = c.Body

			return t.PushOp(Action(evalSequence))

		default:
			return t.Fail(errlogic.NotProcedure(p))
		}
	}
}

// operands returns the operands of the special form label. Having too few
// or too many is malformed syntax.
func (t *T) operands(label string, min, max int) ([]cell.I, error) {
	v, err := validate.Fixed(label, t.code, min, max)
	if err != nil {
		return nil, malformed(label, err)
	}

	return v, nil
}

// malformed converts an arity error for a special form into malformed syntax.
func malformed(label string, err error) error {
	var e *errlogic.T
	if errors.As(err, &e) && e.Kind == errlogic.ArityMismatch {
		return errlogic.Malformed(label, e.Detail)
	}

	return err
}
