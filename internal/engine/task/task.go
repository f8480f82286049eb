// Released under an MIT license. See LICENSE.

// Package task provides the machinery used to evaluate expressions.
//
// Evaluation is performed by an abstract machine with an explicit stack of
// operations. Saved registers are pushed as restore operations and
// consecutive restore operations are condensed into one. A procedure call
// in tail position therefore reuses the restore operation of its caller
// and loops of any length run in constant space.
package task

import (
	"context"
	"fmt"
	"io"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/struct/frame"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/pair"
)

// Settings bound and observe a task.
type Settings struct {
	Steps int64     // Maximum number of steps. Zero means no limit.
	Trace io.Writer // Receives the machine state before each step, if set.
}

// T (task) encapsulates a single evaluation.
type T struct {
	*registers
	*state
}

// New creates a new task that will evaluate c in the frame f.
func New(c cell.I, f *frame.T, s Settings) *T {
	t := &T{
		registers: &registers{
			code:  c,
			dump:  pair.Null,
			frame: f,
			stack: done,
		},
		state: fresh(s),
	}

	return t
}

// Eval evaluates the expression c in the scope s.
func Eval(ctx context.Context, c cell.I, s scope.I, settings Settings) (cell.I, error) {
	t := New(c, frame.New(s), settings)
	t.PushOp(Action(EvalExpression))

	if err := t.Run(ctx); err != nil {
		return nil, err
	}

	return t.Result(), nil
}

// Fail stops the task with the error err.
func (t *T) Fail(err error) Op {
	if t.err == nil {
		t.err = errlogic.Locate(err, t.frame.Loc())
	}

	t.stack = done

	return nil
}

// Return pushes the result c and continues with the previous operation.
func (t *T) Return(c cell.I) Op {
	t.PushResult(c)

	return t.PreviousOp()
}

// Run steps through a task's operations until they are exhausted, an
// operation fails, or ctx is done.
func (t *T) Run(ctx context.Context) error {
	s := t.Op()
	for s != nil {
		if err := t.state.Runnable(ctx); err != nil {
			t.Fail(err)

			break
		}

		s = t.Step(s)
	}

	return t.err
}

// Step performs a single action and determines the next action.
func (t *T) Step(s Op) (op Op) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		op = t.Fail(errlogic.Malformed(literal.String(t.code), fmt.Sprint(r)))
	}()

	if t.trace != nil {
		t.print()
	}

	op = s.Perform(t)

	return op
}

func (t *T) print() {
	fmt.Fprint(t.trace, "Stack: ")

	for p := t.stack; p != nil && p.op != nil; p = p.stack {
		fmt.Fprint(t.trace, describe(p.op), " ")
	}

	fmt.Fprint(t.trace, "\nDump: ")

	for p := t.dump; p != pair.Null; p = pair.Cdr(p) {
		c := pair.Car(p)
		if c == nil {
			fmt.Fprint(t.trace, "<nil> ")
		} else {
			fmt.Fprint(t.trace, c.Name(), " ")
		}
	}

	fmt.Fprintln(t.trace, "\nCode:", literal.String(t.code))
}
