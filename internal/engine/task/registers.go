// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/struct/frame"
	"github.com/ruschm/ruschm/internal/common/type/pair"
)

// The registers type holds the state of the stack-based abstract machine.
//
// The dump holds intermediate results. Evaluating an expression pushes
// exactly one result. A nil result marks where a procedure's arguments
// begin.
type registers struct {
	*stack
	frame *frame.T
	code  cell.I
	dump  cell.I
}

// Perform copies non-nil fields from m to target.
func (m *registers) Perform(target *T) Op {
	m.restoreOver(target.registers)

	return target.PreviousOp()
}

// Op returns the abstract machine's current operation.
func (m *registers) Op() Op {
	return m.stack.op
}

// PopResult removes the top result from dump.
func (m *registers) PopResult() cell.I {
	r := pair.Car(m.dump)
	m.dump = pair.Cdr(m.dump)

	return r
}

// PushOp pushes a new operation onto the stack.
func (m *registers) PushOp(s Op) Op {
	current := toRegisters(s)
	previous := toRegisters(m.stack.op)

	if current != nil && previous != nil {
		// Condense restore operations.
		previous.restoreOver(current)
		m.stack.op = current
	} else {
		m.stack = &stack{m.stack, s}
	}

	return s
}

// PushResult adds the result r to dump.
func (m *registers) PushResult(r cell.I) {
	m.dump = pair.Cons(r, m.dump)
}

// PreviousOp pops the current operation and returns the previous operation.
func (m *registers) PreviousOp() Op {
	m.RemoveOp()

	return m.Op()
}

// RemoveOp pops the current operation off the stack.
func (m *registers) RemoveOp() {
	m.stack = m.stack.stack
}

// ReplaceOp replaces the operation at the top of the stack.
func (m *registers) ReplaceOp(s Op) Op {
	m.RemoveOp()

	return m.PushOp(s)
}

// Result returns the current result.
func (m *registers) Result() cell.I {
	return pair.Car(m.dump)
}

// The stack type is a machine's execution stack.
type stack struct {
	*stack
	op Op
}

//nolint:gochecknoglobals
var (
	done = &stack{}
)

// arguments pops results up to and including the nil marker and returns
// them in the order they were pushed.
func (m *registers) arguments() []cell.I {
	var args []cell.I

	for e := m.PopResult(); e != nil; e = m.PopResult() {
		args = append(args, e)
	}

	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}

	return args
}

func (m *registers) restoreOver(target *registers) {
	if m.frame != nil {
		target.frame = m.frame
	}

	if m.code != nil {
		target.code = m.code
	}

	if m.dump != nil {
		target.dump = m.dump
	}

	if m.stack != nil {
		target.stack = m.stack
	}
}

func init() { //nolint:gochecknoinits
	done.stack = done
}

func toRegisters(s Op) *registers {
	if r, ok := s.(*registers); ok {
		return r
	}

	return nil
}
