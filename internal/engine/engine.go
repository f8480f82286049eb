// Released under an MIT license. See LICENSE.

// Package engine provides an interpreter for parsed Scheme code.
package engine

import (
	"context"
	"io"
	"iter"
	"os"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/type/env"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/real"
	"github.com/ruschm/ruschm/internal/engine/boot"
	"github.com/ruschm/ruschm/internal/engine/commands"
	"github.com/ruschm/ruschm/internal/engine/numeric"
	"github.com/ruschm/ruschm/internal/engine/task"
	"github.com/ruschm/ruschm/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating code.
// The global scope persists across calls. An engine must not be used by
// more than one goroutine at a time.
type T struct {
	arithmetic numeric.Arithmetic
	global     scope.I
	output     io.Writer
	settings   task.Settings
	tables     []native.Table
}

// Option configures an engine.
type Option func(*T)

// WithOutput sets the writer used by display and the other output procedures.
func WithOutput(w io.Writer) Option {
	return func(e *T) {
		e.output = w
	}
}

// WithStepLimit bounds the number of machine steps each expression may take.
func WithStepLimit(n int64) Option {
	return func(e *T) {
		e.settings.Steps = n
	}
}

// WithTables adds host tables. They are merged after the standard library
// and prelude, in order, so their bindings take precedence.
func WithTables(tables ...native.Table) Option {
	return func(e *T) {
		e.tables = append(e.tables, tables...)
	}
}

// WithTrace writes the machine state to w before every step.
func WithTrace(w io.Writer) Option {
	return func(e *T) {
		e.settings.Trace = w
	}
}

// New creates an engine whose reals have the precision of F.
func New[F real.Float](opts ...Option) (*T, error) {
	e := &T{
		arithmetic: numeric.New[F](),
		global:     env.New(nil),
		output:     os.Stdout,
	}

	for _, opt := range opts {
		opt(e)
	}

	task.Keywords(e.global)
	native.Merge(e.global, commands.Tables(e.arithmetic, e.output)...)

	// The prelude is trusted and runs without the host's bounds.
	settings := e.settings
	e.settings = task.Settings{}

	_, err := e.EvaluateString(context.Background(), "boot", boot.Script())

	e.settings = settings

	if err != nil {
		return nil, err
	}

	native.Merge(e.global, e.tables...)

	return e, nil
}

// Eval evaluates the expression c in the global scope.
func (e *T) Eval(ctx context.Context, c cell.I) (cell.I, error) {
	return task.Eval(ctx, c, e.global, e.settings)
}

// Evaluate evaluates each expression in turn. It returns the value of the
// last expression, or nil if there are none, or the first error.
func (e *T) Evaluate(ctx context.Context, exprs iter.Seq2[cell.I, error]) (cell.I, error) {
	var last cell.I

	for c, err := range exprs {
		if err != nil {
			return nil, err
		}

		last, err = e.Eval(ctx, c)
		if err != nil {
			return nil, err
		}
	}

	return last, nil
}

// EvaluateString reads and evaluates text. Label names the text's source.
func (e *T) EvaluateString(ctx context.Context, label, text string) (cell.I, error) {
	return e.Evaluate(ctx, reader.Parse(label, text, e.arithmetic.Parse))
}

// Reader returns a reader for text that will be evaluated by e.
func (e *T) Reader(label string) *reader.T {
	return reader.New(label, e.arithmetic.Parse)
}

// Scope returns the global scope.
func (e *T) Scope() scope.I {
	return e.global
}
