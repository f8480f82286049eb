// Released under an MIT license. See LICENSE.

// Package native provides the type for procedures implemented in Go.
package native

import (
	"strings"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/validate"
)

const name = "procedure"

// Function is the Go implementation of a native procedure.
type Function func(args []cell.I) (cell.I, error)

// Shape names the parameters a native procedure accepts. A non-empty
// Rest collects any arguments beyond Params.
type Shape struct {
	Params []string
	Rest   string
}

// Fixed returns the shape of a procedure that takes exactly params.
func Fixed(params ...string) Shape {
	return Shape{Params: params}
}

// Variadic returns the shape of a procedure that takes params followed by
// any number of arguments collected as rest.
func Variadic(rest string, params ...string) Shape {
	return Shape{Params: params, Rest: rest}
}

// Check returns an error if n arguments do not fit the shape s.
func (s Shape) Check(label string, n int) error {
	max := len(s.Params)
	if s.Rest != "" {
		max = -1
	}

	return validate.Range(label, n, len(s.Params), max)
}

// String returns the shape as a parameter list.
func (s Shape) String() string {
	p := strings.Join(s.Params, " ")

	switch {
	case s.Rest == "":
		return "(" + p + ")"
	case p == "":
		return s.Rest
	}

	return "(" + p + " . " + s.Rest + ")"
}

// T (native) is a procedure implemented in Go.
type T struct {
	Label string
	Shape
	Fn Function
}

type native = T

// New creates a native procedure.
func New(label string, s Shape, fn Function) *native {
	return &native{Label: label, Shape: s, Fn: fn}
}

// Call checks the number of arguments and then calls n's function.
func (n *native) Call(args []cell.I) (cell.I, error) {
	if err := n.Check(n.Label, len(args)); err != nil {
		return nil, err
	}

	return n.Fn(args)
}

// Equal returns true if c is the same native procedure.
func (n *native) Equal(c cell.I) bool {
	return c == cell.I(n)
}

// Literal returns the literal representation of the native procedure n.
func (n *native) Literal() string {
	return "#<procedure " + n.Label + ">"
}

// Name returns the name of the native type.
func (n *native) Name() string {
	return name
}

// Application is returned by a native procedure that wants Proc applied
// to Args in its place. The application happens in tail position.
type Application struct {
	Proc cell.I
	Args []cell.I
}

// Equal returns true if c is the same application.
func (a *Application) Equal(c cell.I) bool {
	return c == cell.I(a)
}

// Name returns the name of the application type.
func (a *Application) Name() string {
	return "application"
}

// Entry binds a name to a value.
type Entry struct {
	Name  string
	Value cell.I
}

// Table is an ordered set of bindings.
type Table []Entry

// Pure creates an entry for a native procedure called name.
func Pure(name string, s Shape, fn Function) Entry {
	return Entry{Name: name, Value: New(name, s, fn)}
}

// Merge defines every entry of every table in s. Tables are merged in
// order so later bindings replace earlier ones with the same name.
func Merge(s scope.I, tables ...Table) {
	for _, t := range tables {
		for _, e := range t {
			s.Define(e.Name, e.Value)
		}
	}
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a native " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t native

	// The native type is a cell.
	_ = cell.I(&t)

	// The native type has a literal representation.
	_ = literal.I(&t)

	// An application is a cell.
	_ = cell.I(&Application{})
}
