// Released under an MIT license. See LICENSE.

// Package env provides the lexical environment frame type.
package env

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/reference"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to bindings and links to the enclosing frame.
// Frames are shared by reference: a closure holds the frame it was
// created in, never a copy of it.
type T struct {
	previous scope.I
	*bindings
}

type env = T

// We alias hash.T to bindings so that when embedded it is easy to refer to
// it by name. Embedding bindings also lets us access its methods directly.
type bindings = hash.T

// New creates a new env whose enclosing frame is previous.
// The global frame is created with a nil previous.
func New(previous scope.I) *env {
	return &env{
		previous: previous,
		bindings: hash.New(),
	}
}

// Define associates the name k with the cell v in the env e only.
// Enclosing frames are never affected.
func (e *env) Define(k string, v cell.I) {
	e.Set(k, v)
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Extend creates a new frame enclosed by e. Each procedure call gets
// one.
func (e *env) Extend() scope.I {
	return New(e)
}

// Lookup retrieves the reference associated with the name k in the env e
// or, failing that, in the nearest enclosing frame that binds k.
func (e *env) Lookup(k string) reference.I {
	var s scope.I = e

	for s != nil {
		f, ok := s.(*env)
		if !ok {
			return s.Lookup(k)
		}

		if r := f.Get(k); r != nil {
			return r
		}

		s = f.previous
	}

	return nil
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
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

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
