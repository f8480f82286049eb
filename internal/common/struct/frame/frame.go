// Released under an MIT license. See LICENSE.

// Package frame provides the evaluator's activation record type.
package frame

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/struct/loc"
)

// T (frame) is an activation record: the scope being evaluated in and the
// last source location seen.
type T struct {
	scope  scope.I
	source loc.T
}

type frame = T

// Dup creates a duplicate of the frame f with a new scope s.
func Dup(s scope.I, f *frame) *frame {
	dup := *f
	dup.scope = s

	return &dup
}

// New creates a new frame with the scope s.
func New(s scope.I) *frame {
	return &frame{scope: s}
}

// Loc returns the current location.
func (f *frame) Loc() *loc.T {
	return &f.source
}

// Resolve returns the value bound to k in the frame's scope.
func (f *frame) Resolve(k string) (cell.I, error) {
	return scope.Resolve(f.scope, k)
}

// Scope returns the current frame's scope.
func (f *frame) Scope() scope.I {
	return f.scope
}

// Update sets the current lexical location.
func (f *frame) Update(source *loc.T) {
	if source != nil {
		f.source = *source
	}
}
