// Released under an MIT license. See LICENSE.

// Package scope defines the interface for lexical environments.
package scope

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/reference"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
)

// I (scope) is one frame in a chain of lexical environments.
type I interface {
	cell.I

	Define(k string, v cell.I)
	Extend() I
	Lookup(k string) reference.I
}

type scope = I

// Assign replaces the value of the nearest existing binding for k.
// Unlike Define, it never creates a binding.
func Assign(s scope, k string, v cell.I) error {
	r := s.Lookup(k)
	if r == nil {
		return errlogic.Unbound(k)
	}

	r.Set(v)

	return nil
}

// Resolve returns the value bound to k in s or one of its enclosing scopes.
func Resolve(s scope, k string) (cell.I, error) {
	r := s.Lookup(k)
	if r == nil {
		return nil, errlogic.Unbound(k)
	}

	return r.Get(), nil
}
