// Released under an MIT license. See LICENSE.

// Package hash provides the name to binding mapping held by each scope.
package hash

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/reference"
	"github.com/ruschm/ruschm/internal/common/struct/slot"
)

// T (hash) maps names to values.
type T struct {
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Set associates the name k with the cell v in the hash h.
// An existing binding for k is overwritten in place.
func (h *hash) Set(k string, v cell.I) {
	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}
