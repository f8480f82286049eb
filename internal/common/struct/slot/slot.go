// Released under an MIT license. See LICENSE.

// Package slot provides the storage behind every variable binding.
package slot

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/reference"
)

// T (slot) holds a cell value. Every scope that can see a binding shares
// the same slot, so an assignment through one is visible through all.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}

var _ reference.I = &slot{}
