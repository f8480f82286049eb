// Released under an MIT license. See LICENSE.

// Package sym provides the symbol cell type. All symbols are interned so
// two symbols with the same name are the same *T.
package sym

import (
	"sync"

	"github.com/ruschm/ruschm/internal/common"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) wraps Go's string type.
type T string

type sym = T

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

// New creates (or retrieves) the symbol named v.
func New(v string) *sym {
	cachel.RLock()
	p, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	s := sym(v)
	p = &s
	cache[v] = p

	return p
}

// Equal returns true if c is a sym with the same name.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && To(c) == s
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
