// Released under an MIT license. See LICENSE.

// Package str provides the mutable string type.
package str

import (
	"strconv"

	"github.com/ruschm/ruschm/internal/common"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
)

const name = "string"

// T (str) is a fixed-length, mutable sequence of characters.
// Copies of a *T share the same characters.
type T struct {
	runes []rune
}

type str = T

// New creates a new str cell holding the characters in v.
func New(v string) *str {
	return &str{runes: []rune(v)}
}

// Make creates a new str of length n filled with r.
func Make(n int, r rune) *str {
	s := &str{runes: make([]rune, n)}
	s.Fill(r)

	return s
}

// Runes creates a new str cell holding a copy of rs.
func Runes(rs []rune) *str {
	return &str{runes: append([]rune(nil), rs...)}
}

// Copy returns a new str with the same characters as s.
func (s *str) Copy() *str {
	return Runes(s.runes)
}

// Equal returns true if c is a str with the same characters.
func (s *str) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(o.runes) != len(s.runes) {
		return false
	}

	for i, r := range s.runes {
		if o.runes[i] != r {
			return false
		}
	}

	return true
}

// Fill sets every character in s to r.
func (s *str) Fill(r rune) {
	for i := range s.runes {
		s.runes[i] = r
	}
}

// Len returns the number of characters in s.
func (s *str) Len() int {
	return len(s.runes)
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return strconv.Quote(string(s.runes))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// Ref returns the character at index i.
func (s *str) Ref(i int) rune {
	return s.runes[i]
}

// Set sets the character at index i to r.
func (s *str) Set(i int, r rune) {
	s.runes[i] = r
}

// Slice returns a new str holding the characters from start to end.
func (s *str) Slice(start, end int) *str {
	return Runes(s.runes[start:end])
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(s.runes)
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

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
