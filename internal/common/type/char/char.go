// Released under an MIT license. See LICENSE.

// Package char provides the character type.
package char

import (
	"strconv"
	"unicode/utf8"

	"github.com/ruschm/ruschm/internal/common"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
)

const name = "character"

// T (char) wraps Go's rune type.
type T rune

type char = T

//nolint:gochecknoglobals
var (
	byname = map[string]rune{
		"alarm":     '\a',
		"backspace": '\b',
		"delete":    0x7f,
		"escape":    0x1b,
		"newline":   '\n',
		"null":      0,
		"return":    '\r',
		"space":     ' ',
		"tab":       '\t',
	}
	byrune = map[rune]string{}
)

// New creates a new char cell.
func New(r rune) *char {
	c := char(r)

	return &c
}

// Parse returns the rune named by s, the text that follows #\ in a
// character literal. Named characters and hex escapes (x41) are accepted.
func Parse(s string) (rune, bool) {
	if r, ok := byname[s]; ok {
		return r, true
	}

	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)

		return r, true
	}

	if len(s) > 1 && s[0] == 'x' {
		n, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil && utf8.ValidRune(rune(n)) {
			return rune(n), true
		}
	}

	return 0, false
}

// Equal returns true if c is a char with the same value.
func (c *char) Equal(o cell.I) bool {
	return Is(o) && *c == *To(o)
}

// Literal returns the literal representation of the char c.
func (c *char) Literal() string {
	r := rune(*c)

	if n, ok := byrune[r]; ok {
		return `#\` + n
	}

	if r < ' ' {
		return `#\x` + strconv.FormatInt(int64(r), 16)
	}

	return `#\` + string(r)
}

// Name returns the type name for the char c.
func (c *char) Name() string {
	return name
}

// Rune returns the value of the char c.
func (c *char) Rune() rune {
	return rune(*c)
}

// String returns the char c as text.
func (c *char) String() string {
	return string(rune(*c))
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

func init() { //nolint:gochecknoinits
	for k, v := range byname {
		byrune[v] = k
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(&t)

	// The char type has a literal representation.
	_ = literal.I(&t)

	// The char type is a stringer.
	_ = common.Stringer(&t)
}
