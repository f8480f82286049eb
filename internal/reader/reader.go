// Released under an MIT license. See LICENSE.

// Package reader turns Scheme source text into data.
package reader

import (
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/struct/token"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/reader/lexer"
	"github.com/ruschm/ruschm/internal/reader/parser"
)

// ErrIncomplete is returned by Read when more text is needed.
var ErrIncomplete = parser.ErrIncomplete

// T (reader) encapsulates the lexer and parser.
type T struct {
	label   string
	number  func(string) (cell.I, bool)
	p       *parser.T
	pending []*token.T // Tokens consumed by the datum being read.
	replay  []*token.T // Tokens to hand to the parser before scanning more.
	s       *lexer.T
}

type reader = T

// New creates a new reader for label. Number reads numeric literals.
func New(label string, number func(string) (cell.I, bool)) *T {
	r := &T{label: label, number: number}

	r.Reset()

	return r
}

// Parse returns the data in text, in order.
func Parse(label, text string, number func(string) (cell.I, bool)) iter.Seq2[cell.I, error] {
	r := New(label, number)

	r.Scan(text)

	if !strings.HasSuffix(text, "\n") {
		r.Scan("\n")
	}

	return r.All()
}

// All returns the data that can be read from the text scanned so far.
// Text that ends inside a datum is an error.
func (r *reader) All() iter.Seq2[cell.I, error] {
	return func(yield func(cell.I, error) bool) {
		for {
			c, err := r.Read()

			switch {
			case errors.Is(err, io.EOF):
				return
			case errors.Is(err, ErrIncomplete):
				yield(nil, errlogic.Malformed(r.label, "unexpected end of input"))

				return
			}

			if !yield(c, err) || err != nil {
				return
			}
		}
	}
}

// Pending returns true if a partial datum has been scanned.
func (r *reader) Pending() bool {
	return len(r.replay) > 0 || r.s.Pending()
}

// Read returns the next datum. It returns io.EOF when the text scanned so
// far holds no more data and ErrIncomplete when it ends inside a datum.
// After ErrIncomplete, scanning more text and calling Read again resumes.
// Any other error discards the remaining text.
func (r *reader) Read() (cell.I, error) {
	c, err := r.p.Parse()

	switch {
	case err == nil, errors.Is(err, io.EOF):
		r.pending = nil
	case errors.Is(err, ErrIncomplete):
		r.replay = r.pending
		r.pending = nil
	default:
		r.Reset()
	}

	return c, err
}

// Reset discards any scanned text.
func (r *reader) Reset() {
	r.pending = nil
	r.replay = nil
	r.s = lexer.New(r.label)
	r.p = parser.New(r.item, r.number)
}

// Scan passes text to the reader.
func (r *reader) Scan(text string) {
	r.s.Scan(text)
}

func (r *reader) item() *token.T {
	var t *token.T

	if len(r.replay) > 0 {
		t, r.replay = r.replay[0], r.replay[1:]
	} else {
		t = r.s.Token()
	}

	if t != nil {
		r.pending = append(r.pending, t)
	}

	return t
}
