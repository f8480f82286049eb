// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for Scheme data.
package parser

import (
	"errors"
	"io"

	"github.com/michaelmacinnis/adapted"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/struct/token"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/char"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/common/type/sym"
	"github.com/ruschm/ruschm/internal/common/type/vector"
)

// ErrIncomplete is returned when the tokens run out inside a datum.
var ErrIncomplete = errors.New("incomplete datum")

// T holds the state of the parser.
type T struct {
	ahead  int                         // Lookahead count.
	item   func() *token.T             // Function to call to get another token.
	number func(string) (cell.I, bool) // Function to call to read a number.
	token  *token.T                    // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a reader of numbers.
func New(item func() *token.T, number func(string) (cell.I, bool)) *T {
	return &T{item: item, number: number}
}

// Parse consumes the tokens for one datum and returns it. It returns
// io.EOF if there are no more tokens and ErrIncomplete if the tokens run
// out before the datum is complete.
func (p *T) Parse() (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			panic(r)
		}

		c, err = nil, e
	}()

	for p.peek().Is(token.DatumComment) {
		p.consume()
		p.datum()
	}

	if p.peek() == nil {
		return nil, io.EOF
	}

	return p.datum(), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic(errors.New("nothing to consume"))
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) fail(t *token.T, detail string) {
	panic(errlogic.Locate(errlogic.Malformed(t.Value(), detail), t.Source()))
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()
	if t != nil {
		p.token = t
		p.ahead = 1
	}

	return t
}

// required returns the next token, skipping datum comments.
func (p *T) required() *token.T {
	for {
		t := p.peek()
		if t == nil {
			panic(ErrIncomplete)
		}

		if !t.Is(token.DatumComment) {
			return t
		}

		p.consume()
		p.datum()
	}
}

// T state functions.

// <datum> ::= <atom> | Character | String | '\'' <datum>
//           | '(' <list> | VectorOpen <vector> .
func (p *T) datum() cell.I {
	t := p.required()

	switch t.Class() {
	case token.Atom:
		p.consume()

		return p.atom(t)

	case token.Character:
		p.consume()

		r, ok := char.Parse(t.Value()[2:])
		if !ok {
			p.fail(t, "unknown character name")
		}

		return char.New(r)

	case token.String:
		p.consume()

		text := t.Value()

		s, err := adapted.ActualBytes(text[1 : len(text)-1])
		if err != nil {
			p.fail(t, err.Error())
		}

		return str.New(s)

	case '\'':
		p.consume()

		return list.New(sym.New("quote"), p.datum())

	case '(':
		p.consume()

		return p.list()

	case token.VectorOpen:
		p.consume()

		return vector.New(p.elements()...)
	}

	p.fail(t, "unexpected token")

	return nil
}

// <atom> ::= Boolean | Number | Symbol .
func (p *T) atom(t *token.T) cell.I {
	text := t.Value()

	if text == "." {
		p.fail(t, "unexpected dot")
	}

	if b, ok := boolean.New(text); ok {
		return b
	}

	if n, ok := p.number(text); ok {
		return n
	}

	if text[0] == '#' {
		p.fail(t, "unknown syntax")
	}

	return sym.Token(t)
}

// <elements> ::= <datum>* ')' .
func (p *T) elements() []cell.I {
	var items []cell.I

	for !p.required().Is(')') {
		items = append(items, p.datum())
	}

	p.consume()

	return items
}

// <list> ::= <datum>* ('.' <datum>)? ')' .
func (p *T) list() cell.I {
	var items []cell.I

	tail := cell.I(pair.Null)

	for {
		t := p.required()

		if t.Is(')') {
			p.consume()

			break
		}

		if t.Is(token.Atom) && t.Value() == "." {
			if len(items) == 0 {
				p.fail(t, "dot without a preceding datum")
			}

			p.consume()

			tail = p.datum()

			if t := p.required(); !t.Is(')') {
				p.fail(t, "expected ')' after dotted tail")
			}

			p.consume()

			break
		}

		items = append(items, p.datum())
	}

	return list.Dotted(tail, items...)
}
