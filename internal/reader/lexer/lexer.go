// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for Scheme source text.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Text can arrive in pieces. When a buffer ends in the middle of a token
// the partial token is kept and scanning resumes when more text arrives.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ruschm/ruschm/internal/common/struct/loc"
	"github.com/ruschm/ruschm/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	depth int      // Block comment nesting.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	saved action   // Escaped action.
	state action   // Current action.

	source loc.T // Current location.
	start  loc.T // Location of the current token's first rune.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.start = l.source
	l.state = skipWhitespace

	return l
}

// Pending returns true if part of a token has been scanned but not emitted.
func (l *T) Pending() bool {
	return l.first < len(l.bytes) && strings.TrimSpace(l.bytes[l.first:]) != "" ||
		l.depth > 0
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.start
	source.Text = v

	l.tokens <- token.New(c, v, &source)
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() token.Class {
	r, w := l.peek()
	if r != eof {
		l.accept(r, w)
	}

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
	l.start = l.source
}

// T states.

func afterHash(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '(':
		l.accept(r, w)
		l.emit(token.VectorOpen, l.Text())

		return skipWhitespace
	case ';':
		l.accept(r, w)
		l.emit(token.DatumComment, l.Text())

		return skipWhitespace
	case '\\':
		l.accept(r, w)

		return scanCharacter
	case '|':
		l.accept(r, w)
		l.depth = 1

		return skipBlockComment
	}

	return scanAtom
}

func escapeNextCharacter(l *T) action {
	r := l.next()
	if r == eof {
		return nil
	}

	return l.resume()
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case delimiter(r):
			l.emit(token.Atom, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

// scanCharacter scans the first rune of a #\ literal. That rune is
// always part of the literal, even when it is a delimiter.
func scanCharacter(l *T) action {
	if l.next() == eof {
		return nil
	}

	return scanCharacterName
}

func scanCharacterName(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case delimiter(r):
			l.emit(token.Character, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			return nil
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func skipBlockComment(l *T) action {
	for {
		c := l.next()
		if c == eof {
			return nil
		}

		if c != '#' && c != '|' {
			continue
		}

		r, w := l.peek()

		switch {
		case r == eof:
			// Wait for the rest of a possible delimiter.
			l.index--
			l.runes--

			return nil
		case c == '#' && r == '|':
			l.accept(r, w)
			l.depth++
		case c == '|' && r == '#':
			l.accept(r, w)
			l.depth--

			if l.depth == 0 {
				l.skip()

				return skipWhitespace
			}
		}
	}
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		if strings.ContainsRune("\n\r\t ", rune(r)) {
			l.skip()

			continue
		}

		switch r {
		case eof:
			return nil
		case '(', ')', '\'':
			l.emit(r, l.Text())

			return skipWhitespace
		case '"':
			return scanString
		case '#':
			return afterHash
		case ';':
			return skipComment
		}

		return scanAtom
	}
}

// Helper functions.

func delimiter(r token.Class) bool {
	switch r {
	case '\t', '\n', '\r', ' ', '"', '\'', '(', ')', ';':
		return true
	}

	return false
}
