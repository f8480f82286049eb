package lexer

import (
	"testing"

	"github.com/ruschm/ruschm/internal/common/struct/token"
)

func TestAtoms(t *testing.T) {
	h := setup(t, "Atoms")

	h.scan("foo 42 -1.5e3 #t ...\n",
		h.atom("foo"),
		h.space(1),
		h.atom("42"),
		h.space(1),
		h.atom("-1.5e3"),
		h.space(1),
		h.atom("#t"),
		h.space(1),
		h.atom("..."),
		nil,
	)
}

func TestBlockComment(t *testing.T) {
	h := setup(t, "BlockComment")

	h.scan("#| outer #| inner |# still |#x\n",
		h.space(len("#| outer #| inner |# still |#")),
		h.atom("x"),
		nil,
	)
}

func TestCharacters(t *testing.T) {
	h := setup(t, "Characters")

	h.scan(`#\a #\space #\( #\)`+"\n",
		h.other(token.Character, `#\a`),
		h.space(1),
		h.other(token.Character, `#\space`),
		h.space(1),
		h.other(token.Character, `#\(`),
		h.space(1),
		h.other(token.Character, `#\)`),
		nil,
	)
}

func TestDatumComment(t *testing.T) {
	h := setup(t, "DatumComment")

	h.scan("#;(a) b\n",
		h.other(token.DatumComment, "#;"),
		h.literal("("),
		h.atom("a"),
		h.literal(")"),
		h.space(1),
		h.atom("b"),
		nil,
	)
}

func TestDottedList(t *testing.T) {
	h := setup(t, "DottedList")

	h.scan("'(1 . 2)\n",
		h.literal("'"),
		h.literal("("),
		h.atom("1"),
		h.space(1),
		h.atom("."),
		h.space(1),
		h.atom("2"),
		h.literal(")"),
		nil,
	)
}

func TestLineComment(t *testing.T) {
	h := setup(t, "LineComment")

	h.scan("; nothing here\n",
		nil,
	)

	h.newline()

	h.scan("x ; trailing\n",
		h.atom("x"),
		nil,
	)
}

func TestResume(t *testing.T) {
	h := setup(t, "Resume")

	h.scan(`"abc`,
		nil,
	)

	if !h.lexer.Pending() {
		t.Fatal("Expected a pending token")
	}

	h.scan("def\" x\n",
		h.other(token.String, `"abcdef"`),
		h.space(1),
		h.atom("x"),
		nil,
	)

	if h.lexer.Pending() {
		t.Fatal("Expected no pending token")
	}
}

func TestStringEscapes(t *testing.T) {
	h := setup(t, "StringEscapes")

	h.scan(`"a\"b" "c\\"`+"\n",
		h.other(token.String, `"a\"b"`),
		h.space(1),
		h.other(token.String, `"c\\"`),
		nil,
	)
}

func TestVector(t *testing.T) {
	h := setup(t, "Vector")

	h.scan("#(1 2)\n",
		h.other(token.VectorOpen, "#("),
		h.atom("1"),
		h.space(1),
		h.atom("2"),
		h.literal(")"),
		nil,
	)
}

type expected struct {
	char  int
	class token.Class
	line  int
	value string
}

type harness struct {
	char  int
	lexer *T
	line  int
	t     *testing.T
}

var skip = &expected{} //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		char:  1,
		lexer: New(label),
		line:  1,
		t:     t,
	}
}

func (h *harness) expect(tokens ...*expected) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %q but there are no tokens", e.value)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.Class() != e.class || a.Value() != e.value:
			h.t.Fatalf("Expected %q (%v); got %v", e.value, e.class, a)
		case a.Source().Line != e.line || a.Source().Char != e.char:
			h.t.Fatalf("Expected %q at %d:%d; got %v", e.value, e.line, e.char, a)
		}
	}
}

func (h *harness) atom(s string) *expected {
	return h.other(token.Atom, s)
}

func (h *harness) newline() {
	h.char = 1
	h.line++
}

func (h *harness) literal(s string) *expected {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) other(class token.Class, s string) *expected {
	e := &expected{
		char:  h.char,
		class: class,
		line:  h.line,
		value: s,
	}

	h.char += len([]rune(s))

	return e
}

func (h *harness) scan(s string, tokens ...*expected) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *expected {
	h.char += n

	return skip
}
