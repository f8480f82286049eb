package reader

import (
	"errors"
	"io"
	"testing"

	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/engine/numeric"
)

func TestContinuation(t *testing.T) {
	r := New("test", numeric.New[float64]().Parse)

	r.Scan("(define (f x)\n")

	if _, err := r.Read(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("Expected incomplete; got %v", err)
	}

	if !r.Pending() {
		t.Fatal("Expected a pending datum")
	}

	r.Scan("  (* x x)) 'done\n")

	c, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}

	if s := literal.String(c); s != "(define (f x) (* x x))" {
		t.Fatalf("Expected the whole definition; got %s", s)
	}

	c, err = r.Read()
	if err != nil {
		t.Fatal(err)
	}

	if s := literal.String(c); s != "(quote done)" {
		t.Fatalf("Expected (quote done); got %s", s)
	}

	if _, err = r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("Expected EOF; got %v", err)
	}
}

func TestParse(t *testing.T) {
	var data []string

	for c, err := range Parse("test", "1 (2 3) x", numeric.New[float64]().Parse) {
		if err != nil {
			t.Fatal(err)
		}

		data = append(data, literal.String(c))
	}

	if len(data) != 3 || data[0] != "1" || data[1] != "(2 3)" || data[2] != "x" {
		t.Fatalf("Unexpected data: %v", data)
	}
}

func TestParseIncomplete(t *testing.T) {
	n := 0

	for _, err := range Parse("test", "1 (2", numeric.New[float64]().Parse) {
		n++

		if n == 1 && err != nil {
			t.Fatal(err)
		}

		if n == 2 && !errors.Is(err, &errlogic.T{Kind: errlogic.MalformedSyntax}) {
			t.Fatalf("Expected malformed syntax; got %v", err)
		}
	}

	if n != 2 {
		t.Fatalf("Expected 2 results; got %d", n)
	}
}

func TestResetAfterError(t *testing.T) {
	r := New("test", numeric.New[float64]().Parse)

	r.Scan(") ignored\n")

	if _, err := r.Read(); err == nil {
		t.Fatal("Expected an error")
	}

	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("Expected the rest of the text to be discarded; got %v", err)
	}
}
