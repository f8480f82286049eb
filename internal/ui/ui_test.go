package ui

import (
	"bytes"
	"testing"

	"github.com/ruschm/ruschm/internal/engine"
)

func TestEvaluate(t *testing.T) {
	e, err := engine.New[float64]()
	if err != nil {
		t.Fatal(err)
	}

	var (
		b      bytes.Buffer
		errors []error
	)

	report := func(err error) {
		errors = append(errors, err)
	}

	r := e.Reader("test")

	r.Scan("(define x 2) (* x\n")

	if p := evaluate(e, r, &b, report); p != continuation {
		t.Fatalf("Expected the continuation prompt; got %q", p)
	}

	r.Scan("21) (car '()) 'next\n")

	if p := evaluate(e, r, &b, report); p != prompt {
		t.Fatalf("Expected the prompt; got %q", p)
	}

	if b.String() != "42\nnext\n" {
		t.Fatalf("Unexpected output %q", b.String())
	}

	if len(errors) != 1 {
		t.Fatalf("Expected one error; got %v", errors)
	}

	r.Scan(")\n")

	if p := evaluate(e, r, &b, report); p != prompt || len(errors) != 2 {
		t.Fatalf("Expected a reported syntax error; got %q %v", p, errors)
	}
}
