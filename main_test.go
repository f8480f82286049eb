package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruschm/ruschm/internal/common/type/errlogic"
)

func TestExamples(t *testing.T) {
	scripts, err := filepath.Glob(filepath.Join("examples", "*.scm"))
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range scripts {
		expected, err := os.ReadFile(strings.TrimSuffix(path, ".scm") + ".out")
		if errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			t.Fatal(err)
		}

		t.Run(filepath.Base(path), func(t *testing.T) {
			var b bytes.Buffer

			e, err := interpreter(&b)
			if err != nil {
				t.Fatalf("Creating interpreter: %v", err)
			}

			if err = script(context.Background(), e, path); err != nil {
				t.Fatalf("Running %s: %v", path, err)
			}

			if b.String() != string(expected) {
				t.Fatalf("Running %s: expected %q; got %q", path, expected, b.String())
			}
		})
	}
}

func TestScriptError(t *testing.T) {
	var b bytes.Buffer

	e, err := interpreter(&b)
	if err != nil {
		t.Fatalf("Creating interpreter: %v", err)
	}

	path := filepath.Join("examples", "errors.scm")

	err = script(context.Background(), e, path)

	var located *errlogic.Located
	if !errors.As(err, &located) {
		t.Fatalf("Expected a located error; got %v", err)
	}

	if located.Source.Line != 5 || located.Source.Name != path {
		t.Fatalf("Expected error at %s:5; got %v", path, located.Source)
	}

	if b.String() != "before\n" {
		t.Fatalf("Expected output to stop at the error; got %q", b.String())
	}
}

func TestMissingScript(t *testing.T) {
	e, err := interpreter(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("Creating interpreter: %v", err)
	}

	err = script(context.Background(), e, filepath.Join("examples", "missing.scm"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected a missing file error; got %v", err)
	}
}

func TestSource(t *testing.T) {
	var b bytes.Buffer

	e, err := interpreter(&b)
	if err != nil {
		t.Fatalf("Creating interpreter: %v", err)
	}

	err = source(context.Background(), e, "-", strings.NewReader("(display (+ 1 2))"))
	if err != nil {
		t.Fatalf("Evaluating stdin: %v", err)
	}

	if b.String() != "3" {
		t.Fatalf("Expected 3; got %q", b.String())
	}
}
