package history

import (
	"bytes"
	"io"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "(+ 1 2)\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer

	err = Load(func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if b.String() != "(+ 1 2)\n" {
		t.Fatalf("Expected the saved history; got %q", b.String())
	}
}
