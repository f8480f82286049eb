package list

import (
	"testing"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/pair"
)

func circular(n int) cell.I {
	elements := make([]cell.I, n)
	for i := range elements {
		elements[i] = integer.Int(i)
	}

	l := New(elements...)

	end := l
	for pair.Cdr(end) != pair.Null {
		end = pair.Cdr(end)
	}

	pair.SetCdr(end, l)

	return l
}

func TestLength(t *testing.T) {
	for _, c := range []struct {
		list     cell.I
		expected int
		proper   bool
	}{
		{pair.Null, 0, true},
		{New(integer.Int(1)), 1, true},
		{New(integer.Int(1), integer.Int(2), integer.Int(3)), 3, true},
		{Dotted(integer.Int(3), integer.Int(1), integer.Int(2)), 2, false},
		{integer.Int(1), 0, false},
	} {
		n, ok := Length(c.list)
		if n != c.expected || ok != c.proper {
			t.Fatalf("Length %s: expected %d, %v; got %d, %v",
				literal.String(c.list), c.expected, c.proper, n, ok)
		}
	}

	for size := 1; size <= 5; size++ {
		if _, ok := Length(circular(size)); ok {
			t.Fatalf("Expected a circular list of %d to be improper", size)
		}

		if Proper(circular(size)) {
			t.Fatalf("Expected a circular list of %d to be improper", size)
		}

		if _, ok := ToSlice(circular(size)); ok {
			t.Fatalf("Expected no slice for a circular list of %d", size)
		}
	}
}

func TestCircularText(t *testing.T) {
	for size, expected := range map[int]string{
		1: "(0 ...)",
		2: "(0 1 0 ...)",
		3: "(0 1 2 0 1 ...)",
	} {
		if s := literal.String(circular(size)); s != expected {
			t.Fatalf("Expected %s; got %s", expected, s)
		}
	}
}
