// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ruschm/ruschm/internal/common/equivalence"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/integer"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	ints "github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/pair"
)

// Lists returns operations on proper lists.
func Lists() native.Table {
	return native.Table{
		pure("list", variadic("obj"), func(args []cell.I) (cell.I, error) {
			return list.New(args...), nil
		}),
		predicate("list?", list.Proper),
		pure("length", fixed("list"), length),
		pure("append", variadic("list"), appendLists),
		pure("reverse", fixed("list"), reverse),
		pure("list-tail", fixed("list", "k"), listTail),
		pure("list-ref", fixed("list", "k"), func(args []cell.I) (cell.I, error) {
			l, err := listTail(args)
			if err != nil {
				return nil, err
			}

			if !pair.Is(l) {
				n, _ := list.Length(args[0])
				i, _ := integer.Value(args[1])

				return nil, errlogic.Index(args[0], i, n)
			}

			return pair.Car(l), nil
		}),
		pure("list-copy", fixed("obj"), func(args []cell.I) (cell.I, error) {
			l, ok := list.ToSlice(args[0])
			if !ok {
				return args[0], nil
			}

			return list.New(l...), nil
		}),

		search("memq", equivalence.Eq, member),
		search("memv", equivalence.Eqv, member),
		search("member", equivalence.Equal, member),
		search("assq", equivalence.Eq, association),
		search("assv", equivalence.Eqv, association),
		search("assoc", equivalence.Equal, association),
	}
}

// appendLists returns a list of the elements of each list. All but the
// last argument are copied and must be proper lists. The last argument
// is shared and may be anything.
func appendLists(args []cell.I) (cell.I, error) {
	if len(args) == 0 {
		return pair.Null, nil
	}

	var elements []cell.I

	for _, c := range args[:len(args)-1] {
		l, err := toList(c)
		if err != nil {
			return nil, err
		}

		elements = append(elements, l...)
	}

	return list.Dotted(args[len(args)-1], elements...), nil
}

// association returns the first pair in an association list whose car
// matches key.
func association(key, l cell.I, eq func(a, b cell.I) bool) (cell.I, error) {
	for ; pair.Is(l); l = pair.Cdr(l) {
		entry, err := toPair(pair.Car(l))
		if err != nil {
			return nil, err
		}

		if eq(key, pair.Car(entry)) {
			return entry, nil
		}
	}

	if l != pair.Null {
		return nil, errlogic.TypeMismatch(l, kind.Pair)
	}

	return boolean.False, nil
}

func length(args []cell.I) (cell.I, error) {
	n, ok := list.Length(args[0])
	if !ok {
		return nil, errlogic.TypeMismatch(args[0], kind.Pair)
	}

	return ints.Int(n), nil
}

func listTail(args []cell.I) (cell.I, error) {
	k, err := count(args[1])
	if err != nil {
		return nil, err
	}

	l, ok := list.Tail(args[0], k)
	if !ok {
		n, _ := list.Length(args[0])

		return nil, errlogic.Index(args[0], int64(k), n+1)
	}

	return l, nil
}

// member returns the first sublist of l whose car matches key.
func member(key, l cell.I, eq func(a, b cell.I) bool) (cell.I, error) {
	for ; pair.Is(l); l = pair.Cdr(l) {
		if eq(key, pair.Car(l)) {
			return l, nil
		}
	}

	if l != pair.Null {
		return nil, errlogic.TypeMismatch(l, kind.Pair)
	}

	return boolean.False, nil
}

func reverse(args []cell.I) (cell.I, error) {
	if !list.Proper(args[0]) {
		return nil, errlogic.TypeMismatch(args[0], kind.Pair)
	}

	return list.Reverse(args[0]), nil
}

func search(
	name string,
	eq func(a, b cell.I) bool,
	find func(key, l cell.I, eq func(a, b cell.I) bool) (cell.I, error),
) native.Entry {
	return pure(name, fixed("obj", "list"), func(args []cell.I) (cell.I, error) {
		return find(args[0], args[1], eq)
	})
}
