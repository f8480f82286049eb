// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/integer"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	ints "github.com/ruschm/ruschm/internal/common/type/integer"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/vector"
	"github.com/ruschm/ruschm/internal/common/type/void"
)

// Vectors returns vector operations.
func Vectors() native.Table {
	return native.Table{
		predicate("vector?", vector.Is),

		pure("vector", variadic("obj"), func(args []cell.I) (cell.I, error) {
			return vector.New(append([]cell.I(nil), args...)...), nil
		}),
		pure("make-vector", variadic("fill", "k"), func(args []cell.I) (cell.I, error) {
			if len(args) > 2 {
				return nil, errlogic.Arity("make-vector", "at most 2 arguments", len(args))
			}

			n, err := count(args[0])
			if err != nil {
				return nil, err
			}

			var fill cell.I = void.Void
			if len(args) == 2 {
				fill = args[1]
			}

			return vector.Make(n, fill), nil
		}),
		pure("vector-length", fixed("vector"), func(args []cell.I) (cell.I, error) {
			v, err := toVector(args[0])
			if err != nil {
				return nil, err
			}

			return ints.Int(v.Len()), nil
		}),
		pure("vector-ref", fixed("vector", "k"), func(args []cell.I) (cell.I, error) {
			v, err := toVector(args[0])
			if err != nil {
				return nil, err
			}

			i, err := integer.Index(args[1], v, v.Len())
			if err != nil {
				return nil, err
			}

			return v.Ref(i), nil
		}),
		pure("vector-set!", fixed("vector", "k", "obj"), func(args []cell.I) (cell.I, error) {
			v, err := toVector(args[0])
			if err != nil {
				return nil, err
			}

			i, err := integer.Index(args[1], v, v.Len())
			if err != nil {
				return nil, err
			}

			v.Set(i, args[2])

			return void.Void, nil
		}),
		pure("vector-fill!", fixed("vector", "fill"), func(args []cell.I) (cell.I, error) {
			v, err := toVector(args[0])
			if err != nil {
				return nil, err
			}

			v.Fill(args[1])

			return void.Void, nil
		}),
		pure("vector->list", variadic("range", "vector"), func(args []cell.I) (cell.I, error) {
			items, err := slice("vector->list", args)
			if err != nil {
				return nil, err
			}

			return list.New(items...), nil
		}),
		pure("vector-copy", variadic("range", "vector"), func(args []cell.I) (cell.I, error) {
			items, err := slice("vector-copy", args)
			if err != nil {
				return nil, err
			}

			return vector.New(append([]cell.I(nil), items...)...), nil
		}),
		pure("list->vector", fixed("list"), func(args []cell.I) (cell.I, error) {
			l, err := toList(args[0])
			if err != nil {
				return nil, err
			}

			return vector.New(l...), nil
		}),
	}
}

// slice returns the items of a vector between optional start and end
// arguments. The result shares storage with the vector.
func slice(label string, args []cell.I) ([]cell.I, error) {
	if len(args) > 3 {
		return nil, errlogic.Arity(label, "at most 3 arguments", len(args))
	}

	v, err := toVector(args[0])
	if err != nil {
		return nil, err
	}

	start, end, err := bounds(v, args[1:], v.Len())
	if err != nil {
		return nil, err
	}

	return v.Items()[start:end], nil
}
