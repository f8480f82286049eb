// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ruschm/ruschm/internal/common/equivalence"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/truth"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/native"
)

// Booleans returns boolean operations and the equivalence predicates.
func Booleans() native.Table {
	return native.Table{
		pure("not", fixed("obj"), not),
		predicate("boolean?", boolean.Is),
		pure("boolean=?", variadic("rest", "b1", "b2"), booleanEq),

		pure("eq?", fixed("obj1", "obj2"), equivalent(equivalence.Eq)),
		pure("eqv?", fixed("obj1", "obj2"), equivalent(equivalence.Eqv)),
		pure("equal?", fixed("obj1", "obj2"), equivalent(equivalence.Equal)),
	}
}

// booleanEq returns true if all of its arguments are the same boolean.
// Every argument must be a boolean.
func booleanEq(args []cell.I) (cell.I, error) {
	for _, c := range args {
		if !boolean.Is(c) {
			return nil, errlogic.TypeMismatch(c, kind.Boolean)
		}
	}

	for _, c := range args[1:] {
		if c != args[0] {
			return boolean.False, nil
		}
	}

	return boolean.True, nil
}

func equivalent(eq func(a, b cell.I) bool) native.Function {
	return func(args []cell.I) (cell.I, error) {
		return boolean.Bool(eq(args[0], args[1])), nil
	}
}

// not returns true only for #f.
func not(args []cell.I) (cell.I, error) {
	return boolean.Bool(!truth.Value(args[0])), nil
}
