// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/type/closure"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/native"
)

// Control returns procedure and error operations.
func Control() native.Table {
	return native.Table{
		predicate("procedure?", procedure),

		// The evaluator performs the application in tail position.
		pure("apply", variadic("args", "proc", "arg"), func(args []cell.I) (cell.I, error) {
			proc := args[0]
			if !procedure(proc) {
				return nil, errlogic.NotProcedure(proc)
			}

			last := args[len(args)-1]

			tail, ok := list.ToSlice(last)
			if !ok {
				return nil, errlogic.TypeMismatch(last, kind.Pair)
			}

			leading := args[1 : len(args)-1]

			return &native.Application{
				Proc: proc,
				Args: append(append([]cell.I(nil), leading...), tail...),
			}, nil
		}),

		pure("error", variadic("irritants", "message"), func(args []cell.I) (cell.I, error) {
			var b strings.Builder

			b.WriteString(text(args[0]))

			for _, c := range args[1:] {
				b.WriteByte(' ')
				b.WriteString(literal.String(c))
			}

			return nil, errlogic.Raise(b.String())
		}),
	}
}

func procedure(c cell.I) bool {
	return native.Is(c) || closure.Is(c)
}
