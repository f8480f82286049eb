// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/common/type/sym"
)

// Symbols returns symbol operations.
func Symbols() native.Table {
	return native.Table{
		predicate("symbol?", sym.Is),
		pure("symbol->string", fixed("symbol"), func(args []cell.I) (cell.I, error) {
			s, err := toSymbol(args[0])
			if err != nil {
				return nil, err
			}

			return str.New(s.String()), nil
		}),
		pure("string->symbol", fixed("string"), func(args []cell.I) (cell.I, error) {
			s, err := toString(args[0])
			if err != nil {
				return nil, err
			}

			return sym.New(s.String()), nil
		}),
	}
}
