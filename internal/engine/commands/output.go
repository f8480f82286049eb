// Released under an MIT license. See LICENSE.

package commands

import (
	"io"

	"github.com/ruschm/ruschm/internal/common"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/void"
)

// Output returns procedures that write to w.
func Output(w io.Writer) native.Table {
	emit := func(repr func(cell.I) string) native.Function {
		return func(args []cell.I) (cell.I, error) {
			_, err := io.WriteString(w, repr(args[0]))
			if err != nil {
				return nil, err
			}

			return void.Void, nil
		}
	}

	return native.Table{
		pure("display", fixed("obj"), emit(text)),
		pure("write", fixed("obj"), emit(literal.String)),
		pure("write-char", fixed("char"), func(args []cell.I) (cell.I, error) {
			c, err := toChar(args[0])
			if err != nil {
				return nil, err
			}

			_, err = io.WriteString(w, string(c.Rune()))
			if err != nil {
				return nil, err
			}

			return void.Void, nil
		}),
		pure("newline", fixed(), func([]cell.I) (cell.I, error) {
			_, err := io.WriteString(w, "\n")
			if err != nil {
				return nil, err
			}

			return void.Void, nil
		}),
	}
}

// text returns the display representation of c.
func text(c cell.I) string {
	return common.String(c)
}
