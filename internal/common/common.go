// Released under an MIT license. See LICENSE.

// Package common defines helpers shared by every value type.
package common

import (
	"fmt"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
)

type Stringer = fmt.Stringer

// String returns the display text for a cell. Cells without a display
// form are shown as they would be written.
func String(c cell.I) string {
	if b, ok := c.(Stringer); ok {
		return b.String()
	}

	return literal.String(c)
}
