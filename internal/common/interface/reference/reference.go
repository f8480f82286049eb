// Released under an MIT license. See LICENSE.

// Package reference defines the interface for a variable's storage.
package reference

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
)

// I (reference) is anything that can hold a value.
type I interface {
	Get() cell.I
	Set(cell.I)
}
