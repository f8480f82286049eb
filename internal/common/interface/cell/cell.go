// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all Scheme values.
package cell

// I (cell) is the basic unit of storage. Every runtime value is a cell.
type I interface {
	Equal(c I) bool
	Name() string
}
