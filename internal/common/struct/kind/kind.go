// Released under an MIT license. See LICENSE.

// Package kind names the variants of the value model. It is used to say
// which variant an operation expected when it receives the wrong one.
package kind

// T (kind) identifies a value variant.
type T int

// Value variants.
const (
	Any T = iota
	Boolean
	Character
	Integer
	Number
	Pair
	Procedure
	Real
	String
	Symbol
	Vector
	Void
)

type kind = T

// String returns the variant's name.
func (k kind) String() string {
	switch k {
	case Any:
		return "Any"
	case Boolean:
		return "Boolean"
	case Character:
		return "Character"
	case Integer:
		return "Integer"
	case Number:
		return "Number"
	case Pair:
		return "Pair"
	case Procedure:
		return "Procedure"
	case Real:
		return "Real"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case Vector:
		return "Vector"
	case Void:
		return "Void"
	}

	return "Unknown"
}
