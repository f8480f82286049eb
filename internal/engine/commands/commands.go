// Released under an MIT license. See LICENSE.

// Package commands provides the standard library of native procedures.
//
// Each function returns a table of bindings. Tables are merged into the
// global scope in the order returned by Tables.
package commands

import (
	"io"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/integer"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/char"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/str"
	"github.com/ruschm/ruschm/internal/common/type/sym"
	"github.com/ruschm/ruschm/internal/common/type/vector"
	"github.com/ruschm/ruschm/internal/engine/numeric"
)

// Tables returns the standard tables in merge order.
func Tables(a numeric.Arithmetic, w io.Writer) []native.Table {
	return []native.Table{
		Numbers(a),
		Booleans(),
		Pairs(),
		Lists(),
		Symbols(),
		Characters(),
		Strings(a),
		Vectors(),
		Control(),
		Output(w),
	}
}

// Shorthand for table entries.

//nolint:gochecknoglobals
var (
	fixed    = native.Fixed
	pure     = native.Pure
	variadic = native.Variadic
)

// Argument conversion.

func toChar(c cell.I) (*char.T, error) {
	if !char.Is(c) {
		return nil, errlogic.TypeMismatch(c, kind.Character)
	}

	return char.To(c), nil
}

func toList(c cell.I) ([]cell.I, error) {
	l, ok := list.ToSlice(c)
	if !ok {
		return nil, errlogic.TypeMismatch(c, kind.Pair)
	}

	return l, nil
}

func toPair(c cell.I) (*pair.T, error) {
	if !pair.Is(c) {
		return nil, errlogic.TypeMismatch(c, kind.Pair)
	}

	return pair.To(c), nil
}

func toString(c cell.I) (*str.T, error) {
	if !str.Is(c) {
		return nil, errlogic.TypeMismatch(c, kind.String)
	}

	return str.To(c), nil
}

func toSymbol(c cell.I) (*sym.T, error) {
	if !sym.Is(c) {
		return nil, errlogic.TypeMismatch(c, kind.Symbol)
	}

	return sym.To(c), nil
}

func toVector(c cell.I) (*vector.T, error) {
	if !vector.Is(c) {
		return nil, errlogic.TypeMismatch(c, kind.Vector)
	}

	return vector.To(c), nil
}

// count returns c as a non-negative length.
func count(c cell.I) (int, error) {
	n, err := integer.Value(c)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, errlogic.OutOfRange(n, "must not be negative")
	}

	return int(n), nil
}

// predicate creates an entry for a one argument type predicate.
func predicate(name string, is func(cell.I) bool) native.Entry {
	return pure(name, fixed("obj"), func(args []cell.I) (cell.I, error) {
		return boolean.Bool(is(args[0])), nil
	})
}
