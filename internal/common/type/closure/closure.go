// Released under an MIT license. See LICENSE.

// Package closure provides the type for user-defined procedures.
package closure

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/sym"
	"github.com/ruschm/ruschm/internal/common/validate"
)

const name = "procedure"

// T (closure) is a lambda plus the scope it was created in.
type T struct {
	Label  string
	Params []string
	Rest   string
	Body   cell.I
	Scope  scope.I
}

type closure = T

// New creates a closure from a lambda's formals and body.
// Formals may be a symbol, a proper list of symbols, or a dotted list.
func New(formals, body cell.I, s scope.I) (*closure, error) {
	if body == pair.Null {
		return nil, errlogic.Malformed("lambda", "empty body")
	}

	if !list.Proper(body) {
		return nil, errlogic.Malformed("lambda", "improper body")
	}

	c := &closure{Body: body, Scope: s}
	seen := map[string]bool{}

	for pair.Is(formals) {
		p := pair.Car(formals)
		if !sym.Is(p) {
			return nil, errlogic.Malformed("lambda", "parameter "+literal.String(p)+" is not a symbol")
		}

		k := sym.To(p).String()
		if seen[k] {
			return nil, errlogic.Malformed("lambda", "duplicate parameter "+k)
		}

		seen[k] = true
		c.Params = append(c.Params, k)

		formals = pair.Cdr(formals)
	}

	switch {
	case formals == pair.Null:
	case sym.Is(formals):
		c.Rest = sym.To(formals).String()
		if seen[c.Rest] {
			return nil, errlogic.Malformed("lambda", "duplicate parameter "+c.Rest)
		}
	default:
		return nil, errlogic.Malformed("lambda", "parameter "+literal.String(formals)+" is not a symbol")
	}

	return c, nil
}

// Bind creates the scope for a call to c with args.
func (c *closure) Bind(args []cell.I) (scope.I, error) {
	max := len(c.Params)
	if c.Rest != "" {
		max = -1
	}

	if err := validate.Range(c.label(), len(args), len(c.Params), max); err != nil {
		return nil, err
	}

	e := c.Scope.Extend()

	for i, k := range c.Params {
		e.Define(k, args[i])
	}

	if c.Rest != "" {
		e.Define(c.Rest, list.New(args[len(c.Params):]...))
	}

	return e, nil
}

// Equal returns true if c is the same closure.
func (c *closure) Equal(o cell.I) bool {
	return o == cell.I(c)
}

// Literal returns the literal representation of the closure c.
func (c *closure) Literal() string {
	return "#<procedure " + c.label() + ">"
}

// Name returns the name of the closure type.
func (c *closure) Name() string {
	return name
}

func (c *closure) label() string {
	if c.Label == "" {
		return "anonymous"
	}

	return c.Label
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
