// Released under an MIT license. See LICENSE.

// Package errlogic provides the evaluator's error taxonomy.
//
// Errors are plain values. Every engine operation returns them rather than
// recovering locally, so the first failure aborts the evaluation in
// progress and reaches the caller unchanged.
package errlogic

import (
	"errors"
	"strconv"

	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/struct/kind"
	"github.com/ruschm/ruschm/internal/common/struct/loc"
)

// Kind classifies a logic error.
type Kind int

// Error kinds.
const (
	_ Kind = iota
	UnboundVariable
	TypeMisMatch
	ArityMismatch
	NumericOverflow
	NotApplicable
	DivisionByZero
	IndexOutOfRange
	MalformedSyntax
	StepLimitExceeded
	Raised
)

func (k Kind) String() string {
	switch k {
	case UnboundVariable:
		return "unbound variable"
	case TypeMisMatch:
		return "type mismatch"
	case ArityMismatch:
		return "arity mismatch"
	case NumericOverflow:
		return "numeric overflow"
	case NotApplicable:
		return "not applicable"
	case DivisionByZero:
		return "division by zero"
	case IndexOutOfRange:
		return "index out of range"
	case MalformedSyntax:
		return "malformed syntax"
	case StepLimitExceeded:
		return "step limit exceeded"
	case Raised:
		return "error"
	}

	return "unknown error"
}

// T (errlogic) is a logic-level evaluation error.
type T struct {
	Kind     Kind
	Actual   string // Written form of the offending value, or a name.
	Expected kind.T // For TypeMisMatch.
	Detail   string
}

type errlogic = T

// Error returns the text of the error e.
func (e *errlogic) Error() string {
	s := e.Kind.String()

	if e.Kind == TypeMisMatch {
		s += ": expected " + e.Expected.String()
		if e.Actual != "" {
			s += ", got " + e.Actual
		}
	} else if e.Actual != "" {
		s += ": " + e.Actual
	}

	if e.Detail != "" {
		s += " (" + e.Detail + ")"
	}

	return s
}

// Is reports whether target is a *T with the same kind. Actual, Expected,
// and Detail are compared only when set in target.
func (e *errlogic) Is(target error) bool {
	t, ok := target.(*errlogic)
	if !ok || t.Kind != e.Kind {
		return false
	}

	if t.Actual != "" && t.Actual != e.Actual {
		return false
	}

	if t.Expected != kind.Any && t.Expected != e.Expected {
		return false
	}

	return t.Detail == "" || t.Detail == e.Detail
}

// Arity reports a call to label with the wrong number of arguments.
func Arity(label, expected string, passed int) *T {
	return &T{
		Kind:   ArityMismatch,
		Actual: label,
		Detail: "expected " + expected + ", passed " + strconv.Itoa(passed),
	}
}

// DivideByZero reports an exact division by zero.
func DivideByZero(op string) *T {
	return &T{Kind: DivisionByZero, Actual: op}
}

// Index reports an index i outside of [0, n) for the sequence of.
func Index(of cell.I, i int64, n int) *T {
	return OutOfRange(i, "valid range for "+literal.String(of)+" is [0, "+strconv.Itoa(n)+")")
}

// OutOfRange reports an integer i that is not acceptable, described by detail.
func OutOfRange(i int64, detail string) *T {
	return &T{
		Kind:   IndexOutOfRange,
		Actual: strconv.FormatInt(i, 10),
		Detail: detail,
	}
}

// Malformed reports a special form that does not have the expected shape.
func Malformed(form, detail string) *T {
	return &T{Kind: MalformedSyntax, Actual: form, Detail: detail}
}

// NotProcedure reports an attempt to apply c.
func NotProcedure(c cell.I) *T {
	return &T{Kind: NotApplicable, Actual: literal.String(c)}
}

// Overflow reports integer arithmetic that left the 64-bit range.
func Overflow(op string, a, b int64) *T {
	return &T{
		Kind:   NumericOverflow,
		Actual: op,
		Detail: strconv.FormatInt(a, 10) + ", " + strconv.FormatInt(b, 10),
	}
}

// Raise creates the error signalled by a program.
func Raise(message string) *T {
	return &T{Kind: Raised, Actual: message}
}

// StepLimit reports that an evaluation ran out of its step budget.
func StepLimit(n int64) *T {
	return &T{Kind: StepLimitExceeded, Actual: strconv.FormatInt(n, 10)}
}

// TypeMismatch reports that c was passed where a value of the kind
// expected was required.
func TypeMismatch(c cell.I, expected kind.T) *T {
	return &T{Kind: TypeMisMatch, Actual: literal.String(c), Expected: expected}
}

// Unbound reports a reference to the unbound name k.
func Unbound(k string) *T {
	return &T{Kind: UnboundVariable, Actual: k}
}

// Located decorates an error with the source location where it happened.
type Located struct {
	Err    error
	Source loc.T
}

// Locate wraps err with source. Errors that already carry a location and
// errors without a usable location are returned unchanged.
func Locate(err error, source *loc.T) error {
	if err == nil || source == nil || source.Line == 0 {
		return err
	}

	var located *Located
	if errors.As(err, &located) {
		return err
	}

	return &Located{Err: err, Source: *source}
}

// Error returns the text of the error prefixed by its location.
func (l *Located) Error() string {
	return l.Source.String() + ": " + l.Err.Error()
}

// Unwrap returns the undecorated error.
func (l *Located) Unwrap() error {
	return l.Err
}
