// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/scope"
	"github.com/ruschm/ruschm/internal/common/interface/truth"
	"github.com/ruschm/ruschm/internal/common/equivalence"
	"github.com/ruschm/ruschm/internal/common/type/boolean"
	"github.com/ruschm/ruschm/internal/common/type/closure"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/sym"
	"github.com/ruschm/ruschm/internal/common/type/void"
)

// Syntax is a special form. Its operands are not evaluated before its
// operation is performed.
type Syntax struct {
	Label string
	Op
}

// The syntax type is a cell.

// Equal returns true if the cell c is the same syntax as a.
func (a *Syntax) Equal(c cell.I) bool {
	p, ok := c.(*Syntax)

	return ok && p == a
}

// Literal returns the literal representation of the syntax a.
func (a *Syntax) Literal() string {
	return "#<syntax " + a.Label + ">"
}

// Name returns the name of the syntax type.
func (a *Syntax) Name() string {
	return "syntax"
}

//nolint:gochecknoglobals
var keywords map[string]*Syntax

// Keywords associates each special form with its name in the scope s.
func Keywords(s scope.I) {
	for k, v := range keywords {
		s.Define(k, v)
	}
}

// keyword returns the special form k. Rewritten forms refer to special
// forms directly so that rebinding a keyword does not change them.
func keyword(k string) cell.I {
	return keywords[k]
}

// Special forms.

// evalAnd evaluates operands until one is false.
func evalAnd(t *T) Op {
	if t.code == pair.Null {
		return t.Return(boolean.True)
	}

	return t.ReplaceOp(Action(execAnd))
}

// evalCase evaluates the key so that execCase can select a clause.
func evalCase(t *T) Op {
	if !pair.Is(t.code) {
		return t.Fail(errlogic.Malformed("case", "missing key"))
	}

	t.ReplaceOp(Action(execCase))
	t.PushOp(&registers{code: pair.Cdr(t.code)})

	t.code = pair.Car(t.code)

	return t.PushOp(Action(EvalExpression))
}

// evalBegin evaluates its operands in order.
func evalBegin(t *T) Op {
	return t.ReplaceOp(Action(evalSequence))
}

// evalDefine binds a name in the current scope.
//
// Result:
//
//	code:  Value expression
//	dump:  Name ...
//	stack: EvalExpression execDefine Previous ...
//
// Requires:
//
//	code:  Name Value expression
//	stack: evalDefine Previous ...
//
// The procedure definition shorthand, (define (name . formals) body ...),
// creates the closure immediately.
func evalDefine(t *T) Op {
	if !pair.Is(t.code) {
		return t.Fail(errlogic.Malformed("define", "missing name"))
	}

	target := pair.Car(t.code)
	if pair.Is(target) {
		k := pair.Car(target)
		if !sym.Is(k) {
			return t.Fail(errlogic.Malformed("define", "procedure name must be a symbol"))
		}

		c, err := closure.New(pair.Cdr(target), pair.Cdr(t.code), t.frame.Scope())
		if err != nil {
			return t.Fail(err)
		}

		c.Label = sym.To(k).String()
		t.frame.Scope().Define(c.Label, c)

		return t.Return(void.Void)
	}

	v, err := t.operands("define", 2, 2)
	if err != nil {
		return t.Fail(err)
	}

	if !sym.Is(v[0]) {
		return t.Fail(errlogic.Malformed("define", "name must be a symbol"))
	}

	t.PushResult(sym.To(v[0]))
	t.ReplaceOp(Action(execDefine))

	t.code = v[1]

	return t.PushOp(Action(EvalExpression))
}

// evalIf evaluates the test so that execIf can select a branch.
//
// Result:
//
//	code:  Test
//	stack: EvalExpression Restore(code: Test Consequent [Alternative]) execIf Previous ...
func evalIf(t *T) Op {
	v, err := t.operands("if", 2, 3)
	if err != nil {
		return t.Fail(err)
	}

	t.ReplaceOp(Action(execIf))
	t.PushOp(&registers{code: t.code})

	t.code = v[0]

	return t.PushOp(Action(EvalExpression))
}

// evalLambda creates a closure over the current scope.
func evalLambda(t *T) Op {
	if !pair.Is(t.code) {
		return t.Fail(errlogic.Malformed("lambda", "missing parameters"))
	}

	c, err := closure.New(pair.Car(t.code), pair.Cdr(t.code), t.frame.Scope())
	if err != nil {
		return t.Fail(err)
	}

	return t.Return(c)
}

// evalOr evaluates operands until one is not false.
func evalOr(t *T) Op {
	if t.code == pair.Null {
		return t.Return(boolean.False)
	}

	return t.ReplaceOp(Action(execOr))
}

// evalQuote returns its operand, unevaluated. The operand is copied so
// that mutating the result never changes the program.
func evalQuote(t *T) Op {
	v, err := t.operands("quote", 1, 1)
	if err != nil {
		return t.Fail(err)
	}

	return t.Return(list.Clone(v[0]))
}

// evalSet replaces the value of an existing binding.
func evalSet(t *T) Op {
	v, err := t.operands("set!", 2, 2)
	if err != nil {
		return t.Fail(err)
	}

	if !sym.Is(v[0]) {
		return t.Fail(errlogic.Malformed("set!", "name must be a symbol"))
	}

	t.PushResult(sym.To(v[0]))
	t.ReplaceOp(Action(execSet))

	t.code = v[1]

	return t.PushOp(Action(EvalExpression))
}

// execAnd evaluates the next operand. The last operand is in tail position.
//
// Requires:
//
//	code:  Operand_0 ... Operand_N
//	stack: execAnd Previous ...
func execAnd(t *T) Op {
	return junction(t, "and", Action(testAnd))
}

// execCase selects the first clause with a datum that is eqv? to the key.
func execCase(t *T) Op {
	key := t.PopResult()

	for clauses := t.code; clauses != pair.Null; clauses = pair.Cdr(clauses) {
		clause := pair.Car(clauses)

		data := pair.Car(clause)
		if !named(data, "else") && !member(key, data) {
			continue
		}

		body := pair.Cdr(clause)
		if pair.Is(body) && named(pair.Car(body), "=>") {
			t.code = list.New(pair.Cadr(body), list.New(keyword("quote"), key))

			return t.ReplaceOp(Action(EvalExpression))
		}

		t.code = body

		return t.ReplaceOp(Action(evalSequence))
	}

	return t.Return(void.Void)
}

func execDefine(t *T) Op {
	v := t.PopResult()
	k := sym.To(t.PopResult()).String()

	label(v, k)

	t.frame.Scope().Define(k, v)

	return t.Return(void.Void)
}

// execIf evaluates the consequent or the alternative in tail position.
func execIf(t *T) Op {
	if truth.Value(t.PopResult()) {
		t.code = pair.Cadr(t.code)
	} else {
		alternative := pair.Cddr(t.code)
		if alternative == pair.Null {
			return t.Return(void.Void)
		}

		t.code = pair.Car(alternative)
	}

	return t.ReplaceOp(Action(EvalExpression))
}

// execOr evaluates the next operand. The last operand is in tail position.
func execOr(t *T) Op {
	return junction(t, "or", Action(testOr))
}

func execSet(t *T) Op {
	v := t.PopResult()
	k := sym.To(t.PopResult()).String()

	label(v, k)

	if err := scope.Assign(t.frame.Scope(), k, v); err != nil {
		return t.Fail(err)
	}

	return t.Return(void.Void)
}

// testAnd stops at the first false result and otherwise continues.
//
// Requires:
//
//	code:  Operand_0 Operand_1 ... Operand_N
//	dump:  Result_0 ...
//	stack: testAnd Previous ...
func testAnd(t *T) Op {
	if !truth.Value(t.Result()) {
		return t.PreviousOp()
	}

	t.PopResult()

	t.code = pair.Cdr(t.code)

	return t.ReplaceOp(Action(execAnd))
}

// testOr stops at the first result that is not false and otherwise continues.
func testOr(t *T) Op {
	if truth.Value(t.Result()) {
		return t.PreviousOp()
	}

	t.PopResult()

	t.code = pair.Cdr(t.code)

	return t.ReplaceOp(Action(execOr))
}

// Helpers.

func junction(t *T, label string, test Op) Op {
	if !pair.Is(t.code) {
		return t.Fail(errlogic.Malformed(label, "improper operands"))
	}

	if pair.Cdr(t.code) == pair.Null {
		t.code = pair.Car(t.code)

		return t.ReplaceOp(Action(EvalExpression))
	}

	t.ReplaceOp(test)
	t.PushOp(&registers{code: t.code})

	t.code = pair.Car(t.code)

	return t.PushOp(Action(EvalExpression))
}

// label names an anonymous closure after the variable it is bound to.
func label(v cell.I, k string) {
	if c, ok := v.(*closure.T); ok && c.Label == "" {
		c.Label = k
	}
}

// member returns true if key is eqv? to an element of the list data.
func member(key, data cell.I) bool {
	for ; pair.Is(data); data = pair.Cdr(data) {
		if equivalence.Eqv(key, pair.Car(data)) {
			return true
		}
	}

	return false
}

// named returns true if c is the symbol k.
func named(c cell.I, k string) bool {
	return sym.Is(c) && sym.To(c).String() == k
}

func init() { //nolint:gochecknoinits
	keywords = map[string]*Syntax{}

	for k, v := range map[string]Action{
		"and":     evalAnd,
		"begin":   evalBegin,
		"case":    evalCase,
		"cond":    evalCond,
		"define":  evalDefine,
		"do":      evalDo,
		"if":      evalIf,
		"lambda":  evalLambda,
		"let":     evalLet,
		"let*":    evalLetStar,
		"letrec":  evalLetrec,
		"letrec*": evalLetrec,
		"or":      evalOr,
		"quote":   evalQuote,
		"set!":    evalSet,
		"unless":  evalUnless,
		"when":    evalWhen,
	} {
		keywords[k] = &Syntax{Label: k, Op: v}
	}
}
