// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/type/errlogic"
	"github.com/ruschm/ruschm/internal/common/type/list"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/sym"
	"github.com/ruschm/ruschm/internal/common/type/void"
	"github.com/ruschm/ruschm/internal/common/validate"
)

// Derived forms are rewritten in terms of other forms and the rewritten
// expression is evaluated in place of the original, in tail position.
// Names introduced by a rewrite contain a space so they can never be
// written in a program.

//nolint:gochecknoglobals
var (
	condValue = sym.New(" cond-value")
	doLoop    = sym.New(" do-loop")
)

// evalCond rewrites cond as nested if expressions.
//
//	(cond (test body ...) ... (else body ...))
//	(if test (begin body ...) (cond ...))
//
// A clause with no body yields the value of its test. A clause of the form
// (test => receiver) passes the value of its test to receiver.
func evalCond(t *T) Op {
	clauses, ok := list.ToSlice(t.code)
	if !ok {
		return t.Fail(errlogic.Malformed("cond", "improper clause list"))
	}

	var expr cell.I = void.Void

	for i := len(clauses) - 1; i >= 0; i-- {
		clause, ok := list.ToSlice(clauses[i])
		if !ok || len(clause) == 0 {
			return t.Fail(errlogic.Malformed("cond", "clause must be a non-empty list"))
		}

		test := clause[0]

		switch {
		case named(test, "else"):
			if i != len(clauses)-1 {
				return t.Fail(errlogic.Malformed("cond", "else must be the last clause"))
			}

			expr = sequence(clause[1:])

		case len(clause) == 1:
			expr = form("or", test, expr)

		case named(clause[1], "=>"):
			if len(clause) != 3 {
				return t.Fail(errlogic.Malformed("cond", "=> takes a single receiver"))
			}

			expr = form("let",
				list.New(list.New(condValue, test)),
				form("if", condValue, list.New(clause[2], condValue), expr),
			)

		default:
			expr = form("if", test, sequence(clause[1:]), expr)
		}
	}

	t.code = expr

	return t.ReplaceOp(Action(EvalExpression))
}

// evalDo rewrites do as a named loop.
//
//	(do ((var init step) ...) (test result ...) command ...)
//	(letrec ((loop (lambda (var ...)
//	                 (if test
//	                     (begin result ...)
//	                     (begin command ... (loop step ...))))))
//	  (loop init ...))
func evalDo(t *T) Op {
	v, rest, err := variadic(t, "do", 2)
	if err != nil {
		return t.Fail(err)
	}

	specs, ok := list.ToSlice(v[0])
	if !ok {
		return t.Fail(errlogic.Malformed("do", "improper variable list"))
	}

	vars := make([]cell.I, 0, len(specs))
	inits := make([]cell.I, 0, len(specs))
	steps := make([]cell.I, 0, len(specs))

	for _, spec := range specs {
		s, ok := list.ToSlice(spec)
		if !ok || len(s) < 2 || len(s) > 3 || !sym.Is(s[0]) {
			return t.Fail(errlogic.Malformed("do", "variable must be (name init [step])"))
		}

		vars = append(vars, s[0])
		inits = append(inits, s[1])

		if len(s) == 3 {
			steps = append(steps, s[2])
		} else {
			steps = append(steps, s[0])
		}
	}

	exit, ok := list.ToSlice(v[1])
	if !ok || len(exit) == 0 {
		return t.Fail(errlogic.Malformed("do", "missing test"))
	}

	commands, ok := list.ToSlice(rest)
	if !ok {
		return t.Fail(errlogic.Malformed("do", "improper body"))
	}

	again := list.New(append([]cell.I{doLoop}, steps...)...)
	body := form("if",
		exit[0],
		form("begin", append([]cell.I{void.Void}, exit[1:]...)...),
		form("begin", append(commands, again)...),
	)

	lambda := form("lambda", list.New(vars...), body)

	t.code = form("letrec",
		list.New(list.New(doLoop, lambda)),
		list.New(append([]cell.I{doLoop}, inits...)...),
	)

	return t.ReplaceOp(Action(EvalExpression))
}

// evalLet rewrites let as the application of a lambda.
//
//	(let ((name init) ...) body ...)
//	((lambda (name ...) body ...) init ...)
//
// Named let binds the lambda to a name visible in its body.
//
//	(let loop ((name init) ...) body ...)
//	((letrec ((loop (lambda (name ...) body ...))) loop) init ...)
func evalLet(t *T) Op {
	v, body, err := variadic(t, "let", 1)
	if err != nil {
		return t.Fail(err)
	}

	label := v[0]
	if sym.Is(label) {
		if !pair.Is(body) {
			return t.Fail(errlogic.Malformed("let", "missing bindings"))
		}

		v[0], body = pair.Car(body), pair.Cdr(body)
	}

	names, inits, err := bindings("let", v[0])
	if err != nil {
		return t.Fail(err)
	}

	var procedure cell.I = list.Dotted(body, keyword("lambda"), list.New(names...))

	if sym.Is(label) {
		procedure = form("letrec", list.New(list.New(label, procedure)), label)
	}

	t.code = list.Dotted(list.New(inits...), procedure)

	return t.ReplaceOp(Action(EvalExpression))
}

// evalLetStar rewrites let* as nested lets.
//
//	(let* ((name init) more ...) body ...)
//	(let ((name init)) (let* (more ...) body ...))
func evalLetStar(t *T) Op {
	v, body, err := variadic(t, "let*", 1)
	if err != nil {
		return t.Fail(err)
	}

	if !pair.Is(v[0]) || pair.Cdr(v[0]) == pair.Null {
		t.code = list.Dotted(body, keyword("let"), v[0])
	} else {
		inner := list.Dotted(body, keyword("let*"), pair.Cdr(v[0]))
		t.code = form("let", list.New(pair.Car(v[0])), inner)
	}

	return t.ReplaceOp(Action(EvalExpression))
}

// evalLetrec rewrites letrec, and letrec*, so that every name is bound
// before any init is evaluated. Inits are evaluated and assigned in order.
//
//	(letrec ((name init) ...) body ...)
//	((lambda (name ...) (set! name init) ... body ...) <void> ...)
func evalLetrec(t *T) Op {
	v, body, err := variadic(t, "letrec", 1)
	if err != nil {
		return t.Fail(err)
	}

	names, inits, err := bindings("letrec", v[0])
	if err != nil {
		return t.Fail(err)
	}

	exprs, ok := list.ToSlice(body)
	if !ok {
		return t.Fail(errlogic.Malformed("letrec", "improper body"))
	}

	unassigned := make([]cell.I, len(names))
	assigned := make([]cell.I, 0, len(names)+len(exprs)+1)
	assigned = append(assigned, list.New(names...))

	for i, name := range names {
		assigned = append(assigned, form("set!", name, inits[i]))
		unassigned[i] = void.Void
	}

	lambda := form("lambda", append(assigned, exprs...)...)

	t.code = list.Dotted(list.New(unassigned...), lambda)

	return t.ReplaceOp(Action(EvalExpression))
}

// evalUnless rewrites unless as if.
//
//	(unless test body ...)
//	(if test <void> (begin body ...))
func evalUnless(t *T) Op {
	v, body, err := variadic(t, "unless", 1)
	if err != nil {
		return t.Fail(err)
	}

	t.code = form("if", v[0], void.Void, pair.Cons(keyword("begin"), body))

	return t.ReplaceOp(Action(EvalExpression))
}

// evalWhen rewrites when as if.
//
//	(when test body ...)
//	(if test (begin body ...))
func evalWhen(t *T) Op {
	v, body, err := variadic(t, "when", 1)
	if err != nil {
		return t.Fail(err)
	}

	t.code = form("if", v[0], pair.Cons(keyword("begin"), body))

	return t.ReplaceOp(Action(EvalExpression))
}

// Helpers.

// bindings splits a list of (name init) bindings into names and inits.
func bindings(label string, c cell.I) ([]cell.I, []cell.I, error) {
	l, ok := list.ToSlice(c)
	if !ok {
		return nil, nil, errlogic.Malformed(label, "improper binding list")
	}

	names := make([]cell.I, len(l))
	inits := make([]cell.I, len(l))

	for i, b := range l {
		v, ok := list.ToSlice(b)
		if !ok || len(v) != 2 || !sym.Is(v[0]) {
			return nil, nil, errlogic.Malformed(label, "binding must be (name init)")
		}

		names[i], inits[i] = v[0], v[1]
	}

	return names, inits, nil
}

// form creates the expression (k items ...) where k is a special form.
func form(k string, items ...cell.I) cell.I {
	return list.Dotted(list.New(items...), keyword(k))
}

// sequence creates an expression that evaluates exprs in order.
func sequence(exprs []cell.I) cell.I {
	if len(exprs) == 1 {
		return exprs[0]
	}

	return form("begin", exprs...)
}

// variadic returns the first n operands of the special form label and
// the rest. Having fewer than n operands is malformed syntax.
func variadic(t *T, label string, n int) ([]cell.I, cell.I, error) {
	v, rest, err := validate.Variadic(label, t.code, n, n)
	if err != nil {
		return nil, nil, malformed(label, err)
	}

	return v, rest, nil
}
