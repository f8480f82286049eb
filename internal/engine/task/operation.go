// Released under an MIT license. See LICENSE.

package task

import (
	"reflect"
	"runtime"
	"strings"
)

// Op is a single step of the machine. Performing it returns the next step.
type Op interface {
	Perform(*T) Op
}

// Action is an Op implemented as a plain function.
type Action func(*T) Op

// Perform calls a with t.
func (a Action) Perform(t *T) Op {
	return a(t)
}

// describe names o for traces: an action by its function name, a saved
// set of registers by the registers it restores.
func describe(o Op) string {
	switch o := o.(type) {
	case nil:
		return "<nil>"
	case Action:
		return actionName(o)
	case *registers:
		return "Restore(" + strings.Join(o.saved(), ", ") + ")"
	default:
		return "<unknown>"
	}
}

func actionName(a Action) string {
	n := runtime.FuncForPC(reflect.ValueOf(a).Pointer()).Name()

	return n[strings.LastIndex(n, ".")+1:]
}

// saved lists the registers that restoring r would overwrite.
func (r *registers) saved() []string {
	var names []string

	if r.code != nil {
		names = append(names, "code")
	}

	if r.dump != nil {
		names = append(names, "dump")
	}

	if r.frame != nil {
		names = append(names, "frame")
	}

	if r.stack != nil {
		names = append(names, "stack")
	}

	return names
}
