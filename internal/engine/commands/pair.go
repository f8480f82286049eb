// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/type/native"
	"github.com/ruschm/ruschm/internal/common/type/pair"
	"github.com/ruschm/ruschm/internal/common/type/void"
)

// Pairs returns the pair constructor, accessors, and mutators.
func Pairs() native.Table {
	return native.Table{
		pure("cons", fixed("obj1", "obj2"), func(args []cell.I) (cell.I, error) {
			return pair.Cons(args[0], args[1]), nil
		}),

		accessor("car", "a"),
		accessor("cdr", "d"),
		accessor("caar", "aa"),
		accessor("cadr", "da"),
		accessor("cdar", "ad"),
		accessor("cddr", "dd"),
		accessor("caddr", "dda"),
		accessor("cdddr", "ddd"),

		mutator("set-car!", pair.SetCar),
		mutator("set-cdr!", pair.SetCdr),

		predicate("null?", func(c cell.I) bool { return c == pair.Null }),
		predicate("pair?", pair.Is),
	}
}

// accessor creates an entry that follows path, a sequence of 'a' (car)
// and 'd' (cdr) steps applied in order.
func accessor(name, path string) native.Entry {
	return pure(name, fixed("pair"), func(args []cell.I) (cell.I, error) {
		c := args[0]

		for _, step := range path {
			p, err := toPair(c)
			if err != nil {
				return nil, err
			}

			if step == 'a' {
				c = pair.Car(p)
			} else {
				c = pair.Cdr(p)
			}
		}

		return c, nil
	})
}

func mutator(name string, set func(c, v cell.I)) native.Entry {
	return pure(name, fixed("pair", "obj"), func(args []cell.I) (cell.I, error) {
		p, err := toPair(args[0])
		if err != nil {
			return nil, err
		}

		set(p, args[1])

		return void.Void, nil
	})
}
