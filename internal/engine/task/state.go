// Released under an MIT license. See LICENSE.

package task

import (
	"context"
	"io"

	"github.com/ruschm/ruschm/internal/common/type/errlogic"
)

// How often, in steps, a task checks whether its context is done.
const interval = 1024

// The type state is a task's state.
type state struct {
	err   error
	limit int64
	steps int64
	trace io.Writer
}

func fresh(s Settings) *state {
	return &state{limit: s.Steps, trace: s.Trace}
}

// Runnable returns an error if the task has used all of its steps or
// its context is done. The context is consulted every interval steps
// and its cause is returned.
func (s *state) Runnable(ctx context.Context) error {
	s.steps++

	if s.limit > 0 && s.steps > s.limit {
		return errlogic.StepLimit(s.limit)
	}

	if s.steps%interval == 0 && ctx.Err() != nil {
		return context.Cause(ctx)
	}

	return nil
}

// Steps returns the number of steps taken so far.
func (s *state) Steps() int64 {
	return s.steps
}
