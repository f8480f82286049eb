// Released under an MIT license. See LICENSE.

// Package process connects the interpreter to the operating system's
// process signals.
package process

import (
	"context"
	"errors"
	"os"
	"os/signal"
)

// Interrupted is the cause of a context cancelled by a signal.
type Interrupted struct {
	Signal os.Signal
}

// Error returns the name of the signal.
func (i *Interrupted) Error() string {
	return "interrupted: " + i.Signal.String()
}

// Is reports an interruption as a cancellation.
func (i *Interrupted) Is(target error) bool {
	return target == context.Canceled
}

// Interruptible returns a copy of parent that is cancelled when the
// process receives an interrupt, hangup or termination signal. The
// signal is recorded as the context's cause. Calling stop releases the
// signal handler.
func Interruptible(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	incoming := make(chan os.Signal, 1)
	signal.Notify(incoming, interrupts...)

	done := make(chan struct{})

	go func() {
		select {
		case s := <-incoming:
			cancel(&Interrupted{Signal: s})
		case <-done:
		}
	}()

	return ctx, func() {
		signal.Stop(incoming)
		close(done)
		cancel(context.Canceled)
	}
}

// Status returns the exit status for a process ending with err.
func Status(err error) int {
	if err == nil {
		return 0
	}

	var i *Interrupted
	if errors.As(err, &i) {
		return status(i.Signal)
	}

	return 1
}
