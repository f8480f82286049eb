package process

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestInterruptible(t *testing.T) {
	ctx, stop := Interruptible(context.Background())

	if ctx.Err() != nil {
		t.Fatalf("Expected a live context; got %v", ctx.Err())
	}

	stop()

	if ctx.Err() == nil {
		t.Fatal("Expected stop to cancel the context")
	}

	if err := context.Cause(ctx); !errors.Is(err, context.Canceled) || Status(err) != 1 {
		t.Fatalf("Expected a plain cancellation; got %v", err)
	}
}

func TestStatus(t *testing.T) {
	if s := Status(nil); s != 0 {
		t.Fatalf("Expected 0; got %d", s)
	}

	if s := Status(errors.New("failed")); s != 1 {
		t.Fatalf("Expected 1; got %d", s)
	}

	var err error = &Interrupted{Signal: interrupts[0]}

	wrapped := fmt.Errorf("evaluating: %w", err)
	if !errors.Is(wrapped, context.Canceled) {
		t.Fatalf("Expected an interruption to be a cancellation")
	}

	if s := Status(wrapped); s != status(interrupts[0]) {
		t.Fatalf("Expected %d; got %d", status(interrupts[0]), s)
	}
}
