package main

// Notes:
// - notifyContext: actual OS signal delivery is not tested; it is
//   non-deterministic and platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"os"
	"slices"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("starts live and stop cancels", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		if ctx.Err() != nil {
			t.Fatal("context should not be canceled initially")
		}
		stop()
		<-ctx.Done()
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()
		<-ctx.Done()
		if ctx.Err() == nil {
			t.Error("expected context error after parent cancel")
		}
	})
}

func TestShutdownSignals(t *testing.T) {
	t.Parallel()

	if !slices.Contains(shutdownSignals, os.Signal(os.Interrupt)) {
		t.Errorf("shutdownSignals = %v, want os.Interrupt included", shutdownSignals)
	}
}
