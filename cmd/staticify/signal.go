package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context that is canceled when a shutdown signal is
// received. Canceling it kills a running pandoc process group.
// Call stop() to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
