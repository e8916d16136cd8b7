//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop a render in progress.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
