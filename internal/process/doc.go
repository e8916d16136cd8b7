// Package process manages the lifetime of renderer subprocesses.
// Commands run in their own process group so cancelling the run also stops
// any children the renderer spawned (pandoc filters, for example).
package process
