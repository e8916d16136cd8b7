package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-staticify"
	"github.com/alnah/go-staticify/internal/assets"
	"github.com/alnah/go-staticify/internal/config"
)

// Exit codes for the staticify CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Page rendered
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, missing document, config, header or metadata
	ExitIO       = 3 // Document, template or output file errors
	ExitRenderer = 4 // Body renderer failed to start, failed, or timed out
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if errors.Is(err, staticify.ErrRendererStart) ||
		errors.Is(err, staticify.ErrRendererExit) ||
		errors.Is(err, staticify.ErrRendererOutput) ||
		errors.Is(err, staticify.ErrBodyConversion) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitRenderer
	}

	// Usage, config and document errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		staticify.IsInputError(err) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyInputs) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, staticify.ErrEmptyPath) ||
		errors.Is(err, staticify.ErrReadDocument) ||
		errors.Is(err, staticify.ErrLoadTemplate) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
