package staticify

import (
	"errors"
	"fmt"
)

// Sentinel errors for header parsing.
var (
	// ErrHeader is the parent of both structural header errors.
	ErrHeader = errors.New("malformed header block")

	ErrHeaderStart = fmt.Errorf("%w: missing header start (document must begin with \"---\")", ErrHeader)
	ErrHeaderEnd   = fmt.Errorf("%w: missing header end (no closing \"---\" line)", ErrHeader)

	ErrMetadata      = errors.New("malformed metadata")
	ErrUnknownLayout = errors.New("unknown layout")
)

// Sentinel errors for body rendering.
var (
	ErrRendererStart  = errors.New("failed to start body renderer")
	ErrRendererExit   = errors.New("body renderer exited with failure")
	ErrRendererOutput = errors.New("body renderer produced invalid UTF-8")
	ErrBodyConversion = errors.New("body conversion failed")
)

// Sentinel errors for document and template I/O.
var (
	ErrEmptyPath    = errors.New("document path cannot be empty")
	ErrReadDocument = errors.New("failed to read document")
	ErrLoadTemplate = errors.New("failed to load template")
)
