package assets

import (
	"fmt"
	"strings"
)

// DefaultExtension is the template file extension used when none is configured.
const DefaultExtension = "tmpltl"

// DefaultDir is the template directory used when none is configured.
const DefaultDir = "assets"

// TemplateLoader loads the template text for a layout name.
type TemplateLoader interface {
	// LoadTemplate returns the template for name (without extension).
	// Returns ErrTemplateNotFound if no such template exists.
	// Returns ErrInvalidTemplateName if the name cannot be a file name.
	LoadTemplate(name string) (string, error)
}

// ValidateTemplateName checks that a layout name maps to a single file in the
// template directory: non-empty, with no separator, dot or NUL.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if i := strings.IndexFunc(name, isUnsafeNameRune); i >= 0 {
		return fmt.Errorf("%w: %q (character %q not allowed)", ErrInvalidTemplateName, name, name[i])
	}
	return nil
}

func isUnsafeNameRune(r rune) bool {
	switch r {
	case '/', '\\', '.', 0:
		return true
	}
	return false
}
