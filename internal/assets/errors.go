package assets

import "errors"

// Sentinel errors for template loading.
var (
	// ErrTemplateNotFound indicates no template file exists for the name.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTemplateName indicates the name contains path separators,
	// dots or is empty.
	ErrInvalidTemplateName = errors.New("invalid template name")

	// ErrInvalidBasePath indicates the template directory setting is unusable.
	ErrInvalidBasePath = errors.New("invalid template directory")

	// ErrTemplateRead indicates an I/O error other than not-found.
	ErrTemplateRead = errors.New("failed to read template")

	// ErrPathTraversal indicates an attempt to read outside the template directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
