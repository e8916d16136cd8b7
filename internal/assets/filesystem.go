package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-staticify/internal/fileutil"
)

// FilesystemLoader loads templates from a directory on disk.
// The directory is not checked at construction: a missing directory
// surfaces as ErrTemplateNotFound when a template is loaded.
type FilesystemLoader struct {
	basePath  string
	extension string
}

// NewFilesystemLoader creates a FilesystemLoader for dir and extension
// (without the leading dot). Returns ErrInvalidBasePath for an empty dir.
func NewFilesystemLoader(dir, extension string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	if err := fileutil.ValidateExtension(extension); err != nil {
		return nil, fmt.Errorf("template extension %q: %w", extension, err)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so containment checks compare real paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	return &FilesystemLoader{basePath: absPath, extension: extension}, nil
}

// Dir returns the absolute template directory.
func (f *FilesystemLoader) Dir() string {
	return f.basePath
}

// Path returns the file path a template name maps to.
func (f *FilesystemLoader) Path(name string) string {
	return filepath.Join(f.basePath, name+"."+f.extension)
}

// LoadTemplate reads {dir}/{name}.{ext}.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateTemplateName(name); err != nil {
		return "", err
	}

	filePath := f.Path(name)
	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q (looked for %s)", ErrTemplateNotFound, name, filePath)
		}
		return "", fmt.Errorf("%w: %w", ErrTemplateRead, err)
	}

	return string(content), nil
}

// Available lists template names present in the directory, sorted.
// A missing directory yields an empty list.
func (f *FilesystemLoader) Available() ([]string, error) {
	entries, err := os.ReadDir(f.basePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrTemplateRead, err)
	}

	suffix := "." + f.extension
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), suffix))
	}
	slices.Sort(names)
	return names, nil
}

// verifyPathContainment ensures the resolved file path is within basePath,
// following symlinks so a link cannot point outside the directory.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// If the file does not exist yet, keep the unresolved path; the read
	// fails with not-found after the prefix check.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes template directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ TemplateLoader = (*FilesystemLoader)(nil)
