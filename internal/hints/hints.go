// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-staticify/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForRendererStart returns hints for a body renderer binary that could not be started.
func ForRendererStart(binary string) string {
	var hints []string

	if IsInContainer() {
		hints = append(hints, "install pandoc in the image")
	} else if !strings.ContainsAny(binary, "/\\") {
		hints = append(hints, "install pandoc or pass its location with --pandoc")
	} else {
		hints = append(hints, "check that "+binary+" exists and is executable")
	}
	hints = append(hints, "or use --renderer goldmark")

	return formatHints(hints)
}

// ForRendererExit returns a hint for a renderer that ran and failed.
func ForRendererExit() string {
	return format("run pandoc on the document directly to see the full error")
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, raise the --timeout flag")
}

// ForHeader returns a hint describing the expected header block.
func ForHeader() string {
	return format(`the document must start with "---", a YAML block, then a "---" line`)
}

// ForUnknownLayout returns hints listing the layouts that are accepted.
func ForUnknownLayout(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("known layouts: " + strings.Join(known, ", "))
}

// ForTemplateNotFound returns hints for a layout without a template file.
// available lists the template names present in the directory.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("use --templates to point at the template directory, or --builtin-fallback")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Suggest the first user-level location
	for _, p := range searchedPaths {
		if filepath.IsAbs(p) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
