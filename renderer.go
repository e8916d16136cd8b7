package staticify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-staticify/internal/pipeline"
	"github.com/alnah/go-staticify/internal/process"
)

// DefaultPandocBinary is the pandoc executable looked up on PATH.
const DefaultPandocBinary = "pandoc"

// BodyRenderer converts the document at path to body HTML.
type BodyRenderer interface {
	RenderHTML(ctx context.Context, path string) (string, error)
}

// CommandResult is the captured outcome of a finished command.
type CommandResult struct {
	Stdout   []byte
	Stderr   string
	ExitCode int
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses. Run returns an error only when the command could not be run
// at all; a command that ran and failed reports it through ExitCode.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*CommandResult, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- binary and args come from config
	process.Configure(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, err
	}

	return &CommandResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

// PandocRenderer renders documents by invoking the pandoc CLI as
// "<binary> <path> --to html". Pandoc reads the YAML header itself and
// leaves it out of the body.
type PandocRenderer struct {
	Runner    CommandRunner
	Binary    string
	ExtraArgs []string // appended after the fixed arguments
}

// NewPandocRenderer creates a PandocRenderer with a real command runner.
// An empty binary means DefaultPandocBinary.
func NewPandocRenderer(binary string, extraArgs ...string) *PandocRenderer {
	if binary == "" {
		binary = DefaultPandocBinary
	}
	return &PandocRenderer{
		Runner:    &ExecRunner{},
		Binary:    binary,
		ExtraArgs: extraArgs,
	}
}

// Args returns the full argument list passed to the binary for path.
func (p *PandocRenderer) Args(path string) []string {
	args := []string{path, "--to", "html"}
	return append(args, p.ExtraArgs...)
}

// RenderHTML runs pandoc and returns its standard output.
// A non-zero exit is reported as ErrRendererExit even when output was
// produced, and output that is not valid UTF-8 as ErrRendererOutput.
func (p *PandocRenderer) RenderHTML(ctx context.Context, path string) (string, error) {
	res, err := p.Runner.Run(ctx, p.Binary, p.Args(path)...)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("rendering %s: %w", path, err)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrRendererStart, p.Binary, err)
	}

	if res.ExitCode != 0 {
		return "", fmt.Errorf("%w: %s exited with status %d: %s",
			ErrRendererExit, p.Binary, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	if !utf8.Valid(res.Stdout) {
		return "", fmt.Errorf("%w: %s", ErrRendererOutput, p.Binary)
	}

	return string(res.Stdout), nil
}

// GoldmarkRenderer renders document bodies in-process with goldmark.
// Useful where pandoc is not installed; output markup differs slightly
// from pandoc's.
type GoldmarkRenderer struct {
	converter pipeline.HTMLConverter
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM and syntax highlighting.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{converter: pipeline.NewGoldmarkConverter()}
}

// RenderHTML reads the document, drops its header block and converts the body.
func (g *GoldmarkRenderer) RenderHTML(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	_, body, err := SplitHeader(string(content))
	if err != nil {
		return "", err
	}

	html, err := g.converter.ToHTML(ctx, body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBodyConversion, err)
	}
	return html, nil
}

// Compile-time interface checks.
var (
	_ CommandRunner = (*ExecRunner)(nil)
	_ BodyRenderer  = (*PandocRenderer)(nil)
	_ BodyRenderer  = (*GoldmarkRenderer)(nil)
)
