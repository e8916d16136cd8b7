package staticify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-staticify/internal/assets"
)

// Service renders documents into pages.
// Create with NewService and call Render once per document. A Service holds
// no state between calls; templates are loaded fresh every time.
type Service struct {
	renderer  BodyRenderer
	templates assets.TemplateLoader
	logger    *zap.Logger

	templateDir string
	templateExt string
	builtin     bool
}

// Option configures a Service.
type Option func(*Service)

// WithRenderer sets the body renderer (default: pandoc on PATH).
func WithRenderer(r BodyRenderer) Option {
	return func(s *Service) {
		s.renderer = r
	}
}

// WithTemplateDir sets the directory holding "<layout>.<ext>" templates
// (default: "assets").
func WithTemplateDir(dir string) Option {
	return func(s *Service) {
		s.templateDir = dir
	}
}

// WithTemplateExtension sets the template file extension without the dot
// (default: "tmpltl").
func WithTemplateExtension(ext string) Option {
	return func(s *Service) {
		s.templateExt = ext
	}
}

// WithBuiltinFallback makes layouts without a template file use the
// template compiled into the binary.
func WithBuiltinFallback(enabled bool) Option {
	return func(s *Service) {
		s.builtin = enabled
	}
}

// WithTemplateLoader replaces template loading entirely. When set, the
// template directory, extension and fallback options are ignored.
func WithTemplateLoader(l TemplateLoader) Option {
	return func(s *Service) {
		s.templates = l
	}
}

// WithLogger sets the logger for rendering diagnostics (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// TemplateLoader loads the template text for a layout name.
type TemplateLoader = assets.TemplateLoader

// NewService creates a Service. Returns an error if the template settings
// are invalid (empty directory, unsafe extension).
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		logger:      zap.NewNop(),
		templateDir: assets.DefaultDir,
		templateExt: assets.DefaultExtension,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderer == nil {
		s.renderer = NewPandocRenderer(DefaultPandocBinary)
	}

	if s.templates == nil {
		fsLoader, err := assets.NewFilesystemLoader(s.templateDir, s.templateExt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadTemplate, err)
		}
		s.templates = assets.NewResolver(fsLoader, s.builtin)
	}

	return s, nil
}

// Render reads the document at path and returns the finished page.
//
// The header is parsed before the body renderer runs, so a malformed header
// never starts an external process. Every failure aborts the render; there
// is no partial output.
func (s *Service) Render(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	log := s.logger.With(zap.String("document", path))

	content, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	meta, err := ParseHeader(string(content))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("header parsed",
		zap.Stringer("layout", meta.Layout),
		zap.String("title", meta.Title),
		zap.Strings("tags", meta.Tags),
	)

	start := time.Now()
	body, err := s.renderer.RenderHTML(ctx, path)
	if err != nil {
		return "", err
	}
	log.Debug("body rendered",
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	tmpl, err := s.templates.LoadTemplate(meta.Layout.Name())
	if err != nil {
		return "", fmt.Errorf("%w for layout %q: %w", ErrLoadTemplate, meta.Layout, err)
	}

	page := Substitute(tmpl, NewPage(meta, body))
	if missing := missingTokens(tmpl); len(missing) > 0 {
		log.Warn("template lacks placeholders", zap.Strings("tokens", missing))
	}

	return page, nil
}

// missingTokens lists the recognized tokens absent from tmpl.
func missingTokens(tmpl string) []string {
	var missing []string
	for _, tok := range []string{TokenTitle, TokenTags, TokenBody, TokenFungi} {
		if !strings.Contains(tmpl, tok) {
			missing = append(missing, tok)
		}
	}
	return missing
}

// IsInputError reports whether err was caused by the document itself
// (header structure or metadata) rather than the environment.
func IsInputError(err error) bool {
	return errors.Is(err, ErrHeader) || errors.Is(err, ErrMetadata) || errors.Is(err, ErrUnknownLayout)
}
