package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-staticify"
	"github.com/alnah/go-staticify/internal/assets"
	"github.com/alnah/go-staticify/internal/config"
	"github.com/alnah/go-staticify/internal/fileutil"
	"github.com/alnah/go-staticify/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no document specified")
	ErrTooManyInputs = errors.New("more than one document specified")
	ErrWriteOutput   = errors.New("failed to write page")
)

// runMain dispatches commands and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Fprintf(env.Stdout, "staticify %s\n", Version)
			return ExitSuccess
		case "help":
			return runHelp(args[1:], env)
		}
	}

	flags, positional, err := parseRenderFlags(args, func() { printUsage(env.Stderr) })
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		return ExitUsage
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err.Error()+hintFor(err, config.DefaultConfig(), flags.common.config))
		return exitCodeFor(err)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runRender(ctx, flags.markdown, positional, cfg, env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err.Error()+hintFor(err, cfg, flags.common.config))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// resolveConfig loads the configuration file, if any, and merges flags over it.
func resolveConfig(flags *renderFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runRender renders one document and writes the page.
func runRender(ctx context.Context, markdown string, positional []string, cfg *config.Config, env *Environment) error {
	inputPath, err := resolveInputPath(markdown, positional)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level, env.Stderr)
	defer func() { _ = logger.Sync() }()

	svc, err := staticify.NewService(
		staticify.WithRenderer(buildRenderer(cfg, env)),
		staticify.WithTemplateDir(cfg.Templates.Dir),
		staticify.WithTemplateExtension(cfg.Templates.Extension),
		staticify.WithBuiltinFallback(cfg.Templates.BuiltinFallback),
		staticify.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if timeout := cfg.Renderer.TimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := env.Now()
	page, err := svc.Render(ctx, inputPath)
	if err != nil {
		return err
	}

	if err := writePage(cfg.Output.Path, page, env.Stdout); err != nil {
		return err
	}

	logger.Info("page rendered",
		zap.String("document", inputPath),
		zap.String("output", outputName(cfg.Output.Path)),
		zap.Duration("elapsed", env.Now().Sub(start)),
	)
	return nil
}

// mergeFlags applies explicitly set flags over the configuration.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	// Template flags
	if flags.templates.dir != "" {
		cfg.Templates.Dir = flags.templates.dir
	}
	if flags.templates.extension != "" {
		cfg.Templates.Extension = flags.templates.extension
	}
	if flags.templates.builtinFallback {
		cfg.Templates.BuiltinFallback = true
	}

	// Renderer flags
	if flags.renderer.name != "" {
		cfg.Renderer.Name = flags.renderer.name
	}
	if flags.renderer.pandoc != "" {
		cfg.Renderer.Pandoc.Binary = flags.renderer.pandoc
	}
	if flags.renderer.timeout != "" {
		cfg.Renderer.Timeout = flags.renderer.timeout
	}

	// Output flags
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}

	// Verbosity (quiet wins over verbose)
	switch {
	case flags.common.quiet:
		cfg.Log.Level = config.LevelError
	case flags.common.verbose:
		cfg.Log.Level = config.LevelDebug
	}
}

// resolveInputPath picks the document from --markdown or the single positional argument.
func resolveInputPath(markdown string, positional []string) (string, error) {
	switch {
	case len(positional) > 1:
		return "", fmt.Errorf("%w: %v", ErrTooManyInputs, positional)
	case len(positional) == 1 && markdown != "" && positional[0] != markdown:
		return "", fmt.Errorf("%w: --markdown %s and %s", ErrTooManyInputs, markdown, positional[0])
	case len(positional) == 1:
		return positional[0], nil
	case markdown != "":
		return markdown, nil
	default:
		return "", ErrNoInput
	}
}

// buildRenderer returns the body renderer selected by cfg.
func buildRenderer(cfg *config.Config, env *Environment) staticify.BodyRenderer {
	if env.Renderer != nil {
		return env.Renderer
	}
	if cfg.Renderer.Name == config.RendererGoldmark {
		return staticify.NewGoldmarkRenderer()
	}
	return staticify.NewPandocRenderer(cfg.Renderer.Pandoc.Binary, cfg.Renderer.Pandoc.Args...)
}

// newLogger builds a console logger on w. An unknown level falls back to warn.
func newLogger(level string, w io.Writer) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core)
}

// writePage writes the page to path, or to stdout when path is empty.
func writePage(path, page string, stdout io.Writer) error {
	if path == "" {
		if _, err := io.WriteString(stdout, page); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFile(path, page); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, cfg *config.Config, configName string) string {
	switch {
	case errors.Is(err, staticify.ErrRendererStart):
		return hints.ForRendererStart(cfg.Renderer.Pandoc.Binary)
	case errors.Is(err, staticify.ErrRendererExit):
		return hints.ForRendererExit()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, staticify.ErrUnknownLayout):
		return hints.ForUnknownLayout(staticify.LayoutNames())
	case errors.Is(err, staticify.ErrHeader):
		return hints.ForHeader()
	case errors.Is(err, assets.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(availableTemplates(cfg.Templates))
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// availableTemplates lists the template names present in the configured directory.
func availableTemplates(t config.TemplatesConfig) []string {
	loader, err := assets.NewFilesystemLoader(t.Dir, t.Extension)
	if err != nil {
		return nil
	}
	names, err := loader.Available()
	if err != nil {
		return nil
	}
	return names
}
