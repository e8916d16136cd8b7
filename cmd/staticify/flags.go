package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every invocation.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// templateFlags holds template lookup flags.
type templateFlags struct {
	dir             string
	extension       string
	builtinFallback bool
}

// rendererFlags holds body renderer flags.
type rendererFlags struct {
	name    string
	pandoc  string
	timeout string
}

// renderFlags holds all flags for rendering a document.
type renderFlags struct {
	common    commonFlags
	markdown  string
	output    string
	templates templateFlags
	renderer  rendererFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics")
}

// addTemplateFlags adds template flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVarP(&f.dir, "templates", "t", "", "template directory (default: assets)")
	fs.StringVar(&f.extension, "ext", "", "template extension (default: tmpltl)")
	fs.BoolVar(&f.builtinFallback, "builtin-fallback", false, "use the built-in template for missing layouts")
}

// addRendererFlags adds body renderer flags to a FlagSet.
func addRendererFlags(fs *flag.FlagSet, f *rendererFlags) {
	fs.StringVar(&f.name, "renderer", "", "body renderer: pandoc, goldmark")
	fs.StringVar(&f.pandoc, "pandoc", "", "pandoc executable (default: pandoc on PATH)")
	fs.StringVar(&f.timeout, "timeout", "", "body rendering timeout (e.g., 30s, 2m)")
}

// parseRenderFlags parses flags and returns positional args.
func parseRenderFlags(args []string, usage func()) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("staticify", flag.ContinueOnError)
	f := &renderFlags{}

	// I/O flags
	fs.StringVarP(&f.markdown, "markdown", "m", "", "document to render")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.templates)
	addRendererFlags(fs, &f.renderer)

	fs.Usage = usage
	fs.SetOutput(io.Discard) // parse errors are reported by the caller

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
