package main

import (
	"errors"
	"slices"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		args := []string{
			"-m", "post.md", "-o", "out.html", "-c", "blog",
			"-t", "layouts", "--ext", "html", "--builtin-fallback",
			"--renderer", "goldmark", "--pandoc", "/opt/pandoc", "--timeout", "5s",
			"-v",
		}
		f, positional, err := parseRenderFlags(args, func() {})
		if err != nil {
			t.Fatalf("parseRenderFlags() error = %v", err)
		}
		if len(positional) != 0 {
			t.Errorf("positional = %v, want none", positional)
		}

		checks := []struct{ name, got, want string }{
			{"markdown", f.markdown, "post.md"},
			{"output", f.output, "out.html"},
			{"config", f.common.config, "blog"},
			{"templates", f.templates.dir, "layouts"},
			{"ext", f.templates.extension, "html"},
			{"renderer", f.renderer.name, "goldmark"},
			{"pandoc", f.renderer.pandoc, "/opt/pandoc"},
			{"timeout", f.renderer.timeout, "5s"},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
			}
		}
		if !f.templates.builtinFallback {
			t.Error("builtinFallback = false, want true")
		}
		if !f.common.verbose {
			t.Error("verbose = false, want true")
		}
	})

	t.Run("positional document", func(t *testing.T) {
		t.Parallel()

		_, positional, err := parseRenderFlags([]string{"-q", "post.md"}, func() {})
		if err != nil {
			t.Fatalf("parseRenderFlags() error = %v", err)
		}
		if !slices.Equal(positional, []string{"post.md"}) {
			t.Errorf("positional = %v, want [post.md]", positional)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseRenderFlags([]string{"--css", "x"}, func() {}); err == nil {
			t.Error("expected error for unknown flag")
		}
	})

	t.Run("help flag", func(t *testing.T) {
		t.Parallel()

		called := false
		_, _, err := parseRenderFlags([]string{"--help"}, func() { called = true })
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
		if !called {
			t.Error("usage was not printed")
		}
	})
}
