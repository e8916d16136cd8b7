package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: staticify [flags] <document>")
	fmt.Fprintln(w, "       staticify <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a document with a YAML header into an HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -m, --markdown <path>     Document to render (or pass it as argument)")
	fmt.Fprintln(w, "  -o, --output <path>       Write the page to a file instead of stdout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "  -t, --templates <dir>     Template directory (default: assets)")
	fmt.Fprintln(w, "      --ext <ext>           Template extension (default: tmpltl)")
	fmt.Fprintln(w, "      --builtin-fallback    Use the built-in template for missing layouts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renderer:")
	fmt.Fprintln(w, "      --renderer <name>     Body renderer: pandoc, goldmark (default: pandoc)")
	fmt.Fprintln(w, "      --pandoc <path>       Pandoc executable")
	fmt.Fprintln(w, "      --timeout <dur>       Body rendering timeout (default: none)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug diagnostics")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: staticify version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: staticify help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
