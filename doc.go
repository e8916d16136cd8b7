// Package staticify renders a single annotated document into an HTML page.
//
// # Quick Start
//
// Create a service pointing at a template directory and render a document:
//
//	svc, err := staticify.NewService(staticify.WithTemplateDir("assets"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := svc.Render(ctx, "posts/hello.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(page)
//
// # Document Format
//
// A document must start with a YAML header block delimited by "---" lines:
//
//	---
//	layout: post
//	title: Hello
//	fungi: img/a.png
//	tags: [go, web]
//	---
//	Body markup here
//
// The layout selects the template file "<layout>.tmpltl" in the template
// directory. Unknown layouts are rejected rather than defaulted.
//
// # Rendering Pipeline
//
//  1. Header parsing (structural checks, then YAML decoding into Metadata)
//  2. Body rendering via pandoc (default) or goldmark
//  3. Template loading for the layout
//  4. Placeholder substitution: {{ TITLE }}, {{ TAGS }}, {{ PANDOC }}, {{ FUNGI }}
//
// A malformed header stops the run before the body renderer is started.
//
// # Escaping
//
// No value is HTML-escaped during substitution. Titles, tags and the fungi
// path are inserted exactly as written in the header. Documents are expected
// to be authored by the site owner.
package staticify
