// Package pipeline converts document bodies to HTML fragments in-process.
//
// It backs the goldmark body renderer, an alternative to shelling out to
// pandoc:
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Markdown to HTML conversion via Goldmark (GFM, footnotes, chroma classes)
//   - Post-processing of highlight placeholders into <mark> elements
//
// Output is a fragment, never a full document: the page template provides
// the surrounding <html> structure.
package pipeline
