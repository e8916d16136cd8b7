package staticify

import (
	"slices"
	"strings"
)

// Placeholder tokens recognized in templates.
const (
	TokenTitle = "{{ TITLE }}"
	TokenTags  = "{{ TAGS }}"
	TokenBody  = "{{ PANDOC }}"
	TokenFungi = "{{ FUNGI }}"
)

// Page holds the values substituted into a template.
type Page struct {
	Title string
	Tags  Tags
	Body  string // rendered body HTML
	Fungi string
}

// NewPage builds a Page from decoded metadata and rendered body HTML.
func NewPage(meta *Metadata, body string) Page {
	return Page{
		Title: meta.Title,
		Tags:  meta.Tags,
		Body:  body,
		Fungi: meta.Fungi,
	}
}

// Substitute replaces the first occurrence of each placeholder token in tmpl.
//
// The template is scanned once: substituted values are copied to the output
// and never searched for tokens, so a title containing "{{ TAGS }}" stays as
// written. Later occurrences of a token and unrecognized "{{ ... }}" markers
// are left untouched. No value is escaped.
func Substitute(tmpl string, page Page) string {
	subs := []struct {
		token string
		value string
	}{
		{TokenTitle, page.Title},
		{TokenTags, page.Tags.HTML()},
		{TokenBody, page.Body},
		{TokenFungi, page.Fungi},
	}

	type match struct {
		at  int
		sub int
	}

	matches := make([]match, 0, len(subs))
	for i, s := range subs {
		if at := strings.Index(tmpl, s.token); at >= 0 {
			matches = append(matches, match{at: at, sub: i})
		}
	}
	slices.SortFunc(matches, func(a, b match) int { return a.at - b.at })

	var b strings.Builder
	last := 0
	for _, m := range matches {
		s := subs[m.sub]
		b.WriteString(tmpl[last:m.at])
		b.WriteString(s.value)
		last = m.at + len(s.token)
	}
	b.WriteString(tmpl[last:])

	return b.String()
}
