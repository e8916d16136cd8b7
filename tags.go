package staticify

import (
	"fmt"
	"strings"
)

// tagSeparator joins rendered tags.
const tagSeparator = " | "

// Tags is the ordered tag list of a document.
type Tags []string

// HTML renders the tags as code-formatted links, in order, inside a bracketed
// paragraph. Tag text is used as both link target and label without escaping.
// An empty list renders as "<p> [  ] </p>".
func (t Tags) HTML() string {
	links := make([]string, len(t))
	for i, tag := range t {
		links[i] = fmt.Sprintf(`<a class="link", href="%s"><code>%s</code></a>`, tag, tag)
	}
	return "<p> [ " + strings.Join(links, tagSeparator) + " ] </p>"
}
