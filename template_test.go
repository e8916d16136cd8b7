package staticify

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSubstitute - Placeholder replacement
// ---------------------------------------------------------------------------

func TestSubstitute(t *testing.T) {
	t.Parallel()

	page := Page{
		Title: "Hello",
		Tags:  nil,
		Body:  "<p>Body markup here</p>",
		Fungi: "img/a.png",
	}

	tests := []struct {
		name string
		tmpl string
		page Page
		want string
	}{
		{
			name: "all four tokens",
			tmpl: "<html>{{ TITLE }}{{ TAGS }}{{ PANDOC }}{{ FUNGI }}</html>",
			page: page,
			want: "<html>Hello<p> [  ] </p><p>Body markup here</p>img/a.png</html>",
		},
		{
			name: "tokens in reverse order",
			tmpl: "{{ FUNGI }}|{{ PANDOC }}|{{ TAGS }}|{{ TITLE }}",
			page: page,
			want: "img/a.png|<p>Body markup here</p>|<p> [  ] </p>|Hello",
		},
		{
			name: "no tokens",
			tmpl: "<html></html>",
			page: page,
			want: "<html></html>",
		},
		{
			name: "empty template",
			tmpl: "",
			page: page,
			want: "",
		},
		{
			name: "unknown tokens untouched",
			tmpl: "{{ DATE }} {{ TITLE }} {{TITLE}} {{ title }}",
			page: page,
			want: "{{ DATE }} Hello {{TITLE}} {{ title }}",
		},
		{
			name: "only first occurrence replaced",
			tmpl: "<title>{{ TITLE }}</title><h1>{{ TITLE }}</h1>",
			page: page,
			want: "<title>Hello</title><h1>{{ TITLE }}</h1>",
		},
		{
			name: "values are not re-scanned",
			tmpl: "{{ TITLE }}/{{ TAGS }}/{{ PANDOC }}/{{ FUNGI }}",
			page: Page{
				Title: "{{ TAGS }}",
				Tags:  Tags{"{{ PANDOC }}"},
				Body:  "{{ FUNGI }}",
				Fungi: "{{ TITLE }}",
			},
			want: `{{ TAGS }}/<p> [ <a class="link", href="{{ PANDOC }}"><code>{{ PANDOC }}</code></a> ] </p>/{{ FUNGI }}/{{ TITLE }}`,
		},
		{
			name: "values are not escaped",
			tmpl: "{{ TITLE }} {{ FUNGI }}",
			page: Page{Title: "A & B <i>", Fungi: `x" onerror="y`},
			want: `A & B <i> x" onerror="y`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Substitute(tt.tmpl, tt.page); got != tt.want {
				t.Errorf("Substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstitute_RemovesEveryToken(t *testing.T) {
	t.Parallel()

	tmpl := "<head>{{ TITLE }}</head><nav>{{ TAGS }}</nav><main>{{ PANDOC }}</main><img src=\"{{ FUNGI }}\">"
	got := Substitute(tmpl, Page{Title: "t", Tags: Tags{"a"}, Body: "b", Fungi: "f"})

	for _, tok := range []string{TokenTitle, TokenTags, TokenBody, TokenFungi} {
		if strings.Contains(got, tok) {
			t.Errorf("output still contains %s: %q", tok, got)
		}
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	meta := &Metadata{Layout: LayoutPost, Title: "T", Tags: Tags{"x"}, Fungi: "f.png"}
	got := NewPage(meta, "<p>b</p>")

	if got.Title != "T" || got.Body != "<p>b</p>" || got.Fungi != "f.png" || len(got.Tags) != 1 {
		t.Errorf("NewPage() = %+v", got)
	}
}
