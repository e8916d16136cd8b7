package staticify

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Layout selects the template a document is rendered with.
// The zero Layout is invalid; obtain values from ParseLayout or the
// predefined Layout variables.
type Layout struct {
	name string
}

// LayoutPost renders a blog post.
var LayoutPost = Layout{name: "post"}

// knownLayouts lists every layout a header may name.
var knownLayouts = []Layout{
	LayoutPost,
}

// ParseLayout returns the layout whose name matches s exactly.
// Matching is case-sensitive: "Post" is not "post".
func ParseLayout(s string) (Layout, error) {
	for _, l := range knownLayouts {
		if l.name == s {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownLayout, s, strings.Join(LayoutNames(), ", "))
}

// LayoutNames returns the names of all known layouts.
func LayoutNames() []string {
	names := make([]string, len(knownLayouts))
	for i, l := range knownLayouts {
		names[i] = l.name
	}
	return names
}

// Name returns the lowercase name used to build the template filename.
func (l Layout) Name() string {
	return strings.ToLower(l.name)
}

func (l Layout) String() string {
	return l.name
}

// IsZero reports whether l is the invalid zero Layout.
func (l Layout) IsZero() bool {
	return l.name == ""
}

// Metadata is the decoded header block of a document.
type Metadata struct {
	Layout Layout
	Title  string
	Tags   Tags
	Fungi  string // associated resource path, inserted verbatim
}

// rawMetadata mirrors the header keys. Required fields are pointers so a
// missing key can be told apart from an empty value: "tags: []" is valid,
// an absent tags key is not.
type rawMetadata struct {
	Layout *string   `yaml:"layout"`
	Title  *string   `yaml:"title"`
	Fungi  string    `yaml:"fungi"`
	Tags   *[]string `yaml:"tags"`
}

func (r *rawMetadata) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Layout, validation.NotNil),
		validation.Field(&r.Title, validation.NotNil),
		validation.Field(&r.Tags, validation.By(keyPresent[[]string])),
	)
}

// keyPresent fails when the key was absent from the header. Unlike
// validation.NotNil it accepts a present but empty value such as "tags: []".
func keyPresent[T any](value interface{}) error {
	if p, _ := value.(*T); p == nil {
		return validation.ErrNotNilRequired
	}
	return nil
}

func (r *rawMetadata) toMetadata() (*Metadata, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	layout, err := ParseLayout(*r.Layout)
	if err != nil {
		return nil, err
	}

	return &Metadata{
		Layout: layout,
		Title:  *r.Title,
		Tags:   Tags(*r.Tags),
		Fungi:  r.Fungi,
	}, nil
}
