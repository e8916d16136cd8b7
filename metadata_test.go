package staticify

import (
	"errors"
	"slices"
	"testing"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Layout
		wantErr error
	}{
		{"post", LayoutPost, nil},
		{"Post", Layout{}, ErrUnknownLayout},
		{"POST", Layout{}, ErrUnknownLayout},
		{" post", Layout{}, ErrUnknownLayout},
		{"page", Layout{}, ErrUnknownLayout},
		{"", Layout{}, ErrUnknownLayout},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLayout(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseLayout(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLayout(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLayout_Name(t *testing.T) {
	t.Parallel()

	if got := LayoutPost.Name(); got != "post" {
		t.Errorf("Name() = %q, want %q", got, "post")
	}
	if got := LayoutPost.String(); got != "post" {
		t.Errorf("String() = %q, want %q", got, "post")
	}
	if LayoutPost.IsZero() {
		t.Error("LayoutPost.IsZero() = true")
	}
	if !(Layout{}).IsZero() {
		t.Error("Layout{}.IsZero() = false")
	}
}

func TestLayoutNames(t *testing.T) {
	t.Parallel()

	if got := LayoutNames(); !slices.Contains(got, "post") {
		t.Errorf("LayoutNames() = %v, want to contain post", got)
	}
}
