package assets

import (
	"errors"
	"testing"
)

func TestValidateTemplateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{"layout name", "post", nil},
		{"name with hyphen", "long-form", nil},
		{"name with underscore", "photo_essay", nil},
		{"mixed case", "Post", nil},

		// Invalid names
		{"empty name", "", ErrInvalidTemplateName},
		{"forward slash", "posts/post", ErrInvalidTemplateName},
		{"backslash", "posts\\post", ErrInvalidTemplateName},
		{"parent directory traversal", "../secret", ErrInvalidTemplateName},
		{"dot in name", "post.html", ErrInvalidTemplateName},
		{"hidden file", ".hidden", ErrInvalidTemplateName},
		{"two dots", "..", ErrInvalidTemplateName},
		{"NUL byte", "post\x00", ErrInvalidTemplateName},
		{"absolute path", "/etc/passwd", ErrInvalidTemplateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTemplateName(tt.input)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTemplateName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTemplateName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
