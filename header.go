package staticify

import (
	"fmt"
	"strings"

	"github.com/alnah/go-staticify/internal/yamlutil"
)

// HeaderDelimiter opens and closes the header block.
const HeaderDelimiter = "---\n"

// SplitHeader separates the header block from the body.
// The document must start with HeaderDelimiter; the header ends at the next
// occurrence of HeaderDelimiter. The returned header excludes both delimiters
// and the body is everything after the closing one.
func SplitHeader(content string) (header, body string, err error) {
	if !strings.HasPrefix(content, HeaderDelimiter) {
		return "", "", ErrHeaderStart
	}

	rest := content[len(HeaderDelimiter):]
	end := strings.Index(rest, HeaderDelimiter)
	if end < 0 {
		return "", "", ErrHeaderEnd
	}

	return rest[:end], rest[end+len(HeaderDelimiter):], nil
}

// ParseHeader extracts and decodes the header block of a document.
// Structural problems return ErrHeaderStart or ErrHeaderEnd; anything wrong
// with the block's content returns an error wrapping ErrMetadata.
func ParseHeader(content string) (*Metadata, error) {
	header, _, err := SplitHeader(content)
	if err != nil {
		return nil, err
	}
	return DecodeMetadata(header)
}

// DecodeMetadata decodes a header block (without delimiters) into Metadata.
func DecodeMetadata(block string) (*Metadata, error) {
	var raw rawMetadata
	if err := yamlutil.Unmarshal([]byte(block), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadata, err)
	}

	meta, err := raw.toMetadata()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadata, err)
	}

	return meta, nil
}
