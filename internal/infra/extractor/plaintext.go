// Package extractor decodes uploaded terms documents into plain text.
package extractor

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxFileBytes caps uploaded file reads. Requests are already body-limited
// at the HTTP layer; this is the per-part bound.
const maxFileBytes = 10 * 1024 * 1024

// PlainText extracts text from an uploaded file by treating it as UTF-8.
// Invalid byte sequences are dropped rather than failing the upload, so a
// file with a stray BOM or a few mis-encoded bytes still analyzes.
type PlainText struct{}

// NewPlainText returns a plain-text file extractor.
func NewPlainText() *PlainText {
	return &PlainText{}
}

// Extract reads r to the size cap and returns its content as valid UTF-8.
func (*PlainText) Extract(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxFileBytes+1))
	if err != nil {
		return "", fmt.Errorf("read uploaded file: %w", err)
	}
	if len(raw) > maxFileBytes {
		return "", fmt.Errorf("uploaded file too large: exceeds %d bytes", maxFileBytes)
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	// Salvage what decodes; skip invalid bytes.
	var b strings.Builder
	b.Grow(len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r != utf8.RuneError || size > 1 {
			b.WriteRune(r)
		}
		raw = raw[size:]
	}
	return b.String(), nil
}
