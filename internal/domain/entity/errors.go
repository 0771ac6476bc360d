package entity

import "errors"

var (
	// ErrNoInput indicates that a request supplied neither a file, a URL,
	// nor raw text. This is a user error reported through the structured
	// empty-result path, not an HTTP failure.
	ErrNoInput = errors.New("no input provided: send a file, url, or text_body")

	// ErrNoTextExtracted indicates that extraction ran but produced no
	// usable text (bad file, unreachable URL, or an empty document).
	ErrNoTextExtracted = errors.New("no text extracted from input")
)
