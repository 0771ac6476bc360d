// Package fetcher retrieves terms-and-conditions pages over HTTP and
// extracts their readable text for the analysis pipeline.
package fetcher

import "errors"

var (
	// ErrInvalidURL indicates the URL failed parsing or security validation.
	ErrInvalidURL = errors.New("invalid url")

	// ErrPrivateAddress indicates the URL resolves to a private, loopback,
	// or link-local address and was blocked to prevent SSRF.
	ErrPrivateAddress = errors.New("url resolves to a private address")

	// ErrBodyTooLarge indicates the response exceeded the body size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTooManyRedirects indicates the redirect chain exceeded the limit.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrNoReadableText indicates the page was fetched but neither the
	// readability extractor nor the paragraph fallback found any text.
	ErrNoReadableText = errors.New("no readable text found in page")
)
