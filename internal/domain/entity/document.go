// Package entity defines the core domain types for document analysis.
// All entities are request-scoped values: they are built once per request
// and never shared or mutated across requests.
package entity

// SourceKind identifies how a document entered the system.
type SourceKind string

const (
	// SourceFile marks documents extracted from an uploaded file.
	SourceFile SourceKind = "file"
	// SourceURL marks documents extracted from a fetched web page.
	SourceURL SourceKind = "url"
	// SourceText marks documents supplied as raw pasted text.
	SourceText SourceKind = "text"
)

// Document is the ephemeral, request-scoped representation of an input
// document. It is created at request start and discarded once the analysis
// response has been built; nothing is persisted.
type Document struct {
	// RawText is the text as produced by the extraction step, before any
	// normalization. May be empty when extraction failed or found nothing.
	RawText string

	// SourceLabel names where the text came from: the uploaded filename,
	// the fetched URL, or "pasted_text" for raw input.
	SourceLabel string

	// SourceKind classifies the input channel for metrics.
	SourceKind SourceKind
}

// ChunkSummary is the summary of a single chunk. Position in the summary
// slice matches the chunk ordering; summaries are concatenated in order.
type ChunkSummary struct {
	// Text is the summary text, produced either by the AI provider or by
	// the truncation fallback.
	Text string

	// Fallback reports whether Text came from the truncation fallback
	// rather than the summarization provider. The distinction is explicit
	// so callers and tests never have to infer it from control flow.
	Fallback bool
}
