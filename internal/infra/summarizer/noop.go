package summarizer

import (
	"context"
	"errors"
)

// ErrNoProvider is returned by the NoOp summarizer on every call. The
// pipeline treats it like any other provider failure and falls back to
// truncation, so a deployment without API keys still produces results.
var ErrNoProvider = errors.New("no summarization provider configured")

// NoOpSummarizer is the provider used when SUMMARIZER_PROVIDER=none.
type NoOpSummarizer struct{}

// NewNoOpSummarizer returns a summarizer that always fails fast.
func NewNoOpSummarizer() *NoOpSummarizer {
	return &NoOpSummarizer{}
}

// Summarize always returns ErrNoProvider without touching the network.
func (*NoOpSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	return "", ErrNoProvider
}
