package summarizer

import (
	"context"
	"strconv"
)

// Summarizer generates a natural-language summary of the given text.
// Implementations may fail; graceful degradation to truncation is the
// caller's responsibility (see usecase/analyze.ChunkSummarizer).
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// buildPrompt is the shared summarization prompt. Both API providers use
// the same wording so switching providers does not change summary style.
func buildPrompt(minWords, maxWords int, text string) string {
	return "Summarize the following terms-and-conditions passage in plain language, " +
		"between " + strconv.Itoa(minWords) + " and " + strconv.Itoa(maxWords) + " words. " +
		"Keep obligations, fees, renewals, and data-sharing statements explicit. " +
		"Respond with the summary only:\n" + text
}
