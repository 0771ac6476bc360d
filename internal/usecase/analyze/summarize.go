package analyze

import (
	"context"
	"log/slog"
	"strings"

	"clausescan/internal/domain/entity"
	"clausescan/internal/observability/metrics"
)

// Summarizer generates a summary of one chunk of text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// fallbackWordLimit is the truncation length used when the provider fails.
const fallbackWordLimit = 120

// ChunkSummarizer wraps a provider with the truncation fallback. It never
// returns an error: a chunk that cannot be summarized is represented by
// its own first words, so the pipeline always produces a summary.
type ChunkSummarizer struct {
	provider Summarizer
	logger   *slog.Logger
}

// NewChunkSummarizer builds the fallback-wrapping summarizer.
func NewChunkSummarizer(provider Summarizer, logger *slog.Logger) *ChunkSummarizer {
	return &ChunkSummarizer{provider: provider, logger: logger}
}

// SummarizeChunk summarizes one chunk, falling back to truncation when the
// provider errors or returns empty text.
func (s *ChunkSummarizer) SummarizeChunk(ctx context.Context, chunk string) entity.ChunkSummary {
	summary, err := s.provider.Summarize(ctx, chunk)
	if err == nil && strings.TrimSpace(summary) != "" {
		return entity.ChunkSummary{Text: summary}
	}

	if err != nil {
		s.logger.Warn("chunk summarization failed, using truncation fallback",
			slog.Int("chunk_words", len(strings.Fields(chunk))),
			slog.String("error", err.Error()))
	} else {
		s.logger.Warn("provider returned empty summary, using truncation fallback")
	}
	metrics.RecordSummaryFallback()

	return entity.ChunkSummary{Text: truncate(chunk, fallbackWordLimit), Fallback: true}
}

// truncate returns the first limit words of text, appending an ellipsis
// only when words were actually dropped.
func truncate(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ") + "..."
}
