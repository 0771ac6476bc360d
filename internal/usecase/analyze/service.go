// Package analyze implements the document analysis pipeline: normalize,
// chunk, summarize with fallback, classify clauses, and score risk.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"clausescan/internal/domain/entity"
	"clausescan/internal/observability/metrics"
	"clausescan/internal/observability/tracing"
	"clausescan/internal/utils/text"
	"clausescan/pkg/config"
)

const (
	// keyPointLimit caps how many leading summary sentences become key
	// points.
	keyPointLimit = 8

	// clausesPerCategoryLimit caps how many matches per category surface
	// in the important-clauses list; the full counts stay in metadata.
	clausesPerCategoryLimit = 3

	// readingWordsPerMinute is the assumed reading speed.
	readingWordsPerMinute = 200
)

// Config holds the pipeline tuning knobs.
type Config struct {
	// ChunkWordLimit is the word budget per chunk handed to the
	// summarizer.
	ChunkWordLimit int

	// Parallelism bounds concurrent chunk summarizations per request.
	Parallelism int
}

// Validate checks the configuration bounds.
func (c *Config) Validate() error {
	if c.ChunkWordLimit < 50 || c.ChunkWordLimit > 5000 {
		return fmt.Errorf("chunk word limit must be between 50 and 5000, got %d", c.ChunkWordLimit)
	}
	if c.Parallelism < 1 || c.Parallelism > 16 {
		return fmt.Errorf("parallelism must be between 1 and 16, got %d", c.Parallelism)
	}
	return nil
}

// LoadConfig loads pipeline configuration from the environment.
//
// Environment variables:
//   - CHUNK_WORD_LIMIT: words per summarization chunk (default: 700)
//   - SUMMARY_PARALLELISM: concurrent chunk summarizations (default: 4)
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ChunkWordLimit: config.GetEnvInt("CHUNK_WORD_LIMIT", 700),
		Parallelism:    config.GetEnvInt("SUMMARY_PARALLELISM", 4),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis configuration: %w", err)
	}
	return cfg, nil
}

// Result is the complete outcome of analyzing one document.
type Result struct {
	Title            string
	Summary          string
	KeyPoints        []string
	Risk             entity.RiskAssessment
	ReadingTime      string
	ImportantClauses []string

	// Normalized is the cleaned full text, returned to the client only
	// when it asks for the raw extraction.
	Normalized string

	// ChunkCount and WordCount describe the processed document.
	ChunkCount int
	WordCount  int

	// FallbackCount is how many chunk summaries came from truncation.
	FallbackCount int

	// ClauseCounts maps each matched category to its total match count,
	// before the per-category display cap.
	ClauseCounts map[string]int
}

// Service orchestrates the analysis pipeline.
type Service struct {
	splitter   text.SentenceSplitter
	summarizer *ChunkSummarizer
	rules      Rules
	cfg        *Config
	logger     *slog.Logger
}

// NewService builds the pipeline orchestrator.
func NewService(splitter text.SentenceSplitter, summarizer *ChunkSummarizer, rules Rules, cfg *Config, logger *slog.Logger) *Service {
	return &Service{
		splitter:   splitter,
		summarizer: summarizer,
		rules:      rules,
		cfg:        cfg,
		logger:     logger,
	}
}

// Analyze runs the full pipeline over one document. A document whose
// extraction produced no usable text returns entity.ErrNoTextExtracted;
// every other outcome is a populated Result. Chunk summaries never fail
// (the truncation fallback absorbs provider errors), so the only other
// error source is context cancellation.
func (s *Service) Analyze(ctx context.Context, doc entity.Document) (Result, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "analyze.Document")
	defer span.End()

	start := time.Now()

	normalized := text.Normalize(doc.RawText)
	if normalized == "" {
		return Result{Title: doc.SourceLabel}, entity.ErrNoTextExtracted
	}

	sentences := s.splitter.Split(normalized)
	chunks := text.Chunk(sentences, s.cfg.ChunkWordLimit)

	summaries, err := s.summarizeChunks(ctx, chunks)
	if err != nil {
		return Result{}, err
	}

	summary := joinSummaries(summaries)
	keyPoints := headSentences(s.splitter.Split(summary), keyPointLimit)

	// Clause classification needs paragraph boundaries, which Normalize
	// destroys; split the raw text instead.
	paragraphs := text.Paragraphs(doc.RawText)
	clauses := ClassifyClauses(s.rules, paragraphs)
	risk := ScoreRisk(s.rules, normalized)

	words := text.CountWords(normalized)
	fallbacks := 0
	for _, cs := range summaries {
		if cs.Fallback {
			fallbacks++
		}
	}

	result := Result{
		Title:            doc.SourceLabel,
		Summary:          summary,
		KeyPoints:        keyPoints,
		Risk:             risk,
		ReadingTime:      readingTime(words),
		ImportantClauses: s.formatImportantClauses(clauses),
		Normalized:       normalized,
		ChunkCount:       len(chunks),
		WordCount:        words,
		FallbackCount:    fallbacks,
		ClauseCounts:     clauseCounts(clauses),
	}

	duration := time.Since(start)
	metrics.RecordDocumentAnalyzed(string(doc.SourceKind), string(risk.Level), duration, len(chunks), words)
	s.logger.Info("document analyzed",
		slog.String("source", doc.SourceLabel),
		slog.String("source_kind", string(doc.SourceKind)),
		slog.Int("words", words),
		slog.Int("chunks", len(chunks)),
		slog.Int("fallback_chunks", fallbacks),
		slog.String("risk_level", string(risk.Level)),
		slog.Duration("duration", duration))

	return result, nil
}

// summarizeChunks summarizes all chunks concurrently, bounded by the
// configured parallelism, and reassembles the results in chunk order.
func (s *Service) summarizeChunks(ctx context.Context, chunks []string) ([]entity.ChunkSummary, error) {
	summaries := make([]entity.ChunkSummary, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Parallelism)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summaries[i] = s.summarizer.SummarizeChunk(gctx, chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("summarize chunks: %w", err)
	}
	return summaries, nil
}

// formatImportantClauses flattens the classified clauses into display
// strings, walking categories in rule-table order so output is
// deterministic.
func (s *Service) formatImportantClauses(clauses map[string][]entity.ClauseMatch) []string {
	var out []string
	for _, rule := range s.rules.Clauses {
		matches := clauses[rule.Category]
		for i, m := range matches {
			if i >= clausesPerCategoryLimit {
				break
			}
			out = append(out, fmt.Sprintf("[%s] %s", m.Category, m.Paragraph))
		}
	}
	return out
}

func clauseCounts(clauses map[string][]entity.ClauseMatch) map[string]int {
	counts := make(map[string]int, len(clauses))
	for category, matches := range clauses {
		counts[category] = len(matches)
	}
	return counts
}

func joinSummaries(summaries []entity.ChunkSummary) string {
	parts := make([]string, len(summaries))
	for i, cs := range summaries {
		parts[i] = cs.Text
	}
	return joinNonEmpty(parts)
}

func joinNonEmpty(parts []string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += p
	}
	return out
}

func headSentences(sentences []string, n int) []string {
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	return sentences
}

// readingTime estimates reading time at readingWordsPerMinute, with a
// one-minute floor for any non-empty document.
func readingTime(words int) string {
	minutes := words / readingWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d minutes", minutes)
}
