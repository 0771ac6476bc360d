package analyze

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"clausescan/internal/domain/entity"
	"clausescan/internal/utils/text"
)

func newTestService(provider Summarizer) *Service {
	cs := NewChunkSummarizer(provider, testLogger())
	cfg := &Config{ChunkWordLimit: 700, Parallelism: 2}
	return NewService(text.RegexSplitter{}, cs, DefaultRules(), cfg, testLogger())
}

func TestService_Analyze_EmptyDocument(t *testing.T) {
	svc := newTestService(&stubSummarizer{result: "irrelevant"})

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: " \r\n \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := entity.Document{RawText: tt.raw, SourceLabel: "terms.txt", SourceKind: entity.SourceFile}
			result, err := svc.Analyze(context.Background(), doc)

			if !errors.Is(err, entity.ErrNoTextExtracted) {
				t.Fatalf("expected ErrNoTextExtracted, got %v", err)
			}
			if result.Title != "terms.txt" {
				t.Errorf("expected source label as title, got %q", result.Title)
			}
		})
	}
}

func TestService_Analyze_ProviderSummary(t *testing.T) {
	provider := &stubSummarizer{result: "They collect data and you cannot sue."}
	svc := newTestService(provider)

	doc := entity.Document{
		RawText:     "We collect personal data from your device. Disputes are resolved through binding arbitration.",
		SourceLabel: "https://example.com/terms",
		SourceKind:  entity.SourceURL,
	}

	result, err := svc.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Summary != "They collect data and you cannot sue." {
		t.Errorf("expected provider summary, got %q", result.Summary)
	}
	if result.FallbackCount != 0 {
		t.Errorf("expected no fallbacks, got %d", result.FallbackCount)
	}
	if provider.calls != 1 {
		t.Errorf("expected one provider call for one chunk, got %d", provider.calls)
	}
	if result.ChunkCount != 1 {
		t.Errorf("expected one chunk, got %d", result.ChunkCount)
	}
}

func TestService_Analyze_FallbackPipeline(t *testing.T) {
	svc := newTestService(&stubSummarizer{err: errors.New("provider down")})

	raw := "We collect personal data from your device.\n\n" +
		"Your subscription is subject to automatic renewal each year.\n\n" +
		"Disputes are resolved through binding arbitration and we share your data with partners."
	doc := entity.Document{RawText: raw, SourceLabel: "terms.txt", SourceKind: entity.SourceFile}

	result, err := svc.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Title != "terms.txt" {
		t.Errorf("title = %q", result.Title)
	}
	if result.Summary == "" {
		t.Error("fallback pipeline must still produce a summary")
	}
	if result.FallbackCount != result.ChunkCount {
		t.Errorf("all chunks should be fallbacks: %d of %d", result.FallbackCount, result.ChunkCount)
	}

	// automatic renewal (2) + binding arbitration (3) + share your data (3)
	// + third party absent; total 8.
	if result.Risk.Level != entity.RiskHigh {
		t.Errorf("risk level = %s, expected high (score %d)", result.Risk.Level, result.Risk.Score)
	}
	if result.Risk.Score != 8 {
		t.Errorf("risk score = %d, expected 8", result.Risk.Score)
	}

	wantClauses := []string{
		"[Data Collection] We collect personal data from your device.",
		"[Data Collection] Disputes are resolved through binding arbitration and we share your data with partners.",
		"[Auto-Renewal] Your subscription is subject to automatic renewal each year.",
		"[Arbitration] Disputes are resolved through binding arbitration and we share your data with partners.",
	}
	if diff := cmp.Diff(wantClauses, result.ImportantClauses); diff != "" {
		t.Errorf("important clauses mismatch (-want +got):\n%s", diff)
	}

	wantCounts := map[string]int{"Data Collection": 2, "Auto-Renewal": 1, "Arbitration": 1}
	if diff := cmp.Diff(wantCounts, result.ClauseCounts); diff != "" {
		t.Errorf("clause counts mismatch (-want +got):\n%s", diff)
	}

	if result.ReadingTime != "1 minutes" {
		t.Errorf("reading time = %q, expected 1 minutes floor", result.ReadingTime)
	}
	if len(result.KeyPoints) == 0 || len(result.KeyPoints) > keyPointLimit {
		t.Errorf("key points out of range: %d", len(result.KeyPoints))
	}
	if result.Normalized == "" || strings.Contains(result.Normalized, "\n") {
		t.Errorf("normalized text should be single-line, got %q", result.Normalized)
	}
}

func TestService_Analyze_LongDocument(t *testing.T) {
	svc := newTestService(&stubSummarizer{err: errors.New("provider down")})

	// 1000 neutral words in 100 sentences of 10 words each.
	sentence := "The service description continues here with more plain neutral wording."
	raw := strings.Repeat(sentence+" ", 100)
	doc := entity.Document{RawText: raw, SourceLabel: "big.txt", SourceKind: entity.SourceFile}

	result, err := svc.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.WordCount != 1000 {
		t.Errorf("word count = %d, expected 1000", result.WordCount)
	}
	if result.ReadingTime != "5 minutes" {
		t.Errorf("reading time = %q, expected 5 minutes", result.ReadingTime)
	}
	if result.Risk.Level != entity.RiskLow {
		t.Errorf("neutral document should be low risk, got %s", result.Risk.Level)
	}
	if result.ChunkCount != 2 {
		// 1000 words at a 700-word budget packs into two chunks.
		t.Errorf("chunk count = %d, expected 2", result.ChunkCount)
	}
	if len(result.KeyPoints) != keyPointLimit {
		t.Errorf("expected key points capped at %d, got %d", keyPointLimit, len(result.KeyPoints))
	}
	if len(result.ImportantClauses) != 0 {
		t.Errorf("expected no clause matches, got %v", result.ImportantClauses)
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words    int
		expected string
	}{
		{words: 0, expected: "1 minutes"},
		{words: 150, expected: "1 minutes"},
		{words: 200, expected: "1 minutes"},
		{words: 399, expected: "1 minutes"},
		{words: 400, expected: "2 minutes"},
		{words: 1000, expected: "5 minutes"},
	}

	for _, tt := range tests {
		if got := readingTime(tt.words); got != tt.expected {
			t.Errorf("readingTime(%d) = %q, expected %q", tt.words, got, tt.expected)
		}
	}
}
