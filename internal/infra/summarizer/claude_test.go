package summarizer

import (
	"strings"
	"testing"
	"time"
)

func TestNewClaudeSummarizer_EmptyKey(t *testing.T) {
	cfg := &Config{Provider: ProviderClaude, Model: "claude-sonnet-4-5-20250929", MinWords: 30, MaxWords: 150, Timeout: time.Minute}
	if _, err := NewClaudeSummarizer("", cfg, testLogger()); err == nil {
		t.Error("expected error for empty api key")
	}
}

func TestNewClaudeSummarizer_InvalidConfig(t *testing.T) {
	cfg := &Config{Provider: ProviderClaude, Model: "", MinWords: 30, MaxWords: 150, Timeout: time.Minute}
	if _, err := NewClaudeSummarizer("sk-test", cfg, testLogger()); err == nil {
		t.Error("expected error for missing model")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(30, 150, "clause body")

	for _, want := range []string{"30", "150", "clause body"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
