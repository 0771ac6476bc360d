// Package summarizer provides the AI summarization providers used by the
// analysis pipeline: OpenAI and Claude adapters with circuit breaker and
// retry, a NoOp provider for development, and a lazy initialization holder
// that caches construction failure as "unavailable".
package summarizer

import (
	"fmt"
	"time"

	"clausescan/pkg/config"
)

// Provider identifiers accepted by SUMMARIZER_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderNone   = "none"
)

const (
	// minSummaryWords and maxSummaryWords bound the summary length the
	// providers are asked for. Summaries are later concatenated per chunk,
	// so tight bounds keep the combined summary readable.
	defaultMinSummaryWords = 30
	defaultMaxSummaryWords = 150

	minWordBound = 10
	maxWordBound = 1000
)

// Config holds the settings shared by the summarization providers.
type Config struct {
	// Provider selects the backend: "openai", "claude", or "none".
	Provider string

	// Model is the provider model identifier.
	Model string

	// MinWords and MaxWords bound the requested summary length.
	MinWords int
	MaxWords int

	// Timeout limits a single summarization API call.
	Timeout time.Duration
}

// Validate checks the configuration, failing closed on nonsense values.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderClaude, ProviderNone:
	default:
		return fmt.Errorf("provider must be one of openai, claude, none; got %q", c.Provider)
	}

	if c.Provider != ProviderNone && c.Model == "" {
		return fmt.Errorf("model cannot be empty for provider %q", c.Provider)
	}

	if c.MinWords < minWordBound || c.MinWords > maxWordBound {
		return fmt.Errorf("min words %d outside valid range [%d, %d]", c.MinWords, minWordBound, maxWordBound)
	}
	if c.MaxWords < minWordBound || c.MaxWords > maxWordBound {
		return fmt.Errorf("max words %d outside valid range [%d, %d]", c.MaxWords, minWordBound, maxWordBound)
	}
	if c.MinWords > c.MaxWords {
		return fmt.Errorf("min words %d greater than max words %d", c.MinWords, c.MaxWords)
	}

	if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}

// LoadConfig loads summarizer configuration from the environment.
//
// Environment variables:
//   - SUMMARIZER_PROVIDER: openai | claude | none (default: none)
//   - SUMMARIZER_MODEL: model identifier (provider-specific default)
//   - SUMMARIZER_MIN_WORDS: lower summary length bound (default: 30)
//   - SUMMARIZER_MAX_WORDS: upper summary length bound (default: 150)
//   - SUMMARIZER_TIMEOUT: per-call timeout (default: 60s)
//
// Returns an error when the resulting configuration is invalid
// (fail-closed behavior at startup).
func LoadConfig() (*Config, error) {
	provider := config.GetEnvString("SUMMARIZER_PROVIDER", ProviderNone)

	defaultModel := ""
	switch provider {
	case ProviderOpenAI:
		defaultModel = "gpt-4o-mini"
	case ProviderClaude:
		defaultModel = "claude-sonnet-4-5-20250929"
	}

	cfg := &Config{
		Provider: provider,
		Model:    config.GetEnvString("SUMMARIZER_MODEL", defaultModel),
		MinWords: config.GetEnvInt("SUMMARIZER_MIN_WORDS", defaultMinSummaryWords),
		MaxWords: config.GetEnvInt("SUMMARIZER_MAX_WORDS", defaultMaxSummaryWords),
		Timeout:  config.GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
	}
	return cfg, nil
}
