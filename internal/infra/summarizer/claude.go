package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"clausescan/internal/resilience/circuitbreaker"
	"clausescan/internal/resilience/retry"
)

// claudeMaxTokens bounds the completion. Summaries are capped at a few
// hundred words, so this leaves generous headroom without letting a
// misbehaving prompt burn an unbounded completion.
const claudeMaxTokens = 1024

// ClaudeSummarizer summarizes text through the Anthropic Messages API,
// guarded by the same circuit breaker and retry policy as the OpenAI
// adapter.
type ClaudeSummarizer struct {
	client  anthropic.Client
	cfg     *Config
	cb      *circuitbreaker.CircuitBreaker
	retry   retry.Config
	metrics MetricsRecorder
	logger  *slog.Logger
}

// NewClaudeSummarizer builds the adapter. The API key must be non-empty.
func NewClaudeSummarizer(apiKey string, cfg *Config, logger *slog.Logger) (*ClaudeSummarizer, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer config: %w", err)
	}
	return &ClaudeSummarizer{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		cfg:     cfg,
		cb:      circuitbreaker.New(circuitbreaker.SummarizerAPIConfig("claude-summarizer")),
		retry:   retry.SummarizerAPIConfig(),
		metrics: NewMetricsRecorder(),
		logger:  logger,
	}, nil
}

// Summarize sends the text to the Messages API and returns the model's
// summary. Failures after retries are returned to the caller, which falls
// back to deterministic truncation.
func (s *ClaudeSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	requestID := uuid.New().String()
	start := time.Now()

	if len(text) > maxInputChars {
		s.metrics.RecordInputTruncated(ProviderClaude)
		s.logger.Warn("summarizer input truncated",
			slog.String("request_id", requestID),
			slog.String("provider", ProviderClaude),
			slog.Int("original_chars", len(text)))
		text = text[:maxInputChars]
	}

	var summary string
	err := retry.WithBackoff(ctx, s.retry, func() error {
		result, cbErr := s.cb.Execute(func() (interface{}, error) {
			return s.doSummarize(ctx, text)
		})
		if cbErr != nil {
			if errors.Is(cbErr, gobreaker.ErrOpenState) {
				return fmt.Errorf("claude circuit breaker open: %w", cbErr)
			}
			return cbErr
		}
		summary = result.(string)
		return nil
	})

	status := "success"
	if err != nil {
		status = "error"
		s.logger.Error("claude summarization failed",
			slog.String("request_id", requestID),
			slog.String("model", s.cfg.Model),
			slog.String("error", err.Error()))
	}
	s.metrics.RecordCall(ProviderClaude, s.cfg.Model, status, time.Since(start))

	if err != nil {
		return "", fmt.Errorf("claude summarize: %w", err)
	}
	return summary, nil
}

func (s *ClaudeSummarizer) doSummarize(ctx context.Context, text string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	message, err := s.client.Messages.New(callCtx, anthropic.MessageNewParams{
		Model:       anthropic.Model(s.cfg.Model),
		MaxTokens:   int64(claudeMaxTokens),
		Temperature: anthropic.Float(0),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(s.cfg.MinWords, s.cfg.MaxWords, text))),
		},
	})
	if err != nil {
		return "", err
	}
	if len(message.Content) == 0 {
		return "", errors.New("claude returned no content blocks")
	}

	block, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude returned unexpected content block type %T", message.Content[0].AsAny())
	}

	summary := strings.TrimSpace(block.Text)
	if summary == "" {
		return "", errors.New("claude returned an empty summary")
	}
	return summary, nil
}
