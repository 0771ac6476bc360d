package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"clausescan/internal/resilience/circuitbreaker"
	"clausescan/internal/resilience/retry"
)

// maxInputChars caps the chunk text sent to a provider in one call. Chunks
// are already word-bounded upstream, so hitting this limit means an
// oversized single sentence; the tail is dropped rather than failing.
const maxInputChars = 40000

// OpenAIClient is the subset of the go-openai client the adapter uses.
type OpenAIClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAISummarizer summarizes text through the OpenAI chat completions API,
// guarded by a circuit breaker and retry with backoff.
type OpenAISummarizer struct {
	client  OpenAIClient
	cfg     *Config
	cb      *circuitbreaker.CircuitBreaker
	retry   retry.Config
	metrics MetricsRecorder
	logger  *slog.Logger
}

// NewOpenAISummarizer builds the adapter. The API key must be non-empty;
// construction fails rather than deferring the error to the first call.
func NewOpenAISummarizer(apiKey string, cfg *Config, logger *slog.Logger) (*OpenAISummarizer, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer config: %w", err)
	}
	return &OpenAISummarizer{
		client:  openai.NewClient(apiKey),
		cfg:     cfg,
		cb:      circuitbreaker.New(circuitbreaker.SummarizerAPIConfig("openai-summarizer")),
		retry:   retry.SummarizerAPIConfig(),
		metrics: NewMetricsRecorder(),
		logger:  logger,
	}, nil
}

// Summarize sends the text to the chat completions endpoint and returns the
// model's summary. Retries transient failures; a tripped breaker surfaces
// immediately as an error so the caller can fall back to truncation.
func (s *OpenAISummarizer) Summarize(ctx context.Context, text string) (string, error) {
	requestID := uuid.New().String()
	start := time.Now()

	if len(text) > maxInputChars {
		s.metrics.RecordInputTruncated(ProviderOpenAI)
		s.logger.Warn("summarizer input truncated",
			slog.String("request_id", requestID),
			slog.String("provider", ProviderOpenAI),
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
				return fmt.Errorf("openai circuit breaker open: %w", cbErr)
			}
			return cbErr
		}
		summary = result.(string)
		return nil
	})

	status := "success"
	if err != nil {
		status = "error"
		s.logger.Error("openai summarization failed",
			slog.String("request_id", requestID),
			slog.String("model", s.cfg.Model),
			slog.String("error", err.Error()))
	}
	s.metrics.RecordCall(ProviderOpenAI, s.cfg.Model, status, time.Since(start))

	if err != nil {
		return "", fmt.Errorf("openai summarize: %w", err)
	}
	return summary, nil
}

func (s *OpenAISummarizer) doSummarize(ctx context.Context, text string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(s.cfg.MinWords, s.cfg.MaxWords, text),
			},
		},
		// Effectively zero; the field is omitempty so a literal 0 would be
		// dropped from the request and the API default used instead.
		Temperature: 1e-8,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", errors.New("openai returned an empty summary")
	}
	return summary, nil
}
