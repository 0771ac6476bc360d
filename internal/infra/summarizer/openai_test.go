package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"clausescan/internal/resilience/circuitbreaker"
	"clausescan/internal/resilience/retry"
)

type fakeOpenAIClient struct {
	resp    openai.ChatCompletionResponse
	err     error
	calls   int
	lastReq openai.ChatCompletionRequest
}

func (f *fakeOpenAIClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.lastReq = req
	return f.resp, f.err
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func fastRetry() retry.Config {
	return retry.Config{
		MaxAttempts:    2,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}
}

func newTestOpenAI(client OpenAIClient) *OpenAISummarizer {
	return &OpenAISummarizer{
		client:  client,
		cfg:     &Config{Provider: ProviderOpenAI, Model: "gpt-4o-mini", MinWords: 30, MaxWords: 150, Timeout: time.Minute},
		cb:      circuitbreaker.New(circuitbreaker.SummarizerAPIConfig("openai-test")),
		retry:   fastRetry(),
		metrics: nopMetrics{},
		logger:  testLogger(),
	}
}

func TestNewOpenAISummarizer_EmptyKey(t *testing.T) {
	cfg := &Config{Provider: ProviderOpenAI, Model: "gpt-4o-mini", MinWords: 30, MaxWords: 150, Timeout: time.Minute}
	if _, err := NewOpenAISummarizer("", cfg, testLogger()); err == nil {
		t.Error("expected error for empty api key")
	}
}

func TestOpenAISummarizer_Success(t *testing.T) {
	client := &fakeOpenAIClient{resp: chatResponse("  A summary.  ")}
	s := newTestOpenAI(client)

	got, err := s.Summarize(context.Background(), "some clause text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A summary." {
		t.Errorf("summary = %q, expected trimmed provider output", got)
	}
	if client.calls != 1 {
		t.Errorf("expected one api call, got %d", client.calls)
	}
}

func TestOpenAISummarizer_PromptCarriesText(t *testing.T) {
	client := &fakeOpenAIClient{resp: chatResponse("ok")}
	s := newTestOpenAI(client)

	if _, err := s.Summarize(context.Background(), "unique-clause-marker"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.lastReq.Messages) != 1 {
		t.Fatalf("expected one message, got %d", len(client.lastReq.Messages))
	}
	if !strings.Contains(client.lastReq.Messages[0].Content, "unique-clause-marker") {
		t.Error("prompt must include the chunk text")
	}
	if client.lastReq.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", client.lastReq.Model)
	}
}

func TestOpenAISummarizer_EmptyChoices(t *testing.T) {
	client := &fakeOpenAIClient{resp: openai.ChatCompletionResponse{}}
	s := newTestOpenAI(client)

	if _, err := s.Summarize(context.Background(), "text"); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestOpenAISummarizer_APIError(t *testing.T) {
	client := &fakeOpenAIClient{err: errors.New("api exploded")}
	s := newTestOpenAI(client)

	if _, err := s.Summarize(context.Background(), "text"); err == nil {
		t.Error("expected error when the api fails")
	}
}

func TestOpenAISummarizer_TruncatesOversizedInput(t *testing.T) {
	client := &fakeOpenAIClient{resp: chatResponse("ok")}
	s := newTestOpenAI(client)

	input := strings.Repeat("a", maxInputChars+100)
	if _, err := s.Summarize(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.lastReq.Messages[0].Content) > maxInputChars+500 {
		t.Error("oversized input was not truncated before the api call")
	}
}
