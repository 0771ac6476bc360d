package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Lazy defers provider construction to the first Summarize call and caches
// the outcome, success or failure. API keys are read at construction time,
// so a pod that starts before its secret is mounted still fails fast and
// permanently rather than hammering the provider with unauthenticated
// calls. Health checks read Available without forcing construction.
type Lazy struct {
	cfg    *Config
	logger *slog.Logger

	once    sync.Once
	inner   Summarizer
	initErr error
}

// NewLazy wraps the configured provider in a lazy holder.
func NewLazy(cfg *Config, logger *slog.Logger) *Lazy {
	return &Lazy{cfg: cfg, logger: logger}
}

func (l *Lazy) init() {
	l.once.Do(func() {
		switch l.cfg.Provider {
		case ProviderOpenAI:
			l.inner, l.initErr = NewOpenAISummarizer(os.Getenv("OPENAI_API_KEY"), l.cfg, l.logger)
		case ProviderClaude:
			l.inner, l.initErr = NewClaudeSummarizer(os.Getenv("ANTHROPIC_API_KEY"), l.cfg, l.logger)
		case ProviderNone:
			l.inner = NewNoOpSummarizer()
		default:
			l.initErr = fmt.Errorf("unknown summarizer provider %q", l.cfg.Provider)
		}

		if l.initErr != nil {
			l.logger.Warn("summarizer unavailable, truncation fallback will be used",
				slog.String("provider", l.cfg.Provider),
				slog.String("error", l.initErr.Error()))
			return
		}
		l.logger.Info("summarizer initialized",
			slog.String("provider", l.cfg.Provider),
			slog.String("model", l.cfg.Model))
	})
}

// Summarize delegates to the configured provider, constructing it on first
// use. A cached construction failure is returned on every call.
func (l *Lazy) Summarize(ctx context.Context, text string) (string, error) {
	l.init()
	if l.initErr != nil {
		return "", fmt.Errorf("summarizer init: %w", l.initErr)
	}
	return l.inner.Summarize(ctx, text)
}

// Provider reports the configured provider name for health reporting.
func (l *Lazy) Provider() string { return l.cfg.Provider }

// Model reports the configured model for health reporting.
func (l *Lazy) Model() string { return l.cfg.Model }

// Available reports whether summarization calls can reach a real provider.
// It forces initialization: health probes are the cheapest place to pay
// the one-time construction cost.
func (l *Lazy) Available() bool {
	l.init()
	return l.initErr == nil && l.cfg.Provider != ProviderNone
}
