package summarizer

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SUMMARIZER_PROVIDER", "")
	t.Setenv("SUMMARIZER_MODEL", "")
	t.Setenv("SUMMARIZER_MIN_WORDS", "")
	t.Setenv("SUMMARIZER_MAX_WORDS", "")
	t.Setenv("SUMMARIZER_TIMEOUT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderNone {
		t.Errorf("provider = %q, expected none", cfg.Provider)
	}
	if cfg.MinWords != 30 || cfg.MaxWords != 150 {
		t.Errorf("word bounds = [%d, %d], expected [30, 150]", cfg.MinWords, cfg.MaxWords)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, expected 60s", cfg.Timeout)
	}
}

func TestLoadConfig_ProviderDefaults(t *testing.T) {
	t.Setenv("SUMMARIZER_MODEL", "")

	t.Setenv("SUMMARIZER_PROVIDER", "openai")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model == "" {
		t.Error("openai provider must get a default model")
	}

	t.Setenv("SUMMARIZER_PROVIDER", "claude")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model == "" {
		t.Error("claude provider must get a default model")
	}
}

func TestLoadConfig_InvalidProvider(t *testing.T) {
	t.Setenv("SUMMARIZER_PROVIDER", "bard")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Provider: ProviderOpenAI,
			Model:    "gpt-4o-mini",
			MinWords: 30,
			MaxWords: 150,
			Timeout:  time.Minute,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}, wantErr: false},
		{name: "none provider without model", mutate: func(c *Config) { c.Provider = ProviderNone; c.Model = "" }, wantErr: false},
		{name: "api provider without model", mutate: func(c *Config) { c.Model = "" }, wantErr: true},
		{name: "min words too small", mutate: func(c *Config) { c.MinWords = 5 }, wantErr: true},
		{name: "max words too large", mutate: func(c *Config) { c.MaxWords = 5000 }, wantErr: true},
		{name: "min above max", mutate: func(c *Config) { c.MinWords = 200 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
