package fetcher

import (
	"fmt"
	"time"

	"clausescan/pkg/config"
)

// Config holds the settings for fetching terms pages.
type Config struct {
	// Timeout limits a single HTTP request including body read.
	Timeout time.Duration

	// MaxBodySize is the response body cap in bytes, enforced while
	// reading rather than trusting Content-Length.
	MaxBodySize int64

	// MaxRedirects bounds the redirect chain. Every redirect target is
	// re-validated against the private-address policy.
	MaxRedirects int

	// DenyPrivateIPs blocks URLs resolving to private, loopback, or
	// link-local addresses. Disable only in tests that fetch from
	// httptest servers on loopback.
	DenyPrivateIPs bool
}

// Validate checks the configuration bounds.
func (c *Config) Validate() error {
	if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	minBody, maxBody := int64(1024), int64(100*1024*1024)
	if c.MaxBodySize < minBody || c.MaxBodySize > maxBody {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBody, maxBody, c.MaxBodySize)
	}
	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}
	return nil
}

// LoadConfig loads fetcher configuration from the environment.
//
// Environment variables:
//   - FETCH_TIMEOUT: per-request timeout (default: 15s)
//   - FETCH_MAX_BODY_SIZE: body cap in bytes (default: 10485760)
//   - FETCH_MAX_REDIRECTS: redirect limit (default: 5)
//   - FETCH_DENY_PRIVATE_IPS: SSRF guard toggle (default: true)
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Timeout:        config.GetEnvDuration("FETCH_TIMEOUT", 15*time.Second),
		MaxBodySize:    int64(config.GetEnvInt("FETCH_MAX_BODY_SIZE", 10*1024*1024)),
		MaxRedirects:   config.GetEnvInt("FETCH_MAX_REDIRECTS", 5),
		DenyPrivateIPs: config.GetEnvBool("FETCH_DENY_PRIVATE_IPS", true),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fetcher configuration: %w", err)
	}
	return cfg, nil
}
