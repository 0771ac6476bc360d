package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/sony/gobreaker"

	"clausescan/internal/resilience/circuitbreaker"
	"clausescan/internal/resilience/retry"
)

const userAgent = "ClauseScanBot/1.0"

// PageFetcher downloads a terms page and extracts its readable text.
// Extraction tries the readability algorithm first; pages that defeat it
// (legal documents are often table soups) fall back to joining every <p>
// element's text. Safe for concurrent use.
type PageFetcher struct {
	client *http.Client
	cb     *circuitbreaker.CircuitBreaker
	retry  retry.Config
	cfg    *Config
	logger *slog.Logger
}

// NewPageFetcher builds a fetcher with TLS 1.2+, redirect validation, and
// a circuit breaker shared across all outbound page fetches.
func NewPageFetcher(cfg *Config, logger *slog.Logger) *PageFetcher {
	f := &PageFetcher{
		cb:     circuitbreaker.New(circuitbreaker.ContentFetchConfig()),
		retry:  retry.ContentFetchConfig(),
		cfg:    cfg,
		logger: logger,
	}
	f.client = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			return validateURL(req.URL.String(), cfg.DenyPrivateIPs)
		},
	}
	return f
}

// FetchText fetches the page at rawURL and returns its extracted plain
// text. The URL is validated before any request leaves the process.
func (f *PageFetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	if err := validateURL(rawURL, f.cfg.DenyPrivateIPs); err != nil {
		return "", err
	}

	var text string
	err := retry.WithBackoff(ctx, f.retry, func() error {
		result, cbErr := f.cb.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, rawURL)
		})
		if cbErr != nil {
			if errors.Is(cbErr, gobreaker.ErrOpenState) {
				return fmt.Errorf("page fetch circuit breaker open: %w", cbErr)
			}
			return cbErr
		}
		text = result.(string)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return text, nil
}

func (f *PageFetcher) doFetch(ctx context.Context, rawURL string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Err != nil {
			return "", urlErr.Err
		}
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &retry.HTTPError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if int64(len(body)) > f.cfg.MaxBodySize {
		return "", fmt.Errorf("%w: body exceeds %d bytes", ErrBodyTooLarge, f.cfg.MaxBodySize)
	}

	finalURL, _ := url.Parse(rawURL)
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}

	return f.extractText(rawURL, body, finalURL)
}

// extractText runs readability extraction with a paragraph-join fallback.
func (f *PageFetcher) extractText(rawURL string, body []byte, pageURL *url.URL) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	f.logger.Debug("readability extraction failed, falling back to paragraph join",
		slog.String("url", rawURL))

	doc, docErr := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if docErr != nil {
		return "", fmt.Errorf("%w: parse html: %v", ErrNoReadableText, docErr)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			paragraphs = append(paragraphs, t)
		}
	})
	if len(paragraphs) == 0 {
		return "", ErrNoReadableText
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
