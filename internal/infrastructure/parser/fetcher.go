package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// PageFetcher retrieves and parses a single page.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*Page, error)
}

// HTTPFetcher performs one best-effort GET per page.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

var _ PageFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher wires an HTTP client; a nil client gets a 30s timeout.
// An empty userAgent sends no User-Agent override.
func NewHTTPFetcher(client *http.Client, userAgent string, logger *slog.Logger) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{client: client, userAgent: userAgent, logger: logger}
}

// Fetch downloads pageURL and parses the ASCII-filtered body.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("build request: %w", err)}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	f.debug("fetch page", "url", pageURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{URL: pageURL, Status: resp.Status}
	}

	page, err := NewPage(pageURL, resp.Body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	return page, nil
}

func (f *HTTPFetcher) debug(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
