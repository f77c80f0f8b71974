package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/veritaslabs/veritas/internal/model"
	"github.com/veritaslabs/veritas/internal/util"
	"github.com/veritaslabs/veritas/internal/worker"
)

// ErrDisallowed marks URLs the site's robots.txt forbids fetching.
var ErrDisallowed = fmt.Errorf("disallowed by robots.txt")

// Page is a fetched HTML page.
type Page struct {
	URL         string
	FinalURL    string
	HTML        string
	ContentType string
}

// Fetcher retrieves pages politely: robots.txt is honored, requests
// are rate-limited per host, and bodies are size-capped.
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsPolicy
	limiter    *worker.HostLimiter
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a fetcher from the HTTP configuration.
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsPolicy(cfg.UserAgent, cfg.Timeout),
		limiter:   worker.NewHostLimiter(cfg.RequestsPerSecond, cfg.Burst),
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// Fetch retrieves one page. It blocks on the host's rate budget plus
// any robots.txt crawl delay before issuing the request.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	allowed, delay, err := f.robots.Check(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check %s: %w", rawURL, err)
	}
	if !allowed {
		return nil, fmt.Errorf("%s: %w", rawURL, ErrDisallowed)
	}

	if err := f.limiter.WaitDelay(ctx, rawURL, delay); err != nil {
		return nil, fmt.Errorf("rate limit %s: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "html") && !strings.Contains(contentType, "text") {
		return nil, fmt.Errorf("fetch %s: unsupported content type %s", rawURL, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body %s: %w", rawURL, err)
	}

	return &Page{
		URL:         rawURL,
		FinalURL:    resp.Request.URL.String(),
		HTML:        string(body),
		ContentType: contentType,
	}, nil
}
