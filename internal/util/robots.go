// Package util holds small HTTP helpers shared by the providers and
// the ingestion fetcher.
package util

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsPolicy answers whether a URL may be fetched under the site's
// robots.txt. Parsed files are cached per host for the lifetime of
// the policy.
type RobotsPolicy struct {
	mu         sync.RWMutex
	byHost     map[string]*robotstxt.RobotsData
	httpClient *http.Client
	userAgent  string
}

// NewRobotsPolicy creates a policy checking against the given agent
// name.
func NewRobotsPolicy(userAgent string, timeout time.Duration) *RobotsPolicy {
	return &RobotsPolicy{
		byHost:     make(map[string]*robotstxt.RobotsData),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Check reports whether rawURL may be fetched, plus any crawl delay
// the site requests. An unreachable robots.txt allows the fetch.
func (p *RobotsPolicy) Check(ctx context.Context, rawURL string) (allowed bool, delay time.Duration, err error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, 0, fmt.Errorf("parse URL: %w", err)
	}

	data, err := p.dataFor(ctx, parsed)
	if err != nil {
		return true, 0, nil
	}

	allowed = data.TestAgent(parsed.Path, p.userAgent)
	if group := data.FindGroup(p.userAgent); group != nil {
		delay = group.CrawlDelay
	}
	return allowed, delay, nil
}

func (p *RobotsPolicy) dataFor(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	p.mu.RLock()
	data, ok := p.byHost[u.Host]
	p.mu.RUnlock()
	if ok {
		return data, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	p.mu.Lock()
	p.byHost[u.Host] = data
	p.mu.Unlock()
	return data, nil
}
