package worker

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostLimiter rate-limits outbound requests per host, so fetching many
// links from one site does not hammer it while other hosts proceed
// unthrottled.
type HostLimiter struct {
	mu      sync.Mutex
	perHost map[string]*rate.Limiter
	rateLim rate.Limit
	burst   int
}

// NewHostLimiter creates a limiter applying requestsPerSecond/burst to
// each host independently.
func NewHostLimiter(requestsPerSecond float64, burst int) *HostLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &HostLimiter{
		perHost: make(map[string]*rate.Limiter),
		rateLim: rate.Limit(requestsPerSecond),
		burst:   burst,
	}
}

// Wait blocks until the host of rawURL has request budget, or ctx is
// done.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return l.limiterFor(parsed.Host).Wait(ctx)
}

// WaitDelay is Wait plus an extra pause, used to honor a robots.txt
// crawl delay on top of the configured rate.
func (l *HostLimiter) WaitDelay(ctx context.Context, rawURL string, delay time.Duration) error {
	if err := l.Wait(ctx, rawURL); err != nil {
		return err
	}
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

func (l *HostLimiter) limiterFor(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.perHost[host]
	if !ok {
		lim = rate.NewLimiter(l.rateLim, l.burst)
		l.perHost[host] = lim
	}
	return lim
}
