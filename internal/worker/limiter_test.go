package worker

import (
	"context"
	"testing"
	"time"
)

func TestHostLimiterIndependentHosts(t *testing.T) {
	// Burst of 1 and a very slow refill: the second request to the
	// same host would block, a request to a different host must not.
	l := NewHostLimiter(0.001, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "https://a.example.com/x"); err != nil {
		t.Fatalf("first request to host a: %v", err)
	}
	if err := l.Wait(ctx, "https://b.example.com/y"); err != nil {
		t.Fatalf("first request to host b should not share a's budget: %v", err)
	}

	// Same host again: budget exhausted, Wait must respect ctx.
	if err := l.Wait(ctx, "https://a.example.com/z"); err == nil {
		t.Error("expected context deadline on exhausted host budget")
	}
}

func TestHostLimiterBadURL(t *testing.T) {
	l := NewHostLimiter(10, 5)
	if err := l.Wait(context.Background(), "://not a url"); err == nil {
		t.Error("expected error for unparseable URL")
	}
}

func TestWaitDelay(t *testing.T) {
	l := NewHostLimiter(100, 10)

	start := time.Now()
	if err := l.WaitDelay(context.Background(), "https://example.com/", 30*time.Millisecond); err != nil {
		t.Fatalf("WaitDelay: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("WaitDelay returned after %v, want at least 30ms", elapsed)
	}
}

func TestWaitDelayCancelled(t *testing.T) {
	l := NewHostLimiter(100, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.WaitDelay(ctx, "https://example.com/", time.Second); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestNewHostLimiterBurstFloor(t *testing.T) {
	l := NewHostLimiter(10, -1)
	if l.burst != 1 {
		t.Errorf("burst = %d, want floor of 1", l.burst)
	}
}
