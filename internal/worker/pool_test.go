package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMapPreservesOrder(t *testing.T) {
	inputs := []int{5, 3, 8, 1, 9, 2, 7}

	outputs := Map(context.Background(), 3, inputs, func(_ context.Context, n int) int {
		return n * 10
	})

	if len(outputs) != len(inputs) {
		t.Fatalf("got %d outputs, want %d", len(outputs), len(inputs))
	}
	for i, n := range inputs {
		if outputs[i] != n*10 {
			t.Errorf("outputs[%d] = %d, want %d", i, outputs[i], n*10)
		}
	}
}

func TestMapBoundsConcurrency(t *testing.T) {
	const workers = 3

	var current, peak int64
	var mu sync.Mutex

	inputs := make([]int, 20)
	Map(context.Background(), workers, inputs, func(_ context.Context, _ int) struct{} {
		n := atomic.AddInt64(&current, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt64(&current, -1)
		return struct{}{}
	})

	if peak > workers {
		t.Errorf("peak concurrency %d exceeds %d workers", peak, workers)
	}
}

func TestMapEmptyInput(t *testing.T) {
	outputs := Map(context.Background(), 4, nil, func(_ context.Context, _ int) int {
		t.Error("fn called for empty input")
		return 0
	})
	if len(outputs) != 0 {
		t.Errorf("got %d outputs, want 0", len(outputs))
	}
}

func TestMapZeroWorkers(t *testing.T) {
	outputs := Map(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) int {
		return n + 1
	})
	want := []int{2, 3, 4}
	for i := range want {
		if outputs[i] != want[i] {
			t.Errorf("outputs[%d] = %d, want %d", i, outputs[i], want[i])
		}
	}
}

func TestMapCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var started int64
	inputs := make([]int, 100)
	outputs := Map(ctx, 1, inputs, func(ctx context.Context, _ int) int {
		if atomic.AddInt64(&started, 1) == 1 {
			cancel()
			// Give the dispatcher time to observe cancellation
			// before this worker frees up for the next job.
			time.Sleep(10 * time.Millisecond)
		}
		return 1
	})

	if len(outputs) != len(inputs) {
		t.Fatalf("got %d outputs, want %d", len(outputs), len(inputs))
	}
	if atomic.LoadInt64(&started) == int64(len(inputs)) {
		t.Error("expected cancellation to stop work early")
	}
}
