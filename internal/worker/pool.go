// Package worker provides the bounded concurrency primitives used by
// the ingestion pipeline: a parallel map over a fixed input set, and
// per-host rate limiting for outbound fetches.
package worker

import (
	"context"
	"sync"
)

// Map runs fn over inputs using at most workers goroutines and returns
// the outputs in input order. Cancellation is cooperative: fn receives
// ctx and is expected to return early when it is done; Map itself
// always returns one output per input.
func Map[In, Out any](ctx context.Context, workers int, inputs []In, fn func(context.Context, In) Out) []Out {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	outputs := make([]Out, len(inputs))
	if len(inputs) == 0 {
		return outputs
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outputs[i] = fn(ctx, inputs[i])
			}
		}()
	}

	for i := range inputs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			// Unassigned inputs keep their zero output.
			close(jobs)
			wg.Wait()
			return outputs
		}
	}
	close(jobs)
	wg.Wait()

	return outputs
}
