// Package parallel provides the in-process fan-out primitives that the
// dataset map-reduce operations are built on.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallelize splits the index range [0, items) into one chunk per
// available CPU core and runs fn on each chunk in its own goroutine,
// waiting for all of them to finish.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last chunk picks up the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over [0, items) when
// the item count is at or below threshold, and in parallel otherwise.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ForEachPartition runs fn once per partition index in its own
// goroutine and waits for all of them. The first error cancels the
// shared context and is returned; fn implementations that do blocking
// work should honor ctx.
func ForEachPartition(ctx context.Context, partitions int, fn func(ctx context.Context, p int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for p := 0; p < partitions; p++ {
		p := p
		g.Go(func() error {
			return fn(ctx, p)
		})
	}
	return g.Wait()
}
