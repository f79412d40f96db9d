package slicecomp

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Performance threshold: below this size the goroutine scheduling overhead
// outweighs the parallelism. 256 is an empirical value.
const parallelThreshold = 256

// TryParallelMap is a convenience wrapper for TryParallelMapWithContext, using context.Background().
func TryParallelMap[T any, R any](collection []T, transform func(T) (R, error)) ([]R, error) {
	return TryParallelMapWithContext(context.Background(), collection, transform)
}

// TryParallelMapWithContext evaluates [TryMap] concurrently, preserving
// output order. Suitable for CPU-intensive or IO-intensive transforms over
// large collections. The first error (or context cancellation) stops all
// workers and is returned with no partial result.
func TryParallelMapWithContext[T any, R any](ctx context.Context, collection []T, transform func(T) (R, error)) ([]R, error) {
	// Fast path for already canceled context
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(collection) == 0 {
		return []R{}, nil
	}

	if len(collection) < parallelThreshold {
		// Serial execution with context support
		res := make([]R, len(collection))
		for i, v := range collection {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			var err error
			res[i], err = transform(v)
			if err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	res := make([]R, len(collection))

	// One contiguous chunk per worker; each worker writes disjoint indexes
	// of res, so no synchronization is needed beyond the group itself.
	numWorkers := runtime.GOMAXPROCS(0)
	chunkSize := (len(collection) + numWorkers - 1) / numWorkers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(collection); start += chunkSize {
		end := min(start+chunkSize, len(collection))
		g.Go(func() error {
			for k := start; k < end; k++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				val, err := transform(collection[k])
				if err != nil {
					return err
				}
				res[k] = val
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
