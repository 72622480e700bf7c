// Package fanout runs one function over many items with a bounded number of
// goroutines. The health registry probes its checkers with it and upload
// groups put their objects through it.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item on at most maxWorkers goroutines and returns
// the results in input order. Items still queued when ctx is done are not
// passed to fn; their result carries ctx.Err(). A call already in progress
// finishes on its own terms.
//
// An empty input yields an empty, non-nil slice. maxWorkers below one is
// treated as one.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(max(maxWorkers, 1), len(items))
	next := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		})
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}
