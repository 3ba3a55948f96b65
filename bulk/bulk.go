// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bulk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers caps concurrent requests when no limit is configured.
const DefaultWorkers = 4

// Run executes fn for every index in [0, n) with at most workers calls
// in flight. Every index is attempted even after a failure — partial
// success must stay visible to the caller — and the first error
// observed is returned. The context is passed through unchanged; Run
// itself never cancels outstanding work.
func Run(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) error) error {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return fn(ctx, i)
		})
	}
	return g.Wait()
}
