package pipes

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// CountInteriorParallel scans the loop's rows on up to workers goroutines.
// Rows only read the loop, so no locking is needed beyond the running total.
// A workers value below one means no limit.
func CountInteriorParallel(ctx context.Context, l *Loop, workers int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	var total atomic.Int64
	for y := l.min.Y; y <= l.max.Y; y++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			total.Add(int64(l.scanRow(y, nil)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(total.Load()), nil
}
