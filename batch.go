package octree

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// QueryBatch runs one Query per region on up to concurrency goroutines
// (unbounded when concurrency <= 0) and returns the results in region order.
//
// Queries only read the tree, so the batch is safe as long as no writer runs
// until QueryBatch returns. Cancelling ctx stops queries that have not yet
// started and returns the context error.
func (t *Octree) QueryBatch(ctx context.Context, regions []Region, concurrency int) ([][]uint32, error) {
	results := make([][]uint32, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, r := range regions {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = t.Query(r)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	t.logger.LogBatch(ctx, len(regions), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}
