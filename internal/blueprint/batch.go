package blueprint

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AnalyzeBatch runs FindRooms and UpdateStats over several blueprints
// concurrently. Each blueprint is touched by exactly one goroutine, so the
// single-owner model of Blueprint is preserved.
func AnalyzeBatch(ctx context.Context, blueprints []*Blueprint, includeCost bool) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, bp := range blueprints {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bp.FindRooms()
			bp.UpdateStats(includeCost)
			return nil
		})
	}

	return g.Wait()
}
