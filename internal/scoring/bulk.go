package scoring

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultBulkParallelism bounds concurrent scoring goroutines when the caller
// does not specify a limit.
const DefaultBulkParallelism = 8

// BulkMatch scores one profile against many jobs concurrently. Calls share no
// mutable state, so no coordination is needed beyond collecting results;
// results are returned in input order. The context cancels remaining work.
func (s *Scorer) BulkMatch(ctx context.Context, profile *types.Profile, jobs []*types.Job, parallelism int) ([]*types.MatchResult, error) {
	if parallelism <= 0 {
		parallelism = DefaultBulkParallelism
	}

	results := make([]*types.MatchResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.CalculateMatchScore(profile, job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
