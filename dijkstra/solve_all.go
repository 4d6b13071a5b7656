package dijkstra

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/posegraph/nodestore"
	"github.com/katalvlaran/posegraph/pose"
	"github.com/katalvlaran/posegraph/posegraph"
)

// SolveAll runs one independent solve per source concurrently over the same
// read-only graph and returns the solvers keyed by source. A nil weight
// selects P.Cost(). At most Options.Concurrency solves run at once.
//
// The first failing source cancels scheduling of the remaining ones and its
// error is returned. Cancelling ctx has the same effect; solves already
// running are never interrupted. The caller must not mutate g until SolveAll
// returns.
func SolveAll[P pose.Payload, S nodestore.Backend[P, S]](
	ctx context.Context,
	g *posegraph.Graph[P, S],
	sources []NodeID,
	weight WeightFunc[P],
	opts ...Option,
) (map[NodeID]*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := buildOptions(opts)

	results := make([]*Solver, len(sources))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Concurrency)

	for i, src := range sources {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			s, err := NewWithWeight(g, src, weight, opts...)
			if err != nil {
				return fmt.Errorf("SolveAll: %w", err)
			}
			results[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[NodeID]*Solver, len(sources))
	for i, src := range sources {
		out[src] = results[i]
	}
	return out, nil
}
