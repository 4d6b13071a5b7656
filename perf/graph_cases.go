package perf

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/posegraph/dijkstra"
	"github.com/katalvlaran/posegraph/generator"
	"github.com/katalvlaran/posegraph/nodestore"
	"github.com/katalvlaran/posegraph/pose"
	"github.com/katalvlaran/posegraph/posegraph"
)

// populateCase times building reps fresh map-backed graphs of arg chain edges
// each. The mean is per graph.
func populateCase[P pose.Payload](unordered bool) Func {
	var opts []generator.Option
	if unordered {
		opts = append(opts, generator.WithUnordered())
	}
	return func(ctx context.Context, nEdges, reps int) (time.Duration, error) {
		graphs := make([]*posegraph.Graph[P, *nodestore.MapStore[P]], reps)
		for i := range graphs {
			graphs[i] = posegraph.NewMapBacked[P](posegraph.WithEdgeCapacity(nEdges))
		}
		var zero P

		start := time.Now()
		for _, g := range graphs {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			if err := generator.Chain[P](g, nEdges, zero, opts...); err != nil {
				return 0, err
			}
		}
		return time.Since(start) / time.Duration(reps), nil
	}
}

// dijkstraCase times reps solves from node 0 over one random graph of arg
// source nodes. Graph generation is not timed.
func dijkstraCase[S nodestore.Backend[pose.Pose3D, S]](
	newGraph func() *posegraph.Graph[pose.Pose3D, S],
	seed int64,
	density float64,
) Func {
	return func(ctx context.Context, nNodes, reps int) (time.Duration, error) {
		g := newGraph()
		cfg := generator.Config{NodeCount: nNodes, EdgeDensity: density}
		if _, err := generator.Populate[pose.Pose3D](g, cfg, nil, generator.WithSeed(seed)); err != nil {
			return 0, err
		}

		var total time.Duration
		for range reps {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			start := time.Now()
			_, err := dijkstra.New(g, 0)
			total += time.Since(start)
			if err != nil {
				return 0, err
			}
		}
		return total / time.Duration(reps), nil
	}
}

type payloadCase struct {
	label     string
	ordered   Func
	unordered Func
}

// RegisterGraphCases registers the standard graph cases into reg. seed and
// density drive the random graphs of the solver cases; a zero density means
// generator.DefaultEdgeDensity.
func RegisterGraphCases(reg *Registry, seed int64, density float64) error {
	if density == 0 {
		density = generator.DefaultEdgeDensity
	}
	if err := (generator.Config{NodeCount: 1, EdgeDensity: density}).Validate(); err != nil {
		return fmt.Errorf("RegisterGraphCases: %w", err)
	}

	payloads := []payloadCase{
		{"2d", populateCase[pose.Pose2D](false), populateCase[pose.Pose2D](true)},
		{"2d pdf", populateCase[pose.Pose2DInf](false), populateCase[pose.Pose2DInf](true)},
		{"3d", populateCase[pose.Pose3D](false), populateCase[pose.Pose3D](true)},
		{"3d pdf", populateCase[pose.Pose3DInf](false), populateCase[pose.Pose3DInf](true)},
	}
	sizes := []struct {
		label string
		arg   int
		reps  int
	}{
		{"1e3", 1_000, 100},
		{"1e4", 10_000, 25},
	}

	var cases []Case
	for _, p := range payloads {
		for _, sz := range sizes {
			cases = append(cases,
				Case{
					Name: fmt.Sprintf("graph(%s): insertEdge x %s", p.label, sz.label),
					Run:  p.ordered, Arg: sz.arg, Reps: sz.reps,
				},
				Case{
					Name: fmt.Sprintf("graph(%s): insertEdgeAtEnd x %s", p.label, sz.label),
					Run:  p.unordered, Arg: sz.arg, Reps: sz.reps,
				},
			)
		}
	}

	solvers := []struct {
		label string
		run   Func
	}{
		{"map", dijkstraCase(func() *posegraph.Graph[pose.Pose3D, *nodestore.MapStore[pose.Pose3D]] {
			return posegraph.NewMapBacked[pose.Pose3D]()
		}, seed, density)},
		{"vec", dijkstraCase(func() *posegraph.Graph[pose.Pose3D, *nodestore.DenseStore[pose.Pose3D]] {
			return posegraph.NewDenseBacked[pose.Pose3D](0)
		}, seed, density)},
	}
	solveSizes := []struct {
		label string
		arg   int
		reps  int
	}{
		{"1e2", 100, 50},
		{"1e3", 1_000, 50},
		{"1e4", 10_000, 5},
	}
	for _, s := range solvers {
		for _, sz := range solveSizes {
			cases = append(cases, Case{
				Name: fmt.Sprintf("graph(3d,%s): dijkstra %s nodes", s.label, sz.label),
				Run:  s.run, Arg: sz.arg, Reps: sz.reps,
			})
		}
	}

	for _, c := range cases {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("RegisterGraphCases: %w", err)
		}
	}
	return nil
}
