// Package dijkstra defines core types and configuration options
// for the single-source shortest-path solver over pose graphs.
//
// Options:
//
//	– MaxDistance:      cap on distances to explore; nodes beyond this stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Concurrency:      worker bound used by SolveAll.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrUnknownSource if the source node does not exist in the graph.
package dijkstra

import (
	"errors"
	"math"
	"runtime"

	"github.com/katalvlaran/posegraph/nodestore"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil *posegraph.Graph was passed to the solver.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownSource indicates that the source node is not present in the graph.
	ErrUnknownSource = errors.New("dijkstra: unknown source node")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative value or NaN,
	// which would treat every edge (including zero-cost edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadConcurrency indicates a worker bound below one.
	ErrBadConcurrency = errors.New("dijkstra: Concurrency must be at least 1")
)

// Unreached is the distance reported for nodes that no path reaches. It is
// +Inf and must be treated as read-only; the solver itself tests with
// math.IsInf and never reads this variable.
var Unreached = math.Inf(1)

// NodeID identifies a node within a graph.
type NodeID = nodestore.NodeID

// WeightFunc maps an edge payload to a non-negative cost.
// Negative results violate the solver's precondition and are not checked.
type WeightFunc[P any] func(P) float64

// Options configures the behavior of the solver.
//
// MaxDistance      – nodes whose shortest distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// Concurrency      – maximum number of solves SolveAll runs at once.
//
//	Must be ≥ 1. Default is runtime.GOMAXPROCS(0).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	Concurrency      int
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics on negative or NaN values.
func WithMaxDistance(limit float64) Option {
	if limit < 0 || math.IsNaN(limit) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Panics on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithConcurrency bounds the number of concurrent solves in SolveAll.
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(ErrBadConcurrency.Error())
	}
	return func(o *Options) {
		o.Concurrency = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - MaxDistance:      +Inf (explore everything reachable).
//   - InfEdgeThreshold: +Inf (no edge is impassable).
//   - Concurrency:      runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Concurrency:      runtime.GOMAXPROCS(0),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
