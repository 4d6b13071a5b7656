package posegraph

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/posegraph/nodestore"
)

// Sentinel errors for pose-graph operations.
var (
	// ErrInvalidEdge indicates a self-loop was rejected under the default policy.
	ErrInvalidEdge = errors.New("posegraph: invalid edge")

	// ErrNodeNotFound indicates an operation referenced a node that does not exist.
	ErrNodeNotFound = errors.New("posegraph: node not found")
)

// NodeID identifies a node within a graph.
type NodeID = nodestore.NodeID

// Edge is a directed relative transform from From to To.
type Edge[P any] struct {
	From    NodeID
	To      NodeID
	Payload P
}

// compareKey orders edges lexicographically by (From, To).
func compareKey(af, at, bf, bt NodeID) int {
	if c := cmp.Compare(af, bf); c != 0 {
		return c
	}
	return cmp.Compare(at, bt)
}

// Options configures a Graph at construction time.
//
// AllowSelfLoops – accept edges with From == To (default false).
// EdgeCapacity   – initial capacity reserved for the edge collection.
type Options struct {
	AllowSelfLoops bool
	EdgeCapacity   int
}

// Option is a functional option for New.
type Option func(*Options)

// WithSelfLoops permits edges whose endpoints coincide.
func WithSelfLoops() Option {
	return func(o *Options) {
		o.AllowSelfLoops = true
	}
}

// WithEdgeCapacity preallocates room for n edges.
// Panics if n is negative.
func WithEdgeCapacity(n int) Option {
	if n < 0 {
		panic("posegraph: WithEdgeCapacity(n<0)")
	}
	return func(o *Options) {
		o.EdgeCapacity = n
	}
}

// DefaultOptions returns the strict defaults: self-loops rejected, no preallocation.
func DefaultOptions() Options {
	return Options{}
}
