package posegraph

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/posegraph/nodestore"
	"github.com/katalvlaran/posegraph/pose"
)

// edgeSlot is one element of the edge collection. ordered records whether the
// edge came through InsertEdge, so sorted placement can ignore appended edges
// once global order is broken.
type edgeSlot[P any] struct {
	Edge[P]
	ordered bool
}

// Graph is a directed pose multigraph backed by the node store S.
type Graph[P pose.Payload, S nodestore.Backend[P, S]] struct {
	nodes S
	edges []edgeSlot[P]

	// sorted is true while the whole edge collection is in (from, to) order.
	sorted bool

	allowLoops bool
}

// New creates an empty graph that takes ownership of store. Nodes already in
// the store are kept, which is the only way to start from isolated nodes.
func New[P pose.Payload, S nodestore.Backend[P, S]](store S, opts ...Option) *Graph[P, S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[P, S]{
		nodes:      store,
		edges:      make([]edgeSlot[P], 0, cfg.EdgeCapacity),
		sorted:     true,
		allowLoops: cfg.AllowSelfLoops,
	}
}

// NewMapBacked creates an empty graph over a nodestore.MapStore.
func NewMapBacked[P pose.Payload](opts ...Option) *Graph[P, *nodestore.MapStore[P]] {
	return New[P](nodestore.NewMapStore[P](), opts...)
}

// NewDenseBacked creates an empty graph over a nodestore.DenseStore that
// accepts ids in [0, limit). A non-positive limit selects the store default.
func NewDenseBacked[P pose.Payload](limit int, opts ...Option) *Graph[P, *nodestore.DenseStore[P]] {
	return New[P](nodestore.NewDenseStore[P](limit), opts...)
}

// InsertEdge adds the edge from→to at its sorted position. Endpoints are
// materialised with the identity payload if absent. Parallel edges are kept;
// an edge equal in key to existing ones goes after them.
//
// Errors: ErrInvalidEdge for a rejected self-loop, or the store's admission
// error (e.g. nodestore.ErrIdentifierOutOfPolicy). On error the graph is unchanged.
func (g *Graph[P, S]) InsertEdge(from, to NodeID, payload P) error {
	if err := g.prepare(from, to); err != nil {
		return fmt.Errorf("InsertEdge(%d→%d): %w", from, to, err)
	}
	pos := g.orderedPosition(from, to)
	g.edges = slices.Insert(g.edges, pos, edgeSlot[P]{
		Edge:    Edge[P]{From: from, To: to, Payload: payload},
		ordered: true,
	})

	return nil
}

// InsertEdgeUnordered appends the edge from→to at the end of the collection
// without maintaining sorted order. Endpoint handling and errors match InsertEdge.
func (g *Graph[P, S]) InsertEdgeUnordered(from, to NodeID, payload P) error {
	if err := g.prepare(from, to); err != nil {
		return fmt.Errorf("InsertEdgeUnordered(%d→%d): %w", from, to, err)
	}
	if n := len(g.edges); g.sorted && n > 0 {
		last := g.edges[n-1]
		if compareKey(from, to, last.From, last.To) < 0 {
			g.sorted = false
		}
	}
	g.edges = append(g.edges, edgeSlot[P]{Edge: Edge[P]{From: from, To: to, Payload: payload}})

	return nil
}

// prepare validates the edge and materialises both endpoints. Validation runs
// to completion before any mutation.
func (g *Graph[P, S]) prepare(from, to NodeID) error {
	if from == to && !g.allowLoops {
		return fmt.Errorf("self-loop on %d: %w", from, ErrInvalidEdge)
	}
	if err := g.nodes.Admit(from); err != nil {
		return err
	}
	if err := g.nodes.Admit(to); err != nil {
		return err
	}

	var identity P
	if _, err := g.nodes.Upsert(from, identity); err != nil {
		return err
	}
	if _, err := g.nodes.Upsert(to, identity); err != nil {
		return err
	}

	return nil
}

// orderedPosition returns the index at which an ordered insert of (from, to)
// belongs: after every ordered edge with key <= (from, to).
func (g *Graph[P, S]) orderedPosition(from, to NodeID) int {
	if g.sorted {
		return sort.Search(len(g.edges), func(i int) bool {
			return compareKey(g.edges[i].From, g.edges[i].To, from, to) > 0
		})
	}

	// Global order is broken: place relative to the ordered subsequence only.
	lastLE, firstOrdered := -1, -1
	for i := range g.edges {
		e := &g.edges[i]
		if !e.ordered {
			continue
		}
		if firstOrdered < 0 {
			firstOrdered = i
		}
		if compareKey(e.From, e.To, from, to) <= 0 {
			lastLE = i
		}
	}
	switch {
	case lastLE >= 0:
		return lastLE + 1
	case firstOrdered >= 0:
		return firstOrdered
	default:
		return len(g.edges)
	}
}
