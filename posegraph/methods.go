package posegraph

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// EdgeCount returns the number of edges, parallel edges included.
func (g *Graph[P, S]) EdgeCount() int { return len(g.edges) }

// NodeCount returns the number of nodes in the store.
func (g *Graph[P, S]) NodeCount() int { return g.nodes.Len() }

// Sorted reports whether iteration currently yields every edge in (from, to) order.
func (g *Graph[P, S]) Sorted() bool { return g.sorted }

// AllowsSelfLoops reports the graph's self-loop policy.
func (g *Graph[P, S]) AllowsSelfLoops() bool { return g.allowLoops }

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph[P, S]) HasEdge(from, to NodeID) bool {
	if g.sorted {
		i := g.lowerBound(from, to)
		return i < len(g.edges) && g.edges[i].From == from && g.edges[i].To == to
	}
	for i := range g.edges {
		if g.edges[i].From == from && g.edges[i].To == to {
			return true
		}
	}

	return false
}

// EdgesBetween returns copies of all edges from→to in iteration order.
func (g *Graph[P, S]) EdgesBetween(from, to NodeID) []Edge[P] {
	var out []Edge[P]
	if g.sorted {
		for i := g.lowerBound(from, to); i < len(g.edges); i++ {
			if g.edges[i].From != from || g.edges[i].To != to {
				break
			}
			out = append(out, g.edges[i].Edge)
		}
		return out
	}
	for i := range g.edges {
		if g.edges[i].From == from && g.edges[i].To == to {
			out = append(out, g.edges[i].Edge)
		}
	}

	return out
}

// OutDegree returns the number of edges leaving id.
func (g *Graph[P, S]) OutDegree(id NodeID) int {
	n := 0
	for i := range g.edges {
		if g.edges[i].From == id {
			n++
		}
	}
	return n
}

// Edges yields every edge in the current iteration order. The sequence is
// lazy and restartable; yielded values are copies.
func (g *Graph[P, S]) Edges() iter.Seq[Edge[P]] {
	return func(yield func(Edge[P]) bool) {
		for i := range g.edges {
			if !yield(g.edges[i].Edge) {
				return
			}
		}
	}
}

// HasNode reports whether id is present in the node store.
func (g *Graph[P, S]) HasNode(id NodeID) bool {
	_, ok := g.nodes.Find(id)
	return ok
}

// Node returns a copy of the payload stored for id.
func (g *Graph[P, S]) Node(id NodeID) (P, bool) {
	p, ok := g.nodes.Find(id)
	if !ok {
		var zero P
		return zero, false
	}
	return *p, true
}

// SetNode overwrites the payload of an existing node.
// Returns ErrNodeNotFound if id has not been materialised.
func (g *Graph[P, S]) SetNode(id NodeID, payload P) error {
	p, ok := g.nodes.Find(id)
	if !ok {
		return fmt.Errorf("SetNode(%d): %w", id, ErrNodeNotFound)
	}
	*p = payload

	return nil
}

// Nodes yields (id, payload) pairs in ascending id order.
func (g *Graph[P, S]) Nodes() iter.Seq2[NodeID, P] {
	return g.nodes.All()
}

// Clone returns a deep copy: node store, edges, order state and policy.
func (g *Graph[P, S]) Clone() *Graph[P, S] {
	return &Graph[P, S]{
		nodes:      g.nodes.Clone(),
		edges:      slices.Clone(g.edges),
		sorted:     g.sorted,
		allowLoops: g.allowLoops,
	}
}

// Clear removes all nodes and edges; the self-loop policy and the edge
// capacity are kept. Released slots are zeroed so old payloads can be
// collected.
func (g *Graph[P, S]) Clear() {
	g.nodes.Reset()
	clear(g.edges)
	g.edges = g.edges[:0]
	g.sorted = true
}

// lowerBound returns the first index whose key is >= (from, to).
// Valid only while g.sorted.
func (g *Graph[P, S]) lowerBound(from, to NodeID) int {
	return sort.Search(len(g.edges), func(i int) bool {
		return compareKey(g.edges[i].From, g.edges[i].To, from, to) >= 0
	})
}
