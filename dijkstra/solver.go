package dijkstra

import (
	"maps"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Solver holds the outcome of one single-source run. It is immutable once
// returned and safe for concurrent reads.
type Solver struct {
	source  NodeID
	dist    map[NodeID]float64 // every graph node; +Inf if no path
	prev    map[NodeID]NodeID  // reached nodes except the source
	settled *roaring64.Bitmap  // nodes whose distance was finalised
}

// Source returns the node the solve started from.
func (s *Solver) Source() NodeID { return s.source }

// Distance returns the shortest distance to id. The boolean is false when id
// is not a node of the graph (NotFound); unreached nodes return Unreached, true.
func (s *Solver) Distance(id NodeID) (float64, bool) {
	d, ok := s.dist[id]
	return d, ok
}

// Reached reports whether some path from the source reaches id.
func (s *Solver) Reached(id NodeID) bool {
	d, ok := s.dist[id]
	return ok && !math.IsInf(d, 1)
}

// Predecessor returns the node preceding id on its shortest path.
// The source and unreached nodes have no predecessor.
func (s *Solver) Predecessor(id NodeID) (NodeID, bool) {
	p, ok := s.prev[id]
	return p, ok
}

// PathTo returns the node sequence from the source to id, both included.
// The result is empty when id is unknown or unreached.
func (s *Solver) PathTo(id NodeID) []NodeID {
	if !s.Reached(id) {
		return nil
	}
	path := []NodeID{id}
	for cur := id; cur != s.source; {
		p, ok := s.prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}

// Distances returns a copy of the full distance map.
func (s *Solver) Distances() map[NodeID]float64 {
	return maps.Clone(s.dist)
}

// Predecessors returns a copy of the predecessor map.
func (s *Solver) Predecessors() map[NodeID]NodeID {
	return maps.Clone(s.prev)
}

// ReachedSet returns a copy of the set of settled node ids.
func (s *Solver) ReachedSet() *roaring64.Bitmap {
	return s.settled.Clone()
}

// ReachedCount returns the number of settled nodes, the source included.
func (s *Solver) ReachedCount() int {
	return int(s.settled.GetCardinality())
}

// Tree returns the shortest-path tree as parent → children, children ascending.
// Leaves do not appear as keys.
func (s *Solver) Tree() map[NodeID][]NodeID {
	tree := make(map[NodeID][]NodeID)
	for child, parent := range s.prev {
		tree[parent] = append(tree[parent], child)
	}
	for _, children := range tree {
		slices.Sort(children)
	}
	return tree
}
