// Package dijkstra implements single-source shortest paths over pose graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - One O(E) pass builds the outgoing-arc index in edge-iteration order.
//   - Each node is settled at most once: V extractions from the heap.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: stale heap entries are skipped when popped.
//   - Relaxation uses strict “<”, so on equal distances the first relaxation
//     in edge-iteration order keeps the predecessor.
//   - Heap ties are broken by push order, which keeps extraction order
//     reproducible for a fixed graph.
//   - Weights are assumed non-negative; this is not checked at runtime.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/posegraph/nodestore"
	"github.com/katalvlaran/posegraph/pose"
	"github.com/katalvlaran/posegraph/posegraph"
)

// New runs Dijkstra from source over g using P.Cost() as the edge weight.
//
// Returns ErrNilGraph for a nil graph and ErrUnknownSource when source is not
// a node of g. The graph must not be mutated while New runs.
func New[P pose.Payload, S nodestore.Backend[P, S]](g *posegraph.Graph[P, S], source NodeID, opts ...Option) (*Solver, error) {
	return NewWithWeight(g, source, nil, opts...)
}

// NewWithWeight runs Dijkstra from source over g using weight to cost edges.
// A nil weight selects P.Cost().
func NewWithWeight[P pose.Payload, S nodestore.Backend[P, S]](g *posegraph.Graph[P, S], source NodeID, weight WeightFunc[P], opts ...Option) (*Solver, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("source %d: %w", source, ErrUnknownSource)
	}
	if weight == nil {
		weight = func(p P) float64 { return p.Cost() }
	}

	// 2) Prepare runner state.
	cfg := buildOptions(opts)
	r := &runner{
		options: cfg,
		arcs:    buildArcs(g, weight),
		dist:    make(map[NodeID]float64, g.NodeCount()),
		prev:    make(map[NodeID]NodeID),
		settled: roaring64.New(),
	}

	// 3) Every node starts unreached; the source is at distance 0.
	for id := range g.Nodes() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{id: source, dist: 0, seq: r.nextSeq()})

	// 4) Main loop.
	r.process()

	return &Solver{
		source:  source,
		dist:    r.dist,
		prev:    r.prev,
		settled: r.settled,
	}, nil
}

// arc is one outgoing edge with its weight already evaluated.
type arc struct {
	to NodeID
	w  float64
}

// buildArcs indexes outgoing arcs per node, preserving edge-iteration order.
func buildArcs[P pose.Payload, S nodestore.Backend[P, S]](g *posegraph.Graph[P, S], weight WeightFunc[P]) map[NodeID][]arc {
	arcs := make(map[NodeID][]arc, g.NodeCount())
	for e := range g.Edges() {
		arcs[e.From] = append(arcs[e.From], arc{to: e.To, w: weight(e.Payload)})
	}
	return arcs
}

// runner holds the mutable state of a single solve.
type runner struct {
	options Options
	arcs    map[NodeID][]arc
	dist    map[NodeID]float64
	prev    map[NodeID]NodeID
	settled *roaring64.Bitmap
	pq      nodePQ
	seq     uint64
}

func (r *runner) nextSeq() uint64 {
	r.seq++
	return r.seq
}

// process pops the closest unsettled node until the heap is empty or the
// closest candidate lies beyond MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := uint64(item.id)

		// Stale entry from lazy decrease-key.
		if r.settled.Contains(u) {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled.Add(u)
		r.relax(item.id, item.dist)
	}
}

// relax examines every arc leaving u and improves neighbor distances.
func (r *runner) relax(u NodeID, du float64) {
	for _, a := range r.arcs[u] {
		// Self-loops cannot shorten anything.
		if a.to == u {
			continue
		}
		if a.w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + a.w
		if nd > r.options.MaxDistance {
			continue
		}
		// Strict: the first relaxation to reach a distance keeps the predecessor.
		if nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = nd
		r.prev[a.to] = u
		heap.Push(&r.pq, nodeItem{id: a.to, dist: nd, seq: r.nextSeq()})
	}
}

// nodeItem is a heap entry: a node with its tentative distance.
type nodeItem struct {
	id   NodeID
	dist float64
	seq  uint64 // push order, tie-breaker
}

// nodePQ is a min-heap of nodeItem ordered by (dist, seq).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
