// Package posegraph implements a generic directed pose graph: a node store
// plus a multigraph of relative-transform edges.
//
// Graph[P, S] is parameterised over
//
//   - P – the payload carried by nodes and edges (see package pose), and
//   - S – the node-storage backend (nodestore.MapStore or nodestore.DenseStore).
//
// Nodes are never created on their own: the first time an id appears as an
// edge endpoint it is materialised with the identity payload (the zero value
// of P). Existing node payloads may be overwritten with SetNode.
//
// Two insertion disciplines are offered:
//
//	InsertEdge          – keeps the edge collection sorted by (from, to);
//	                      equal keys keep their arrival order.
//	InsertEdgeUnordered – appends at the end in O(1) amortised time.
//
// Both produce the same edge multiset; only the iteration order differs.
// Mixing them is legal, but the sorted-order guarantee then covers only the
// edges inserted through InsertEdge.
//
// Self-loops are rejected with ErrInvalidEdge unless the graph was built with
// WithSelfLoops().
//
// Thread safety:
//
//   - Graph performs no locking. Build it from one goroutine, then share it
//     read-only (for example with several dijkstra solvers). Mutating while
//     readers are active is a data race.
//
// Complexity:
//
//   - InsertEdge:          O(log E) search + O(E) shift (binary search while sorted,
//     linear scan once unordered appends broke global order).
//   - InsertEdgeUnordered: O(1) amortised.
//   - HasEdge:             O(log E) while sorted, O(E) otherwise.
//   - Edges:               O(E) for a full pass.
package posegraph
