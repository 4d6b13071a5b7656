// Package dijkstra provides a single-source shortest-path solver for pose graphs
// with non-negative edge costs.
//
// Overview:
//
//   - New / NewWithWeight run a full Dijkstra traversal from a source node of a
//     *posegraph.Graph and return an immutable *Solver with the results.
//   - Edge costs come from a WeightFunc; the default is the payload's Cost()
//     (translation norm, or Mahalanobis norm for payloads with an information
//     matrix). The solver never interprets transform semantics itself.
//   - SolveAll fans out several independent solves over one read-only graph.
//
// Determinism:
//
//   - Outgoing edges are relaxed in the graph's edge-iteration order, and a
//     neighbor keeps the predecessor of the first relaxation that reached its
//     final distance. Graphs built with posegraph.InsertEdge therefore give
//     reproducible predecessor trees independent of call order.
//
// Results:
//
//   - Distance(id):    shortest distance, Unreached (+Inf) if no path; false if id is not a node.
//   - PathTo(id):      source … id, empty if unreached.
//   - Predecessor(id): parent on the shortest-path tree.
//   - Tree():          parent → children map of the shortest-path tree.
//   - ReachedSet():    roaring64 bitmap of settled ids.
//
// Preconditions:
//
//   - Weights must be non-negative. A negative weight violates the WeightFunc
//     contract; it is not detected, to keep the O((V + E) log V) bound.
//   - Self-loops are skipped and never alter distances.
//   - Nodes that no path reaches are part of the result, never an error.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph.
//   - ErrUnknownSource:   source is not a node of the graph.
//   - ErrBadMaxDistance:  (panic) WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold with a non-positive value.
//   - ErrBadConcurrency:  (panic) WithConcurrency below one.
//
// Thread safety:
//
//   - Solvers only read the graph; any number may run concurrently on the same
//     graph as long as nobody mutates it. Synchronise mutation externally.
//   - A returned *Solver is immutable.
//
// Example usage:
//
//	g := posegraph.NewMapBacked[pose.Pose3D]()
//	_ = g.InsertEdge(0, 1, pose.Pose3D{X: 1})
//	s, err := dijkstra.New(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := s.Distance(1)
package dijkstra
