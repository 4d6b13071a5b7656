// Package posegraph is the root of a small library for directed pose graphs:
// networks of robot poses whose edges carry relative-pose measurements.
//
// Layout:
//
//	pose/          edge payloads (2D/3D poses, with or without information matrix)
//	nodestore/     node storage backends: ordered map and dense array
//	posegraph/     the Graph container (ordered multigraph of edges + node store)
//	dijkstra/      single-source shortest paths over a Graph
//	generator/     chain and random graph generators
//	perf/          timing harness with Prometheus metrics
//	cmd/perfgraph  CLI over the harness
//	examples/      runnable scenarios
//
// Quick example:
//
//	g := posegraph.NewMapBacked[pose.Pose2D]()
//	_ = g.InsertEdge(0, 1, pose.Pose2D{X: 1})
//	_ = g.InsertEdge(1, 2, pose.Pose2D{X: 1})
//	s, _ := dijkstra.New(g, 0)
//	fmt.Println(s.PathTo(2)) // [0 1 2]
package posegraph
