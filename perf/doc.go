// Package perf is a small timing harness for pose-graph workloads.
//
// A Case couples a name with a Func that performs reps repetitions of some
// workload of size arg and reports the mean time per repetition. Cases live
// in a Registry; RegisterGraphCases fills one with the standard graph set
// (edge insertion per payload type, ordered and appended, plus single-source
// shortest-path solves over both node-store backends).
//
// A Runner executes the cases matching a filter, logs each outcome through a
// Logger and records timings in a private Prometheus registry, so several
// runners never collide on metric names.
//
//	reg := perf.NewRegistry()
//	if err := perf.RegisterGraphCases(reg, 111, 0); err != nil {
//	    log.Fatal(err)
//	}
//	reports, err := perf.NewRunner(reg).Run(ctx, "dijkstra")
package perf
