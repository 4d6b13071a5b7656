// SPDX-License-Identifier: MIT
// Package: posegraph/generator
//
// Package generator produces edge streams that populate pose graphs for
// tests, examples and benchmarks.
//
// Contract:
//   - Generators never own a random source: the caller passes one through
//     WithSeed or WithRand. There is no process-wide RNG and no reseeding.
//   - Generators drive any Inserter (posegraph.Graph implements it), so the
//     graph package does not depend on this one.
//   - Only sentinel errors are returned; validation happens before the first
//     insertion, so a rejected configuration inserts nothing.
//
// Random model (Populate):
//   - For every node i in [0, NodeCount): the first edge is i→i+1, so the
//     graph always contains the chain 0→1→…→NodeCount.
//   - Extra edges per node are drawn uniformly from [0, ⌊EdgeDensity−1⌋).
//     Their destinations are drawn uniformly from [0, NodeCount) and
//     resampled until dest != i, so no self-loops are produced.
//
// Determinism:
//   - Fixed seed + fixed Config ⇒ identical edge stream.
package generator
