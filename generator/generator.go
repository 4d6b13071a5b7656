// SPDX-License-Identifier: MIT
// Package: posegraph/generator
//
// generator.go - Populate (random) and Chain (linear) edge streams.
//
// Complexity:
//   - Chain:    O(n) insertions.
//   - Populate: O(n · EdgeDensity) insertions; each extra destination is
//     resampled with expected n/(n−1) draws.

package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/posegraph/nodestore"
)

const (
	methodPopulate = "Populate"
	methodChain    = "Chain"
)

// Inserter is the write side of a pose graph.
type Inserter[P any] interface {
	InsertEdge(from, to nodestore.NodeID, payload P) error
	InsertEdgeUnordered(from, to nodestore.NodeID, payload P) error
}

// PayloadFunc draws an edge payload. It receives the (possibly nil) RNG.
type PayloadFunc[P any] func(*rand.Rand) P

// Chain inserts the n edges i→i+1 for i in [0, n), all carrying payload.
func Chain[P any](ins Inserter[P], n int, payload P, opts ...Option) error {
	if n < minNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minNodes, ErrTooFewNodes)
	}
	insert := pick(ins, newGenConfig(opts))
	for i := 0; i < n; i++ {
		from, to := nodestore.NodeID(i), nodestore.NodeID(i+1)
		if err := insert(from, to, payload); err != nil {
			return fmt.Errorf("%s: insert(%d→%d): %w", methodChain, from, to, err)
		}
	}
	return nil
}

// Populate streams a random graph described by cfg into ins and returns the
// number of edges inserted. A nil payload yields the identity (zero value).
func Populate[P any](ins Inserter[P], cfg Config, payload PayloadFunc[P], opts ...Option) (int, error) {
	// 1) Validate before touching the graph.
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodPopulate, err)
	}
	gc := newGenConfig(opts)
	span := cfg.extraSpan()
	// Extra edges need both randomness and at least one non-self destination.
	wantsExtra := span > 1 && cfg.NodeCount > 1
	if wantsExtra && gc.rng == nil {
		return 0, fmt.Errorf("%s: %w", methodPopulate, ErrNeedRandSource)
	}
	if payload == nil {
		payload = func(*rand.Rand) P {
			var zero P
			return zero
		}
	}

	// 2) Stream edges in a stable order: i ascending, chain edge first.
	insert := pick(ins, gc)
	rng := gc.rng
	n := cfg.NodeCount
	count := 0
	for i := 0; i < n; i++ {
		extra := 0
		if wantsExtra {
			extra = rng.Intn(span)
		}
		for k := 0; k <= extra; k++ {
			dest := i + 1
			if k > 0 {
				dest = i
				for dest == i {
					dest = rng.Intn(n)
				}
			}
			from, to := nodestore.NodeID(i), nodestore.NodeID(dest)
			if err := insert(from, to, payload(rng)); err != nil {
				return count, fmt.Errorf("%s: insert(%d→%d): %w", methodPopulate, from, to, err)
			}
			count++
		}
	}

	return count, nil
}

// pick selects the insertion discipline.
func pick[P any](ins Inserter[P], gc genConfig) func(from, to nodestore.NodeID, p P) error {
	if gc.unordered {
		return ins.InsertEdgeUnordered
	}
	return ins.InsertEdge
}
