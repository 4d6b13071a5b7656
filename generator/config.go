// SPDX-License-Identifier: MIT
// Package: posegraph/generator
//
// config.go - generator parameters and functional options.

package generator

import (
	"fmt"
	"math"
	"math/rand"
)

// Config holds the plain generation parameters.
//
// NodeCount   – number of source nodes; the chain adds node NodeCount as well.
// EdgeDensity – edge/node ratio knob; values below 2 yield the bare chain.
type Config struct {
	NodeCount   int     `yaml:"node_count" json:"node_count"`
	EdgeDensity float64 `yaml:"edge_density" json:"edge_density"`
}

// DefaultEdgeDensity is the edge/node ratio used by the benchmark set.
const DefaultEdgeDensity = 2.0

const minNodes = 1

// Validate checks the configuration domain.
func (c Config) Validate() error {
	if c.NodeCount < minNodes {
		return fmt.Errorf("node_count=%d < min=%d: %w", c.NodeCount, minNodes, ErrTooFewNodes)
	}
	if c.EdgeDensity < 1 || math.IsNaN(c.EdgeDensity) || math.IsInf(c.EdgeDensity, 0) {
		return fmt.Errorf("edge_density=%g: %w", c.EdgeDensity, ErrInvalidDensity)
	}
	return nil
}

// extraSpan returns the exclusive upper bound for extra edges per node.
func (c Config) extraSpan() int {
	return int(c.EdgeDensity - 1)
}

// genConfig aggregates option state. Passed by value.
type genConfig struct {
	rng       *rand.Rand
	unordered bool
}

// Option customises a generator run.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithUnordered makes generators append edges with InsertEdgeUnordered.
func WithUnordered() Option {
	return func(c *genConfig) {
		c.unordered = true
	}
}

func newGenConfig(opts []Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
