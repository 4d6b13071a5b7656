// SPDX-License-Identifier: MIT
// Package: posegraph/generator
//
// errors.go - sentinel errors for the generator package.

package generator

import "errors"

// ErrTooFewNodes indicates a node count below the allowed minimum.
var ErrTooFewNodes = errors.New("generator: node count too small")

// ErrInvalidDensity indicates an edge density below 1 or not finite.
var ErrInvalidDensity = errors.New("generator: invalid edge density")

// ErrNeedRandSource indicates that a stochastic generator was invoked without
// an RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("generator: rng is required")
