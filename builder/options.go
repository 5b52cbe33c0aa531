// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Randomness is explicit: jitter needs WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvminor/vector"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// finitePositive reports whether v is a finite number > 0.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// WithSpacing sets the distance between neighbouring lattice/path nodes.
// Panics unless d is finite and > 0.
func WithSpacing(d float64) BuilderOption {
	if !finitePositive(d) {
		panic("builder: WithSpacing: d must be finite and > 0")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithRadius sets the circle radius used by ring layouts.
// Panics unless r is finite and > 0.
func WithRadius(r float64) BuilderOption {
	if !finitePositive(r) {
		panic("builder: WithRadius: r must be finite and > 0")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithOrigin translates every placed node by o.
func WithOrigin(o vector.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithJitter displaces each placed node by a uniform random offset in
// [-amount, amount) per axis. Coincident nodes exert no repulsion on each
// other, so a little jitter lets the layout separate them.
// Panics on negative or non-finite amounts.
func WithJitter(amount float64) BuilderOption {
	if amount < 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		panic("builder: WithJitter: amount must be finite and ≥ 0")
	}
	return func(c *builderConfig) {
		c.jitter = amount
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
