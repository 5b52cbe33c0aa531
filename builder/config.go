// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • spacing = DefaultSpacing (5)
//   • radius  = DefaultRadius  (10)
//   • origin  = (0, 0)
//   • jitter  = 0 (no randomness)
//   • rng     = nil

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvminor/vector"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	spacing float64    // lattice/path step
	radius  float64    // circle radius for ring layouts
	origin  vector.Vec // translation applied to every placed node
	jitter  float64    // max per-axis random displacement; 0 disables
	rng     *rand.Rand // required only when jitter > 0
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: DefaultSpacing,
		radius:  DefaultRadius,
		origin:  vector.Zero(),
		jitter:  DefaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
