// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go and documented there.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Positions are relative: every constructor appends nodes after the ones
//     already present and connects only the positions it added (except Edges,
//     which addresses absolute positions).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvminor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately; the
// partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// A nil constructor is a programmer error; report it instead of panicking.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Reference builds the reference exploration seed: a 3×3 lattice at spacing 5
// with the edges {0,1}, {0,3}, {0,4}, {4,2}, {4,7}. Extra options (e.g.
// WithOrigin) are applied after the reference spacing.
func Reference(bopts ...BuilderOption) (*core.Graph, error) {
	opts := append([]BuilderOption{WithSpacing(ReferenceSpacing)}, bopts...)

	return BuildGraph(opts,
		Lattice(ReferenceSide, ReferenceSide),
		Edges(ReferenceEdges()...),
	)
}
