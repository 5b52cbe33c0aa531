// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// helpers.go: placement and wiring helpers shared by constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

// checkRand fails with ErrNeedRandSource when jitter is on but no RNG is set.
func checkRand(method string, cfg builderConfig) error {
	if cfg.jitter > 0 && cfg.rng == nil {
		return fmt.Errorf("%s: jitter=%g: %w", method, cfg.jitter, ErrNeedRandSource)
	}

	return nil
}

// place appends a node at origin+p (plus jitter) and returns its position.
func place(g *core.Graph, cfg builderConfig, p vector.Vec) int {
	p = p.Add(cfg.origin)
	if cfg.jitter > 0 {
		dx := (cfg.rng.Float64()*2 - 1) * cfg.jitter
		dy := (cfg.rng.Float64()*2 - 1) * cfg.jitter
		p = p.Add(vector.New(dx, dy))
	}
	g.AddNode(p)

	return g.Len() - 1
}

// ring returns the k-th of n points on a circle of radius r, starting at
// angle 0 and going counter-clockwise.
func ring(k, n int, r float64) vector.Vec {
	theta := 2 * math.Pi * float64(k) / float64(n)

	return vector.New(r*math.Cos(theta), r*math.Sin(theta))
}

// connect adds edge (i,j) and wraps any failure with method context.
func connect(g *core.Graph, method string, i, j int) error {
	if err := g.AddEdge(i, j); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, i, j, ErrConstructFailed, err)
	}

	return nil
}
