// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// impl_cycle.go: ring layouts: Cycle, Complete, Star and Wheel.
//
// Rim nodes sit on a circle of cfg.radius around cfg.origin, counter-clockwise
// from angle 0. Star and Wheel place their hub first, at the centre.

package builder

import (
	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

// placeRing appends n rim nodes and returns the position of the first.
func placeRing(g *core.Graph, cfg builderConfig, n int) int {
	base := g.Len()
	for k := 0; k < n; k++ {
		place(g, cfg, ring(k, n, cfg.radius))
	}

	return base
}

// closeRing connects rim node k to k+1 (mod n).
func closeRing(method string, g *core.Graph, base, n int) error {
	for k := 0; k < n; k++ {
		if err := connect(g, method, base+k, base+(k+1)%n); err != nil {
			return err
		}
	}

	return nil
}

// Cycle returns a Constructor for the cycle C_n on a circle.
//
// Errors: ErrTooFewVertices when n < 3.
// Complexity: O(n·V).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := checkRand(MethodCycle, cfg); err != nil {
			return err
		}

		return closeRing(MethodCycle, g, placeRing(g, cfg, n), n)
	}
}

// Complete returns a Constructor for K_n on a circle.
//
// Errors: ErrTooFewVertices when n < 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := checkRand(MethodComplete, cfg); err != nil {
			return err
		}

		base := placeRing(g, cfg, n)
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				if err := connect(g, MethodComplete, base+a, base+b); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor for a hub joined to n-1 rim leaves.
//
// Errors: ErrTooFewVertices when n < 2.
// Complexity: O(n·V).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := checkRand(MethodStar, cfg); err != nil {
			return err
		}

		hub := place(g, cfg, vector.Zero())
		base := placeRing(g, cfg, n-1)
		for k := 0; k < n-1; k++ {
			if err := connect(g, MethodStar, hub, base+k); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a hub joined to every node of an
// (n-1)-cycle.
//
// Errors: ErrTooFewVertices when n < 4.
// Complexity: O(n·V).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := checkRand(MethodWheel, cfg); err != nil {
			return err
		}

		hub := place(g, cfg, vector.Zero())
		base := placeRing(g, cfg, n-1)
		if err := closeRing(MethodWheel, g, base, n-1); err != nil {
			return err
		}
		for k := 0; k < n-1; k++ {
			if err := connect(g, MethodWheel, hub, base+k); err != nil {
				return err
			}
		}

		return nil
	}
}
