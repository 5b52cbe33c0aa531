// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// impl_path.go: Path(n): n nodes on the x axis joined in sequence.

package builder

import (
	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

// Path returns a Constructor that places n nodes spacing apart along the x
// axis and connects consecutive ones.
//
// Errors: ErrTooFewVertices when n < 2.
// Complexity: O(n·V).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := checkRand(MethodPath, cfg); err != nil {
			return err
		}

		base := g.Len()
		for i := 0; i < n; i++ {
			place(g, cfg, vector.New(float64(i)*cfg.spacing, 0))
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(g, MethodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
