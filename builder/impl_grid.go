// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// impl_grid.go: rectangular lattices with and without edges.
//
// Layout: node (r,c) takes position base + r*cols + c and is placed at
// origin + (r·spacing, c·spacing).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

// placeLattice appends rows×cols nodes in row-major order and returns the
// position of the first one.
func placeLattice(method string, g *core.Graph, cfg builderConfig, rows, cols int) (int, error) {
	if err := validateMin(method, "rows", rows, MinGridDim); err != nil {
		return 0, err
	}
	if err := validateMin(method, "cols", cols, MinGridDim); err != nil {
		return 0, err
	}
	if err := checkRand(method, cfg); err != nil {
		return 0, err
	}

	base := g.Len()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			place(g, cfg, vector.New(float64(r)*cfg.spacing, float64(c)*cfg.spacing))
		}
	}

	return base, nil
}

// Lattice returns a Constructor that places rows×cols unconnected nodes on a
// square lattice.
//
// Errors: ErrTooFewVertices when rows or cols < 1; ErrNeedRandSource when
// jitter is set without an RNG.
// Complexity: O(rows·cols·V) for matrix growth.
func Lattice(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		_, err := placeLattice(MethodLattice, g, cfg, rows, cols)

		return err
	}
}

// Grid returns a Constructor that places a rows×cols lattice and connects
// every node to its right and lower neighbour (4-neighbourhood).
//
// Errors: as Lattice.
// Complexity: O(rows·cols·V).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		base, err := placeLattice(MethodGrid, g, cfg, rows, cols)
		if err != nil {
			return err
		}
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = connect(g, MethodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(g, MethodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Edges returns a Constructor that connects absolute positions. It adds no
// nodes; every pair must address nodes placed by earlier constructors.
//
// Errors: ErrConstructFailed wrapping core.ErrIndexOutOfRange or
// core.ErrLoopNotAllowed.
func Edges(pairs ...[2]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for k, p := range pairs {
			if err := connect(g, MethodEdges, p[0], p[1]); err != nil {
				return fmt.Errorf("pair #%d: %w", k, err)
			}
		}

		return nil
	}
}
