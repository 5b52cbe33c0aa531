// Package builder places positioned graphs for exploration seeds and tests.
// It follows a functional-options style: constructors are values of type
// Constructor, composed by BuildGraph over one fresh core.Graph.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//   - BuilderOption:  a function that mutates builderConfig before use.
//   - builderConfig:  spacing, ring radius, origin, jitter and RNG.
//   - Constructors (append nodes after the ones already present):
//   - Lattice(rows, cols): unconnected nodes on a square lattice.
//   - Grid(rows, cols):    lattice with 4-neighbourhood edges.
//   - Path(n):             nodes along the x axis joined in order.
//   - Cycle(n), Complete(n), Star(n), Wheel(n): ring layouts.
//   - Edges(pairs...):     connects absolute positions, adds no nodes.
//   - Reference(): the 3×3, five-edge seed used by the explorer.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give identical
//     positions and adjacency (ids differ, they are process-unique).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors (ErrTooFewVertices,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
package builder
