// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// constants.go: method tags, minima and documented defaults.

package builder

// Method tags used as error context prefixes.
const (
	MethodGrid     = "Grid"
	MethodLattice  = "Lattice"
	MethodPath     = "Path"
	MethodCycle    = "Cycle"
	MethodComplete = "Complete"
	MethodStar     = "Star"
	MethodWheel    = "Wheel"
	MethodEdges    = "Edges"
)

// Minimum sizes per constructor.
const (
	MinGridDim       = 1
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinCompleteNodes = 1
	MinStarNodes     = 2
	MinWheelNodes    = 4
)

// Placement defaults.
const (
	// DefaultSpacing is the distance between neighbouring lattice/path nodes.
	DefaultSpacing = 5.0

	// DefaultRadius is the circle radius for Cycle/Complete/Star/Wheel.
	DefaultRadius = 10.0

	// DefaultJitter disables random displacement.
	DefaultJitter = 0.0
)

// Reference graph parameters.
const (
	ReferenceSide    = 3
	ReferenceSpacing = 5.0
)

// ReferenceEdges returns the five seed edges of the reference graph, as
// positions into the row-major 3×3 lattice.
func ReferenceEdges() [][2]int {
	n := ReferenceSide

	return [][2]int{
		{0, 1},
		{0, n},
		{0, n + 1},
		{n + 1, 2},
		{n + 1, 2*n + 1},
	}
}
