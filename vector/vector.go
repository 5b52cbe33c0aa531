// SPDX-License-Identifier: MIT
// Package vector provides the 2D value arithmetic used for node positions,
// velocities and forces.
//
// Vec is an immutable value type: every operation returns a new Vec and never
// mutates its receiver. Zero tests use a per-component tolerance (Epsilon),
// which is the same tolerance the layout engine uses to decide equilibrium.
package vector

import (
	"fmt"
	"math"
)

// Epsilon is the shared numeric tolerance for zero tests and normalization.
const Epsilon = 1e-9

// Vec is a 2D vector with float64 components.
type Vec struct {
	X float64
	Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vec {
	return Vec{}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Sub returns v - o, computed as v + (-o).
func (v Vec) Sub(o Vec) Vec {
	return v.Add(o.Neg())
}

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Mag returns the Euclidean length of v.
func (v Vec) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in the direction of v, or the zero vector
// when v is zero under Epsilon.
func (v Vec) Normalize() Vec {
	if v.IsZero() {
		return Zero()
	}

	return v.Scale(1 / v.Mag())
}

// IsZero reports whether both components are within Epsilon of zero.
// The test is per component, not on the magnitude.
func (v Vec) IsZero() bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon
}

// Midpoint returns (v + o) * 0.5.
func (v Vec) Midpoint(o Vec) Vec {
	return v.Add(o).Scale(0.5)
}

// String implements fmt.Stringer.
func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
