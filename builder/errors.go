// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w ("Grid: rows=0 ...: %w").
//   • Constructors never panic; option constructors (WithX) panic on
//     meaningless values.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that jitter was requested without a
// *rand.Rand (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not finish, e.g. a nil
// constructor or an edge the graph rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation is reserved for option values that must surface as
// errors rather than panics.
var ErrOptionViolation = errors.New("builder: invalid option value")
