// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All methods return these sentinels (possibly wrapped with method context via
// %w) and tests MUST check them via errors.Is. No method panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested size is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a row length differs from the matrix size.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that cell (i,j) differs from cell (j,i).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a true diagonal cell (a self-loop).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not false")

	// ErrNilMatrix indicates that a nil *Bool (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
