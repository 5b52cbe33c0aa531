// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the structural checks of Bool.
//  - Return sentinel errors tagged with the validator name so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry runs O(n²) over the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Bool) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures there are exactly n rows and every row has n cells.
// Assumes m is non-nil.
// Complexity: O(n).
func ValidateSquare(m *Bool) error {
	if len(m.rows) != m.n {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	for _, row := range m.rows {
		if len(row) != m.n {
			return validatorErrorf("ValidateSquare", ErrNonSquare)
		}
	}

	return nil
}

// ValidateSymmetric ensures (i,j) == (j,i) for every pair.
// Assumes m is non-nil and square.
// Complexity: O(n²/2).
func ValidateSymmetric(m *Bool) error {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.rows[i][j] != m.rows[j][i] {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDiagonal ensures no diagonal cell is set.
// Assumes m is non-nil and square.
// Complexity: O(n).
func ValidateDiagonal(m *Bool) error {
	for i := 0; i < m.n; i++ {
		if m.rows[i][i] {
			return validatorErrorf("ValidateDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// Validate runs NotNil → Square → Symmetric → Diagonal and returns the first
// violation.
// Complexity: O(n²).
func Validate(m *Bool) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateSymmetric(m); err != nil {
		return err
	}

	return ValidateDiagonal(m)
}
