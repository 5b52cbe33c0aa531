// SPDX-License-Identifier: MIT
// Package: lvminor/builder
//
// validators.go: parameter checks shared by constructors.

package builder

import "fmt"

// validateMin returns ErrTooFewVertices when v < min.
func validateMin(method, name string, v, min int) error {
	if v < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, v, min, ErrTooFewVertices)
	}

	return nil
}
