// SPDX-License-Identifier: MIT
// Package matrix: Bool, the symmetric boolean adjacency matrix.

package matrix

import (
	"fmt"
	"strings"
)

// boolErrorf wraps an underlying error with Bool method context.
func boolErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Bool.%s(%d,%d): %w", method, row, col, err)
}

// Bool is a square boolean matrix with a mirrored upper/lower triangle and a
// false diagonal. The zero value is an empty (0×0) matrix ready for Grow.
type Bool struct {
	n    int      // current size (rows == cols == n)
	rows [][]bool // rows[i][j] == rows[j][i]; rows[i][i] == false
}

// NewBool creates an n×n matrix with every cell false.
// Stage 1 (Validate): n must be non-negative.
// Stage 2 (Prepare): allocate n rows of n cells.
// Complexity: O(n²) time and memory.
func NewBool(n int) (*Bool, error) {
	// Validate size; zero is a legal empty matrix.
	if n < 0 {
		return nil, fmt.Errorf("NewBool(%d): %w", n, ErrBadShape)
	}
	// Allocate rows
	rows := make([][]bool, n)
	for i := range rows {
		rows[i] = make([]bool, n)
	}

	return &Bool{n: n, rows: rows}, nil
}

// Size returns the number of rows (== columns).
// Complexity: O(1).
func (m *Bool) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// inRange reports whether both indices address a cell.
func (m *Bool) inRange(i, j int) bool {
	return i >= 0 && j >= 0 && i < m.n && j < m.n
}

// At returns cell (i,j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Bool) At(i, j int) (bool, error) {
	if m == nil {
		return false, boolErrorf("At", i, j, ErrNilMatrix)
	}
	if !m.inRange(i, j) {
		return false, boolErrorf("At", i, j, ErrOutOfRange)
	}

	return m.rows[i][j], nil
}

// Has returns cell (i,j), treating out-of-range indices as false.
// Complexity: O(1).
func (m *Bool) Has(i, j int) bool {
	if m == nil || !m.inRange(i, j) {
		return false
	}

	return m.rows[i][j]
}

// Set assigns v to cells (i,j) and (j,i).
// Setting a diagonal cell to true fails with ErrNonZeroDiagonal; clearing it
// is accepted as a no-op since it is already false.
// Complexity: O(1).
func (m *Bool) Set(i, j int, v bool) error {
	if m == nil {
		return boolErrorf("Set", i, j, ErrNilMatrix)
	}
	if !m.inRange(i, j) {
		return boolErrorf("Set", i, j, ErrOutOfRange)
	}
	if i == j {
		if v {
			return boolErrorf("Set", i, j, ErrNonZeroDiagonal)
		}
		return nil
	}
	// Mirror write keeps the matrix symmetric.
	m.rows[i][j] = v
	m.rows[j][i] = v

	return nil
}

// Grow appends one row and one column, all false, and returns the new index.
// Complexity: O(n) amortized.
func (m *Bool) Grow() int {
	for i := range m.rows {
		m.rows[i] = append(m.rows[i], false)
	}
	m.rows = append(m.rows, make([]bool, m.n+1))
	m.n++

	return m.n - 1
}

// Delete removes row k and column k. Every index above k moves down by one.
// Complexity: O(n²) worst case.
func (m *Bool) Delete(k int) error {
	if m == nil {
		return boolErrorf("Delete", k, k, ErrNilMatrix)
	}
	if k < 0 || k >= m.n {
		return boolErrorf("Delete", k, k, ErrOutOfRange)
	}
	// Drop the row.
	m.rows = append(m.rows[:k], m.rows[k+1:]...)
	// Drop the column in every remaining row.
	for i := range m.rows {
		m.rows[i] = append(m.rows[i][:k], m.rows[i][k+1:]...)
	}
	m.n--

	return nil
}

// Neighbours returns the ascending list of columns set in row k.
// Complexity: O(n).
func (m *Bool) Neighbours(k int) ([]int, error) {
	if m == nil {
		return nil, boolErrorf("Neighbours", k, k, ErrNilMatrix)
	}
	if k < 0 || k >= m.n {
		return nil, boolErrorf("Neighbours", k, k, ErrOutOfRange)
	}
	out := make([]int, 0, m.n)
	for j, v := range m.rows[k] {
		if v {
			out = append(out, j)
		}
	}

	return out, nil
}

// Degree returns the number of true cells in row k, or 0 when out of range.
// Complexity: O(n).
func (m *Bool) Degree(k int) int {
	if m == nil || k < 0 || k >= m.n {
		return 0
	}
	d := 0
	for _, v := range m.rows[k] {
		if v {
			d++
		}
	}

	return d
}

// Count returns the number of true cells in the strict upper triangle, i.e.
// the number of unordered pairs.
// Complexity: O(n²).
func (m *Bool) Count() int {
	if m == nil {
		return 0
	}
	c := 0
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.rows[i][j] {
				c++
			}
		}
	}

	return c
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *Bool) Clone() *Bool {
	if m == nil {
		return nil
	}
	rows := make([][]bool, m.n)
	for i, row := range m.rows {
		rows[i] = append(make([]bool, 0, m.n), row...)
	}

	return &Bool{n: m.n, rows: rows}
}

// Equal reports whether both matrices have the same size and cells.
// Complexity: O(n²).
func (m *Bool) Equal(o *Bool) bool {
	if m.Size() != o.Size() {
		return false
	}
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			if m.rows[i][j] != o.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix as rows of 0/1 for debugging.
// Complexity: O(n²).
func (m *Bool) String() string {
	var sb strings.Builder
	for i := 0; i < m.Size(); i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			if m.rows[i][j] {
				sb.WriteString("1")
			} else {
				sb.WriteString("0")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
