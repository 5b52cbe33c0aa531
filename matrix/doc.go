// Package matrix provides the square, symmetric boolean adjacency matrix that
// backs a core.Graph.
//
// What
//
//   - Bool stores an n×n relation in row-major rows; cell (i,j) is true when
//     positions i and j are adjacent.
//   - Set mirrors every write into (j,i), so the matrix is symmetric by
//     construction, and refuses to set a diagonal cell.
//   - Grow appends one empty row/column; Delete removes a row/column and
//     compacts higher positions downward by one.
//   - Validate re-checks the structural invariants (square, symmetric, false
//     diagonal) and reports the first violation as a sentinel error.
//
// Indices are positional. Any Delete shifts every higher position, so callers
// must not hold indices across structural edits.
//
// Complexity (n = Size())
//
//   - At/Has/Set: O(1)
//   - Grow:       O(n) amortized
//   - Delete:     O(n²) worst case (row removal plus one column per row)
//   - Clone:      O(n²)
//   - Validate:   O(n²) over the upper triangle
package matrix
