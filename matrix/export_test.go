package matrix

// SetRawForTest writes a single cell without mirroring, so tests can build
// matrices that violate the invariants Validate checks.
func SetRawForTest(m *Bool, i, j int, v bool) {
	m.rows[i][j] = v
}

// TruncateRowForTest drops the last cell of row i.
func TruncateRowForTest(m *Bool, i int) {
	m.rows[i] = m.rows[i][:len(m.rows[i])-1]
}
