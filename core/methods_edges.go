// File: methods_edges.go
// Role: Edge lifecycle & queries, positional and identity-based.
//
// Determinism:
//   - Edges() enumerates pairs (i<j) in row-major order of the matrix.
//
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.
package core

import "fmt"

// setEdge validates (i,j) and writes v into both mirrored cells.
// Caller must hold the write lock.
func (g *Graph) setEdge(method string, i, j int, v bool) error {
	// Stage 1: both positions must address an existing node.
	if !g.checkIndex(i) || !g.checkIndex(j) {
		return fmt.Errorf("%s(%d,%d): size=%d: %w", method, i, j, len(g.order), ErrIndexOutOfRange)
	}
	// Stage 2: a loop can never be set; clearing one is a no-op.
	if i == j {
		if v {
			return fmt.Errorf("%s(%d,%d): %w", method, i, j, ErrLoopNotAllowed)
		}
		return nil
	}
	// Stage 3: mirrored write; indices were validated so Set cannot fail.
	_ = g.adj.Set(i, j, v)
	g.touch()

	return nil
}

// AddEdge connects positions i and j.
// Fails with ErrIndexOutOfRange when either index is negative or ≥ Len(),
// and with ErrLoopNotAllowed when i == j.
//
// Complexity: O(1)
func (g *Graph) AddEdge(i, j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.setEdge("AddEdge", i, j, true)
}

// RemoveEdge disconnects positions i and j. Removing an absent edge is a
// no-op; an invalid index fails with ErrIndexOutOfRange.
//
// Complexity: O(1)
func (g *Graph) RemoveEdge(i, j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.setEdge("RemoveEdge", i, j, false)
}

// AreNeighbours reports whether positions i and j are adjacent. Out-of-range
// positions report false.
//
// Complexity: O(1)
func (g *Graph) AreNeighbours(i, j int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj.Has(i, j)
}

// resolve maps two identities to positions.
// Caller must hold a lock.
func (g *Graph) resolve(method string, u, v NodeID) (int, int, error) {
	i, ok := g.index[u]
	if !ok {
		return 0, 0, fmt.Errorf("%s(%d,%d): node %d: %w", method, u, v, u, ErrNodeNotFound)
	}
	j, ok := g.index[v]
	if !ok {
		return 0, 0, fmt.Errorf("%s(%d,%d): node %d: %w", method, u, v, v, ErrNodeNotFound)
	}

	return i, j, nil
}

// AddEdgeNodes connects the nodes with identities u and v.
// Complexity: O(1)
func (g *Graph) AddEdgeNodes(u, v NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, j, err := g.resolve("AddEdgeNodes", u, v)
	if err != nil {
		return err
	}

	return g.setEdge("AddEdgeNodes", i, j, true)
}

// RemoveEdgeNodes disconnects the nodes with identities u and v.
// Complexity: O(1)
func (g *Graph) RemoveEdgeNodes(u, v NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, j, err := g.resolve("RemoveEdgeNodes", u, v)
	if err != nil {
		return err
	}

	return g.setEdge("RemoveEdgeNodes", i, j, false)
}

// Connect adds an edge between every pair of the listed nodes. Every id is
// resolved first; an unknown id fails with ErrNodeNotFound and no edge is
// added. Repeated ids are ignored (no loops are formed).
//
// Complexity: O(k²)
func (g *Graph) Connect(ids ...NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos := make([]int, 0, len(ids))
	seen := make(map[NodeID]struct{}, len(ids))
	for _, id := range ids {
		i, ok := g.index[id]
		if !ok {
			return fmt.Errorf("Connect(%d): %w", id, ErrNodeNotFound)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		pos = append(pos, i)
	}
	for a := 0; a < len(pos); a++ {
		for b := a + 1; b < len(pos); b++ {
			_ = g.adj.Set(pos[a], pos[b], true)
		}
	}
	if len(pos) > 1 {
		g.touch()
	}

	return nil
}

// Edges returns every adjacent pair once, lower position first, in
// row-major order.
//
// Complexity: O(V²)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.order)
	out := make([]Edge, 0, g.adj.Count())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.adj.Has(i, j) {
				out = append(out, Edge{U: *g.nodeAt(i), V: *g.nodeAt(j)})
			}
		}
	}

	return out
}

// EdgeCount returns the number of adjacent pairs.
// Complexity: O(V²)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj.Count()
}

// Degree returns the number of neighbours of position i, or 0 when out of
// range.
// Complexity: O(V)
func (g *Graph) Degree(i int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj.Degree(i)
}
