// File: methods_clone.go
// Role: Deep copies of a graph.
// Identity:
//   - Clone preserves every NodeID. Only AddNode mints identities.
// Concurrency:
//   - Read lock on the source; the result is a fresh, independent graph.

package core

// Clone returns a deep copy of the Graph: node values (ids preserved), the
// positional order, and the full adjacency matrix. Mutating the clone never
// affects the source and vice versa.
//
// Complexity: O(V²) for the matrix copy.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		arena:  make(map[NodeID]*Node, len(g.arena)),
		order:  append(make([]NodeID, 0, len(g.order)), g.order...),
		adj:    g.adj.Clone(),
		ticked: g.ticked,
	}
	// Copy node values; the clone owns its own *Node entries.
	for id, n := range g.arena {
		cp := *n
		clone.arena[id] = &cp
	}
	clone.reindex()

	return clone
}
