// File: view.go
// Role: Layout support (exclusive per-tick access) and read-only views.
// Concurrency:
//   - Step holds the write lock for the whole callback, so a layout tick is
//     atomic with respect to structural edits on the same graph.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvminor/matrix"
	"github.com/katalvlaran/lvminor/vector"
)

// Frame is the view handed to a Step callback. It is valid only for the
// duration of that callback and must not be retained.
type Frame struct {
	g *Graph
}

// Len returns the number of nodes.
func (f *Frame) Len() int {
	return len(f.g.order)
}

// Node returns a copy of the node at position i. i must be in [0, Len()).
func (f *Frame) Node(i int) Node {
	return *f.g.nodeAt(i)
}

// AreNeighbours reports whether positions i and j are adjacent.
func (f *Frame) AreNeighbours(i, j int) bool {
	return f.g.adj.Has(i, j)
}

// SetKinematics stores the tick results for position i. Identity is never
// touched.
func (f *Frame) SetKinematics(i int, force, velocity, position vector.Vec) {
	n := f.g.nodeAt(i)
	n.NetForce = force
	n.Velocity = velocity
	n.Position = position
}

// Step runs fn with exclusive access to the graph. After fn returns the graph
// counts as ticked, so Settled reflects the forces fn stored.
func (g *Graph) Step(fn func(f *Frame)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fn(&Frame{g: g})
	g.ticked = true
}

// Settled reports whether every node is in equilibrium according to the
// forces of the most recent Step. A graph edited since its last Step (or
// never stepped) is not settled.
//
// Complexity: O(V)
func (g *Graph) Settled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ticked {
		return false
	}
	for _, n := range g.arena {
		if !n.InEquilibrium() {
			return false
		}
	}

	return true
}

// Adjacency returns a copy of the adjacency matrix, e.g. for debug tables.
// Complexity: O(V²)
func (g *Graph) Adjacency() *matrix.Bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj.Clone()
}

// Validate checks the structural invariants: the matrix is square, symmetric
// and loop-free, and its size matches the node order, arena and index.
//
// Complexity: O(V²)
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.adj == nil && len(g.order) == 0 && len(g.arena) == 0 {
		return nil // zero value
	}
	if err := matrix.Validate(g.adj); err != nil {
		return err
	}
	n := len(g.order)
	if g.adj.Size() != n || len(g.arena) != n || len(g.index) != n {
		return fmt.Errorf("Validate: size=%d nodes=%d arena=%d index=%d: %w",
			g.adj.Size(), n, len(g.arena), len(g.index), matrix.ErrNonSquare)
	}
	for i, id := range g.order {
		if j, ok := g.index[id]; !ok || j != i || g.arena[id] == nil {
			return fmt.Errorf("Validate: position %d (node %d): %w", i, id, ErrNodeNotFound)
		}
	}

	return nil
}
