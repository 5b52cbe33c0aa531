// File: methods_nodes.go
// Role: Node lifecycle, identity lookup and placement.
//
// Determinism:
//   - Nodes() returns nodes in positional order.
//
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.
package core

import (
	"fmt"

	"github.com/katalvlaran/lvminor/vector"
)

// AddNode appends a new node at position p with a fresh id and zero
// velocity/force. The node takes the next positional index and the matrix
// grows by one empty row/column.
//
// Complexity: O(V) for the matrix resize.
func (g *Graph) AddNode(p vector.Vec) Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lazyInit()
	n := &Node{ID: newNodeID(), Position: p}
	g.arena[n.ID] = n
	g.order = append(g.order, n.ID)
	g.index[n.ID] = g.adj.Grow()
	g.touch()

	return *n
}

// RemoveNode deletes the node with the given id together with its row and
// column, compacting every higher position down by one. An absent id is not
// an error: RemoveNode reports false and leaves the graph untouched.
//
// Complexity: O(V²) for the matrix compaction.
func (g *Graph) RemoveNode(id NodeID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeNode(id)
}

// removeNode is RemoveNode without locking.
func (g *Graph) removeNode(id NodeID) bool {
	i, ok := g.index[id]
	if !ok {
		return false
	}
	// index and matrix agree by invariant, so Delete cannot fail here.
	_ = g.adj.Delete(i)
	g.order = append(g.order[:i], g.order[i+1:]...)
	delete(g.arena, id)
	g.reindex()
	g.touch()

	return true
}

// RemoveNodes removes every listed node that exists and returns how many were
// removed. Stale or duplicate ids are skipped, so the call is idempotent.
//
// Complexity: O(k·V²) for k removed nodes.
func (g *Graph) RemoveNodes(ids ...NodeID) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if g.removeNode(id) {
			removed++
		}
	}

	return removed
}

// IndexOf returns the current position of the node with the given id.
// An absent id fails with ErrNodeNotFound; no default index is ever returned.
//
// Complexity: O(1)
func (g *Graph) IndexOf(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("IndexOf(%d): %w", id, ErrNodeNotFound)
	}

	return i, nil
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1)
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.arena[id]

	return ok
}

// Node returns a copy of the node with the given id.
// Complexity: O(1)
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.arena[id]
	if !ok {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return *n, nil
}

// NodeAt returns a copy of the node at position i.
// Complexity: O(1)
func (g *Graph) NodeAt(i int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.checkIndex(i) {
		return Node{}, fmt.Errorf("NodeAt(%d): size=%d: %w", i, len(g.order), ErrIndexOutOfRange)
	}

	return *g.nodeAt(i), nil
}

// Nodes returns a snapshot of all nodes in positional order. Mutating the
// returned slice does not affect the graph.
//
// Complexity: O(V)
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.order))
	for i := range g.order {
		out[i] = *g.nodeAt(i)
	}

	return out
}

// SetPosition places the node with the given id at p. Velocity is kept.
// Complexity: O(1)
func (g *Graph) SetPosition(id NodeID, p vector.Vec) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.arena[id]
	if !ok {
		return fmt.Errorf("SetPosition(%d): %w", id, ErrNodeNotFound)
	}
	n.Position = p
	g.touch()

	return nil
}

// Translate moves every listed node by delta (once, even if listed twice).
// All ids are resolved before any node moves; an unknown id fails with
// ErrNodeNotFound and nothing moves.
//
// Complexity: O(k)
func (g *Graph) Translate(delta vector.Vec, ids ...NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[NodeID]struct{}, len(ids))
	nodes := make([]*Node, 0, len(ids))
	for _, id := range ids {
		n, ok := g.arena[id]
		if !ok {
			return fmt.Errorf("Translate(%d): %w", id, ErrNodeNotFound)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		n.Position = n.Position.Add(delta)
	}
	g.touch()

	return nil
}
