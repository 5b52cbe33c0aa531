// Package core provides the mutable graph state explored by lvminor: an
// ordered set of positioned nodes plus a symmetric boolean adjacency matrix,
// together with the structural edits that derive one graph from another.
//
// The Graph G = (V,E) keeps two views of its nodes:
//
//   - an arena keyed by NodeID (stable identity, never reused), and
//   - a positional order 0..n-1 that doubles as the adjacency coordinate.
//
// The id → position index is rebuilt after every structural edit, so
// IndexOf is O(1) and always agrees with the matrix. Positions shift when a
// lower-positioned node is removed; callers must re-resolve positions with
// IndexOf (or use the NodeID-based methods) instead of caching them across
// edits.
//
// Invariants:
//
//   - matrix is square and symmetric, its size equals the node count;
//   - the diagonal is false (no self-loops);
//   - a failed edit leaves the graph untouched (validate first, then mutate).
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph                        // O(1)
//	Clone() *Graph                           // O(V²), ids preserved
//
//	// Nodes
//	AddNode(p vector.Vec) Node               // O(V)
//	RemoveNode(id NodeID) bool               // O(V²), absent id is a no-op
//	RemoveNodes(ids ...NodeID) int           // bulk, idempotent
//	IndexOf(id NodeID) (int, error)          // O(1), ErrNodeNotFound
//	Nodes() []Node                           // O(V) snapshot
//	SetPosition / Translate                  // direct placement
//
//	// Edges (positional)
//	AddEdge(i, j int) error                  // O(1), ErrIndexOutOfRange
//	RemoveEdge(i, j int) error               // O(1), ErrIndexOutOfRange
//	AreNeighbours(i, j int) bool             // O(1)
//	Edges() []Edge                           // O(V²)
//	ContractEdge(i, j int) error             // O(V²)
//
//	// Edges (identity)
//	AddEdgeNodes / RemoveEdgeNodes / ContractNodes / Connect
//
//	// Layout support
//	Step(fn func(*Frame))                    // exclusive access for one tick
//	Settled() bool                           // every NetForce is zero
//
// Concurrency:
//
// A single sync.RWMutex guards each Graph. Every edit and every Step runs
// under the write lock, so an edit and a layout tick never interleave
// partially. Distinct graphs share no mutable state; Clone gives full
// structural independence.
package core
