// Package core defines the Node and Graph types, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrIndexOutOfRange - a positional index is negative or ≥ node count.
//	ErrNodeNotFound    - requested node identity does not exist.
//	ErrLoopNotAllowed  - an edge or contraction names the same position twice.
package core

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvminor/matrix"
	"github.com/katalvlaran/lvminor/vector"
)

// Sentinel errors for core graph operations.
var (
	// ErrIndexOutOfRange indicates a positional index outside [0, n).
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was requested; the adjacency
	// diagonal is always false.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NodeID is a process-unique node identity. Ids are assigned monotonically
// by AddNode and are never reused.
type NodeID uint64

// nextNodeID is the process-wide id generator.
var nextNodeID atomic.Uint64

// newNodeID mints the next identity (the first id is 0).
func newNodeID() NodeID {
	return NodeID(nextNodeID.Add(1) - 1)
}

// Node is a positioned graph vertex.
//
// Node is a value: copying it keeps its ID. Only AddNode mints identities.
type Node struct {
	// ID is the stable identity of this node.
	ID NodeID

	// Position is the current location in layout space.
	Position vector.Vec

	// Velocity is the integrator state carried between ticks.
	Velocity vector.Vec

	// NetForce is the force computed by the most recent layout tick.
	// Structural edits reset it to zero.
	NetForce vector.Vec
}

// InEquilibrium reports whether the node's net force is zero under
// vector.Epsilon.
func (n Node) InEquilibrium() bool {
	return n.NetForce.IsZero()
}

// Edge is an unordered adjacency between two nodes, reported with the
// lower-positioned node first.
type Edge struct {
	U Node
	V Node
}

// Graph is the mutable graph state: an arena of nodes keyed by identity, a
// positional order, and a symmetric boolean adjacency matrix indexed by
// position.
//
// The zero value is an empty graph ready to use; NewGraph is equivalent.
type Graph struct {
	mu sync.RWMutex // guards every field below

	arena map[NodeID]*Node // identity → node
	order []NodeID         // position → identity
	index map[NodeID]int   // identity → position, rebuilt on structural edits
	adj   *matrix.Bool     // position × position adjacency

	// ticked is true once a layout Step ran since the last edit, which makes
	// NetForce values meaningful for Settled.
	ticked bool
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		arena: make(map[NodeID]*Node),
		index: make(map[NodeID]int),
		adj:   &matrix.Bool{},
	}
}

// lazyInit allocates the storage of a zero-value Graph.
// Caller must hold the write lock.
func (g *Graph) lazyInit() {
	if g.arena == nil {
		g.arena = make(map[NodeID]*Node)
	}
	if g.index == nil {
		g.index = make(map[NodeID]int)
	}
	if g.adj == nil {
		g.adj = &matrix.Bool{}
	}
}

// reindex rebuilds the identity → position map from order.
// Caller must hold the write lock.
func (g *Graph) reindex() {
	g.index = make(map[NodeID]int, len(g.order))
	for i, id := range g.order {
		g.index[id] = i
	}
}

// touch marks the graph as structurally edited: derived forces are cleared
// and Settled reports false until the next Step.
// Caller must hold the write lock.
func (g *Graph) touch() {
	for _, n := range g.arena {
		n.NetForce = vector.Zero()
	}
	g.ticked = false
}

// checkIndex validates a positional index.
// Caller must hold a lock.
func (g *Graph) checkIndex(i int) bool {
	return i >= 0 && i < len(g.order)
}

// nodeAt returns the arena entry at position i.
// Caller must hold a lock and have validated i.
func (g *Graph) nodeAt(i int) *Node {
	return g.arena[g.order[i]]
}

// Len returns the number of nodes.
// Complexity: O(1)
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
