// File: methods_contract.go
// Role: Edge contraction (graph-minor merge of two endpoints).
//
// Algorithm (positions i, j; u = node i survives, v = node j is absorbed):
//  1. validate i and j;
//  2. clear edge (i,j);
//  3. for every k adjacent to j, set edge (i,k): u inherits v's incidences;
//  4. move u to the midpoint of the two pre-contraction positions;
//  5. delete v, compacting higher positions.
//
// Adjacency is boolean, so an incidence shared by u and v collapses into one
// edge. Contracting a non-adjacent pair identifies the two nodes the same way.

package core

import "fmt"

// ContractEdge merges the node at position j into the node at position i.
// The graph loses exactly one node and the (i,j) edge; the surviving node
// keeps its identity and sits at the midpoint of the two old positions.
//
// Errors:
//   - ErrIndexOutOfRange when i or j is negative or ≥ Len().
//   - ErrLoopNotAllowed when i == j.
//
// On error the graph is unchanged.
//
// Complexity: O(V²) for the compaction.
func (g *Graph) ContractEdge(i, j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.contract("ContractEdge", i, j)
}

// ContractNodes merges node v into node u by identity.
// Fails with ErrNodeNotFound when either id is absent.
//
// Complexity: O(V²)
func (g *Graph) ContractNodes(u, v NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, j, err := g.resolve("ContractNodes", u, v)
	if err != nil {
		return err
	}

	return g.contract("ContractNodes", i, j)
}

// contract implements both public entry points.
// Caller must hold the write lock.
func (g *Graph) contract(method string, i, j int) error {
	// Stage 1 (Validate): nothing is mutated before both checks pass.
	if !g.checkIndex(i) || !g.checkIndex(j) {
		return fmt.Errorf("%s(%d,%d): size=%d: %w", method, i, j, len(g.order), ErrIndexOutOfRange)
	}
	if i == j {
		return fmt.Errorf("%s(%d,%d): %w", method, i, j, ErrLoopNotAllowed)
	}
	u, v := g.nodeAt(i), g.nodeAt(j)

	// Stage 2: drop the contracted edge.
	_ = g.adj.Set(i, j, false)

	// Stage 3: rewire v's remaining neighbours onto u. k never equals i
	// because (i,j) was just cleared, and never equals j (false diagonal).
	nbrs, _ := g.adj.Neighbours(j)
	for _, k := range nbrs {
		_ = g.adj.Set(i, k, true)
	}

	// Stage 4: midpoint of the pre-contraction positions.
	u.Position = u.Position.Midpoint(v.Position)

	// Stage 5: absorb v.
	g.removeNode(v.ID)

	return nil
}
