package explore

import (
	"fmt"

	"github.com/katalvlaran/lvminor/core"
)

// Branch derives two children from the graph at (layer, s): one clone with
// edge (i, j) removed and one with it contracted. They are published together
// at (layer+1, b·s) and (layer+1, b·s+1) and the child addresses are returned
// in that order. On any error neither the tree nor the source graph changes.
//
// Errors: ErrSlotOutOfRange, ErrEmptySlot, ErrNoSuchEdge, and the core errors
// of RemoveEdge/ContractEdge.
//
// Complexity: O(V²) for the clones plus the push.
func (t *Tree) Branch(layer, s, i, j int) (deleted, contracted Address, err error) {
	err = t.apply(func() (ev Event, err error) {
		src, err := t.slot("Branch", layer, s)
		if err != nil {
			return Event{}, err
		}
		deleted, contracted, ev, err = t.branch(layer, s, src, i, j)
		return ev, err
	})

	return deleted, contracted, err
}

// BranchNodes is Branch with the edge named by node identities.
// Errors additionally include core.ErrNodeNotFound.
func (t *Tree) BranchNodes(layer, s int, u, v core.NodeID) (deleted, contracted Address, err error) {
	err = t.apply(func() (ev Event, err error) {
		src, err := t.slot("BranchNodes", layer, s)
		if err != nil {
			return Event{}, err
		}
		i, err := src.IndexOf(u)
		if err != nil {
			return Event{}, fmt.Errorf("BranchNodes(%d,%d): %w", u, v, err)
		}
		j, err := src.IndexOf(v)
		if err != nil {
			return Event{}, fmt.Errorf("BranchNodes(%d,%d): %w", u, v, err)
		}
		deleted, contracted, ev, err = t.branch(layer, s, src, i, j)
		return ev, err
	})

	return deleted, contracted, err
}

// branch builds both children and pushes them. Caller must hold the write lock.
func (t *Tree) branch(layer, s int, src *core.Graph, i, j int) (Address, Address, Event, error) {
	if !src.AreNeighbours(i, j) {
		return Address{}, Address{}, Event{}, fmt.Errorf("Branch(%d,%d): edge (%d,%d): %w", layer, s, i, j, ErrNoSuchEdge)
	}

	del := src.Clone()
	if err := del.RemoveEdge(i, j); err != nil {
		return Address{}, Address{}, Event{}, fmt.Errorf("Branch(%d,%d): %w", layer, s, err)
	}
	con := src.Clone()
	if err := con.ContractEdge(i, j); err != nil {
		return Address{}, Address{}, Event{}, fmt.Errorf("Branch(%d,%d): %w", layer, s, err)
	}

	b := t.opts.Branching
	dAddr := Address{Layer: layer + 1, Slot: b * s, Graph: del}
	cAddr := Address{Layer: layer + 1, Slot: b*s + 1, Graph: con}
	ev, err := t.push(layer+1, []Placement{
		{Slot: dAddr.Slot, Graph: del},
		{Slot: cAddr.Slot, Graph: con},
	})
	if err != nil {
		return Address{}, Address{}, Event{}, fmt.Errorf("Branch(%d,%d): %w", layer, s, err)
	}
	ev.Kind = EventBranch
	log.Debug("branched {{from}} on edge ({{i}},{{j}})", "from", Address{Layer: layer, Slot: s}, "i", i, "j", j)

	return dAddr, cAddr, ev, nil
}

// Edit replaces the graph at (layer, s) with an edited clone. fn receives the
// clone; if fn fails nothing is published. Descendants of (layer, s) are
// cleared because they no longer derive from the resident graph. The
// published graph stays intact in history, so Revert undoes the edit.
func (t *Tree) Edit(layer, s int, fn func(g *core.Graph) error) error {
	return t.apply(func() (Event, error) {
		src, err := t.slot("Edit", layer, s)
		if err != nil {
			return Event{}, err
		}
		next := src.Clone()
		if err = fn(next); err != nil {
			return Event{}, fmt.Errorf("Edit(%d,%d): %w", layer, s, err)
		}
		return t.push(layer, []Placement{{Slot: s, Graph: next}})
	})
}

// Parent returns the address of the parent slot of (layer, s). The root has
// no parent.
func (t *Tree) Parent(layer, s int) (Address, bool) {
	if layer <= 0 || s < 0 {
		return Address{}, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.address(layer-1, s/t.opts.Branching), true
}

// Ancestors returns the chain from the parent of (layer, s) up to the root,
// derived from index arithmetic. Empty ancestors are reported with a nil
// Graph.
//
// Errors: ErrSlotOutOfRange when (layer, s) is not an allocated slot.
func (t *Tree) Ancestors(layer, s int) ([]Address, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cur := t.current()
	if layer < 0 || layer > cur.depth() || s < 0 || s >= len(cur.layers[layer]) {
		return nil, fmt.Errorf("Ancestors(%d,%d): %w", layer, s, ErrSlotOutOfRange)
	}
	out := make([]Address, 0, layer)
	for l := layer - 1; l >= 0; l-- {
		s /= t.opts.Branching
		out = append(out, t.address(l, s))
	}

	return out, nil
}

// Children returns the child slot indices of s in layer+1.
func (t *Tree) Children(s int) []int {
	b := t.opts.Branching
	out := make([]int, b)
	for k := range out {
		out[k] = b*s + k
	}

	return out
}

// address builds an Address from the current snapshot. Caller must hold a
// lock.
func (t *Tree) address(layer, s int) Address {
	a := Address{Layer: layer, Slot: s}
	cur := t.current()
	if layer <= cur.depth() && s < len(cur.layers[layer]) {
		a.Graph = cur.layers[layer][s]
	}

	return a
}
