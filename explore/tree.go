package explore

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvminor/core"
)

// snapshot is one immutable history entry. Its slices are never written
// after the snapshot is appended to history.
type snapshot struct {
	layers [][]*core.Graph
}

func (s snapshot) depth() int {
	return len(s.layers) - 1
}

func (s snapshot) live() int {
	n := 0
	for _, layer := range s.layers {
		for _, g := range layer {
			if g != nil {
				n++
			}
		}
	}

	return n
}

// Tree is the layered exploration tree with linear undo.
type Tree struct {
	mu      sync.RWMutex
	opts    Options
	history []snapshot // history[0] is the initial tree; never empty
}

// New creates a Tree with layer 0 allocated (one empty slot).
// Returns ErrOptionViolation (wrapped) if any option was invalid.
func New(opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	initial := snapshot{layers: [][]*core.Graph{make([]*core.Graph, 1)}}

	return &Tree{opts: o, history: []snapshot{initial}}, nil
}

// current returns the newest snapshot. Caller must hold a lock.
func (t *Tree) current() snapshot {
	return t.history[len(t.history)-1]
}

// width returns b^layer, or -1 when it exceeds MaxLayerSlots.
func (t *Tree) width(layer int) int {
	w := 1
	for i := 0; i < layer; i++ {
		w *= t.opts.Branching
		if w > MaxLayerSlots {
			return -1
		}
	}

	return w
}

// Branching returns b.
func (t *Tree) Branching() int {
	return t.opts.Branching
}

// Push publishes placements into layer. When layer == Depth()+1 a new layer
// of b^layer empty slots is allocated first. Every argument is validated
// before anything changes, so a failed push leaves tree and history
// untouched. On success the new state is appended to history.
//
// Every slot in deeper layers that descends from a placed slot is cleared,
// since it was derived from the graph being replaced. Deeper layers stay
// allocated, so Depth does not shrink.
//
// Errors:
//   - ErrInvalidTreeTransition: layer < 0, layer > Depth()+1, or too wide.
//   - ErrSlotOutOfRange: a slot outside [0, b^layer).
//   - ErrNilGraph: a nil graph.
//
// Complexity: O(b^layer + k) for k placements.
func (t *Tree) Push(layer int, placements ...Placement) error {
	return t.apply(func() (Event, error) {
		return t.push(layer, placements)
	})
}

// apply runs fn under the write lock and, if it succeeded, notifies
// listeners after the lock is released.
func (t *Tree) apply(fn func() (Event, error)) error {
	t.mu.Lock()
	ev, err := fn()
	t.mu.Unlock()

	if err != nil {
		return err
	}
	t.opts.OnChange(ev)

	return nil
}

// push is Push without locking or notification.
func (t *Tree) push(layer int, placements []Placement) (Event, error) {
	cur := t.current()

	// Stage 1: validate the transition and every placement.
	depth := cur.depth()
	if layer < 0 || layer > depth+1 {
		return Event{}, fmt.Errorf("Push(layer=%d): depth=%d: %w", layer, depth, ErrInvalidTreeTransition)
	}
	w := t.width(layer)
	if w < 0 {
		return Event{}, fmt.Errorf("Push(layer=%d): wider than %d slots: %w", layer, MaxLayerSlots, ErrInvalidTreeTransition)
	}
	for _, p := range placements {
		if p.Slot < 0 || p.Slot >= w {
			return Event{}, fmt.Errorf("Push(layer=%d, slot=%d): width=%d: %w", layer, p.Slot, w, ErrSlotOutOfRange)
		}
		if p.Graph == nil {
			return Event{}, fmt.Errorf("Push(layer=%d, slot=%d): %w", layer, p.Slot, ErrNilGraph)
		}
	}

	// Stage 2: copy-on-write the outer slice and the touched layer.
	layers := make([][]*core.Graph, len(cur.layers), len(cur.layers)+1)
	copy(layers, cur.layers)
	if layer == len(layers) {
		layers = append(layers, make([]*core.Graph, w))
	} else {
		touched := make([]*core.Graph, len(layers[layer]))
		copy(touched, layers[layer])
		layers[layer] = touched
	}

	// Stage 3: place, drop stale descendants and record.
	for _, p := range placements {
		layers[layer][p.Slot] = p.Graph
	}
	pruned := 0
	for _, p := range placements {
		pruned += t.prune(layers, layer, p.Slot)
	}
	if pruned > 0 {
		log.Debug("cleared {{count}} descendants below layer {{layer}}", "count", pruned, "layer", layer)
	}
	next := snapshot{layers: layers}
	t.history = append(t.history, next)

	log.Debug("pushed {{count}} graphs into layer {{layer}}", "count", len(placements), "layer", layer)

	placed := make([]Placement, len(placements))
	copy(placed, placements)

	return Event{
		Kind:    EventPush,
		Layer:   layer,
		Placed:  placed,
		Applied: true,
		Depth:   next.depth(),
		Live:    next.live(),
	}, nil
}

// prune clears every descendant of (layer, s) in layers, copying a deeper
// layer before its first write. It returns the number of cleared slots.
func (t *Tree) prune(layers [][]*core.Graph, layer, s int) int {
	b := t.opts.Branching
	lo, hi := s, s+1
	cleared := 0
	for l := layer + 1; l < len(layers); l++ {
		lo, hi = lo*b, hi*b
		row := layers[l]
		if lo >= len(row) {
			break
		}
		if hi > len(row) {
			hi = len(row)
		}
		copied := false
		for k := lo; k < hi; k++ {
			if row[k] == nil {
				continue
			}
			if !copied {
				row = append([]*core.Graph(nil), row...)
				layers[l] = row
				copied = true
			}
			row[k] = nil
			cleared++
		}
	}

	return cleared
}

// Revert restores the previous snapshot and reports whether anything was
// undone. With only the initial snapshot left it is a no-op.
//
// Complexity: O(1) plus the live count for the change event.
func (t *Tree) Revert() bool {
	t.mu.Lock()
	applied := len(t.history) > 1
	if applied {
		t.history[len(t.history)-1] = snapshot{}
		t.history = t.history[:len(t.history)-1]
	}
	cur := t.current()
	t.mu.Unlock()

	if applied {
		log.Debug("reverted to depth {{depth}}", "depth", cur.depth())
	} else {
		log.Trace("revert with empty history")
	}
	t.opts.OnChange(Event{
		Kind:    EventRevert,
		Applied: applied,
		Depth:   cur.depth(),
		Live:    cur.live(),
	})

	return applied
}

// Seed publishes g as the root at (0, 0).
func (t *Tree) Seed(g *core.Graph) error {
	return t.Push(0, Placement{Slot: 0, Graph: g})
}

// Depth returns the index of the deepest allocated layer.
func (t *Tree) Depth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.current().depth()
}

// HistoryLen returns the number of snapshots, including the initial one.
func (t *Tree) HistoryLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.history)
}

// Layer returns a copy of the slots of layer L (nil entries are empty).
func (t *Tree) Layer(layer int) ([]*core.Graph, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cur := t.current()
	if layer < 0 || layer > cur.depth() {
		return nil, fmt.Errorf("Layer(%d): depth=%d: %w", layer, cur.depth(), ErrSlotOutOfRange)
	}
	out := make([]*core.Graph, len(cur.layers[layer]))
	copy(out, cur.layers[layer])

	return out, nil
}

// Layers returns a copy of every layer's slots.
func (t *Tree) Layers() [][]*core.Graph {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cur := t.current()
	out := make([][]*core.Graph, len(cur.layers))
	for i, layer := range cur.layers {
		out[i] = make([]*core.Graph, len(layer))
		copy(out[i], layer)
	}

	return out
}

// slot resolves (layer, s) in the current snapshot. Caller must hold a lock.
func (t *Tree) slot(method string, layer, s int) (*core.Graph, error) {
	cur := t.current()
	if layer < 0 || layer > cur.depth() || s < 0 || s >= len(cur.layers[layer]) {
		return nil, fmt.Errorf("%s(%d,%d): %w", method, layer, s, ErrSlotOutOfRange)
	}
	g := cur.layers[layer][s]
	if g == nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", method, layer, s, ErrEmptySlot)
	}

	return g, nil
}

// Slot returns the graph at (layer, s).
// Errors: ErrSlotOutOfRange, ErrEmptySlot.
func (t *Tree) Slot(layer, s int) (*core.Graph, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.slot("Slot", layer, s)
}

// Live returns every occupied slot, layer by layer, slots ascending.
func (t *Tree) Live() []Address {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Address
	for l, layer := range t.current().layers {
		for s, g := range layer {
			if g != nil {
				out = append(out, Address{Layer: l, Slot: s, Graph: g})
			}
		}
	}

	return out
}
