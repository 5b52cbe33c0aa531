package explore

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvminor/core"
)

// Sentinel errors for tree operations.
var (
	// ErrInvalidTreeTransition is returned when a push targets a negative
	// layer, a layer more than one beyond the current depth, or a layer too
	// wide to allocate.
	ErrInvalidTreeTransition = errors.New("explore: invalid tree transition")

	// ErrSlotOutOfRange is returned when a slot is outside [0, b^layer) or a
	// layer is not allocated.
	ErrSlotOutOfRange = errors.New("explore: slot out of range")

	// ErrEmptySlot is returned when an operation needs a graph at an empty slot.
	ErrEmptySlot = errors.New("explore: slot is empty")

	// ErrNilGraph is returned when a nil graph is published.
	ErrNilGraph = errors.New("explore: graph is nil")

	// ErrNoSuchEdge is returned by Branch when the chosen positions are not
	// adjacent.
	ErrNoSuchEdge = errors.New("explore: no such edge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// DefaultBranching is the number of children reserved per slot.
const DefaultBranching = 2

// MaxLayerSlots bounds the width of a single layer.
const MaxLayerSlots = 1 << 20

// Placement is one graph to publish at a slot of the target layer.
type Placement struct {
	Slot  int
	Graph *core.Graph
}

// Address names a slot; Graph is nil when the slot is empty.
type Address struct {
	Layer int
	Slot  int
	Graph *core.Graph
}

// String renders the address as "L<layer>/<slot>".
func (a Address) String() string {
	return fmt.Sprintf("L%d/%d", a.Layer, a.Slot)
}

// EventKind tells Push events from Revert events.
type EventKind int

const (
	// EventPush follows a successful publish.
	EventPush EventKind = iota
	// EventRevert follows every Revert call, applied or not.
	EventRevert
	// EventBranch follows a successful Branch; it is a push of both children.
	EventBranch
)

// Event describes a tree change after it happened.
type Event struct {
	Kind EventKind

	// Layer and Placed describe a push.
	Layer  int
	Placed []Placement

	// Applied is false for a Revert with nothing to undo.
	Applied bool

	// Depth and Live describe the tree after the change.
	Depth int
	Live  int
}

// Option configures a Tree via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Tree configuration.
type Options struct {
	// Branching is b, the number of child slots per slot (≥ 2).
	Branching int

	// OnChange is called after every push and revert, outside the tree lock.
	OnChange func(Event)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Branching = DefaultBranching and a no-op
// OnChange.
func DefaultOptions() Options {
	return Options{
		Branching: DefaultBranching,
		OnChange:  func(Event) {},
	}
}

// WithBranching sets b.
//
//	b ≥ 2: accepted
//	b < 2: ErrOptionViolation
func WithBranching(b int) Option {
	return func(o *Options) {
		if b < 2 {
			o.err = fmt.Errorf("%w: Branching must be ≥ 2 (%d)", ErrOptionViolation, b)
			return
		}
		o.Branching = b
	}
}

// WithOnChange registers a change listener. Listeners run in registration
// order and may call back into the tree.
func WithOnChange(fn func(Event)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnChange
		o.OnChange = func(e Event) {
			prev(e)
			fn(e)
		}
	}
}
