package explore_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvminor/builder"
	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/explore"
	"github.com/katalvlaran/lvminor/vector"
)

// shape renders every slot as its graph identity and size, "-" when empty.
func shape(tr *explore.Tree) [][]string {
	layers := tr.Layers()
	out := make([][]string, len(layers))
	for l, layer := range layers {
		out[l] = make([]string, len(layer))
		for s, g := range layer {
			if g == nil {
				out[l][s] = "-"
				continue
			}
			out[l][s] = fmt.Sprintf("%p n=%d e=%d", g, g.Len(), g.EdgeCount())
		}
	}
	return out
}

func requireSameShape(t *testing.T, want, got [][]string) {
	t.Helper()
	if diff := deep.Equal(want, got); diff != nil {
		t.Fatalf("tree shape differs: %v", diff)
	}
}

func newTree(t *testing.T, opts ...explore.Option) *explore.Tree {
	t.Helper()
	tr, err := explore.New(opts...)
	require.NoError(t, err)
	return tr
}

func seeded(t *testing.T, opts ...explore.Option) (*explore.Tree, *core.Graph) {
	t.Helper()
	tr := newTree(t, opts...)
	g, err := builder.Reference()
	require.NoError(t, err)
	require.NoError(t, tr.Seed(g))
	return tr, g
}

func TestNew_InitialState(t *testing.T) {
	tr := newTree(t)
	require.Equal(t, 0, tr.Depth())
	require.Equal(t, 1, tr.HistoryLen())
	require.Equal(t, explore.DefaultBranching, tr.Branching())

	layer, err := tr.Layer(0)
	require.NoError(t, err)
	require.Equal(t, []*core.Graph{nil}, layer)
	require.Empty(t, tr.Live())

	_, err = tr.Slot(0, 0)
	require.ErrorIs(t, err, explore.ErrEmptySlot)
	_, err = tr.Layer(1)
	require.ErrorIs(t, err, explore.ErrSlotOutOfRange)
}

func TestRevert_InitialIsNoop(t *testing.T) {
	tr := newTree(t)
	before := shape(tr)
	require.False(t, tr.Revert())
	require.False(t, tr.Revert())
	require.Equal(t, 1, tr.HistoryLen())
	requireSameShape(t, before, shape(tr))
}

func TestPushRevert_RestoresSlots(t *testing.T) {
	tr, _ := seeded(t)
	before := shape(tr)

	g := core.NewGraph()
	g.AddNode(vector.Zero())
	require.NoError(t, tr.Push(1, explore.Placement{Slot: 1, Graph: g}))
	require.Equal(t, 1, tr.Depth())
	require.Len(t, tr.Live(), 2)

	require.True(t, tr.Revert())
	require.Equal(t, 0, tr.Depth())
	requireSameShape(t, before, shape(tr))

	// Overwriting an existing slot is also undone exactly.
	require.NoError(t, tr.Push(0, explore.Placement{Slot: 0, Graph: g}))
	require.True(t, tr.Revert())
	requireSameShape(t, before, shape(tr))
}

func TestPush_Validation(t *testing.T) {
	tr, _ := seeded(t)
	before := shape(tr)
	hist := tr.HistoryLen()
	g := core.NewGraph()

	tests := []struct {
		name  string
		layer int
		ps    []explore.Placement
		want  error
	}{
		{"skip a layer", 2, []explore.Placement{{Slot: 0, Graph: g}}, explore.ErrInvalidTreeTransition},
		{"negative layer", -1, []explore.Placement{{Slot: 0, Graph: g}}, explore.ErrInvalidTreeTransition},
		{"slot beyond width", 1, []explore.Placement{{Slot: 2, Graph: g}}, explore.ErrSlotOutOfRange},
		{"negative slot", 0, []explore.Placement{{Slot: -1, Graph: g}}, explore.ErrSlotOutOfRange},
		{"nil graph", 1, []explore.Placement{{Slot: 0, Graph: nil}}, explore.ErrNilGraph},
		{"valid then invalid", 1, []explore.Placement{{Slot: 0, Graph: g}, {Slot: 5, Graph: g}}, explore.ErrSlotOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tr.Push(tc.layer, tc.ps...)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
			require.Equal(t, hist, tr.HistoryLen())
			requireSameShape(t, before, shape(tr))
		})
	}
}

func TestBranch_DeleteAndContract(t *testing.T) {
	tr, root := seeded(t)

	del, con, err := tr.Branch(0, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, tr.Depth())

	require.Equal(t, explore.Address{Layer: 1, Slot: 0, Graph: del.Graph}, del)
	require.Equal(t, explore.Address{Layer: 1, Slot: 1, Graph: con.Graph}, con)
	require.Equal(t, 9, del.Graph.Len())
	require.Equal(t, 4, del.Graph.EdgeCount())
	require.Equal(t, 8, con.Graph.Len())
	require.Equal(t, 4, con.Graph.EdgeCount())

	// The published root is untouched and stays in its slot.
	got, err := tr.Slot(0, 0)
	require.NoError(t, err)
	require.Same(t, root, got)
	require.Equal(t, 9, root.Len())
	require.Equal(t, 5, root.EdgeCount())

	// Children keep node identities of the root (Clone preserves ids).
	n0, err := con.Graph.NodeAt(0)
	require.NoError(t, err)
	r0, err := root.NodeAt(0)
	require.NoError(t, err)
	require.Equal(t, r0.ID, n0.ID)
	require.Equal(t, vector.New(0, 2.5), n0.Position)
}

func TestBranch_DeeperAndAncestors(t *testing.T) {
	tr, root := seeded(t)
	_, con, err := tr.Branch(0, 0, 0, 1)
	require.NoError(t, err)

	del2, con2, err := tr.Branch(1, 1, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 2, del2.Slot)
	require.Equal(t, 3, con2.Slot)
	require.Equal(t, 2, tr.Depth())

	layer2, err := tr.Layer(2)
	require.NoError(t, err)
	require.Len(t, layer2, 4)
	require.Nil(t, layer2[0])
	require.Nil(t, layer2[1])

	anc, err := tr.Ancestors(2, 3)
	require.NoError(t, err)
	require.Equal(t, []explore.Address{
		{Layer: 1, Slot: 1, Graph: con.Graph},
		{Layer: 0, Slot: 0, Graph: root},
	}, anc)

	parent, ok := tr.Parent(2, 2)
	require.True(t, ok)
	require.Equal(t, "L1/1", parent.String())
	_, ok = tr.Parent(0, 0)
	require.False(t, ok)

	_, err = tr.Ancestors(2, 4)
	require.ErrorIs(t, err, explore.ErrSlotOutOfRange)

	require.True(t, tr.Revert())
	require.Equal(t, 1, tr.Depth())
}

func TestBranch_Errors(t *testing.T) {
	tr, root := seeded(t)
	before := shape(tr)

	_, _, err := tr.Branch(0, 0, 1, 2)
	require.ErrorIs(t, err, explore.ErrNoSuchEdge)

	_, _, err = tr.Branch(0, 0, 0, 99)
	require.ErrorIs(t, err, explore.ErrNoSuchEdge)

	_, _, err = tr.Branch(1, 0, 0, 1)
	require.ErrorIs(t, err, explore.ErrSlotOutOfRange)

	_, _, err = tr.BranchNodes(0, 0, root.Nodes()[0].ID, core.NodeID(1<<62))
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	requireSameShape(t, before, shape(tr))
	require.Equal(t, 2, tr.HistoryLen())

	empty := newTree(t)
	_, _, err = empty.Branch(0, 0, 0, 1)
	require.ErrorIs(t, err, explore.ErrEmptySlot)
}

func TestBranchNodes(t *testing.T) {
	tr, root := seeded(t)
	nodes := root.Nodes()

	_, con, err := tr.BranchNodes(0, 0, nodes[4].ID, nodes[7].ID)
	require.NoError(t, err)
	require.Equal(t, 8, con.Graph.Len())
	require.True(t, con.Graph.HasNode(nodes[4].ID))
	require.False(t, con.Graph.HasNode(nodes[7].ID))
}

func TestEdit_CopyOnWrite(t *testing.T) {
	tr, root := seeded(t)

	require.NoError(t, tr.Edit(0, 0, func(g *core.Graph) error {
		g.AddNode(vector.New(20, 20))
		return nil
	}))
	edited, err := tr.Slot(0, 0)
	require.NoError(t, err)
	require.NotSame(t, root, edited)
	require.Equal(t, 10, edited.Len())
	require.Equal(t, 9, root.Len())

	boom := errors.New("boom")
	err = tr.Edit(0, 0, func(*core.Graph) error { return boom })
	require.ErrorIs(t, err, boom)
	require.Equal(t, 3, tr.HistoryLen())

	require.True(t, tr.Revert())
	restored, err := tr.Slot(0, 0)
	require.NoError(t, err)
	require.Same(t, root, restored)
}

// branchFirst branches (layer, s) on its first edge.
func branchFirst(t *testing.T, tr *explore.Tree, layer, s int) {
	t.Helper()
	g, err := tr.Slot(layer, s)
	require.NoError(t, err)
	edges := g.Edges()
	require.NotEmpty(t, edges)
	_, _, err = tr.BranchNodes(layer, s, edges[0].U.ID, edges[0].V.ID)
	require.NoError(t, err)
}

func TestEdit_ClearsDescendants(t *testing.T) {
	tr, _ := seeded(t)
	_, _, err := tr.Branch(0, 0, 0, 1)
	require.NoError(t, err)
	branchFirst(t, tr, 1, 0)
	branchFirst(t, tr, 1, 1)
	require.Len(t, tr.Live(), 7)
	before := shape(tr)

	require.NoError(t, tr.Edit(0, 0, func(g *core.Graph) error {
		return g.RemoveEdge(0, 3)
	}))

	live := tr.Live()
	require.Len(t, live, 1)
	require.Equal(t, 0, live[0].Layer)
	require.Equal(t, 2, tr.Depth())
	for l := 1; l <= tr.Depth(); l++ {
		layer, err := tr.Layer(l)
		require.NoError(t, err)
		for s, g := range layer {
			require.Nil(t, g, "L%d/%d", l, s)
		}
	}

	// Branching again derives fresh children from the edited root.
	_, con, err := tr.Branch(0, 0, 0, 1)
	require.NoError(t, err)
	root, err := tr.Slot(0, 0)
	require.NoError(t, err)
	want := root.Clone()
	require.NoError(t, want.ContractEdge(0, 1))
	require.Equal(t, want.EdgeCount(), con.Graph.EdgeCount())
	require.Equal(t, 3, con.Graph.EdgeCount())

	require.True(t, tr.Revert())
	require.True(t, tr.Revert())
	requireSameShape(t, before, shape(tr))
}

func TestEdit_KeepsUnrelatedSlots(t *testing.T) {
	tr, _ := seeded(t)
	_, _, err := tr.Branch(0, 0, 0, 1)
	require.NoError(t, err)
	branchFirst(t, tr, 1, 0)
	branchFirst(t, tr, 1, 1)
	l2, err := tr.Layer(2)
	require.NoError(t, err)

	require.NoError(t, tr.Edit(1, 1, func(g *core.Graph) error {
		g.AddNode(vector.New(30, 30))
		return nil
	}))

	got, err := tr.Layer(2)
	require.NoError(t, err)
	require.Same(t, l2[0], got[0])
	require.Same(t, l2[1], got[1])
	require.Nil(t, got[2])
	require.Nil(t, got[3])
	require.Len(t, tr.Live(), 5)

	// The previous snapshot still holds the cleared slots.
	require.True(t, tr.Revert())
	got, err = tr.Layer(2)
	require.NoError(t, err)
	require.Same(t, l2[2], got[2])
	require.Same(t, l2[3], got[3])
}

func TestBranch_RebranchReplacesGrandchildren(t *testing.T) {
	tr, _ := seeded(t)
	_, _, err := tr.Branch(0, 0, 0, 1)
	require.NoError(t, err)
	branchFirst(t, tr, 1, 1)
	require.Len(t, tr.Live(), 5)

	_, _, err = tr.Branch(0, 0, 4, 7)
	require.NoError(t, err)
	l2, err := tr.Layer(2)
	require.NoError(t, err)
	require.Equal(t, []*core.Graph{nil, nil, nil, nil}, l2)
	require.Len(t, tr.Live(), 3)
}

func TestOnChange(t *testing.T) {
	var kinds []explore.EventKind
	var last explore.Event
	tr, _ := seeded(t, explore.WithOnChange(func(e explore.Event) {
		kinds = append(kinds, e.Kind)
		last = e
	}))

	_, _, err := tr.Branch(0, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, last.Depth)
	require.Equal(t, 3, last.Live)
	require.Len(t, last.Placed, 2)

	tr.Revert()
	tr.Revert()
	tr.Revert()
	require.False(t, last.Applied)

	require.Equal(t, []explore.EventKind{
		explore.EventPush, explore.EventBranch,
		explore.EventRevert, explore.EventRevert, explore.EventRevert,
	}, kinds)
}

func TestBranching3(t *testing.T) {
	tr, _ := seeded(t, explore.WithBranching(3))
	require.Equal(t, []int{3, 4, 5}, tr.Children(1))

	del, con, err := tr.Branch(0, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, del.Slot)
	require.Equal(t, 1, con.Slot)
	layer, err := tr.Layer(1)
	require.NoError(t, err)
	require.Len(t, layer, 3)

	_, err = explore.New(explore.WithBranching(1))
	require.ErrorIs(t, err, explore.ErrOptionViolation)
}

func TestConcurrentPushRevert(t *testing.T) {
	tr, _ := seeded(t)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				g := core.NewGraph()
				_ = tr.Push(1, explore.Placement{Slot: i % 2, Graph: g})
				_ = tr.Live()
				tr.Revert()
			}
		}()
	}
	wg.Wait()
	require.GreaterOrEqual(t, tr.HistoryLen(), 1)
	require.LessOrEqual(t, tr.Depth(), 1)
}
