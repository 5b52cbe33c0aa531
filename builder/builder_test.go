// SPDX-License-Identifier: MIT
// Package builder_test verifies topology, placement and error contracts of the
// builder constructors.
package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvminor/builder"
	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

func positions(g *core.Graph) []vector.Vec {
	nodes := g.Nodes()
	out := make([]vector.Vec, len(nodes))
	for i, n := range nodes {
		out[i] = n.Position
	}

	return out
}

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{name: "Lattice(2,3)", ctor: builder.Lattice(2, 3), wantV: 6, wantE: 0},
		{
			name: "Grid(3,3)", ctor: builder.Grid(3, 3), wantV: 9, wantE: 12,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.AreNeighbours(0, 1))
				require.True(t, g.AreNeighbours(0, 3))
				require.False(t, g.AreNeighbours(0, 4))
				require.Equal(t, 4, g.Degree(4))
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.AreNeighbours(2, 3))
				require.False(t, g.AreNeighbours(0, 3))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.AreNeighbours(4, 0))
				for i := 0; i < 5; i++ {
					require.Equal(t, 2, g.Degree(i))
				}
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 4, g.Degree(0))
				require.False(t, g.AreNeighbours(1, 2))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 4, g.Degree(0))
				require.Equal(t, 3, g.Degree(1))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.Len())
			require.Equal(t, tc.wantE, g.EdgeCount())
			require.NoError(t, g.Validate())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestGrid_Placement(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSpacing(2), builder.WithOrigin(vector.New(1, 1))},
		builder.Grid(2, 2),
	)
	require.NoError(t, err)
	require.Equal(t, []vector.Vec{
		vector.New(1, 1), vector.New(1, 3),
		vector.New(3, 1), vector.New(3, 3),
	}, positions(g))
}

func TestRing_Radius(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRadius(3)}, builder.Cycle(6))
	require.NoError(t, err)
	for _, p := range positions(g) {
		require.InDelta(t, 3, p.Mag(), 1e-9)
	}
}

func TestComposition_AppendsAfterExisting(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, 5, g.Len())
	require.Equal(t, 3, g.EdgeCount())
	require.False(t, g.AreNeighbours(1, 2), "separate constructors are not linked")
	require.True(t, g.AreNeighbours(2, 3))
}

func TestReference(t *testing.T) {
	g, err := builder.Reference()
	require.NoError(t, err)
	require.Equal(t, 9, g.Len())
	require.Equal(t, 5, g.EdgeCount())
	for _, e := range builder.ReferenceEdges() {
		require.True(t, g.AreNeighbours(e[0], e[1]), "edge %v", e)
	}
	n7, err := g.NodeAt(7)
	require.NoError(t, err)
	require.Equal(t, vector.New(10, 5), n7.Position)
}

func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Grid rows=0", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"Lattice cols=0", builder.Lattice(2, 0), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Edges out of range", builder.Edges([2]int{0, 1}), nil, core.ErrIndexOutOfRange},
		{"Jitter without rng", builder.Path(3), []builder.BuilderOption{builder.WithJitter(1)}, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.Nil(t, g)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := builder.BuildGraph(nil, builder.Lattice(1, 2), builder.Edges([2]int{1, 1}))
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestJitter_Deterministic(t *testing.T) {
	build := func() []vector.Vec {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithJitter(0.5), builder.WithSeed(42)},
			builder.Lattice(2, 2),
		)
		require.NoError(t, err)
		return positions(g)
	}
	a, b := build(), build()
	require.Equal(t, a, b)

	plain, err := builder.BuildGraph(nil, builder.Lattice(2, 2))
	require.NoError(t, err)
	for i, p := range positions(plain) {
		d := a[i].Sub(p)
		require.LessOrEqual(t, math.Abs(d.X), 0.5)
		require.LessOrEqual(t, math.Abs(d.Y), 0.5)
	}
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { builder.WithSpacing(0) })
	require.Panics(t, func() { builder.WithSpacing(math.Inf(1)) })
	require.Panics(t, func() { builder.WithRadius(-1) })
	require.Panics(t, func() { builder.WithJitter(math.NaN()) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.NotPanics(t, func() { builder.WithJitter(0) })
}
