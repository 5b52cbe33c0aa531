// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

// Reference layout: 3×3 lattice at spacing 5, node k = 3*i + j at (5i, 5j).
const (
	refSide    = 3
	refSpacing = 5.0
)

// refEdges are the five seed edges of the reference graph.
var refEdges = [][2]int{
	{0, 1},
	{0, refSide},
	{0, refSide + 1},
	{refSide + 1, 2},
	{refSide + 1, 2*refSide + 1},
}

// referenceGraph builds the 9-node, 5-edge reference graph.
func referenceGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < refSide; i++ {
		for j := 0; j < refSide; j++ {
			g.AddNode(vector.New(float64(i)*refSpacing, float64(j)*refSpacing))
		}
	}
	for _, e := range refEdges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// pathGraph builds n nodes on the x axis joined in sequence.
func pathGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(vector.New(float64(i), 0))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	return g
}

// ids returns the node identities in positional order.
func ids(g *core.Graph) []core.NodeID {
	nodes := g.Nodes()
	out := make([]core.NodeID, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}
