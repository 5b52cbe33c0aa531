package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

// TestGraph_StepAndEditDoNotInterleave runs layout-style steps and edits on
// one graph from several goroutines. Run with -race.
func TestGraph_StepAndEditDoNotInterleave(t *testing.T) {
	g := pathGraph(t, 16)
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for k := 0; k < 200; k++ {
			g.Step(func(f *core.Frame) {
				// within a step the size cannot change under us
				n := f.Len()
				for i := 0; i < n; i++ {
					nd := f.Node(i)
					f.SetKinematics(i, vector.Zero(), nd.Velocity, nd.Position.Add(vector.New(0, 1e-3)))
				}
				if n != f.Len() {
					panic("graph changed during a step")
				}
			})
		}
	}()
	go func() {
		defer wg.Done()
		for k := 0; k < 50; k++ {
			n := g.AddNode(vector.New(float64(k), 1))
			_ = g.AddEdge(0, g.Len()-1)
			g.RemoveNode(n.ID)
		}
	}()
	wg.Wait()

	require.Equal(t, 16, g.Len())
	require.NoError(t, g.Validate())
}
