package core_test

import (
	"testing"

	"github.com/katalvlaran/lvminor/vector"
)

func BenchmarkGraph_Clone(b *testing.B) {
	g := pathGraph(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

func BenchmarkGraph_ContractEdge(b *testing.B) {
	base := pathGraph(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		_ = g.ContractEdge(0, 1)
	}
}

func BenchmarkGraph_AddNode(b *testing.B) {
	g := pathGraph(b, 0)
	for i := 0; i < b.N; i++ {
		g.AddNode(vector.New(float64(i), 0))
	}
}
