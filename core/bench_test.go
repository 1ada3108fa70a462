package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/routegraph/core"
)

// BenchmarkAddEdge measures insertion into a growing chain.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1), 1)
	}
}

// BenchmarkNeighbors measures the sorted adjacency snapshot of a hub vertex.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 64; i++ {
		_ = g.AddEdge("hub", "v"+strconv.Itoa(i), float64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("hub")
	}
}
