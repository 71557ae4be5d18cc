package sssp_test

import (
	"testing"

	"github.com/lattice-graphs/bmssp/internal/graphgen"
	"github.com/lattice-graphs/bmssp/refdijkstra"
	"github.com/lattice-graphs/bmssp/sssp"
)

// BenchmarkSolve_SparseGraph measures sssp.Solve on a sparse random graph,
// the regime BMSSP's log^(2/3) n bound is meant to pay off in.
func BenchmarkSolve_SparseGraph(b *testing.B) {
	g, err := graphgen.New(20000, 4, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sssp.Solve(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReferenceDijkstra_SparseGraph runs the same graph through the
// reference Dijkstra oracle, for a side-by-side comparison.
func BenchmarkReferenceDijkstra_SparseGraph(b *testing.B) {
	g, err := graphgen.New(20000, 4, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := refdijkstra.Solve(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
