package bmssp_test

import (
	"fmt"
	"math"

	"github.com/lattice-graphs/bmssp/bmssp"
	"github.com/lattice-graphs/bmssp/diststore"
	"github.com/lattice-graphs/bmssp/graph"
)

// ExampleBMSSP runs the recursion directly from a single source, bypassing
// the sssp.Solve convenience wrapper to show the pieces it assembles.
func ExampleBMSSP() {
	g := graph.New(6)
	edges := [][3]float64{
		{0, 1, 2},
		{0, 2, 5},
		{1, 3, 4},
		{2, 3, 1},
		{1, 4, 1},
		{3, 5, 3},
		{4, 5, 2},
	}
	for _, e := range edges {
		_ = g.AddEdge(int(e[0]), int(e[1]), e[2])
	}

	store := diststore.New(g.N(), 0)
	params := bmssp.NewParams(g.N())

	_, _, err := bmssp.BMSSP(store, g, params, params.LMax, math.Inf(1), []int{0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Shortest distances from node 0:")
	for v := 0; v < g.N(); v++ {
		d := store.Distance(v)
		if math.IsInf(d, 1) {
			fmt.Printf("  Node %d: unreachable\n", v)
			continue
		}
		fmt.Printf("  Node %d: %.0f\n", v, d)
	}

	// Output:
	// Shortest distances from node 0:
	//   Node 0: 0
	//   Node 1: 2
	//   Node 2: 5
	//   Node 3: 6
	//   Node 4: 3
	//   Node 5: 5
}
