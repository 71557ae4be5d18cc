// Command bmsspdemo builds a random sparse graph and runs sssp.Solve on it,
// printing a distance/predecessor table for the first few vertices and the
// wall-clock time. Optionally also runs refdijkstra.Solve on the same graph
// for a side-by-side timing comparison.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lattice-graphs/bmssp/internal/graphgen"
	"github.com/lattice-graphs/bmssp/refdijkstra"
	"github.com/lattice-graphs/bmssp/sssp"
)

const previewRows = 10

func main() {
	vertices := flag.Int("vertices", 10000, "number of vertices")
	edgeFactor := flag.Float64("edge-factor", 4, "target average out-degree")
	seed := flag.Int64("seed", 1, "random seed for graph generation")
	source := flag.Int("source", 0, "source vertex")
	compare := flag.Bool("compare", false, "also run refdijkstra.Solve for a timing comparison")
	flag.Parse()

	g, err := graphgen.New(*vertices, *edgeFactor, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bmsspdemo:", err)
		os.Exit(1)
	}

	start := time.Now()
	store, err := sssp.Solve(g, *source)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bmsspdemo:", err)
		os.Exit(1)
	}

	fmt.Printf("sssp.Solve: %d vertices, source=%d, elapsed=%v\n", *vertices, *source, elapsed)
	printPreview(store.Distances(), store.Predecessors())

	if *compare {
		start = time.Now()
		dist, _, err := refdijkstra.Solve(g, *source)
		refElapsed := time.Since(start)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bmsspdemo: refdijkstra:", err)
			os.Exit(1)
		}

		fmt.Printf("refdijkstra.Solve: elapsed=%v (sssp.Solve was %.2fx that)\n",
			refElapsed, elapsed.Seconds()/refElapsed.Seconds())

		mismatches := 0
		for v, d := range dist {
			if d != store.Distance(v) {
				mismatches++
			}
		}
		fmt.Printf("distance mismatches vs refdijkstra: %d\n", mismatches)
	}
}

func printPreview(dist []float64, pred []int) {
	n := len(dist)
	rows := previewRows
	if rows > n {
		rows = n
	}

	fmt.Println("vertex\tdist\tpred")
	for v := 0; v < rows; v++ {
		if math.IsInf(dist[v], 1) {
			fmt.Printf("%d\tInf\t%d\n", v, pred[v])
			continue
		}
		fmt.Printf("%d\t%.2f\t%d\n", v, dist[v], pred[v])
	}
	if rows < n {
		fmt.Printf("... (%d more vertices)\n", n-rows)
	}
}
