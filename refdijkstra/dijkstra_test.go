package refdijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-graphs/bmssp/graph"
	"github.com/lattice-graphs/bmssp/refdijkstra"
)

func TestSolve_RejectsSourceOutOfRange(t *testing.T) {
	g := graph.New(3)
	_, _, err := refdijkstra.Solve(g, 5)
	require.ErrorIs(t, err, refdijkstra.ErrSourceOutOfRange)
}

func TestSolve_LineGraph(t *testing.T) {
	n := 5
	g := graph.New(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	dist, pred, err := refdijkstra.Solve(g, 0)
	require.NoError(t, err)
	for v := 0; v < n; v++ {
		require.Equal(t, float64(v), dist[v])
	}
	require.Equal(t, refdijkstra.NoPredecessor, pred[0])
	for v := 1; v < n; v++ {
		require.Equal(t, v-1, pred[v])
	}
}

func TestSolve_DiamondPicksShorterBranch(t *testing.T) {
	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	dist, pred, err := refdijkstra.Solve(g, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, dist[3])
	require.Equal(t, 2, pred[3])
}

func TestSolve_UnreachableVertexStaysAtInfinity(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, 1))

	dist, pred, err := refdijkstra.Solve(g, 0)
	require.NoError(t, err)
	require.Equal(t, math.Inf(1), dist[2])
	require.Equal(t, refdijkstra.NoPredecessor, pred[2])
}

func TestSolve_ZeroWeightEdgesSettleAtSourceDistance(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	dist, _, err := refdijkstra.Solve(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, dist[0])
	require.Equal(t, 0.0, dist[1])
	require.Equal(t, 0.0, dist[2])
}

func TestSolve_SourceWithNoOutEdgesReachesOnlyItself(t *testing.T) {
	g := graph.New(2)
	dist, _, err := refdijkstra.Solve(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, dist[0])
	require.Equal(t, math.Inf(1), dist[1])
}
