package basecase_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-graphs/bmssp/basecase"
	"github.com/lattice-graphs/bmssp/diststore"
	"github.com/lattice-graphs/bmssp/graph"
)

func chain(t *testing.T, n int, w float64) *graph.Graph {
	t.Helper()
	g := graph.New(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1, w))
	}
	return g
}

func TestBaseCase_RejectsSourceNotBelowBound(t *testing.T) {
	g := graph.New(2)
	store := diststore.New(2, 0)

	_, _, err := basecase.BaseCase(store, g, 0, 0, 1)
	require.ErrorIs(t, err, basecase.ErrSourceNotBelowBound)
}

// k+1 settlements reached before the bound cuts exploration off: B' becomes
// the (k+1)-th smallest settled distance, and U excludes the settlement
// that defines it.
func TestBaseCase_SettlesExactlyKPlusOneAndTightensBound(t *testing.T) {
	g := chain(t, 6, 1)
	store := diststore.New(6, 0)

	bPrime, U, err := basecase.BaseCase(store, g, math.Inf(1), 0, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, bPrime)

	sort.Ints(U)
	require.Equal(t, []int{0, 1}, U)
	require.LessOrEqual(t, len(U), 2)
}

// The bound exhausts all candidates before k+1 settlements: B' is returned
// unchanged and U is every vertex that settled.
func TestBaseCase_BoundExhaustsBeforeLimit(t *testing.T) {
	g := chain(t, 3, 1)
	store := diststore.New(3, 0)

	bPrime, U, err := basecase.BaseCase(store, g, 1.5, 0, 5)
	require.NoError(t, err)
	require.Equal(t, 1.5, bPrime)

	sort.Ints(U)
	require.Equal(t, []int{0, 1}, U)
	require.Equal(t, math.Inf(1), store.Distance(2)) // never reached: edge weight pushed it past the bound
}

// A positive-weight self-loop can never improve a vertex's own distance, so
// it must not be mistaken for a real relaxation.
func TestBaseCase_SelfLoopNeverImproves(t *testing.T) {
	g := graph.New(2)
	require.NoError(t, g.AddEdge(0, 0, 3))
	require.NoError(t, g.AddEdge(0, 1, 1))
	store := diststore.New(2, 0)

	bPrime, U, err := basecase.BaseCase(store, g, math.Inf(1), 0, 5)
	require.NoError(t, err)
	require.Equal(t, math.Inf(1), bPrime)

	sort.Ints(U)
	require.Equal(t, []int{0, 1}, U)
	require.Equal(t, 0.0, store.Distance(0))
}

// Zero-weight edges can settle several vertices at the same tentative
// distance; when the (k+1)-th smallest settled distance ties the rest, U
// legitimately comes back empty.
func TestBaseCase_ZeroWeightTieYieldsEmptyU(t *testing.T) {
	g := chain(t, 3, 0)
	store := diststore.New(3, 0)

	bPrime, U, err := basecase.BaseCase(store, g, math.Inf(1), 0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, bPrime)
	require.Empty(t, U)
}

// A disconnected vertex never enters the heap at all; BaseCase terminates
// on heap exhaustion without needing a distinct "disconnected" code path.
func TestBaseCase_DisconnectedSourceSettlesOnlyItself(t *testing.T) {
	g := graph.New(3) // no edges at all
	store := diststore.New(3, 0)

	bPrime, U, err := basecase.BaseCase(store, g, math.Inf(1), 0, 5)
	require.NoError(t, err)
	require.Equal(t, math.Inf(1), bPrime)
	require.Equal(t, []int{0}, U)
}
