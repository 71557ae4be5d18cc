package basecase

// nodeItem pairs a vertex with the distance it had when pushed onto the
// heap. A vertex may appear more than once if it was relaxed again after
// being pushed; see nodePQ's doc comment.
type nodeItem struct {
	vertex int
	dist   float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. BaseCase uses
// a lazy decrease-key strategy: a relaxed vertex is pushed again rather
// than having its existing entry updated in place, and stale entries are
// detected and skipped when popped (by comparing the popped dist against
// the vertex's current tentative distance in the DistanceStore).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
