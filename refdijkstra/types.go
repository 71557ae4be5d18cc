package refdijkstra

// nodeItem pairs a vertex with its distance from the source at the time it
// was pushed. Stale entries (a vertex already settled with a better
// distance) are left in the heap and skipped on pop rather than removed.
type nodeItem struct {
	vertex int
	dist   float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, matching
// container/heap.Interface.
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
