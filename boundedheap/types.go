package boundedheap

import "math"

// Entry is a (vertex, key) pair as seen from outside the heap: a vertex
// identifier together with its distance key.
type Entry struct {
	Vertex int
	Key    float64
}

// entry is the internal representation stored inside blocks. It is
// identical in shape to Entry; kept as a distinct type so block-internal
// code never has to reason about which fields callers are allowed to see.
type entry struct {
	vertex int
	key    float64
}

// block is a bucket of entries. Blocks in d1 are kept in non-decreasing
// order of upperBound and are split once they exceed capacity M; blocks in
// d0 are whole chunks dropped in front by BatchPrepend and never split.
type block struct {
	items      []entry
	sorted     bool
	upperBound float64 // meaningful for d1 blocks only
}

func newD1TailBlock() *block {
	return &block{upperBound: math.Inf(1)}
}

// Heap is the bounded priority frontier described in package boundedheap's
// doc comment: capacity M, current upper bound B, at most one live entry
// per vertex (re-inserting keeps the smaller key).
type Heap struct {
	m    int
	b    float64
	best map[int]float64 // vertex -> current best key, for dedup + Pull's B' scan
	d0   []*block         // batch-prepended blocks, smallest-first
	d1   []*block         // inserted blocks, ascending by upperBound
}

// New constructs an empty Heap with capacity m and upper bound b. m must be
// positive.
func New(m int, b float64) (*Heap, error) {
	if m <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	return &Heap{
		m:    m,
		b:    b,
		best: make(map[int]float64),
	}, nil
}

// Len returns the number of distinct live vertices currently held.
func (h *Heap) Len() int {
	return len(h.best)
}

// Empty reports whether no entries remain.
func (h *Heap) Empty() bool {
	return len(h.best) == 0
}
