package bmssp

import "math"

// Params holds the three derived constants that govern BMSSP's recursion:
// pivot budget k, batch-size exponent t, and recursion depth l_max. They
// are computed once from the vertex count n and held fixed for the
// lifetime of one sssp.Solve call.
type Params struct {
	K    int
	T    int
	LMax int
}

// NewParams derives k, t, and l_max from n following the distilled
// formulas, each floored at 1 so a graph with n <= 2 still recurses
// sensibly instead of degenerating to zero-sized batches.
//
//	k     = floor(log2(max(n,2))^(1/3))
//	t     = floor(log2(max(n,2))^(2/3))
//	l_max = ceil(log2(max(n,2)) / t)
func NewParams(n int) Params {
	x := float64(n)
	if x < 2 {
		x = 2
	}
	logN := math.Log2(x)

	k := int(math.Floor(math.Pow(logN, 1.0/3.0)))
	if k < 1 {
		k = 1
	}

	t := int(math.Floor(math.Pow(logN, 2.0/3.0)))
	if t < 1 {
		t = 1
	}

	lMax := int(math.Ceil(logN / float64(t)))
	if lMax < 1 {
		lMax = 1
	}

	return Params{K: k, T: t, LMax: lMax}
}

// batchSize returns 2^(l*t), the intended |U| scale at level l.
func (p Params) batchSize(l int) int {
	return 1 << uint(l*p.T)
}

// heapCapacity returns 2^((l-1)*t), the BoundedHeap capacity M used when
// recursing at level l (l >= 1).
func (p Params) heapCapacity(l int) int {
	exp := (l - 1) * p.T
	if exp < 0 {
		exp = 0
	}

	return 1 << uint(exp)
}
