package boundedheap

import (
	"math"
	"sort"
)

// Insert adds (v, key) to the heap. If v is already present with a
// smaller or equal key, the existing entry wins and this is a no-op.
// Requires key < the heap's current bound B.
//
// Complexity: amortized O(1) up to the O(log(N/M)) split factor from
// Lemma 3.3 — a binary search over d1's block upper bounds plus an
// occasional block split.
func (h *Heap) Insert(v int, key float64) error {
	if key >= h.b {
		return ErrKeyNotBelowBound
	}
	if old, ok := h.best[v]; ok && key >= old {
		return nil
	}
	h.best[v] = key
	h.insertIntoD1(entry{vertex: v, key: key})

	return nil
}

func (h *Heap) insertIntoD1(e entry) {
	idx := sort.Search(len(h.d1), func(i int) bool { return h.d1[i].upperBound >= e.key })
	if idx == len(h.d1) {
		if len(h.d1) == 0 {
			h.d1 = append(h.d1, newD1TailBlock())
		}
		idx = len(h.d1) - 1
	}

	blk := h.d1[idx]
	blk.items = append(blk.items, e)
	blk.sorted = false

	if len(blk.items) > h.m {
		h.splitD1(idx)
	}
}

// splitD1 halves an overgrown d1 block in place, sorting it once to find
// the median and handing the upper half to a new block inserted right
// after it.
func (h *Heap) splitD1(idx int) {
	blk := h.d1[idx]
	sort.Slice(blk.items, func(i, j int) bool { return blk.items[i].key < blk.items[j].key })
	blk.sorted = true

	mid := len(blk.items) / 2
	upper := append([]entry(nil), blk.items[mid:]...)
	lower := blk.items[:mid]

	newBlk := &block{items: upper, sorted: true, upperBound: blk.upperBound}
	blk.items = lower
	blk.upperBound = lower[len(lower)-1].key

	h.d1 = append(h.d1[:idx+1], append([]*block{newBlk}, h.d1[idx+1:]...)...)
}

// BatchPrepend bulk-inserts entries expected to all be smaller than
// anything currently in the heap (the caller's responsibility — see
// BMSSP's use of batch-prepend for deferred sub-bound work). Entries
// sharing a vertex keep the smallest key; a vertex already present with a
// smaller-or-equal key is left untouched. Requires every key < the heap's
// current bound B, same as Insert.
//
// Complexity: O(K log K) to sort the K new entries, then O(K/M) new
// blocks dropped in front of d0.
func (h *Heap) BatchPrepend(pairs []Entry) error {
	if len(pairs) == 0 {
		return nil
	}

	for _, p := range pairs {
		if p.Key >= h.b {
			return ErrKeyNotBelowBound
		}
	}

	grouped := make(map[int]float64, len(pairs))
	for _, p := range pairs {
		if cur, ok := grouped[p.Vertex]; !ok || p.Key < cur {
			grouped[p.Vertex] = p.Key
		}
	}

	filtered := make([]entry, 0, len(grouped))
	for v, key := range grouped {
		if old, ok := h.best[v]; ok && key >= old {
			continue
		}
		h.best[v] = key
		filtered = append(filtered, entry{vertex: v, key: key})
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].key != filtered[j].key {
			return filtered[i].key < filtered[j].key
		}
		return filtered[i].vertex < filtered[j].vertex
	})

	newBlocks := make([]*block, 0, len(filtered)/h.m+1)
	for i := 0; i < len(filtered); i += h.m {
		end := i + h.m
		if end > len(filtered) {
			end = len(filtered)
		}
		chunk := append([]entry(nil), filtered[i:end]...)
		newBlocks = append(newBlocks, &block{items: chunk, sorted: true, upperBound: chunk[len(chunk)-1].key})
	}

	h.d0 = append(newBlocks, h.d0...)

	return nil
}

// Pull removes and returns the M smallest-keyed live vertices (or every
// live vertex, if at most M remain), together with a new bound B' that
// strictly separates the returned set from whatever is left.
//
// If the heap is empty, Pull returns the heap's current bound and an
// empty slice.
func (h *Heap) Pull() (float64, []Entry, error) {
	total := len(h.best)
	if total == 0 {
		return h.b, nil, nil
	}

	if total <= h.m {
		out := make([]Entry, 0, total)
		for v, k := range h.best {
			out = append(out, Entry{Vertex: v, Key: k})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Key != out[j].Key {
				return out[i].Key < out[j].Key
			}
			return out[i].Vertex < out[j].Vertex
		})
		h.best = make(map[int]float64)
		h.d0 = nil
		h.d1 = nil

		return h.b, out, nil
	}

	collected := make([]Entry, 0, h.m)
	h.d0 = h.drainBlocks(h.d0, &collected)
	if len(collected) < h.m {
		h.d1 = h.drainBlocks(h.d1, &collected)
	}

	return h.peekMin(), collected, nil
}

// drainBlocks consumes live entries from blocks (front to back) into
// *collected until it reaches h.m entries or blocks run out, discarding
// stale entries (ones superseded by a smaller key recorded elsewhere)
// along the way. It returns the blocks that still hold unconsumed items.
func (h *Heap) drainBlocks(blocks []*block, collected *[]Entry) []*block {
	kept := blocks[:0]
	for _, blk := range blocks {
		if len(*collected) < h.m {
			h.drainOne(blk, collected)
		}
		if len(blk.items) > 0 {
			kept = append(kept, blk)
		}
	}

	return kept
}

func (h *Heap) drainOne(blk *block, collected *[]Entry) {
	if !blk.sorted {
		sort.Slice(blk.items, func(i, j int) bool { return blk.items[i].key < blk.items[j].key })
		blk.sorted = true
	}

	i := 0
	for i < len(blk.items) && len(*collected) < h.m {
		it := blk.items[i]
		i++
		if cur, ok := h.best[it.vertex]; ok && cur == it.key {
			*collected = append(*collected, Entry{Vertex: it.vertex, Key: it.key})
			delete(h.best, it.vertex)
		}
	}
	blk.items = blk.items[i:]
}

// peekMin scans remaining blocks, front to back, for the smallest live
// (non-stale) key. Falls back to a full scan of h.best in the rare case
// no live entry turns up in the blocks scanned (kept as a safety net, not
// the common path).
func (h *Heap) peekMin() float64 {
	if len(h.best) == 0 {
		return h.b
	}

	for _, blk := range h.d0 {
		if k, ok := firstLive(blk, h.best); ok {
			return k
		}
	}
	for _, blk := range h.d1 {
		if k, ok := firstLive(blk, h.best); ok {
			return k
		}
	}

	min := math.Inf(1)
	for _, k := range h.best {
		if k < min {
			min = k
		}
	}

	return min
}

func firstLive(blk *block, best map[int]float64) (float64, bool) {
	if !blk.sorted {
		sort.Slice(blk.items, func(i, j int) bool { return blk.items[i].key < blk.items[j].key })
		blk.sorted = true
	}
	for _, it := range blk.items {
		if cur, ok := best[it.vertex]; ok && cur == it.key {
			return it.key, true
		}
	}

	return 0, false
}
