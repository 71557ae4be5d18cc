// Package boundedheap implements the frontier carrier BMSSP hands between
// recursion levels: a priority container parameterized by a capacity M and
// an upper bound B, supporting insert, batch-prepend, and a Pull operation
// that peels off the M smallest keys and reports a new separating bound.
//
// Representation:
//
// A Heap keeps two deques of blocks, following the data structure sketched
// in Lemma 3.3 of the Duan-Mao-Mao-Shu-Yin paper:
//
//   - d0, blocks created by BatchPrepend, ordered so the most recently
//     prepended block holds the smallest keys. Pull drains these first.
//   - d1, blocks created by Insert, kept in non-decreasing order of block
//     upper bound and split once a block exceeds capacity M.
//
// Insert locates the first d1 block whose upper bound can hold the new
// key via binary search (amortized O(1) per insert up to an O(log(N/M))
// split factor, matching the paper's bound); Pull drains whichever blocks
// hold the globally smallest keys across d0 then d1, sorting a block's
// contents the first time Pull drains or scans it while it is unsorted
// (O(M log M) per block, since a d1 block is split once it exceeds M).
//
// A Heap is created fresh per BMSSP frame and discarded on return — it
// never outlives the call that built it.
package boundedheap
