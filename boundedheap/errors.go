package boundedheap

import "errors"

// Sentinel errors returned by Heap operations.
var (
	// ErrNonPositiveCapacity indicates New was called with M <= 0.
	ErrNonPositiveCapacity = errors.New("boundedheap: capacity M must be positive")

	// ErrKeyNotBelowBound indicates Insert or BatchPrepend received a key
	// that is not strictly below the heap's current bound B. This is a
	// programming error on the caller's part (pivots/bmssp should never
	// construct such a key) rather than something the heap can silently
	// repair.
	ErrKeyNotBelowBound = errors.New("boundedheap: key is not below the heap's bound")
)
