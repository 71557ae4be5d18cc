package bmssp

import "errors"

// Sentinel errors returned by BMSSP. All of them indicate a violated
// precondition (a programming bug in the caller) rather than a runtime
// condition the algorithm can recover from.
var (
	// ErrNegativeLevel indicates l < 0.
	ErrNegativeLevel = errors.New("bmssp: level l must be non-negative")

	// ErrEmptySourceSet indicates S was empty.
	ErrEmptySourceSet = errors.New("bmssp: source set S is empty")

	// ErrSourceNotBelowBound indicates some s in S has d[s] >= B.
	ErrSourceNotBelowBound = errors.New("bmssp: source vertex distance is not below B")
)
