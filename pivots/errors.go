package pivots

import "errors"

// Sentinel errors returned by FindPivots.
var (
	// ErrSourceNotBelowBound indicates some vertex in S has a tentative
	// distance that is not strictly below B, violating FindPivots'
	// precondition that every source is a candidate for further relaxation.
	ErrSourceNotBelowBound = errors.New("pivots: source vertex distance is not below B")

	// ErrEmptySourceSet indicates S was empty; FindPivots has nothing to
	// pivot from.
	ErrEmptySourceSet = errors.New("pivots: source set S is empty")
)
