package basecase

import "errors"

// ErrSourceNotBelowBound indicates the source vertex's tentative distance
// is not strictly below B.
var ErrSourceNotBelowBound = errors.New("basecase: source vertex distance is not below B")
