package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrNonPositiveDimension indicates a dimension was not a positive integer.
	ErrNonPositiveDimension = errors.New("lattice: dimensions must all be positive")
)
