package curverule

import "errors"

// Sentinel errors returned by curverule constructors.
var (
	// ErrInvalidDimension indicates a dimension outside {1,2,3}.
	ErrInvalidDimension = errors.New("curverule: dimension must be 1, 2 or 3")
	// ErrMalformedRule indicates a rule's npointValues is not a
	// permutation of [0, 2^d), or that childAt is not total over
	// [0, 2^d) for every reachable rule.
	ErrMalformedRule = errors.New("curverule: npointValues is not a permutation of [0, 2^d)")
)
