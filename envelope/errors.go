package envelope

import "errors"

// Sentinel errors returned by envelope constructors.
var (
	// ErrInvalidDimension indicates a dimension count outside {1,2,3}.
	ErrInvalidDimension = errors.New("envelope: dimension must be 1, 2 or 3")
	// ErrInvertedBounds indicates max < min on some dimension.
	ErrInvertedBounds = errors.New("envelope: max must be >= min on every dimension")
	// ErrLengthMismatch indicates min/max slices of differing length.
	ErrLengthMismatch = errors.New("envelope: min and max must have the same length")
)
