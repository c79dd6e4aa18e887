package sfcurve

import "errors"

// Sentinel errors returned by the root sfcurve package.
var (
	// ErrInvalidArgument is returned by New when maxLevel < 1, the range's
	// dimension is outside {1,2,3}, the root rule's dimension doesn't
	// match the range, or maxLevel*dimension would overflow a 63-bit key
	// space.
	ErrInvalidArgument = errors.New("sfcurve: invalid maxLevel, dimension, or root rule")
	// ErrInvalidLevel is returned when a level argument is < 1 or exceeds
	// the engine's maxLevel.
	ErrInvalidLevel = errors.New("sfcurve: level must be in [1, maxLevel]")
)
