package coverage

import "errors"

// ErrNegativeTolerance indicates NewOptions was given a negative
// tolerance, which can never be meaningful (a gap in keys is never
// negative).
var ErrNegativeTolerance = errors.New("coverage: tolerance must be >= 0")
