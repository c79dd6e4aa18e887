package builder

import "errors"

// Sentinel errors returned by Build for a missing option. Any other error
// Build returns comes from sfcurve.New or the curverule constructors,
// wrapped with "builder: %w"; option constructors panic instead whenever
// a value can never be meaningful (see options.go).
var (
	// ErrMaxLevelRequired indicates Build was called without WithMaxLevel.
	ErrMaxLevelRequired = errors.New("builder: WithMaxLevel is required")
	// ErrNoCurveFamily indicates Build was called without WithHilbert,
	// WithZOrder or WithRule.
	ErrNoCurveFamily = errors.New("builder: WithHilbert, WithZOrder or WithRule is required")
)
