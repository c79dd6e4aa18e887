package builder

import "github.com/katalvlaran/sfcurve/curverule"

// WithMaxLevel sets the engine's recursion depth L (>= 1). Panics on
// level < 1: like the teacher's WithAmplitude/WithFrequency, a
// non-positive value can never be meaningful, so it is rejected at
// option-construction time rather than threaded through as a runtime
// error.
func WithMaxLevel(level int) Option {
	if level < 1 {
		panic("builder: WithMaxLevel(level < 1)")
	}
	return func(cfg *config) {
		cfg.maxLevel = level
	}
}

// WithHilbert selects the built-in Hilbert curve family (curverule.NewHilbert),
// resolved against the target envelope's dimension inside Build.
func WithHilbert() Option {
	return func(cfg *config) {
		cfg.family = familyHilbert
		cfg.rule = nil
	}
}

// WithZOrder selects the built-in Z-order (Morton) curve family
// (curverule.NewZOrder), resolved against the target envelope's
// dimension inside Build.
func WithZOrder() Option {
	return func(cfg *config) {
		cfg.family = familyZOrder
		cfg.rule = nil
	}
}

// WithRule supplies a caller-constructed curverule.CurveRule directly,
// overriding WithHilbert/WithZOrder. Panics on nil: a nil root rule can
// never construct a valid engine, matching sfcurve.New's own
// ErrInvalidArgument check, surfaced earlier here as a programmer error.
func WithRule(rule curverule.CurveRule) Option {
	if rule == nil {
		panic("builder: WithRule(nil)")
	}
	return func(cfg *config) {
		cfg.rule = rule
		cfg.family = familyNone
	}
}
