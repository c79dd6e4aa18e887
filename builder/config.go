package builder

import "github.com/katalvlaran/sfcurve/curverule"

// ruleFamily names a built-in curve family resolved once the target
// dimension is known (a rule's shape depends on dimension, so it cannot
// be constructed at option-application time the way WithMaxLevel's int
// can be stored directly).
type ruleFamily int

const (
	familyNone ruleFamily = iota
	familyHilbert
	familyZOrder
)

// Option customizes a config before Build constructs the engine. It
// mutates config the same way the teacher's BuilderOption mutates
// builderConfig: in order, later options overriding earlier ones.
type Option func(cfg *config)

// config holds everything Build needs to resolve before constructing an
// sfcurve.Engine. Exactly one of family or rule ends up set; Build
// rejects the zero value of both with ErrNoCurveFamily.
type config struct {
	maxLevel int
	family   ruleFamily
	rule     curverule.CurveRule // set only by WithRule, overrides family
}

// newConfig applies opts in order over the zero config. maxLevel 0 and
// family familyNone are deliberately invalid defaults: Build must see an
// explicit WithMaxLevel and an explicit curve-family option, matching the
// teacher's principle that meaningful topology parameters (n, rows,
// cols) are never silently defaulted, only cosmetic ones (ID scheme,
// weight function) are.
func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
