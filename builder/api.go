package builder

import (
	"fmt"

	"github.com/katalvlaran/sfcurve"
	"github.com/katalvlaran/sfcurve/curverule"
	"github.com/katalvlaran/sfcurve/envelope"
)

// Build resolves opts into a config, picks or constructs the root
// curverule.CurveRule for rng's dimension, and constructs the
// sfcurve.Engine. It is the single orchestrator, matching BuildGraph's
// role in the teacher's builder package: one public entry point that
// resolves options and wraps the underlying construction error with
// "builder: %w" context.
//
// Errors:
//   - ErrMaxLevelRequired if WithMaxLevel was never supplied.
//   - ErrNoCurveFamily if neither WithHilbert, WithZOrder nor WithRule
//     was supplied.
//   - Any error sfcurve.New / curverule.NewHilbert / curverule.NewZOrder
//     returns, wrapped with "builder: %w".
func Build(rng envelope.Envelope, opts ...Option) (*sfcurve.Engine, error) {
	cfg := newConfig(opts...)

	if cfg.maxLevel < 1 {
		return nil, ErrMaxLevelRequired
	}

	rule := cfg.rule
	if rule == nil {
		var err error
		switch cfg.family {
		case familyHilbert:
			rule, err = curverule.NewHilbert(rng.Dimension())
		case familyZOrder:
			rule, err = curverule.NewZOrder(rng.Dimension())
		default:
			return nil, ErrNoCurveFamily
		}
		if err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	eng, err := sfcurve.New(rng, cfg.maxLevel, rule)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	return eng, nil
}
