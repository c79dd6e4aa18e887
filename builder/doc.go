// Package builder provides a fluent, functional-options constructor for
// sfcurve.Engine, the way the teacher's builder package composes a
// *core.Graph from BuilderOption values and Constructor closures: a single
// orchestrator (Build) resolves a config from options, then hands it to
// the one piece of real construction logic.
//
// Unlike the teacher's topology builders, there is nothing stochastic in a
// space-filling curve: the same envelope, maxLevel and curve family always
// produce the same engine, so there is no WithSeed/WithRand analogue here.
// What does carry over is the option shape itself:
//
//   - Option is a function over an unexported config, exactly like
//     BuilderOption over builderConfig.
//   - Option constructors validate eagerly and panic on inputs that can
//     never be meaningful (WithMaxLevel(0), WithRule(nil)), matching the
//     teacher's "99-rules" split between option-time panics and
//     runtime sentinel errors.
//   - Build itself never panics: a missing option resolves to one of the
//     sentinel errors below, and an error from the underlying construction
//     (for example a rule whose dimension does not match the envelope) is
//     wrapped with "builder: %w" context at the API boundary, matching
//     BuildGraph's "BuildGraph: %w" wrapping.
//
// Errors:
//
//   - ErrMaxLevelRequired: no WithMaxLevel option was supplied.
//   - ErrNoCurveFamily: neither WithHilbert, WithZOrder nor WithRule was
//     supplied.
package builder
