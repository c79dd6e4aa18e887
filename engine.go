package sfcurve

import (
	"github.com/katalvlaran/sfcurve/curverule"
	"github.com/katalvlaran/sfcurve/envelope"
	"github.com/katalvlaran/sfcurve/normalize"
)

// Key is an opaque derived position along the curve, in [0, ValueWidth()).
// Callers persist keys in any ordered index; sfcurve never interprets them
// beyond the arithmetic needed for encode/decode/range-search.
type Key = uint64

// Engine is the space-filling curve index core. Only the starting
// curverule.CurveRule varies between curve flavors (Hilbert, Z-order, or a
// caller-supplied rule), so Engine is a single concrete struct
// parameterized by that root rule rather than one type per flavor.
//
// Immutable after New; safe for unbounded concurrent reads.
type Engine struct {
	rng        envelope.Envelope
	maxLevel   int
	dimension  int
	width      int64
	valueWidth int64
	norm       normalize.Normalizer
	root       curverule.CurveRule
}

// New constructs an Engine over rng at maxLevel, starting traversal at
// root. maxLevel must be >= 1; rng's dimension and root's dimension must
// agree and be in {1,2,3}. maxLevel*dimension must not exceed 63, keeping
// valueWidth = 2^(maxLevel*dimension) representable as a 63-bit key
// space — behavior beyond that is left undefined upstream, so it is
// rejected here rather than guessed at.
func New(rng envelope.Envelope, maxLevel int, root curverule.CurveRule) (*Engine, error) {
	d := rng.Dimension()
	if maxLevel < 1 {
		return nil, ErrInvalidArgument
	}
	if d < 1 || d > 3 {
		return nil, ErrInvalidArgument
	}
	if root == nil || root.Dimension() != d {
		return nil, ErrInvalidArgument
	}
	if maxLevel*d > 63 {
		return nil, ErrInvalidArgument
	}

	return &Engine{
		rng:        rng,
		maxLevel:   maxLevel,
		dimension:  d,
		width:      int64(1) << uint(maxLevel),
		valueWidth: int64(1) << uint(maxLevel*d),
		norm:       normalize.New(rng, maxLevel),
		root:       root,
	}, nil
}

// MaxLevel returns L, the finest recursion depth this engine was built with.
func (e *Engine) MaxLevel() int { return e.maxLevel }

// Dimension returns the engine's coordinate dimension, 1, 2 or 3.
func (e *Engine) Dimension() int { return e.dimension }

// Width returns 2^maxLevel, the per-dimension tile count at level L.
func (e *Engine) Width() int64 { return e.width }

// ValueWidth returns 2^(maxLevel*dimension), the exclusive upper bound of
// every key this engine produces at level L.
func (e *Engine) ValueWidth() int64 { return e.valueWidth }

// Range returns the real-valued envelope this engine was built over.
func (e *Engine) Range() envelope.Envelope { return e.rng }

// TileWidth returns the real-valued width of one tile on dimension dim at
// the given level.
func (e *Engine) TileWidth(dim, level int) float64 { return e.norm.TileWidth(dim, level) }
