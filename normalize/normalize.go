package normalize

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/sfcurve/envelope"
)

// clamp restricts v to [lo, hi]. Shared by the integer and float clamping
// paths below, parameterized the way tuneinsight/lattigo's numeric helpers
// use golang.org/x/exp/constraints rather than hand-duplicating clamp for
// every numeric type.
func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Normalizer converts between an Envelope's real coordinates and the
// fixed-precision integer grid used internally by the curve engine.
type Normalizer struct {
	env           envelope.Envelope
	maxLevel      int
	width         int64 // 2^maxLevel
	valueWidth    int64 // 2^(maxLevel*dimension)
	scalingFactor []float64
}

// New builds a Normalizer over env for the given maxLevel. maxLevel must
// be >= 1; the caller (the root engine) is responsible for validating
// this before construction, matching spec.md's InvalidArgument contract.
func New(env envelope.Envelope, maxLevel int) Normalizer {
	width := int64(1) << uint(maxLevel)
	valueWidth := int64(1) << uint(maxLevel*env.Dimension())

	d := env.Dimension()
	scalingFactor := make([]float64, d)
	for k := 0; k < d; k++ {
		w := env.Width(k)
		if w == 0 {
			// A zero-width dimension would make scaling factor infinite;
			// normalize() special-cases v == max before scaling is ever
			// applied, so any finite placeholder is safe here.
			scalingFactor[k] = 1
		} else {
			scalingFactor[k] = float64(width) / w
		}
	}

	return Normalizer{
		env:           env,
		maxLevel:      maxLevel,
		width:         width,
		valueWidth:    valueWidth,
		scalingFactor: scalingFactor,
	}
}

// Envelope returns the underlying real-valued range.
func (n Normalizer) Envelope() envelope.Envelope { return n.env }

// ScalingFactor returns width / envelope.Width(dim) for dimension dim.
func (n Normalizer) ScalingFactor(dim int) float64 { return n.scalingFactor[dim] }

// TileWidth returns envelope.Width(dim) / 2^level, the real-valued size of
// one tile on dimension dim at the given level.
func (n Normalizer) TileWidth(dim, level int) float64 {
	return n.env.Width(dim) / float64(int64(1)<<uint(level))
}

// Normalize clamps and scales a real coordinate into [0, width) per
// dimension. It never fails: out-of-range input is clamped silently.
func (n Normalizer) Normalize(coord []float64) []int64 {
	d := n.env.Dimension()
	out := make([]int64, d)
	for k := 0; k < d; k++ {
		v := clamp(coord[k], n.env.Min(k), n.env.Max(k))
		if v == n.env.Max(k) {
			out[k] = n.width - 1
			continue
		}
		out[k] = int64((v - n.env.Min(k)) * n.scalingFactor[k])
	}

	return out
}

// Denormalize recovers the real-valued tile center for a normalized
// coordinate at the given level.
func (n Normalizer) Denormalize(norm []int64, level int) []float64 {
	d := n.env.Dimension()
	out := make([]float64, d)
	for k := 0; k < d; k++ {
		center := float64(norm[k])/n.scalingFactor[k] + n.env.Min(k) + n.TileWidth(k, level)/2
		out[k] = clamp(center, n.env.Min(k), n.env.Max(k))
	}

	return out
}

// NormalizeEnvelope lifts a real-valued query Envelope into the
// normalized integer SearchEnvelope used by the range-search walk.
//
// The lower bound of each dimension normalizes like any point coordinate
// (Normalize): the cell it falls inside. The upper bound does too, except
// when the dimension is non-degenerate (min < max) and the upper edge
// lands exactly on a tile boundary strictly inside the envelope: that
// boundary point is the start of the next cell, not the end of this one,
// so a closed real interval touching it there does not reach into that
// next cell. A degenerate (zero-width) dimension reuses the lower bound
// unchanged, matching DerivedValueFor's own point semantics; that is
// what keeps a single-tile query from picking up its neighbors along
// every edge it happens to be aligned with.
func (n Normalizer) NormalizeEnvelope(e envelope.Envelope) envelope.SearchEnvelope {
	d := e.Dimension()
	min := n.Normalize(minCorner(e))
	max := make([]int64, d)
	for k := 0; k < d; k++ {
		qmin := clamp(e.Min(k), n.env.Min(k), n.env.Max(k))
		qmax := clamp(e.Max(k), n.env.Min(k), n.env.Max(k))

		switch {
		case qmax == qmin:
			max[k] = min[k]
		case qmax == n.env.Max(k):
			max[k] = n.width - 1
		default:
			raw := (qmax - n.env.Min(k)) * n.scalingFactor[k]
			cell := int64(raw)
			if raw == float64(cell) {
				cell--
			}
			max[k] = cell
		}
	}

	se, err := envelope.FromArrays(min, max)
	if err != nil {
		// min[k] <= max[k] for every dimension by construction above:
		// max[k] only ever departs from the plain-Normalize value by
		// moving down toward (never past) min[k].
		panic(err)
	}

	return se
}

func minCorner(e envelope.Envelope) []float64 {
	d := e.Dimension()
	c := make([]float64, d)
	for k := 0; k < d; k++ {
		c[k] = e.Min(k)
	}

	return c
}
