package sfcurve

import (
	"github.com/katalvlaran/sfcurve/curverule"
	"github.com/katalvlaran/sfcurve/envelope"
)

// TilesIntersecting returns the key intervals, at level L, whose tiles
// intersect query. The result is sorted by Min, disjoint, and maximally
// coalesced: no two consecutive intervals are adjacent.
//
// The walk descends the rule tree synchronized with three cursors: the
// current CurveRule orientation, the current SearchEnvelope extent in
// normalized integer space, and the half-open key span [left, right)
// covered by the current subtree. Visiting slots in the curve's own
// traversal order (curve.NPointForIndex(i) for i = 0..2^d-1) visits keys
// in strictly increasing order, so the greedy append-or-extend in
// intervalList produces the coalesced form in a single pass.
func (e *Engine) TilesIntersecting(query envelope.Envelope) []LongRange {
	search := e.norm.NormalizeEnvelope(query)
	full, err := envelope.SearchCube(e.dimension, 0, e.width)
	if err != nil {
		// e.dimension was validated at construction and e.width > 0.
		panic(err)
	}

	var acc intervalList
	e.walk(search, e.root, full, 0, Key(e.valueWidth), &acc)

	return acc.seal()
}

func (e *Engine) walk(search envelope.SearchEnvelope, curve curverule.CurveRule, extent envelope.SearchEnvelope, left, right Key, acc *intervalList) {
	if right-left == 1 {
		// search's bounds are normalize.Normalizer.NormalizeEnvelope's
		// half-open-adjusted cell indices, so a tile's own normalized
		// corner sits inside search iff the tile's cell genuinely
		// intersects the query; a tile only touching the query at its
		// upper edge was already excluded there.
		norm, err := e.normalizedCoordinateFor(left, e.maxLevel)
		if err != nil {
			panic(err) // maxLevel is always a valid level for this engine.
		}
		if search.Contains(norm) {
			acc.appendOrExtend(left)
		}

		return
	}

	if !search.Intersects(extent) {
		return
	}

	d := e.dimension
	size := 1 << uint(d)
	span := (right - left) / Key(size)
	for i := 0; i < size; i++ {
		p := curve.NPointForIndex(i)
		childExtent := extent.Quadrant(bitValues(p, d))
		e.walk(search, curve.ChildAt(i), childExtent, left+Key(i)*span, left+Key(i+1)*span, acc)
	}
}

// bitValues splits an n-point into a per-dimension bit vector: bit k is
// (p >> (d-1-k)) & 1.
func bitValues(p uint8, d int) []int {
	bits := make([]int, d)
	for dim := 0; dim < d; dim++ {
		bits[dim] = int(p>>uint(d-1-dim)) & 1
	}

	return bits
}
