// Package sfcurve implements a space-filling curve index core: it maps
// axis-aligned real coordinates (1 to 3 dimensions) onto a 1-D totally
// ordered key space, and answers range queries by enumerating the sorted,
// maximally coalesced key intervals that cover a query envelope.
//
// An Engine is built over an envelope.Envelope, a maxLevel (recursion
// depth, finer levels partition each axis into more tiles), and a root
// github.com/katalvlaran/sfcurve/curverule.CurveRule describing the curve's
// orientation at the root (curverule.NewHilbert and curverule.NewZOrder
// ship two ready-made families). Construction validates its arguments and
// derives width = 2^maxLevel and valueWidth = 2^(maxLevel*dimension); an
// Engine is immutable afterwards and safe for unbounded concurrent reads —
// every operation below allocates only caller-local state.
//
//   - DerivedValueFor / DerivedValueForLevel encode a coordinate into a key
//     by descending the rule tree one bit-plane per level.
//   - CenterPointFor / CenterPointForLevel decode a key back to the real
//     coordinate of its tile's center.
//   - TilesIntersecting walks the rule tree top-down, pruning subtrees whose
//     extent misses the query and greedily coalescing adjacent single-tile
//     keys into LongRange intervals.
//
// The normalize and envelope packages handle real-to-integer coordinate
// conversion and axis-aligned box arithmetic respectively; curverule
// defines the abstract curve-rule contract this package consumes.
package sfcurve
