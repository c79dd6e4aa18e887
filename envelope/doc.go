// Package envelope defines the axis-aligned boxes used throughout sfcurve:
// Envelope, the caller-supplied real-valued query/index region, and
// SearchEnvelope, its normalized-integer counterpart used internally by
// the range-search walk.
//
// What:
//
//   - Envelope: an immutable n-dimensional (n ∈ {1,2,3}) box with
//     per-dimension min/max and derived width.
//   - SearchEnvelope: an immutable n-dimensional box over normalized
//     integer coordinates, closed on both ends, with contains/intersects/
//     quadrant operations used by the recursive search.
//
// Why:
//
//   - Keeping the box types here, instead of nested inside the engine,
//     lets both normalize and sfcurve depend on a single shared
//     definition without a back-reference to the engine that built them.
//
// Errors:
//
//   - ErrInvalidDimension: dimension outside {1,2,3}.
//   - ErrInvertedBounds: max < min on some dimension.
package envelope
