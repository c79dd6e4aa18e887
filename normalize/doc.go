// Package normalize maps real coordinates to/from fixed-precision integer
// coordinates in [0, 2^L) per dimension, clamping silently at the
// envelope's boundary.
//
// What:
//
//   - Normalizer wraps an envelope.Envelope and a maxLevel L, and derives
//     the per-dimension scaling factor width/envelope.Width(dim).
//   - Normalize maps a real coordinate to an integer grid coordinate.
//   - Denormalize recovers the real-valued tile center at a given level.
//   - NormalizeEnvelope lifts a real-valued query envelope.Envelope into
//     an envelope.SearchEnvelope in the same normalized integer space (the
//     free-function shape noted in the design: it takes the Normalizer
//     rather than SearchEnvelope holding a back-reference to one).
//
// Why:
//
//   - Isolating clamping and scaling here keeps the bit-packing codec
//     (in the root sfcurve package) free of float64 arithmetic entirely.
//
// Errors:
//
//   - normalize never fails; out-of-range coordinates are clamped. This
//     is a documented policy (queries on or beyond the boundary are
//     routine), not an error condition.
package normalize
