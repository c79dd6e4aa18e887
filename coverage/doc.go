// Package coverage clusters the key intervals returned by
// sfcurve.Engine.TilesIntersecting under a caller-supplied adjacency
// tolerance, the way gridgraph.ConnectedComponents flood-fills contiguous
// grid cells into islands. TilesIntersecting's own output is already
// maximally coalesced under the strict "adjacent" rule (no gap at all),
// because that is an invariant of the range search itself (spec.md §8,
// property 6). coverage.Cluster answers a different, caller-driven
// question: an ordered index's backing store (a B-tree, an LSM file) pays
// a per-seek cost, so a caller willing to scan a few extra tiles to avoid
// an extra seek wants intervals separated by at most N keys merged too —
// the iopsCostParam tradeoff a B-tree-backed spatial index has to make
// when turning disjoint intervals into actual range scans.
//
// What:
//
//   - Options.Tolerance: the maximum gap, in keys, between one interval's
//     Max and the next interval's Min that still counts as adjacent.
//     Tolerance 0 reproduces TilesIntersecting's own strict coalescing.
//   - Cluster: merges a sorted, disjoint []sfcurve.LongRange under that
//     tolerance into the coarser (and therefore shorter) sorted, disjoint
//     list callers actually drive their scans from.
//   - Stats: summarizes a clustered list's tile coverage and scan cost,
//     analogous to gridgraph's per-component Cell accounting.
//
// Why:
//
//   - Separating "exact tile coverage" (sfcurve.TilesIntersecting) from
//     "scan plan" (coverage.Cluster) keeps the engine's own invariants
//     (spec.md §8) untouched while still giving callers the knob they
//     need against their own storage layer.
//
// Errors:
//
//   - ErrNegativeTolerance: Options.Tolerance built from a negative int.
package coverage
