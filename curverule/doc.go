// Package curverule defines the abstract contract for a self-similar
// space-filling curve rule, plus a finite, table-backed implementation of
// it and two built-in rule families (Z-order and Hilbert) for exercising
// and testing the engine.
//
// What:
//
//   - CurveRule: dimension, npointValues (a permutation of [0, 2^d) giving
//     the n-point visited at each traversal slot), and childAt (the
//     orientation applied recursively to each child).
//   - Table: a concrete, immutable implementation backed by a finite
//     RuleID-indexed array, per the design note in spec.md §9
//     ("re-architect as a finite enumeration of concrete rules") — this
//     removes any need for polymorphic dispatch in the hot encode/decode
//     loop; childAt becomes an index lookup.
//   - NewZOrder / NewHilbert: built-in rule constructors. spec.md §1
//     treats concrete rule tables as an external collaborator — the core
//     engine only consumes the CurveRule contract — but a usable module
//     ships at least one working curve family, the way the teacher's
//     dijkstra package ships against a concrete *core.Graph even though
//     Dijkstra itself only needs the graph's read contract.
//
// Errors:
//
//   - ErrInvalidDimension: dimension outside {1,2,3}.
//   - ErrMalformedRule: a rule's npointValues is not a permutation of
//     [0, 2^d) (spec.md §7's optional MalformedRule defensive check,
//     applied at construction time for every reachable rule).
package curverule
