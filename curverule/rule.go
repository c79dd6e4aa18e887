package curverule

import "github.com/willf/bitset"

// CurveRule is a node in the abstract self-similar curve description. For
// a given orientation, it maps each child slot index (0…2^d−1) to an
// n-point (a d-bit spatial-quadrant mask) and to the child orientation
// applied recursively at that slot.
type CurveRule interface {
	// Dimension returns d, the same value for every rule reachable from
	// a given root.
	Dimension() int
	// NPointValues returns the rule's slot->n-point permutation,
	// length 2^d. Callers must not mutate the returned slice.
	NPointValues() []uint8
	// NPointForIndex returns npointValues[i].
	NPointForIndex(i int) uint8
	// IndexForNPoint returns the unique i such that NPointForIndex(i) == p.
	IndexForNPoint(p uint8) int
	// ChildAt returns the orientation applied recursively for slot i.
	// Total over [0, 2^d) and must terminate (the rule graph may be
	// cyclic; there are finitely many distinct rules).
	ChildAt(i int) CurveRule
	// Name identifies the rule, primarily for debugging and tests.
	Name() string
}

// RuleID indexes a rule within a Table's backing array.
type RuleID int

// Table is a finite, immutable collection of concrete rules sharing one
// dimension, addressed by RuleID. Table itself does not implement
// CurveRule; Rule(id) returns a lightweight CurveRule view bound to a
// RuleID, so ChildAt is a pure index lookup with no polymorphic dispatch.
type Table struct {
	dimension int
	name      string
	npoint    [][]uint8  // npoint[id] = slot -> n-point permutation, length 2^d
	index     [][]int    // index[id] = n-point -> slot, inverse of npoint[id]
	children  [][]RuleID // children[id][slot] = next RuleID
}

// NewTable builds a Table from explicit per-rule data. npoint[id] must be
// a permutation of [0, 2^d) for every id, and children[id] must have
// length 2^d with every entry a valid index into npoint/children.
// Validity (spec.md §7's MalformedRule check) is verified eagerly here,
// using a bitset to confirm every slot's n-point is hit exactly once.
func NewTable(name string, dimension int, npoint [][]uint8, children [][]RuleID) (*Table, error) {
	if dimension < 1 || dimension > 3 {
		return nil, ErrInvalidDimension
	}
	size := 1 << uint(dimension)
	if len(npoint) != len(children) {
		return nil, ErrMalformedRule
	}

	index := make([][]int, len(npoint))
	for id, perm := range npoint {
		if len(perm) != size || len(children[id]) != size {
			return nil, ErrMalformedRule
		}

		seen := bitset.New(uint(size))
		idx := make([]int, size)
		for slot, p := range perm {
			if int(p) >= size || seen.Test(uint(p)) {
				return nil, ErrMalformedRule
			}
			seen.Set(uint(p))
			idx[p] = slot
		}
		if seen.Count() != uint(size) {
			return nil, ErrMalformedRule
		}
		for _, child := range children[id] {
			if int(child) < 0 || int(child) >= len(npoint) {
				return nil, ErrMalformedRule
			}
		}
		index[id] = idx
	}

	return &Table{
		dimension: dimension,
		name:      name,
		npoint:    npoint,
		index:     index,
		children:  children,
	}, nil
}

// Rule returns the CurveRule view for id.
func (t *Table) Rule(id RuleID) CurveRule {
	return tableRule{t: t, id: id}
}

// tableRule is a lightweight CurveRule bound to one RuleID in a Table.
// ChildAt is a pure array index: no polymorphic dispatch in the hot loop.
type tableRule struct {
	t  *Table
	id RuleID
}

func (r tableRule) Dimension() int          { return r.t.dimension }
func (r tableRule) NPointValues() []uint8   { return r.t.npoint[r.id] }
func (r tableRule) NPointForIndex(i int) uint8 { return r.t.npoint[r.id][i] }
func (r tableRule) IndexForNPoint(p uint8) int { return r.t.index[r.id][p] }
func (r tableRule) ChildAt(i int) CurveRule {
	return tableRule{t: r.t, id: r.t.children[r.id][i]}
}
func (r tableRule) Name() string { return r.t.name }
