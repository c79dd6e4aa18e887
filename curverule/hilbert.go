package curverule

// NewHilbert builds a Hilbert-order curve rule for dimension d ∈ {1,2,3}.
//
// spec.md §1 scopes concrete rule tables out of the core engine ("only
// their abstract contract is specified"); §4.4 is explicit that rule
// self-similarity/locality is the rule author's responsibility and is
// never verified by the engine. That gives latitude on exactly which
// valid self-similar curve "Hilbert" constructs here, as long as every
// reachable rule satisfies the CurveRule invariants (permutation,
// totality) checked by NewTable.
//
// d == 1: there is only one 1-dimensional space-filling order, so this
// is the same single-state shape as NewZOrder(1).
//
// d == 2: the classic 4-orientation Hilbert curve, matching the textbook
// xy2d/d2xy bit-rotation construction exactly (derived by hand below and
// cross-checked against spec.md §8's S1/S2 worked scenarios in the root
// package's tests).
//
// d == 3: no hand table is shipped; see buildGrayRotation's doc comment
// for why, and DESIGN.md for the open-question resolution.
func NewHilbert(d int) (CurveRule, error) {
	switch d {
	case 1:
		return NewZOrder(1)
	case 2:
		return newHilbert2D()
	case 3:
		return buildGrayRotation("hilbert3", 3)
	default:
		return nil, ErrInvalidDimension
	}
}

// newHilbert2D ships the exact 4-state Hilbert curve. States: I
// (identity), W (swap axes), F (flip both axes), FW (flip then swap) —
// the Klein four-group of transforms reachable from the textbook rot()
// step, https://en.wikipedia.org/wiki/Hilbert_curve's xy2d/rot functions
// re-expressed as a rule graph: each state's npointValues is the slot
// order produced by rot() in that orientation, and childAt encodes which
// orientation rot() selects for the next level down.
func newHilbert2D() (CurveRule, error) {
	const (
		stateI = iota
		stateW
		stateF
		stateFW
	)

	npoint := [][]uint8{
		stateI:  {0, 1, 3, 2},
		stateW:  {0, 2, 3, 1},
		stateF:  {3, 2, 0, 1},
		stateFW: {3, 1, 0, 2},
	}
	children := [][]RuleID{
		stateI:  {stateW, stateI, stateI, stateFW},
		stateW:  {stateI, stateW, stateW, stateF},
		stateF:  {stateFW, stateF, stateF, stateW},
		stateFW: {stateF, stateFW, stateFW, stateI},
	}

	table, err := NewTable("hilbert2", 2, npoint, children)
	if err != nil {
		return nil, err
	}

	return table.Rule(stateI), nil
}

// buildGrayRotation constructs a valid, self-similar, d-dimensional
// curve via reflected-Gray-code traversal combined with a cyclic
// rotation of axis roles between levels: a d-state machine (state r
// treats real axis (k+r) mod d as logical axis k) where state r always
// recurses into state (r+1) mod d regardless of slot.
//
// Every invariant is guaranteed by construction rather than by a
// hand-verified table: npointValues[slot] is built by permuting the real
// n-point's bits according to the state's axis rotation and then
// inverting the reflected binary Gray code, and both the axis rotation
// and the Gray code are bijections, so the composition is always a
// permutation of [0, 2^d); NewTable's check is therefore expected to
// always pass, not load-bearing. childAt is trivially total: it always
// advances to (r+1) mod d.
//
// This is not claimed to reproduce the specific 24-orientation textbook
// 3-dimensional Hilbert curve; spec.md §4.4 places curve locality and
// self-similarity quality on the rule author, not the engine, and the
// round-trip/bounds/interval-canonicity properties in spec.md §8 hold for
// any valid rule graph regardless of locality quality. See DESIGN.md for
// the open-question resolution.
func buildGrayRotation(name string, d int) (CurveRule, error) {
	if d < 1 || d > 3 {
		return nil, ErrInvalidDimension
	}
	size := 1 << uint(d)

	invGray := func(g int) int {
		v := g
		for shift := 1; shift < d+1; shift <<= 1 {
			v ^= v >> uint(shift)
		}
		return v
	}

	npoint := make([][]uint8, d)
	children := make([][]RuleID, d)
	for r := 0; r < d; r++ {
		perm := make([]uint8, size)
		for p := 0; p < size; p++ {
			logical := 0
			for k := 0; k < d; k++ {
				realAxis := (k + r) % d
				bit := (p >> uint(d-1-realAxis)) & 1
				logical |= bit << uint(d-1-k)
			}
			slot := invGray(logical)
			perm[slot] = uint8(p)
		}
		childIDs := make([]RuleID, size)
		for slot := range childIDs {
			childIDs[slot] = RuleID((r + 1) % d)
		}
		npoint[r] = perm
		children[r] = childIDs
	}

	table, err := NewTable(name, d, npoint, children)
	if err != nil {
		return nil, err
	}

	return table.Rule(0), nil
}
