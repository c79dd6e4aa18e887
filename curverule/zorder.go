package curverule

// NewZOrder builds the Z-order (Morton) curve rule for dimension d ∈
// {1,2,3}. Z-order needs no rotation: every level uses the identity
// permutation (slot i always visits n-point i) and always recurses into
// itself, so the table has exactly one rule.
func NewZOrder(d int) (CurveRule, error) {
	if d < 1 || d > 3 {
		return nil, ErrInvalidDimension
	}
	size := 1 << uint(d)

	identity := make([]uint8, size)
	self := make([]RuleID, size)
	for i := 0; i < size; i++ {
		identity[i] = uint8(i)
		self[i] = 0
	}

	table, err := NewTable("zorder", d, [][]uint8{identity}, [][]RuleID{self})
	if err != nil {
		return nil, err
	}

	return table.Rule(0), nil
}
