package sfcurve

// DerivedValueFor encodes coord into its key at the engine's finest level
// L. Equivalent to DerivedValueForLevel(coord, e.MaxLevel()), which cannot
// fail.
func (e *Engine) DerivedValueFor(coord []float64) Key {
	key, err := e.DerivedValueForLevel(coord, e.maxLevel)
	if err != nil {
		// level == maxLevel is always in [1, maxLevel] for a constructed
		// Engine (maxLevel >= 1 is enforced by New), so this is unreachable.
		panic(err)
	}

	return key
}

// DerivedValueForLevel encodes coord at a (possibly coarser) level,
// returning a key aligned to the same scale as a full level-L key: the
// top level*dimension bits are the true encoding, the remaining low bits
// are zero (tile-prefix semantics — coarser-level keys are prefixes of
// their level-L descendants). level must be in [1, maxLevel].
func (e *Engine) DerivedValueForLevel(coord []float64, level int) (Key, error) {
	if level < 1 || level > e.maxLevel {
		return 0, ErrInvalidLevel
	}

	norm := e.norm.Normalize(coord)
	d := e.dimension
	L := e.maxLevel

	var key Key
	rule := e.root
	for i := 1; i <= level; i++ {
		var p uint8
		for dim := 0; dim < d; dim++ {
			bit := uint8(norm[dim]>>uint(L-i)) & 1
			p |= bit << uint(d-1-dim)
		}
		slot := rule.IndexForNPoint(p)
		key = (key << uint(d)) | Key(slot)
		rule = rule.ChildAt(slot)
	}

	if level < L {
		key <<= uint(d * (L - level))
	}

	return key, nil
}

// CenterPointFor decodes key at level L into the real coordinate of its
// tile's center.
func (e *Engine) CenterPointFor(key Key) []float64 {
	coord, err := e.CenterPointForLevel(key, e.maxLevel)
	if err != nil {
		panic(err) // same unreachable reasoning as DerivedValueFor.
	}

	return coord
}

// CenterPointForLevel decodes key, interpreted as a level-L-aligned key
// per DerivedValueForLevel, into the real coordinate of its tile's center
// at the given level. level must be in [1, maxLevel].
func (e *Engine) CenterPointForLevel(key Key, level int) ([]float64, error) {
	norm, err := e.normalizedCoordinateFor(key, level)
	if err != nil {
		return nil, err
	}

	return e.norm.Denormalize(norm, level), nil
}

// normalizedCoordinateFor is the inverse of the encode loop in
// DerivedValueForLevel: it peels off the top d bits of key, level times,
// translating each slot back to an n-point and appending its per-dimension
// bit to the corresponding normalized coordinate (built MSB-first). If
// level < L, the coordinate only pins down the tile's corner at level L
// granularity, so each dimension is left-shifted by L-level to fill in the
// unresolved low bits as zero.
func (e *Engine) normalizedCoordinateFor(key Key, level int) ([]int64, error) {
	if level < 1 || level > e.maxLevel {
		return nil, ErrInvalidLevel
	}

	d := e.dimension
	L := e.maxLevel
	slotMask := Key((1 << uint(d)) - 1)

	norm := make([]int64, d)
	rule := e.root
	for i := 0; i < level; i++ {
		shift := uint((L - 1 - i) * d)
		slot := int((key >> shift) & slotMask)
		p := rule.NPointForIndex(slot)
		for dim := 0; dim < d; dim++ {
			bit := int64(p>>uint(d-1-dim)) & 1
			norm[dim] = (norm[dim] << 1) | bit
		}
		rule = rule.ChildAt(slot)
	}

	if level < L {
		shift := uint(L - level)
		for dim := range norm {
			norm[dim] <<= shift
		}
	}

	return norm, nil
}
