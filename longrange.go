package sfcurve

// LongRange is a closed key interval [Min, Max], Min <= Max. Equality is
// structural: two LongRange values are equal iff both fields match.
type LongRange struct {
	Min Key
	Max Key
}

// expandToMax grows the interval's upper bound. Only intervalList calls
// this, and only on the last element of the list it is building during a
// single TilesIntersecting pass — a LongRange already appended to a
// sealed result is never mutated again.
func (r *LongRange) expandToMax(newMax Key) {
	r.Max = newMax
}
