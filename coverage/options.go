package coverage

// Options tunes Cluster's merge behavior.
type Options struct {
	// Tolerance is the maximum number of keys allowed to sit between one
	// interval's Max and the next interval's Min while still merging
	// them into a single cluster. Tolerance 0 merges only intervals that
	// are already strictly adjacent (next.Min == cur.Max+1).
	Tolerance uint64
}

// DefaultOptions returns Options{Tolerance: 0}, matching
// TilesIntersecting's own strict coalescing exactly, the same way
// gridgraph.DefaultGridOptions defaults to the strictest connectivity
// (Conn4, LandThreshold 1).
func DefaultOptions() Options {
	return Options{Tolerance: 0}
}

// NewOptions validates tolerance and returns an Options wrapping it.
func NewOptions(tolerance int64) (Options, error) {
	if tolerance < 0 {
		return Options{}, ErrNegativeTolerance
	}

	return Options{Tolerance: uint64(tolerance)}, nil
}
