package envelope

// Envelope is an immutable axis-aligned box in real (float64) coordinates,
// over 1, 2 or 3 dimensions. It is the caller-facing description of a
// region: the index range at construction time, or a query region at
// search time.
type Envelope struct {
	min []float64
	max []float64
}

// New builds an Envelope from parallel min/max slices. Both slices must
// have the same length, that length must be 1, 2 or 3, and max[k] must be
// >= min[k] for every dimension k.
func New(min, max []float64) (Envelope, error) {
	if len(min) != len(max) {
		return Envelope{}, ErrLengthMismatch
	}
	if len(min) < 1 || len(min) > 3 {
		return Envelope{}, ErrInvalidDimension
	}
	for k := range min {
		if max[k] < min[k] {
			return Envelope{}, ErrInvertedBounds
		}
	}
	cmin := make([]float64, len(min))
	cmax := make([]float64, len(max))
	copy(cmin, min)
	copy(cmax, max)

	return Envelope{min: cmin, max: cmax}, nil
}

// Cube builds a square/cube Envelope [lo, hi]^d for d ∈ {1,2,3}.
func Cube(d int, lo, hi float64) (Envelope, error) {
	if d < 1 || d > 3 {
		return Envelope{}, ErrInvalidDimension
	}
	min := make([]float64, d)
	max := make([]float64, d)
	for k := 0; k < d; k++ {
		min[k] = lo
		max[k] = hi
	}

	return New(min, max)
}

// Dimension returns the number of axes, 1, 2 or 3.
func (e Envelope) Dimension() int { return len(e.min) }

// Min returns the lower bound on dimension dim.
func (e Envelope) Min(dim int) float64 { return e.min[dim] }

// Max returns the upper bound on dimension dim.
func (e Envelope) Max(dim int) float64 { return e.max[dim] }

// Width returns max(dim) - min(dim).
func (e Envelope) Width(dim int) float64 { return e.max[dim] - e.min[dim] }
