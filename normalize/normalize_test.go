package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfcurve/envelope"
	"github.com/katalvlaran/sfcurve/normalize"
)

func cube8(t *testing.T) envelope.Envelope {
	t.Helper()
	e, err := envelope.Cube(2, 0, 8)
	require.NoError(t, err)

	return e
}

func TestNormalizeOrigin(t *testing.T) {
	n := normalize.New(cube8(t), 3)
	got := n.Normalize([]float64{0, 0})
	assert.Equal(t, []int64{0, 0}, got)
}

func TestNormalizeUpperBoundMapsToLastCell(t *testing.T) {
	n := normalize.New(cube8(t), 3)
	got := n.Normalize([]float64{8, 8})
	// width = 2^L = 8; the closed upper bound maps to width-1, the last
	// per-dimension cell, not valueWidth-1 (2^(L*d)), which would only
	// be meaningful once packed into a full key, not as a per-dimension
	// grid coordinate.
	assert.Equal(t, int64(7), got[0])
	assert.Equal(t, int64(7), got[1])
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	n := normalize.New(cube8(t), 3)
	got := n.Normalize([]float64{1e9, -1e9})
	want := n.Normalize([]float64{8, 0})
	assert.Equal(t, want, got)
}

func TestDenormalizeIsTileCenter(t *testing.T) {
	n := normalize.New(cube8(t), 3)
	center := n.Denormalize([]int64{0, 0}, 3)
	assert.InDelta(t, 0.5, center[0], 1e-9)
	assert.InDelta(t, 0.5, center[1], 1e-9)
}

// TestNormalizeEnvelopeBoundaryAlignedUpperEdge covers a non-degenerate
// query whose upper edge lands exactly on an interior tile boundary: the
// boundary point starts the next cell, so it must not pull that cell's
// index into the search box (see TestSingleTileQuery / S4 in search_test.go).
func TestNormalizeEnvelopeBoundaryAlignedUpperEdge(t *testing.T) {
	n := normalize.New(cube8(t), 3)
	q, err := envelope.New([]float64{3, 3}, []float64{4, 4})
	require.NoError(t, err)

	se := n.NormalizeEnvelope(q)
	assert.Equal(t, int64(3), se.Min(0))
	assert.Equal(t, int64(3), se.Max(0))
}

// TestNormalizeEnvelopeDegenerateDimensionReusesLowerBound covers a
// zero-width dimension: the shared value normalizes once, the same way
// DerivedValueFor would encode that coordinate as a point.
func TestNormalizeEnvelopeDegenerateDimensionReusesLowerBound(t *testing.T) {
	n := normalize.New(cube8(t), 3)
	q, err := envelope.New([]float64{4, 3}, []float64{4, 3})
	require.NoError(t, err)

	se := n.NormalizeEnvelope(q)
	assert.Equal(t, int64(4), se.Min(0))
	assert.Equal(t, int64(4), se.Max(0))
}

// TestNormalizeEnvelopeTouchingEnvelopeMaxIncludesLastCell covers a query
// whose upper edge coincides with the engine's own envelope maximum: the
// last cell must stay reachable even though it is a boundary-aligned
// value, unlike an interior boundary.
func TestNormalizeEnvelopeTouchingEnvelopeMaxIncludesLastCell(t *testing.T) {
	n := normalize.New(cube8(t), 3)
	q, err := envelope.New([]float64{7, 7}, []float64{8, 8})
	require.NoError(t, err)

	se := n.NormalizeEnvelope(q)
	assert.Equal(t, int64(7), se.Min(0))
	assert.Equal(t, int64(7), se.Max(0))
}
