package sfcurve_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfcurve"
)

// TestOriginEncode is scenario S1: the origin encodes to key 0, whose
// center is the first tile's midpoint.
func TestOriginEncode(t *testing.T) {
	eng, err := sfcurve.New(cube8x8(t), 3, hilbert2D(t))
	require.NoError(t, err)

	key := eng.DerivedValueFor([]float64{0, 0})
	assert.Equal(t, sfcurve.Key(0), key)

	center := eng.CenterPointFor(0)
	if diff := deep.Equal([]float64{0.5, 0.5}, center); diff != nil {
		t.Errorf("CenterPointFor(0) diff: %v", diff)
	}
}

// TestOppositeCornerEncode is scenario S2: the far corner encodes to the
// last key for this rule table, and out-of-range coordinates clamp to the
// same key.
func TestOppositeCornerEncode(t *testing.T) {
	eng, err := sfcurve.New(cube8x8(t), 3, hilbert2D(t))
	require.NoError(t, err)

	corner := eng.DerivedValueFor([]float64{8, 0})
	assert.Equal(t, sfcurve.Key(63), corner)

	clamped := eng.DerivedValueFor([]float64{1e9, -1e9})
	assert.Equal(t, corner, clamped)
}

// TestPrefixProperty is scenario S3: a coarser-level encode equals the
// finer-level key with its low bits masked off.
func TestPrefixProperty(t *testing.T) {
	eng, err := sfcurve.New(cube8x8(t), 3, hilbert2D(t))
	require.NoError(t, err)

	p := []float64{3.1, 5.9}
	fine, err := eng.DerivedValueForLevel(p, 3)
	require.NoError(t, err)
	coarse, err := eng.DerivedValueForLevel(p, 1)
	require.NoError(t, err)

	assert.Equal(t, (fine>>4)<<4, coarse)
}

func TestDerivedValueForLevelRejectsOutOfRange(t *testing.T) {
	eng, err := sfcurve.New(cube8x8(t), 3, hilbert2D(t))
	require.NoError(t, err)

	_, err = eng.DerivedValueForLevel([]float64{0, 0}, 0)
	assert.ErrorIs(t, err, sfcurve.ErrInvalidLevel)

	_, err = eng.DerivedValueForLevel([]float64{0, 0}, 4)
	assert.ErrorIs(t, err, sfcurve.ErrInvalidLevel)
}

// TestRoundTripTileIdentity is property 2 from the testable-properties
// list: encoding the center of a key's own tile returns that same key.
func TestRoundTripTileIdentity(t *testing.T) {
	eng, err := sfcurve.New(cube8x8(t), 3, hilbert2D(t))
	require.NoError(t, err)

	for k := sfcurve.Key(0); k < sfcurve.Key(eng.ValueWidth()); k++ {
		center := eng.CenterPointFor(k)
		got := eng.DerivedValueFor(center)
		assert.Equal(t, k, got, "round-trip failed for key %d", k)
	}
}

// TestKeyBounds is property 1: every derived key lies in [0, ValueWidth).
func TestKeyBounds(t *testing.T) {
	eng, err := sfcurve.New(cube8x8(t), 3, hilbert2D(t))
	require.NoError(t, err)

	coords := [][]float64{{0, 0}, {8, 8}, {3.5, 1.2}, {-100, 100}, {7.999, 0.001}}
	for _, c := range coords {
		k := eng.DerivedValueFor(c)
		assert.True(t, k < sfcurve.Key(eng.ValueWidth()))
	}
}
