package sfcurve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfcurve"
	"github.com/katalvlaran/sfcurve/curverule"
	"github.com/katalvlaran/sfcurve/envelope"
)

func cube8x8(t *testing.T) envelope.Envelope {
	t.Helper()
	e, err := envelope.Cube(2, 0, 8)
	require.NoError(t, err)

	return e
}

func hilbert2D(t *testing.T) curverule.CurveRule {
	t.Helper()
	r, err := curverule.NewHilbert(2)
	require.NoError(t, err)

	return r
}

func TestNewValidatesArguments(t *testing.T) {
	e := cube8x8(t)
	h := hilbert2D(t)

	_, err := sfcurve.New(e, 0, h)
	assert.ErrorIs(t, err, sfcurve.ErrInvalidArgument, "maxLevel < 1")

	_, err = sfcurve.New(e, 3, nil)
	assert.ErrorIs(t, err, sfcurve.ErrInvalidArgument, "nil root rule")

	z1, err := curverule.NewZOrder(1)
	require.NoError(t, err)
	_, err = sfcurve.New(e, 3, z1)
	assert.ErrorIs(t, err, sfcurve.ErrInvalidArgument, "rule dimension mismatch")

	cube3, err := envelope.Cube(3, 0, 8)
	require.NoError(t, err)
	h3, err := curverule.NewHilbert(3)
	require.NoError(t, err)
	_, err = sfcurve.New(cube3, 22, h3)
	assert.ErrorIs(t, err, sfcurve.ErrInvalidArgument, "maxLevel*dimension > 63")
}

func TestNewDerivesConstants(t *testing.T) {
	eng, err := sfcurve.New(cube8x8(t), 3, hilbert2D(t))
	require.NoError(t, err)

	assert.Equal(t, 3, eng.MaxLevel())
	assert.Equal(t, 2, eng.Dimension())
	assert.Equal(t, int64(8), eng.Width())
	assert.Equal(t, int64(64), eng.ValueWidth())
	assert.InDelta(t, 1.0, eng.TileWidth(0, 3), 1e-9)
}
