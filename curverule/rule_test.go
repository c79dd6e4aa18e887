package curverule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfcurve/curverule"
)

func TestNewTableRejectsBadDimension(t *testing.T) {
	_, err := curverule.NewTable("x", 4, nil, nil)
	assert.ErrorIs(t, err, curverule.ErrInvalidDimension)
}

func TestNewTableRejectsLengthMismatch(t *testing.T) {
	_, err := curverule.NewTable("x", 2, [][]uint8{{0, 1, 2, 3}}, nil)
	assert.ErrorIs(t, err, curverule.ErrMalformedRule)
}

func TestNewTableRejectsNonPermutation(t *testing.T) {
	// repeats n-point 0 twice, never visits 3: not a permutation of [0,4).
	npoint := [][]uint8{{0, 0, 1, 2}}
	children := [][]curverule.RuleID{{0, 0, 0, 0}}
	_, err := curverule.NewTable("x", 2, npoint, children)
	assert.ErrorIs(t, err, curverule.ErrMalformedRule)
}

func TestNewTableRejectsOutOfRangeChild(t *testing.T) {
	npoint := [][]uint8{{0, 1, 2, 3}}
	children := [][]curverule.RuleID{{0, 0, 0, 5}}
	_, err := curverule.NewTable("x", 2, npoint, children)
	assert.ErrorIs(t, err, curverule.ErrMalformedRule)
}

func TestNewTableRejectsWrongSlotCount(t *testing.T) {
	npoint := [][]uint8{{0, 1, 2}}
	children := [][]curverule.RuleID{{0, 0, 0}}
	_, err := curverule.NewTable("x", 2, npoint, children)
	assert.ErrorIs(t, err, curverule.ErrMalformedRule)
}

func TestTableRuleIsIndexAccurate(t *testing.T) {
	npoint := [][]uint8{
		{0, 1, 3, 2},
		{0, 2, 3, 1},
	}
	children := [][]curverule.RuleID{
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	}
	table, err := curverule.NewTable("two-state", 2, npoint, children)
	require.NoError(t, err)

	r := table.Rule(0)
	assert.Equal(t, 2, r.Dimension())
	assert.Equal(t, "two-state", r.Name())
	assert.Equal(t, []uint8{0, 1, 3, 2}, r.NPointValues())
	assert.Equal(t, uint8(3), r.NPointForIndex(2))
	assert.Equal(t, 2, r.IndexForNPoint(3))

	child := r.ChildAt(3)
	assert.Equal(t, []uint8{0, 2, 3, 1}, child.NPointValues())
}
