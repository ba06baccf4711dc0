package ductnoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexDuctInsertionLossExactTableHit(t *testing.T) {
	s := FlexDuctInsertionLoss(6, 9)
	assert.Equal(t, Spectrum{6, 9, 13, 25, 29, 30, 20, 12}, s)
}

func TestFlexDuctInsertionLossBilinearInterpolation(t *testing.T) {
	// Midpoint of (6,6)=[4,6,9,17,19,20,13,8] and (6,9)=[6,9,13,25,29,30,20,12]
	// on the length axis only (diameter exact at 6).
	s := FlexDuctInsertionLoss(6, 9)
	// Table has an exact (6,9) entry, so pick an untabulated length instead.
	interp := FlexDuctInsertionLoss(6, 7.5)
	lo := flexTable[flexKey{6, 6}]
	hi := flexTable[flexKey{6, 9}]
	for i := range interp {
		assert.InDelta(t, (lo[i]+hi[i])/2, interp[i], 1e-9)
	}
	_ = s
}

func TestFlexDuctInsertionLossSaturatesBelowRange(t *testing.T) {
	atEdge := FlexDuctInsertionLoss(4, 3)
	below := FlexDuctInsertionLoss(2, 1)
	assert.Equal(t, atEdge, below)
}

func TestFlexDuctInsertionLossSaturatesAboveRange(t *testing.T) {
	atEdge := FlexDuctInsertionLoss(16, 12)
	above := FlexDuctInsertionLoss(30, 50)
	assert.Equal(t, atEdge, above)
}

func TestBracketExactAxisValue(t *testing.T) {
	lo, hi, frac := bracket(flexDiameters, 8)
	assert.Equal(t, 8.0, lo)
	assert.Equal(t, 8.0, hi)
	assert.Equal(t, 0.0, frac)
}

func TestBracketBetweenAxisValues(t *testing.T) {
	lo, hi, frac := bracket(flexLengths, 7.5)
	assert.Equal(t, 6.0, lo)
	assert.Equal(t, 9.0, hi)
	assert.InDelta(t, 0.5, frac, 1e-9)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, lerp(0, 10, 0.5))
	assert.Equal(t, 0.0, lerp(0, 10, 0))
	assert.Equal(t, 10.0, lerp(0, 10, 1))
}
