package ductnoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAutoModelSmallVsLargeRoom(t *testing.T) {
	assert.Equal(t, ModelEq27, resolveAutoModel(5000))
	assert.Equal(t, ModelEq28, resolveAutoModel(20000))
}

func TestEq26Formula(t *testing.T) {
	lp := eq26(80, 10, 2000, 1000)
	assert.Less(t, lp, 80.0)
}

func TestEq26GuardsNonPositiveInputs(t *testing.T) {
	assert.Equal(t, 80.0, eq26(80, 0, 2000, 1000))
	assert.Equal(t, 80.0, eq26(80, 10, 0, 1000))
}

func TestEq27ExactTableEndpoints(t *testing.T) {
	// Volume exactly at table35's first row, distance exactly at table36's
	// first entry: A and B should come through untouched.
	lw := 70.0
	got := eq27(lw, 3, 1500, 63)
	want := lw + table35[1500][0] - table36[3]
	assert.InDelta(t, want, got, 1e-9)
}

func TestEq27ClampsBelowTableRange(t *testing.T) {
	lw := 70.0
	below := eq27(lw, 1, 500, 63)
	atEdge := eq27(lw, 3, 1500, 63)
	assert.InDelta(t, atEdge, below, 1e-9)
}

func TestEq28ExactTableEndpoint(t *testing.T) {
	lw := 60.0
	got := eq28(lw, 3, 63)
	want := lw - table37[3][0] - 5
	assert.InDelta(t, want, got, 1e-9)
}

func TestEq29ExactBracketHit(t *testing.T) {
	lw := 65.0
	got := eq29(lw, 9, 150, 63)
	want := lw - table38[table38Key{"8-9", "100-150"}][0]
	assert.InDelta(t, want, got, 1e-9)
}

func TestInterpolateTable35Midpoint(t *testing.T) {
	row := interpolateTable35(2000) // midpoint of 1500 and 2500
	want0 := (table35[1500][0] + table35[2500][0]) / 2
	assert.InDelta(t, want0, row[0], 1e-9)
}

func TestInterpolateTable36ClampsAtEnds(t *testing.T) {
	assert.Equal(t, table36[3], interpolateTable36(1))
	assert.Equal(t, table36[20], interpolateTable36(1000))
}

func TestInterpolateTable37Midpoint(t *testing.T) {
	row := interpolateTable37(3.5) // midpoint of 3 and 4
	want0 := (table37[3][0] + table37[4][0]) / 2
	assert.InDelta(t, want0, row[0], 1e-9)
}

func TestTable38BracketExactRange(t *testing.T) {
	lo, hi, frac := table38Bracket(table38CeilingRanges, table38CeilingBounds, 9)
	assert.Equal(t, "8-9", lo)
	assert.Equal(t, "8-9", hi)
	assert.Equal(t, 0.0, frac)
}

func TestTable38BracketGapBlend(t *testing.T) {
	// Between the "8-9" bound (ends at 9) and "10-12" bound (starts at 10).
	lo, hi, frac := table38Bracket(table38CeilingRanges, table38CeilingBounds, 9.5)
	assert.Equal(t, "8-9", lo)
	assert.Equal(t, "10-12", hi)
	assert.InDelta(t, 0.5, frac, 1e-9)
}

func TestInterpolateTable38BilinearBlend(t *testing.T) {
	row := interpolateTable38(9.5, 175) // blend of all four corners
	q11 := table38[table38Key{"8-9", "100-150"}]
	q21 := table38[table38Key{"10-12", "100-150"}]
	q12 := table38[table38Key{"8-9", "200-250"}]
	q22 := table38[table38Key{"10-12", "200-250"}]
	want0 := lerp(lerp(q11[0], q21[0], 0.5), lerp(q12[0], q22[0], 0.5), 0.5)
	assert.InDelta(t, want0, row[0], 1e-6)
}

func TestBand7Index(t *testing.T) {
	assert.Equal(t, 0, band7Index(63))
	assert.Equal(t, 6, band7Index(4000))
}
