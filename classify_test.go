package ductnoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDuctShape(t *testing.T) {
	assert.Equal(t, ShapeCircular, NormalizeDuctShape("round"))
	assert.Equal(t, ShapeCircular, NormalizeDuctShape("Circular"))
	assert.Equal(t, ShapeRectangular, NormalizeDuctShape("rectangular"))
	assert.Equal(t, ShapeRectangular, NormalizeDuctShape(""))
}

func TestClassifyFittingToken(t *testing.T) {
	cases := map[string]FittingToken{
		"elbow":              FittingElbow,
		"Elbow-90":           FittingElbow,
		"tee":                FittingTee,
		"T":                  FittingTee,
		"branch takeoff":     FittingBranch,
		"wye":                FittingWye,
		"y-branch":           FittingWye,
		"cross":              FittingCross,
		"x_junction":         FittingCross,
		"junction":           FittingJunction,
		"":                   FittingNone,
		"straight duct":      FittingNone,
	}
	for input, want := range cases {
		assert.Equal(t, want, ClassifyFittingToken(input), "input=%q", input)
	}
}

func TestClassifyFittingTokenDoesNotSubstringMatch(t *testing.T) {
	// "steel" must never be mistaken for "tee" via substring match.
	assert.Equal(t, FittingNone, ClassifyFittingToken("steel duct"))
}

func TestAnchorsEndpointFitting(t *testing.T) {
	assert.True(t, anchorsEndpointFitting(ElementElbow))
	assert.True(t, anchorsEndpointFitting(ElementJunction))
	assert.False(t, anchorsEndpointFitting(ElementDuct))
	assert.False(t, anchorsEndpointFitting(ElementTerminal))
}

func TestReclassifyDuctSegmentLeavesRealDuctsAlone(t *testing.T) {
	e := PathElement{
		Kind: ElementDuct,
		Duct: &DuctDetail{Shape: ShapeRectangular, LengthFt: 10, WidthIn: 12, HeightIn: 12},
	}
	ReclassifyDuctSegment(&e)
	assert.Equal(t, ElementDuct, e.Kind)
	require.NotNil(t, e.Duct)
}

func TestReclassifyDuctSegmentIgnoresUnrecognizedToken(t *testing.T) {
	e := PathElement{
		Kind:            ElementDuct,
		Duct:            &DuctDetail{Shape: ShapeRectangular},
		RawFittingToken: "mystery part",
	}
	ReclassifyDuctSegment(&e)
	assert.Equal(t, ElementDuct, e.Kind)
}

func TestReclassifyDuctSegmentToElbow(t *testing.T) {
	e := PathElement{
		Kind:            ElementDuct,
		Duct:            &DuctDetail{Shape: ShapeCircular, DiameterIn: 10, FlowRateCFM: 500},
		RawFittingToken: "elbow",
	}
	ReclassifyDuctSegment(&e)
	require.Equal(t, ElementElbow, e.Kind)
	require.NotNil(t, e.Elbow)
	assert.Nil(t, e.Duct)
	assert.Equal(t, 10.0, e.Elbow.DiameterIn)
	assert.Equal(t, 500.0, e.Elbow.FlowRateCFM)
}

func TestReclassifyDuctSegmentToJunction(t *testing.T) {
	e := PathElement{
		Kind:            ElementDuct,
		Duct:            &DuctDetail{Shape: ShapeRectangular, WidthIn: 12, HeightIn: 12, FlowRateCFM: 800},
		RawFittingToken: "tee",
	}
	ReclassifyDuctSegment(&e)
	require.Equal(t, ElementJunction, e.Kind)
	require.NotNil(t, e.Junction)
	assert.Nil(t, e.Duct)
	assert.Equal(t, JunctionT, e.Junction.Kind)
	assert.Greater(t, e.Junction.MainAreaSqFt, 0.0)
	assert.Equal(t, e.Junction.MainAreaSqFt, e.Junction.BranchAreaSqFt)
}

func TestReclassifyDuctSegmentToBranchTakeoff(t *testing.T) {
	e := PathElement{
		Kind:            ElementDuct,
		Duct:            &DuctDetail{Shape: ShapeRectangular, WidthIn: 8, HeightIn: 8},
		RawFittingToken: "branch",
	}
	ReclassifyDuctSegment(&e)
	require.NotNil(t, e.Junction)
	assert.Equal(t, JunctionBranchTakeoff90, e.Junction.Kind)
}

func TestReclassifyDuctSegmentToCrossJunction(t *testing.T) {
	e := PathElement{
		Kind:            ElementDuct,
		Duct:            &DuctDetail{Shape: ShapeRectangular, WidthIn: 8, HeightIn: 8},
		RawFittingToken: "cross",
	}
	ReclassifyDuctSegment(&e)
	require.NotNil(t, e.Junction)
	assert.Equal(t, JunctionX, e.Junction.Kind)
}

func TestUpstreamFittingAllowedRequiresAnchorNeighbor(t *testing.T) {
	elements := []PathElement{
		{Kind: ElementElbow, Elbow: &ElbowDetail{}},
		{Kind: ElementDuct, Duct: &DuctDetail{Shape: ShapeRectangular, WidthIn: 12, HeightIn: 12, LengthFt: 10, UpstreamFittingToken: "tee"}},
	}
	token, ok := upstreamFittingAllowed(elements, 1)
	assert.True(t, ok)
	assert.Equal(t, FittingTee, token)
}

func TestUpstreamFittingAllowedRejectsNonAnchorNeighbor(t *testing.T) {
	elements := []PathElement{
		{Kind: ElementSource, Source: &SourceDetail{OverallDBA: 50}},
		{Kind: ElementDuct, Duct: &DuctDetail{Shape: ShapeRectangular, WidthIn: 12, HeightIn: 12, LengthFt: 10, UpstreamFittingToken: "tee"}},
	}
	_, ok := upstreamFittingAllowed(elements, 1)
	assert.False(t, ok)
}

func TestDownstreamFittingAllowedRequiresAnchorNeighbor(t *testing.T) {
	elements := []PathElement{
		{Kind: ElementDuct, Duct: &DuctDetail{Shape: ShapeRectangular, WidthIn: 12, HeightIn: 12, LengthFt: 10, DownstreamFittingToken: "elbow"}},
		{Kind: ElementJunction, Junction: &JunctionDetail{}},
	}
	token, ok := downstreamFittingAllowed(elements, 0)
	assert.True(t, ok)
	assert.Equal(t, FittingElbow, token)
}

func TestDownstreamFittingAllowedIgnoresUnrecognizedToken(t *testing.T) {
	elements := []PathElement{
		{Kind: ElementDuct, Duct: &DuctDetail{Shape: ShapeRectangular, WidthIn: 12, HeightIn: 12, LengthFt: 10, DownstreamFittingToken: "mystery"}},
		{Kind: ElementJunction, Junction: &JunctionDetail{}},
	}
	_, ok := downstreamFittingAllowed(elements, 0)
	assert.False(t, ok)
}

func TestFittingGeneratedNoiseElbowTokenMatchesNoVaneJunctionKind(t *testing.T) {
	d := &DuctDetail{Shape: ShapeCircular, DiameterIn: 12, FlowRateCFM: 800}
	s := fittingGeneratedNoise(FittingElbow, d)
	area := rectAreaSqFt(d)
	want := JunctionGeneratedNoise(&JunctionDetail{
		Kind:             JunctionElbow90NoVanes,
		MainShape:        ShapeCircular,
		BranchShape:      ShapeCircular,
		MainAreaSqFt:     area,
		BranchAreaSqFt:   area,
		MainFlowCFM:      800,
		BranchFlowCFM:    800,
		MainDiameterIn:   12,
		BranchDiameterIn: 12,
	}).Main
	assert.Equal(t, want, s)
}

func TestRectAreaSqFt(t *testing.T) {
	circ := rectAreaSqFt(&DuctDetail{Shape: ShapeCircular, DiameterIn: 24})
	assert.InDelta(t, 3.14159265, circ, 1e-6)

	rect := rectAreaSqFt(&DuctDetail{Shape: ShapeRectangular, WidthIn: 12, HeightIn: 24})
	assert.InDelta(t, 2.0, rect, 1e-9)
}
