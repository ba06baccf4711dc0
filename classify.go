package ductnoise

import "strings"

// NormalizeDuctShape maps a caller-supplied shape string onto the
// canonical DuctShape enum. "round" and "circular" both normalize to
// ShapeCircular; everything else normalizes to ShapeRectangular. This is
// the single point of normalization spec §9 calls for, so no downstream
// calculator ever compares against a shape name again.
func NormalizeDuctShape(raw string) DuctShape {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "round", "circular":
		return ShapeCircular
	default:
		return ShapeRectangular
	}
}

// FittingToken is a recognized free-form fitting label, reduced to a
// fixed token set.
type FittingToken int

const (
	FittingNone FittingToken = iota
	FittingElbow
	FittingTee
	FittingBranch
	FittingWye
	FittingCross
	FittingJunction
)

// ClassifyFittingToken tokenizes a caller-supplied free-form fitting
// string into the fixed set the engine understands. Unrecognized tokens
// return FittingNone rather than falling through to a substring guess
// (spec §9 explicitly warns against "tee" matching "steel").
func ClassifyFittingToken(raw string) FittingToken {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.ReplaceAll(token, "-", " ")
	token = strings.ReplaceAll(token, "_", " ")
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return FittingNone
	}

	switch fields[0] {
	case "elbow":
		return FittingElbow
	case "tee", "t":
		return FittingTee
	case "branch":
		return FittingBranch
	case "wye", "y":
		return FittingWye
	case "cross", "x":
		return FittingCross
	case "junction":
		return FittingJunction
	default:
		return FittingNone
	}
}

// anchorsEndpointFitting reports whether a component of the given element
// kind may anchor an upstream or downstream endpoint fitting. Only
// elbows, branches, tees (junctions), and generic junctions qualify; a
// duct or terminal silently rejects the request rather than erroring,
// per spec §4.3's "Fitting placement" rule.
func anchorsEndpointFitting(kind ElementKind) bool {
	switch kind {
	case ElementElbow, ElementJunction:
		return true
	default:
		return false
	}
}

// ReclassifyDuctSegment implements spec §4.3's "Element type
// classification from path input": a raw segment with zero length whose
// fitting token names a fitting is reclassified away from ElementDuct,
// keeping the segment's cross-section and flow; a segment with a positive
// length is always kept as a duct, with the fitting token retained as
// RawFittingToken for display only.
func ReclassifyDuctSegment(e *PathElement) {
	if e.Kind != ElementDuct || e.Duct == nil {
		return
	}
	if e.Duct.LengthFt > 0 {
		return
	}
	token := ClassifyFittingToken(e.RawFittingToken)
	if token == FittingNone {
		return
	}
	d := e.Duct
	switch token {
	case FittingElbow:
		e.Kind = ElementElbow
		e.Elbow = &ElbowDetail{
			Shape:       d.Shape,
			WidthIn:     d.WidthIn,
			HeightIn:    d.HeightIn,
			DiameterIn:  d.DiameterIn,
			FlowRateCFM: d.FlowRateCFM,
		}
		e.Duct = nil
	case FittingTee, FittingBranch, FittingWye, FittingCross, FittingJunction:
		e.Kind = ElementJunction
		area := rectAreaSqFt(d)
		e.Junction = &JunctionDetail{
			Kind:           junctionKindFromToken(token),
			MainShape:      d.Shape,
			BranchShape:    d.Shape,
			MainAreaSqFt:   area,
			BranchAreaSqFt: area,
			MainFlowCFM:    d.FlowRateCFM,
			BranchFlowCFM:  d.FlowRateCFM,
			MainDiameterIn: d.DiameterIn,
			BranchDiameterIn: d.DiameterIn,
		}
		e.Duct = nil
	}
}

func junctionKindFromToken(token FittingToken) JunctionKind {
	switch token {
	case FittingCross:
		return JunctionX
	case FittingBranch:
		return JunctionBranchTakeoff90
	case FittingElbow:
		return JunctionElbow90NoVanes
	default:
		return JunctionT
	}
}

// upstreamFittingAllowed reports whether the duct at elements[i] names an
// upstream fitting token that resolves to a known fitting and whose
// preceding element is of a kind allowed to anchor it (spec §4.3's
// "Fitting placement" rule). The engine calls this before applying a
// duct's attenuation.
func upstreamFittingAllowed(elements []PathElement, i int) (FittingToken, bool) {
	return endpointFittingAllowed(elements, i, -1, func(d *DuctDetail) string { return d.UpstreamFittingToken })
}

// downstreamFittingAllowed is upstreamFittingAllowed's mirror, checked
// after a duct's attenuation is applied.
func downstreamFittingAllowed(elements []PathElement, i int) (FittingToken, bool) {
	return endpointFittingAllowed(elements, i, 1, func(d *DuctDetail) string { return d.DownstreamFittingToken })
}

func endpointFittingAllowed(elements []PathElement, i, delta int, rawToken func(*DuctDetail) string) (FittingToken, bool) {
	d := elements[i].Duct
	if d == nil {
		return FittingNone, false
	}
	token := ClassifyFittingToken(rawToken(d))
	if token == FittingNone {
		return FittingNone, false
	}
	j := i + delta
	if j < 0 || j >= len(elements) || !anchorsEndpointFitting(elements[j].Kind) {
		return FittingNone, false
	}
	return token, true
}

// fittingGeneratedNoise computes the generated-noise spectrum an endpoint
// fitting token contributes, treating the fitting as a junction whose
// main and branch sides both take the anchoring duct's own geometry and
// flow (the same construction ReclassifyDuctSegment uses when a whole
// segment, rather than just one end, turns out to be a fitting).
func fittingGeneratedNoise(token FittingToken, d *DuctDetail) Spectrum {
	area := rectAreaSqFt(d)
	j := JunctionDetail{
		Kind:             junctionKindFromToken(token),
		MainShape:        d.Shape,
		BranchShape:      d.Shape,
		MainAreaSqFt:     area,
		BranchAreaSqFt:   area,
		MainFlowCFM:      d.FlowRateCFM,
		BranchFlowCFM:    d.FlowRateCFM,
		MainDiameterIn:   d.DiameterIn,
		BranchDiameterIn: d.DiameterIn,
	}
	return JunctionGeneratedNoise(&j).Main
}

func rectAreaSqFt(d *DuctDetail) float64 {
	if d.Shape == ShapeCircular {
		r := d.DiameterIn / 24.0
		return 3.141592653589793 * r * r
	}
	return (d.WidthIn / 12.0) * (d.HeightIn / 12.0)
}
