package ductnoise

import "math"

// ReceiverModel selects which of Equations 26-29 converts a terminal
// sound-power spectrum to a receiver sound-pressure spectrum.
type ReceiverModel int

const (
	ModelAuto ReceiverModel = iota
	ModelEq26
	ModelEq27
	ModelEq28
	ModelEq29
)

// smallRoomVolumeThreshold is the room-volume cutoff (ft^3) between the
// small-room models (Eq. 26/27) and the large-room model (Eq. 28).
const smallRoomVolumeThreshold = 15000

// resolveAutoModel picks Eq. 27 for rooms under the small-room volume
// threshold, else Eq. 28, per spec §4.2's auto-selection rule.
func resolveAutoModel(roomVolumeCuFt float64) ReceiverModel {
	if roomVolumeCuFt < smallRoomVolumeThreshold {
		return ModelEq27
	}
	return ModelEq28
}

// ReceiverPressureBand converts one band of a sound-power level to sound
// pressure at the receiver, per the selected model. freq is the band's
// center frequency in Hz.
func ReceiverPressureBand(model ReceiverModel, lw, distanceFt, roomVolumeCuFt float64, ceilingHeightFt, floorAreaPerDiffuserSqFt float64, freq int) float64 {
	resolved := model
	if resolved == ModelAuto {
		resolved = resolveAutoModel(roomVolumeCuFt)
	}

	switch resolved {
	case ModelEq26:
		return eq26(lw, distanceFt, roomVolumeCuFt, float64(freq))
	case ModelEq27:
		return eq27(lw, distanceFt, roomVolumeCuFt, freq)
	case ModelEq28:
		return eq28(lw, distanceFt, freq)
	case ModelEq29:
		return eq29(lw, ceilingHeightFt, floorAreaPerDiffuserSqFt, freq)
	default:
		return eq27(lw, distanceFt, roomVolumeCuFt, freq)
	}
}

// eq26 is the small-room single-source formula:
// Lp = Lw - 10log(r) - 5log(V) - 3log(f) + 25.
func eq26(lw, distanceFt, roomVolumeCuFt, freq float64) float64 {
	if distanceFt <= 0 || roomVolumeCuFt <= 0 || freq <= 0 {
		return lw
	}
	return lw - 10*math.Log10(distanceFt) - 5*math.Log10(roomVolumeCuFt) - 3*math.Log10(freq) + 25
}

// eq27 is the small-room table-based formula: Lp = Lw + A(V,f) - B(r).
func eq27(lw, distanceFt, roomVolumeCuFt float64, freq int) float64 {
	aValues := interpolateTable35(roomVolumeCuFt)
	b := interpolateTable36(distanceFt)
	idx := band7Index(freq)
	return lw + aValues[idx] - b
}

// eq28 is the large-room formula: Lp = Lw - C(r,f) - 5.
func eq28(lw, distanceFt float64, freq int) float64 {
	cValues := interpolateTable37(distanceFt)
	idx := band7Index(freq)
	return lw - cValues[idx] - 5
}

// eq29 is the distributed ceiling array formula at 5 ft:
// Lp(5ft) = Lw,single - D(ceiling_height, floor_area_per_diffuser).
func eq29(lwSingle, ceilingHeightFt, floorAreaPerDiffuserSqFt float64, freq int) float64 {
	dValues := interpolateTable38(ceilingHeightFt, floorAreaPerDiffuserSqFt)
	idx := band7Index(freq)
	return lwSingle - dValues[idx]
}

// band7Index maps a standard band frequency onto its index in the
// 7-band receiver tables (63-4000 Hz; 8 kHz has no entry and callers
// should not invoke these formulas for it).
func band7Index(freq int) int {
	for i, f := range receiverBands7 {
		if f == freq {
			return i
		}
	}
	return len(receiverBands7) - 1
}

// interpolateTable35 returns the 7-band A values for Equation 27,
// clamping at the table's volume endpoints and interpolating linearly
// between the two bracketing rows otherwise.
func interpolateTable35(roomVolumeCuFt float64) [7]float64 {
	if roomVolumeCuFt <= table35Volumes[0] {
		return table35[table35Volumes[0]]
	}
	last := table35Volumes[len(table35Volumes)-1]
	if roomVolumeCuFt >= last {
		return table35[last]
	}
	for i := 0; i < len(table35Volumes)-1; i++ {
		v0, v1 := table35Volumes[i], table35Volumes[i+1]
		if roomVolumeCuFt >= v0 && roomVolumeCuFt <= v1 {
			row0, row1 := table35[v0], table35[v1]
			frac := (roomVolumeCuFt - v0) / (v1 - v0)
			var out [7]float64
			for b := range out {
				out[b] = lerp(row0[b], row1[b], frac)
			}
			return out
		}
	}
	return table35[last]
}

// interpolateTable36 returns B for Equation 27, clamping at the table's
// distance endpoints and interpolating linearly otherwise.
func interpolateTable36(distanceFt float64) float64 {
	if distanceFt <= table36Distances[0] {
		return table36[table36Distances[0]]
	}
	last := table36Distances[len(table36Distances)-1]
	if distanceFt >= last {
		return table36[last]
	}
	for i := 0; i < len(table36Distances)-1; i++ {
		d0, d1 := table36Distances[i], table36Distances[i+1]
		if distanceFt >= d0 && distanceFt <= d1 {
			frac := (distanceFt - d0) / (d1 - d0)
			return lerp(table36[d0], table36[d1], frac)
		}
	}
	return table36[last]
}

// interpolateTable37 returns the 7-band C values for Equation 28,
// clamping at the table's distance endpoints and interpolating linearly
// otherwise.
func interpolateTable37(distanceFt float64) [7]float64 {
	if distanceFt <= table37Distances[0] {
		return table37[table37Distances[0]]
	}
	last := table37Distances[len(table37Distances)-1]
	if distanceFt >= last {
		return table37[last]
	}
	for i := 0; i < len(table37Distances)-1; i++ {
		d0, d1 := table37Distances[i], table37Distances[i+1]
		if distanceFt >= d0 && distanceFt <= d1 {
			row0, row1 := table37[d0], table37[d1]
			frac := (distanceFt - d0) / (d1 - d0)
			var out [7]float64
			for b := range out {
				out[b] = lerp(row0[b], row1[b], frac)
			}
			return out
		}
	}
	return table37[last]
}

// table38Bracket returns the ceiling-height and floor-area bracket labels
// plus interpolation fractions for a raw (ceiling height, floor area)
// pair. Values inside a named bracket get frac 0 (exact row); values
// between two named brackets blend with frac in (0,1); values outside all
// brackets saturate to the nearest one.
func table38Bracket(ranges []string, bounds [][2]float64, value float64) (lo, hi string, frac float64) {
	if value <= bounds[0][0] {
		return ranges[0], ranges[0], 0
	}
	last := len(ranges) - 1
	if value >= bounds[last][1] {
		return ranges[last], ranges[last], 0
	}
	for i, b := range bounds {
		if value >= b[0] && value <= b[1] {
			return ranges[i], ranges[i], 0
		}
	}
	for i := 0; i < last; i++ {
		gapLo, gapHi := bounds[i][1], bounds[i+1][0]
		if value >= gapLo && value <= gapHi {
			frac = (value - gapLo) / (gapHi - gapLo)
			return ranges[i], ranges[i+1], frac
		}
	}
	return ranges[last], ranges[last], 0
}

var table38CeilingBounds = [][2]float64{{8, 9}, {10, 12}, {14, 16}}
var table38AreaBounds = [][2]float64{{100, 150}, {200, 250}}

// interpolateTable38 returns the 7-band D values for Equation 29. Exact
// bracket hits return the tabulated row; a point between two ceiling- or
// area-brackets (or both) is blended bilinearly across the surrounding
// 2x2 grid rather than snapped to the nearest single bracket, per
// SPEC_FULL.md's upgrade of the original's coarse default-bracket
// behavior.
func interpolateTable38(ceilingHeightFt, floorAreaPerDiffuserSqFt float64) [7]float64 {
	cLo, cHi, cFrac := table38Bracket(table38CeilingRanges, table38CeilingBounds, ceilingHeightFt)
	aLo, aHi, aFrac := table38Bracket(table38AreaRanges, table38AreaBounds, floorAreaPerDiffuserSqFt)

	q11 := table38[table38Key{cLo, aLo}]
	q21 := table38[table38Key{cHi, aLo}]
	q12 := table38[table38Key{cLo, aHi}]
	q22 := table38[table38Key{cHi, aHi}]

	var out [7]float64
	for i := range out {
		top := lerp(q11[i], q21[i], cFrac)
		bottom := lerp(q12[i], q22[i], cFrac)
		out[i] = lerp(top, bottom, aFrac)
	}
	return out
}
