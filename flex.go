package ductnoise

// FlexDuctInsertionLoss computes the 8-band insertion loss for lined
// flexible duct, via Table 25. Exact (diameter, length) hits return the
// tabulated row directly; otherwise the two axes are interpolated
// independently (bilinear) between the nearest bracketing samples.
// Points outside the table's coverage saturate at the nearest edge rather
// than extrapolating, per the "never extrapolate" design rule.
func FlexDuctInsertionLoss(diameter, length float64) Spectrum {
	if row, ok := flexTable[flexKey{diameter, length}]; ok {
		return row
	}

	d0, d1, df := bracket(flexDiameters, diameter)
	l0, l1, lf := bracket(flexLengths, length)

	q11 := flexTable[flexKey{d0, l0}]
	q21 := flexTable[flexKey{d1, l0}]
	q12 := flexTable[flexKey{d0, l1}]
	q22 := flexTable[flexKey{d1, l1}]

	var out Spectrum
	for i := range out {
		top := lerp(q11[i], q21[i], df)
		bottom := lerp(q12[i], q22[i], df)
		out[i] = lerp(top, bottom, lf)
	}
	return out
}

// bracket finds the two axis samples surrounding value, returning them
// plus the fractional position of value between them in [0,1]. A value
// equal to an axis sample returns that sample as both lo and hi with frac
// 0. Values outside the axis saturate to the nearest endpoint, returning
// frac 0.
func bracket(axis []float64, value float64) (lo, hi, frac float64) {
	if value <= axis[0] {
		return axis[0], axis[0], 0
	}
	if value >= axis[len(axis)-1] {
		last := axis[len(axis)-1]
		return last, last, 0
	}
	for i := 0; i < len(axis)-1; i++ {
		if value == axis[i+1] {
			return value, value, 0
		}
		if value >= axis[i] && value <= axis[i+1] {
			span := axis[i+1] - axis[i]
			return axis[i], axis[i+1], (value - axis[i]) / span
		}
	}
	last := axis[len(axis)-1]
	return last, last, 0
}

// lerp linearly interpolates between a and b at fraction t in [0,1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
