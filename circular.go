package ductnoise

import "math"

// CircularUnlinedAttenuation computes the attenuation spectrum for straight
// unlined circular sheet-metal duct, using Table 5.5. The diameter
// (inches) selects a bracket row; length is in feet. The 8 kHz band is
// always 0, since Table 5.5 stops at 4000 Hz. Diameters above 60 in
// saturate at the ">30, <=60" bracket.
func CircularUnlinedAttenuation(diameter, length float64) Spectrum {
	row := circularUnlinedTable[diameterBracket(diameter)]
	var s Spectrum
	for i, freq := range circularUnlinedBands {
		s[BandIndex(freq)] = row[i] * length
	}
	return s
}

// CircularLinedInsertionLoss computes the insertion-loss spectrum for an
// acoustically lined circular duct, via Equation 5.18:
//
//	IL_f = (A + B*t + C*t^2 + D*d + E*d^2 + F*d^3) * L
//
// diameter and liningThickness are in inches, length is in feet. Each band
// is capped at 40 dB (the structure-borne sound limit) and floored at 0.
// Valid diameter range is [6,60] and lining thickness [1,3]; callers are
// expected to clamp out-of-range inputs before calling and record a
// warning (see engine.go).
func CircularLinedInsertionLoss(diameter, liningThickness, length float64) Spectrum {
	var s Spectrum
	t := liningThickness
	d := diameter
	for i, freq := range Frequencies {
		c := circularLinedTable[freq]
		il := (c.a + c.b*t + c.c*t*t + c.d*d + c.e*d*d + c.f*d*d*d) * length
		il = math.Min(il, 40.0)
		il = math.Max(il, 0.0)
		s[i] = il
	}
	return s
}

// ClampCircularDiameter saturates a circular duct diameter to the valid
// range used by the lined-duct equation, [6,60] in, reporting whether
// clamping was necessary.
func ClampCircularDiameter(diameter float64) (float64, bool) {
	switch {
	case diameter < 6:
		return 6, true
	case diameter > 60:
		return 60, true
	default:
		return diameter, false
	}
}

// ClampLiningThickness saturates a lining thickness to the valid range
// [1,3] in, reporting whether clamping was necessary.
func ClampLiningThickness(thickness float64) (float64, bool) {
	switch {
	case thickness < 1:
		return 1, true
	case thickness > 3:
		return 3, true
	default:
		return thickness, false
	}
}
