package ductnoise

import "math"

// pOverA returns the perimeter-to-area ratio, in 1/ft, for a rectangular
// duct whose width and height are given in inches.
func pOverA(width, height float64) float64 {
	wFt := width / 12.0
	hFt := height / 12.0
	perimeter := 2 * (wFt + hFt)
	area := wFt * hFt
	return perimeter / area
}

// nearestRectSize finds the tabulated rectangular size closest to
// (width, height) by Manhattan distance, used by the lining tables which
// the source ASHRAE data doesn't tabulate for every size.
func nearestRectSize[V any](table map[rectSize]V, width, height float64) rectSize {
	var best rectSize
	bestDist := math.Inf(1)
	for size := range table {
		dist := math.Abs(size.w-width) + math.Abs(size.h-height)
		if dist < bestDist {
			bestDist = dist
			best = size
		}
	}
	return best
}

// RectUnlinedAttenuation computes the 63 Hz attenuation for an unlined
// rectangular sheet-metal duct, in dB, for the given length in feet. Every
// other band is 0, per Table 16's coverage. Sizes not exactly tabulated
// are interpolated linearly on P/A ratio, saturating at the table's ends.
func RectUnlinedAttenuation(width, height, length float64) Spectrum {
	size := normalizeRect(width, height)
	var perFoot float64
	if row, ok := rectUnlinedTable[size]; ok {
		perFoot = row.atten63Hz
	} else {
		perFoot = interpolateUnlinedByPOverA(pOverA(width, height))
	}
	var s Spectrum
	s[BandIndex(63)] = perFoot * length
	return s
}

// interpolateUnlinedByPOverA linearly interpolates Table 16's 63 Hz
// attenuation by P/A ratio. Ratios outside the table's P/A range saturate
// at the attenuation of the nearest tabulated P/A endpoint.
func interpolateUnlinedByPOverA(ratio float64) float64 {
	type point struct{ pa, atten float64 }
	points := make([]point, 0, len(rectUnlinedTable))
	for _, row := range rectUnlinedTable {
		points = append(points, point{row.pOverA, row.atten63Hz})
	}
	// insertion sort by P/A ascending; table is tiny (6 entries).
	for i := 1; i < len(points); i++ {
		for j := i; j > 0 && points[j].pa < points[j-1].pa; j-- {
			points[j], points[j-1] = points[j-1], points[j]
		}
	}
	if ratio <= points[0].pa {
		return points[0].atten
	}
	if ratio >= points[len(points)-1].pa {
		return points[len(points)-1].atten
	}
	for i := 0; i < len(points)-1; i++ {
		lo, hi := points[i], points[i+1]
		if ratio >= lo.pa && ratio <= hi.pa {
			frac := (ratio - lo.pa) / (hi.pa - lo.pa)
			return lo.atten + frac*(hi.atten-lo.atten)
		}
	}
	return points[len(points)-1].atten
}

// Rect1InLiningInsertionLoss computes the 125 Hz insertion loss, in dB,
// for 1-inch-lined rectangular duct of the given size and length (ft).
// Every other band is 0, per Table 17's coverage.
func Rect1InLiningInsertionLoss(width, height, length float64) Spectrum {
	size := normalizeRect(width, height)
	perFoot, ok := rectLining1In[size]
	if !ok {
		nearest := nearestRectSize(rectLining1In, width, height)
		perFoot = rectLining1In[nearest]
	}
	var s Spectrum
	s[BandIndex(125)] = perFoot * length
	return s
}

// Rect2InLiningAttenuation computes the 7-band (125-8000 Hz) attenuation,
// in dB, for 2-inch-lined rectangular duct of the given size and length
// (ft). The 63 Hz band is 0, per Table 18's coverage.
func Rect2InLiningAttenuation(width, height, length float64) Spectrum {
	size := normalizeRect(width, height)
	perFoot, ok := rectLining2In[size]
	if !ok {
		nearest := nearestRectSize(rectLining2In, width, height)
		perFoot = rectLining2In[nearest]
	}
	var s Spectrum
	for i, freq := range rectLining2InBands {
		s[BandIndex(freq)] = perFoot[i] * length
	}
	return s
}
