package ductnoise

// Tables transcribed from ASHRAE 1991 Algorithms for HVAC Acoustics and the
// ASHRAE 2015 Applications Handbook, Chapter 48, as reproduced in the
// reference calculators this package was built from. All tables are
// process-wide read-only after package initialization; nothing in this
// package mutates them once Go's init order has run, except through the
// explicit override path in tables_override.go.

// ncCurve is one row of the NC (Noise Criteria) rating table: the limit,
// per band, that a spectrum must not exceed to be rated at nc or better.
type ncCurve struct {
	nc     int
	limits [NumBands]float64
}

// ncCurves lists the standard NC curves in ascending order. NCRating walks
// this table looking for the first (lowest) curve the spectrum fits under.
var ncCurves = []ncCurve{
	{15, Spectrum{47, 36, 29, 22, 17, 14, 12, 11}},
	{20, Spectrum{51, 40, 33, 26, 22, 19, 17, 16}},
	{25, Spectrum{54, 44, 37, 31, 27, 24, 22, 21}},
	{30, Spectrum{57, 48, 41, 35, 31, 29, 28, 27}},
	{35, Spectrum{60, 52, 45, 40, 36, 34, 33, 32}},
	{40, Spectrum{64, 56, 50, 45, 41, 39, 38, 37}},
	{45, Spectrum{67, 60, 54, 49, 46, 44, 43, 42}},
	{50, Spectrum{71, 64, 58, 54, 51, 49, 48, 47}},
	{55, Spectrum{74, 67, 62, 58, 56, 54, 53, 52}},
	{60, Spectrum{77, 71, 67, 63, 61, 59, 58, 57}},
	{65, Spectrum{80, 75, 71, 68, 66, 64, 63, 62}},
}

// rectSize is a (width, height) key into the rectangular duct tables, both
// in inches, always normalized smaller-first.
type rectSize struct {
	w, h float64
}

func normalizeRect(width, height float64) rectSize {
	if width <= height {
		return rectSize{width, height}
	}
	return rectSize{height, width}
}

// rectUnlinedRow is one entry of Table 16: unlined sheet-metal rectangular
// duct, keyed by size, giving the duct's perimeter/area ratio and its
// per-foot attenuation at 63 Hz (the only band this table covers).
type rectUnlinedRow struct {
	pOverA    float64
	atten63Hz float64
}

var rectUnlinedTable = map[rectSize]rectUnlinedRow{
	{6, 6}:   {8.0, 0.3},
	{12, 12}: {4.0, 0.4},
	{12, 24}: {3.0, 0.4},
	{24, 24}: {2.0, 0.3},
	{48, 48}: {1.0, 0.2},
	{72, 72}: {0.7, 0.1},
}

// rectLining1In is Table 17: 1-inch duct lining insertion loss, dB/ft at
// 125 Hz, keyed by (width, height) in inches.
var rectLining1In = map[rectSize]float64{
	{6, 6}: 0.6, {6, 10}: 0.5, {6, 12}: 0.5, {6, 18}: 0.5,
	{8, 8}: 0.5, {8, 12}: 0.4, {8, 16}: 0.4, {8, 24}: 0.4,
	{10, 10}: 0.4, {10, 16}: 0.4, {10, 20}: 0.3, {10, 30}: 0.3,
	{12, 12}: 0.4, {12, 18}: 0.3, {12, 24}: 0.3, {12, 36}: 0.3,
	{15, 15}: 0.3, {15, 22}: 0.3, {15, 30}: 0.3, {15, 45}: 0.2,
	{18, 18}: 0.3, {18, 28}: 0.2, {18, 36}: 0.2, {18, 54}: 0.2,
	{24, 24}: 0.2, {24, 36}: 0.2, {24, 48}: 0.2, {24, 72}: 0.2,
	{30, 30}: 0.2, {30, 45}: 0.2, {30, 60}: 0.2, {30, 90}: 0.1,
	{36, 36}: 0.2, {36, 54}: 0.1, {36, 72}: 0.1, {36, 108}: 0.1,
	{42, 42}: 0.2, {42, 64}: 0.1, {42, 84}: 0.1, {42, 126}: 0.1,
	{48, 48}: 0.1, {48, 72}: 0.1, {48, 96}: 0.1, {48, 144}: 0.1,
}

// rectLining2InBands is the band set covered by Table 18 (no 63 Hz entry).
var rectLining2InBands = [7]int{125, 250, 500, 1000, 2000, 4000, 8000}

// rectLining2In is Table 18: 2-inch duct lining attenuation, dB/ft, for
// the 7 bands in rectLining2InBands, keyed by (width, height) in inches.
var rectLining2In = map[rectSize][7]float64{
	{6, 6}: {0.8, 2.9, 4.9, 7.2, 7.4, 4.3, 2.1},
	{6, 10}: {0.7, 2.4, 4.4, 6.4, 6.1, 3.7, 1.8},
	{6, 12}: {0.6, 2.3, 4.2, 6.2, 5.8, 3.6, 1.8},
	{6, 18}: {0.6, 2.1, 4.0, 5.8, 5.2, 3.3, 1.6},
	{8, 8}: {0.6, 2.3, 4.2, 6.2, 5.8, 3.6, 1.8},
	{8, 12}: {0.6, 1.9, 3.9, 5.6, 4.9, 3.2, 1.6},
	{8, 16}: {0.5, 1.8, 3.7, 5.4, 4.5, 3.0, 1.5},
	{8, 24}: {0.5, 1.6, 3.5, 5.0, 4.1, 2.8, 1.4},
	{10, 10}: {0.6, 1.9, 3.8, 5.5, 4.7, 3.1, 1.6},
	{10, 16}: {0.5, 1.6, 3.4, 5.0, 4.0, 2.7, 1.4},
	{10, 20}: {0.4, 1.5, 3.3, 4.8, 3.7, 2.6, 1.3},
	{10, 30}: {0.4, 1.3, 3.1, 4.5, 3.3, 2.4, 1.2},
	{12, 12}: {0.5, 1.6, 3.5, 5.0, 4.1, 2.8, 1.4},
	{12, 18}: {0.4, 1.4, 3.2, 4.6, 3.5, 2.5, 1.3},
	{12, 24}: {0.4, 1.3, 3.0, 4.3, 3.2, 2.3, 1.2},
	{12, 36}: {0.4, 1.2, 2.9, 4.1, 2.9, 2.2, 1.1},
	{15, 15}: {0.4, 1.3, 3.1, 4.5, 3.3, 2.4, 1.2},
	{15, 22}: {0.4, 1.2, 2.9, 4.1, 2.9, 2.2, 1.1},
	{15, 30}: {0.3, 1.1, 2.7, 3.9, 2.6, 2.0, 1.0},
	{15, 45}: {0.3, 1.0, 2.6, 3.6, 2.4, 1.9, 1.0},
	{18, 18}: {0.4, 1.2, 2.9, 4.1, 2.9, 2.2, 1.1},
	{18, 28}: {0.3, 1.0, 2.6, 3.7, 2.4, 1.9, 1.0},
	{18, 36}: {0.3, 0.9, 2.5, 3.5, 2.2, 1.8, 0.9},
	{18, 54}: {0.3, 0.8, 2.3, 3.3, 2.0, 1.7, 0.9},
	{24, 24}: {0.3, 0.9, 2.5, 3.5, 2.2, 1.8, 0.9},
	{24, 36}: {0.3, 0.8, 2.3, 3.2, 1.9, 1.6, 0.8},
	{24, 48}: {0.2, 0.7, 2.2, 3.0, 1.7, 1.5, 0.8},
	{24, 72}: {0.2, 0.7, 2.0, 2.9, 1.6, 1.4, 0.7},
	{30, 30}: {0.2, 0.8, 2.2, 3.1, 1.8, 1.6, 0.8},
	{30, 45}: {0.2, 0.7, 2.0, 2.9, 1.6, 1.4, 0.7},
	{30, 60}: {0.2, 0.6, 1.9, 2.7, 1.4, 1.3, 0.7},
	{30, 90}: {0.2, 0.5, 1.8, 2.6, 1.3, 1.2, 0.6},
	{36, 36}: {0.2, 0.7, 2.0, 2.9, 1.6, 1.4, 0.7},
	{36, 54}: {0.2, 0.6, 1.9, 2.6, 1.3, 1.2, 0.6},
	{36, 72}: {0.2, 0.5, 1.8, 2.5, 1.2, 1.2, 0.6},
	{36, 108}: {0.2, 0.5, 1.7, 2.3, 1.1, 1.1, 0.6},
	{42, 42}: {0.2, 0.6, 1.9, 2.6, 1.4, 1.3, 0.7},
	{42, 64}: {0.2, 0.5, 1.7, 2.4, 1.2, 1.1, 0.6},
	{42, 84}: {0.2, 0.5, 1.6, 2.3, 1.1, 1.1, 0.6},
	{42, 126}: {0.1, 0.4, 1.6, 2.2, 1.0, 1.0, 0.5},
	{48, 48}: {0.2, 0.5, 1.8, 2.5, 1.2, 1.2, 0.6},
	{48, 72}: {0.2, 0.4, 1.6, 2.3, 1.0, 1.0, 0.5},
	{48, 96}: {0.1, 0.4, 1.5, 2.1, 1.0, 1.0, 0.5},
	{48, 144}: {0.1, 0.4, 1.5, 2.0, 0.9, 0.9, 0.5},
}

// circularUnlinedBands is the band set covered by Table 5.5 (no 8 kHz entry).
var circularUnlinedBands = [7]int{63, 125, 250, 500, 1000, 2000, 4000}

// circularUnlinedTable is Table 5.5: straight unlined circular duct
// attenuation, dB/ft, by diameter bracket. Brackets are upper-inclusive;
// diameterBracket maps an inches value onto one of these row keys.
var circularUnlinedTable = map[string][7]float64{
	"d<=7":      {0.03, 0.03, 0.05, 0.05, 0.10, 0.10, 0.10},
	"7<d<=15":   {0.03, 0.03, 0.03, 0.05, 0.07, 0.07, 0.07},
	"15<d<=30":  {0.02, 0.02, 0.02, 0.03, 0.05, 0.05, 0.05},
	"30<d<=60":  {0.01, 0.01, 0.01, 0.02, 0.02, 0.02, 0.02},
}

// diameterBracket returns the Table 5.5 row key for a duct diameter in
// inches, clamping at 60 in (callers are expected to have already warned
// on out-of-range input; this never panics).
func diameterBracket(diameter float64) string {
	switch {
	case diameter <= 7:
		return "d<=7"
	case diameter <= 15:
		return "7<d<=15"
	case diameter <= 30:
		return "15<d<=30"
	default:
		return "30<d<=60"
	}
}

// linedCoeffs holds the six Equation 5.18 coefficients for one band.
type linedCoeffs struct {
	a, b, c, d, e, f float64
}

// circularLinedTable is Table 5.6: Equation 5.18 coefficients, keyed by
// band frequency, covering all 8 bands.
var circularLinedTable = map[int]linedCoeffs{
	63:   {0.2825, 0.3447, -5.251e-02, -0.03837, 9.1315e-04, -8.294e-06},
	125:  {0.5237, 0.2234, -4.936e-03, -0.02724, 3.377e-04, -2.49e-04},
	250:  {0.3652, 0.79, -0.1157, -1.834e-02, -1.211e-04, 2.681e-04},
	500:  {0.1333, 1.845, -0.3735, -1.293e-02, 8.624e-05, -4.986e-06},
	1000: {1.933, 0, 0, 6.135e-02, -3.891e-03, 3.934e-05},
	2000: {2.73, 0, 0, -7.341e-02, 4.428e-04, 1.006e-06},
	4000: {2.8, 0, 0, -0.1467, 3.404e-03, -2.851e-05},
	8000: {1.545, 0, 0, -5.452e-02, 1.290e-03, -1.318e-05},
}

// flexKey indexes Table 25 by nominal diameter and length, both in their
// tabulated units (in, ft).
type flexKey struct {
	diameter, length float64
}

// flexDiameters and flexLengths are the sorted axis values of Table 25,
// used by the bilinear interpolation in flex.go.
var flexDiameters = []float64{4, 5, 6, 7, 8, 9, 10, 12, 14, 16}
var flexLengths = []float64{3, 6, 9, 12}

// flexTable is Table 25: insertion loss for lined flexible duct, 8 bands
// per (diameter, length) cell.
var flexTable = map[flexKey]Spectrum{
	{4, 12}: {6, 11, 12, 31, 37, 42, 27, 15},
	{4, 9}:  {5, 8, 9, 23, 28, 32, 20, 12},
	{4, 6}:  {3, 6, 6, 16, 19, 21, 14, 8},
	{4, 3}:  {2, 3, 3, 8, 9, 11, 7, 4},

	{5, 12}: {7, 12, 14, 32, 38, 41, 26, 15},
	{5, 9}:  {5, 9, 11, 24, 29, 31, 20, 12},
	{5, 6}:  {4, 6, 7, 16, 19, 21, 13, 8},
	{5, 3}:  {2, 3, 4, 8, 10, 10, 7, 4},

	{6, 12}: {8, 12, 17, 33, 38, 40, 26, 15},
	{6, 9}:  {6, 9, 13, 25, 29, 30, 20, 12},
	{6, 6}:  {4, 6, 9, 17, 19, 20, 13, 8},
	{6, 3}:  {2, 3, 4, 8, 10, 10, 7, 4},

	{7, 12}: {9, 12, 19, 33, 37, 38, 25, 14},
	{7, 9}:  {6, 9, 14, 25, 28, 29, 19, 11},
	{7, 6}:  {4, 6, 10, 17, 19, 19, 13, 8},
	{7, 3}:  {2, 3, 5, 8, 9, 10, 6, 4},

	{8, 12}: {8, 11, 21, 33, 37, 37, 24, 13},
	{8, 9}:  {6, 8, 16, 25, 28, 28, 18, 10},
	{8, 6}:  {4, 6, 11, 17, 19, 19, 12, 7},
	{8, 3}:  {2, 3, 5, 8, 9, 9, 6, 4},

	{9, 12}: {8, 11, 22, 33, 37, 36, 22, 12},
	{9, 9}:  {6, 8, 17, 25, 28, 27, 17, 10},
	{9, 6}:  {4, 6, 11, 17, 19, 18, 11, 7},
	{9, 3}:  {2, 3, 6, 8, 9, 9, 6, 4},

	{10, 12}: {8, 10, 22, 32, 36, 34, 21, 11},
	{10, 9}:  {6, 8, 17, 24, 27, 26, 16, 9},
	{10, 6}:  {4, 5, 11, 16, 18, 17, 11, 6},
	{10, 3}:  {2, 3, 6, 8, 9, 9, 5, 3},

	{12, 12}: {7, 9, 20, 30, 34, 31, 18, 10},
	{12, 9}:  {5, 7, 15, 23, 26, 23, 14, 8},
	{12, 6}:  {3, 5, 10, 15, 17, 16, 9, 5},
	{12, 3}:  {2, 2, 5, 8, 9, 8, 5, 3},

	{14, 12}: {5, 7, 16, 27, 31, 27, 14, 8},
	{14, 9}:  {4, 5, 12, 20, 23, 20, 11, 6},
	{14, 6}:  {3, 4, 8, 14, 16, 14, 7, 4},
	{14, 3}:  {1, 2, 4, 7, 8, 7, 4, 2},

	{16, 12}: {2, 4, 9, 23, 28, 23, 9, 5},
	{16, 9}:  {2, 3, 7, 17, 21, 17, 7, 4},
	{16, 6}:  {1, 2, 5, 12, 14, 12, 5, 3},
	{16, 3}:  {1, 1, 2, 6, 7, 6, 2, 1},
}

// receiverBands7 is the 7-band subset (no 8 kHz) used by the receiver room
// correction tables 35-38.
var receiverBands7 = [7]int{63, 125, 250, 500, 1000, 2000, 4000}

// table35Volumes and table35 hold Table 35 (A values, Equation 27), keyed
// by room volume in ft^3.
var table35Volumes = []float64{1500, 2500, 4000, 6000, 10000, 15000}
var table35 = map[float64][7]float64{
	1500:  {4, 3, 2, 1, 0, -1, -2},
	2500:  {3, 2, 1, 0, -1, -2, -3},
	4000:  {2, 1, 0, -1, -2, -3, -4},
	6000:  {1, 0, -1, -2, -3, -4, -5},
	10000: {0, -1, -2, -3, -4, -5, -6},
	15000: {-1, -2, -3, -4, -5, -6, -7},
}

// table36Distances and table36 hold Table 36 (B value, Equation 27), keyed
// by distance in ft. B has no band dependence.
var table36Distances = []float64{3, 4, 5, 6, 8, 10, 13, 16, 20}
var table36 = map[float64]float64{
	3: 5, 4: 6, 5: 7, 6: 8, 8: 9, 10: 10, 13: 11, 16: 12, 20: 13,
}

// table37Distances and table37 hold Table 37 (C values, Equation 28),
// keyed by distance in ft.
var table37Distances = []float64{3, 4, 5, 6, 8, 10, 13, 16, 20, 25, 32}
var table37 = map[float64][7]float64{
	3:  {5, 5, 6, 6, 6, 7, 10},
	4:  {6, 7, 7, 7, 8, 9, 12},
	5:  {7, 8, 8, 8, 9, 11, 14},
	6:  {8, 9, 9, 9, 10, 12, 16},
	8:  {9, 10, 10, 11, 12, 14, 18},
	10: {10, 11, 12, 12, 13, 16, 20},
	13: {11, 12, 13, 13, 15, 18, 22},
	16: {12, 13, 14, 15, 16, 19, 24},
	20: {13, 15, 15, 16, 17, 20, 26},
	25: {14, 16, 16, 17, 19, 22, 28},
	32: {15, 17, 17, 18, 20, 23, 30},
}

// table38Key indexes Table 38 (D values, Equation 29) by ceiling-height
// bracket and floor-area-per-diffuser bracket, both labeled ranges.
type table38Key struct {
	ceilingRange, areaRange string
}

var table38CeilingRanges = []string{"8-9", "10-12", "14-16"}
var table38AreaRanges = []string{"100-150", "200-250"}

var table38 = map[table38Key][7]float64{
	{"8-9", "100-150"}:    {2, 3, 4, 5, 6, 7, 8},
	{"8-9", "200-250"}:    {3, 4, 5, 6, 7, 8, 9},
	{"10-12", "100-150"}:  {4, 5, 6, 7, 8, 9, 10},
	{"10-12", "200-250"}:  {5, 6, 7, 8, 9, 10, 11},
	{"14-16", "100-150"}:  {7, 8, 9, 10, 11, 12, 13},
	{"14-16", "200-250"}:  {8, 9, 10, 11, 12, 13, 14},
}
