package ductnoise

import "math"

// NumBands is the number of octave bands carried by every Spectrum.
const NumBands = 8

// Frequencies lists the fixed octave-band center frequencies, in Hz. The
// index of a frequency here is its band index everywhere else in this
// package; it is never reordered.
var Frequencies = [NumBands]int{63, 125, 250, 500, 1000, 2000, 4000, 8000}

// aWeights holds the A-weighting correction per band, applied before
// summing bands into an overall dB(A) level.
var aWeights = [NumBands]float64{-26.2, -16.1, -8.6, -3.2, 0.0, 1.2, 1.0, -1.1}

// dbaShape is the default spectral shape used to expand a bare overall
// dB(A) level into a full spectrum when no per-band levels are known.
var dbaShape = [NumBands]float64{0, -2, -1, 0, 1, 2, 1, -1}

// Spectrum is an octave-band sound level, one value per frequency in
// Frequencies, in dB (or dB re 1e-12 W for sound power, depending on
// context).
type Spectrum [NumBands]float64

// BandIndex returns the index of freq in Frequencies, or -1 if freq is not
// one of the eight standard bands.
func BandIndex(freq int) int {
	for i, f := range Frequencies {
		if f == freq {
			return i
		}
	}
	return -1
}

// energySumBand combines two band levels by energy (power) addition. A
// non-positive band contributes no energy; if both are non-positive the
// result is 0.
func energySumBand(a, b float64) float64 {
	switch {
	case a <= 0 && b <= 0:
		return 0
	case a <= 0:
		return b
	case b <= 0:
		return a
	default:
		return 10 * math.Log10(math.Pow(10, a/10)+math.Pow(10, b/10))
	}
}

// EnergySum combines two spectra band-by-band via power addition.
// EnergySum is commutative and associative within floating-point
// tolerance.
func EnergySum(a, b Spectrum) Spectrum {
	var out Spectrum
	for i := range out {
		out[i] = energySumBand(a[i], b[i])
	}
	return out
}

// AddGenerated adds a generated-noise spectrum onto the current spectrum,
// band by band, via energy sum. Bands where gen is not positive are left
// untouched (a zero or negative "generated" band means that element
// produced no noise in that band, not that it subtracted energy).
func AddGenerated(current, gen Spectrum) Spectrum {
	out := current
	for i := range out {
		if gen[i] > 0 {
			out[i] = energySumBand(current[i], gen[i])
		}
	}
	return out
}

// SubtractAttenuation applies per-band attenuation to a spectrum, flooring
// each band at 0 dB. No sound energy below 0 dB is carried forward.
func SubtractAttenuation(s Spectrum, att Spectrum) Spectrum {
	var out Spectrum
	for i := range out {
		out[i] = math.Max(0, s[i]-att[i])
	}
	return out
}

// DBA computes the overall A-weighted level of a spectrum.
func DBA(s Spectrum) float64 {
	var sum float64
	for i, level := range s {
		if level > 0 {
			weighted := level + aWeights[i]
			sum += math.Pow(10, weighted/10)
		}
	}
	if sum == 0 {
		return 0
	}
	return 10 * math.Log10(sum)
}

// EstimateSpectrum expands a bare overall dB(A) level into a full
// 8-band spectrum using a fixed default spectral shape, used when a path
// element supplies only an overall level and no explicit per-band data.
func EstimateSpectrum(overallDBA float64) Spectrum {
	var s Spectrum
	for i := range s {
		s[i] = math.Max(0, overallDBA+dbaShape[i])
	}
	return s
}

// NCRating returns the lowest-numbered NC curve the spectrum does not
// exceed in any band. If the spectrum exceeds every tabulated curve, the
// rating is the highest curve, NC 65.
func NCRating(s Spectrum) int {
	for _, curve := range ncCurves {
		exceeds := false
		for i, limit := range curve.limits {
			if s[i] > limit {
				exceeds = true
				break
			}
		}
		if !exceeds {
			return curve.nc
		}
	}
	return ncCurves[len(ncCurves)-1].nc
}

// Finite reports whether every band in s is a finite, non-negative
// number. CalculatePath guarantees this on its returned final spectrum.
func (s Spectrum) Finite() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// guardBand zeroes a band value that came out NaN or infinite, which can
// happen when a formula takes the log of a non-positive quantity. It
// reports whether a guard was needed so callers can emit a warning.
func guardBand(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true
	}
	return v, false
}

// guardSpectrum runs guardBand over every band in s, returning the
// cleaned spectrum and one NumericGuardWarning per band that needed it.
// CalculatePath runs the traversal's running spectrum through this after
// every element, per spec §7 ("return 0 dB for that band rather than
// -Inf/NaN").
func guardSpectrum(elementID string, s Spectrum) (Spectrum, []string) {
	var out Spectrum
	var warnings []string
	for i, v := range s {
		clean, guarded := guardBand(v)
		out[i] = clean
		if guarded {
			warnings = append(warnings, (&NumericGuardWarning{Element: elementID, Band: i}).Error())
		}
	}
	return out, warnings
}
