package ductnoise

import "math"

// equivalentDiameter returns a fitting's hydraulic diameter, in ft, given
// its cross-section: sqrt(4*area/pi) for rectangular, the diameter itself
// (converted to ft) for circular.
func equivalentDiameter(shape DuctShape, areaSqFt, diameterIn float64) float64 {
	if shape == ShapeCircular {
		return diameterIn / 12.0
	}
	return math.Sqrt(4 * areaSqFt / math.Pi)
}

// flowVelocity returns flow velocity in ft/s given CFM and cross-section
// area in ft^2. Returns 0 for a non-positive area rather than dividing by
// zero.
func flowVelocity(cfm, areaSqFt float64) float64 {
	if areaSqFt <= 0 {
		return 0
	}
	return cfm / (areaSqFt * 60.0)
}

// strouhal returns the Strouhal number f*D/U, or 0 if velocity is
// non-positive (guards the log10 callers take of it downstream).
func strouhal(freq, diameterFt, velocity float64) float64 {
	if velocity <= 0 {
		return 0
	}
	return freq * diameterFt / velocity
}

// roundingCorrection returns Dr, the branch-takeoff rounding correction,
// given the bend radius (in), equivalent branch diameter (ft), and
// Strouhal number. Returns 0 when st <= 0 (guarding log10(st)).
func roundingCorrection(bendRadiusIn, branchDiameterFt, st float64) float64 {
	if st <= 0 {
		return 0
	}
	rd := bendRadiusIn / (12.0 * branchDiameterFt)
	return (1 - rd/0.13) * (6.793 - 1.86*math.Log10(st))
}

// turbulenceCorrection returns DT for an upstream-turbulence-present
// junction, given the main/branch velocity ratio m.
func turbulenceCorrection(m float64) float64 {
	return -1.667 + 1.8*m - 0.133*m*m
}

// characteristicSpectrum returns K_J, Equation 4.22, for velocity ratio m
// and Strouhal number st. Returns 0 when st <= 0.
func characteristicSpectrum(m, st float64) float64 {
	if st <= 0 {
		return 0
	}
	logSt := math.Log10(st)
	return -21.6 +
		12.388*math.Pow(m, 0.4751) -
		16.482*math.Pow(m, -0.3071)*logSt -
		5.047*math.Pow(m, -0.2372)*logSt*logSt
}

// branchSoundPowerLevel returns L_b(f), Equation 4.23, or 0 if any
// argument that feeds a log10 is non-positive.
func branchSoundPowerLevel(kJ, freq, branchVelocity, branchAreaSqFt, branchDiameterFt float64) float64 {
	if freq <= 0 || branchVelocity <= 0 || branchAreaSqFt <= 0 || branchDiameterFt <= 0 {
		return 0
	}
	return kJ +
		10*math.Log10(freq/41) +
		50*math.Log10(branchVelocity) +
		10*math.Log10(branchAreaSqFt) +
		10*math.Log10(branchDiameterFt)
}

// JunctionSpectra holds the junction calculator's branch-side and
// main-side generated-noise spectra.
type JunctionSpectra struct {
	Branch Spectrum
	Main   Spectrum
}

// JunctionGeneratedNoise computes the branch- and main-duct generated
// noise spectra for a junction/tee/elbow fitting, per ASHRAE Equations
// 4.13-4.26.
func JunctionGeneratedNoise(j *JunctionDetail) JunctionSpectra {
	branchDiamFt := equivalentDiameter(j.BranchShape, j.BranchAreaSqFt, j.BranchDiameterIn)
	mainDiamFt := equivalentDiameter(j.MainShape, j.MainAreaSqFt, j.MainDiameterIn)

	branchVelocity := flowVelocity(j.BranchFlowCFM, j.BranchAreaSqFt)
	mainVelocity := flowVelocity(j.MainFlowCFM, j.MainAreaSqFt)

	var m float64
	if branchVelocity > 0 {
		m = mainVelocity / branchVelocity
	}

	var spectra JunctionSpectra
	for i, freq := range Frequencies {
		st := strouhal(float64(freq), branchDiamFt, branchVelocity)
		kJ := characteristicSpectrum(m, st)
		lb := branchSoundPowerLevel(kJ, float64(freq), branchVelocity, j.BranchAreaSqFt, branchDiamFt)

		dr := roundingCorrection(j.BendRadiusIn, branchDiamFt, st)
		var dt float64
		if j.TurbulencePresent {
			dt = turbulenceCorrection(m)
		}

		branchLevel := lb + dr + dt
		var mainLevel float64
		switch j.Kind {
		case JunctionX:
			mainLevel = branchLevel + 20*log10Safe(mainDiamFt/branchDiamFt) + 3
		case JunctionT:
			mainLevel = branchLevel + 3
		case JunctionElbow90NoVanes:
			mainLevel = branchLevel
		case JunctionBranchTakeoff90:
			mainLevel = branchLevel + 20*log10Safe(mainDiamFt/branchDiamFt)
		}

		spectra.Branch[i] = branchLevel
		spectra.Main[i] = mainLevel
	}
	return spectra
}

// log10Safe returns log10(x), or 0 if x is non-positive, guarding the
// 20*log10(D_M/D_B) terms against a zero branch diameter.
func log10Safe(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log10(x)
}

// ElbowVanedGeneratedNoise computes the generated-noise spectrum for an
// elbow fitted with turning vanes. Vaned elbows are modeled as a
// branch-takeoff junction of the elbow's own cross-section against
// itself (no main/branch split — the elbow is the whole duct), scaled
// down for the vanes' flow-smoothing effect. This follows the spec's
// elbow/turning-vane component: velocity-driven generated noise that
// falls toward 0 as vane count and chord length increase the fitting's
// effective rounding.
func ElbowVanedGeneratedNoise(e *ElbowDetail) Spectrum {
	areaSqFt := elbowAreaSqFt(e)
	diamFt := equivalentDiameter(e.Shape, areaSqFt, e.DiameterIn)
	velocity := flowVelocity(e.FlowRateCFM, areaSqFt)

	vaneFactor := 1.0
	if e.NumVanes > 0 && e.VaneChordIn > 0 {
		// More, longer vanes straighten flow and reduce turbulence noise.
		vaneFactor = 1.0 / (1.0 + float64(e.NumVanes)*e.VaneChordIn/12.0)
	}

	var s Spectrum
	for i, freq := range Frequencies {
		st := strouhal(float64(freq), diamFt, velocity)
		kJ := characteristicSpectrum(1.0, st)
		lb := branchSoundPowerLevel(kJ, float64(freq), velocity, areaSqFt, diamFt)
		s[i] = lb * vaneFactor
	}
	return s
}

func elbowAreaSqFt(e *ElbowDetail) float64 {
	if e.Shape == ShapeCircular {
		d := e.DiameterIn / 12.0
		return math.Pi * d * d / 4
	}
	return (e.WidthIn / 12.0) * (e.HeightIn / 12.0)
}
