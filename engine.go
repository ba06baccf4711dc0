package ductnoise

import "math"

// Engine holds a Debug flag for path calculations. CalculatePath does not
// read an Engine value; per-element trace logging through tracelog.go is
// switched on by CalculatePath's own debug argument.
type Engine struct {
	Debug bool
}

// defaultSourceDBA is the overall level assumed when a path has no
// source element or the source supplies no level at all.
const defaultSourceDBA = 50.0

// soundSpeedFtPerSec is the speed of sound used by the end-reflection
// loss formula.
const soundSpeedFtPerSec = 1130.0

// ValidatePath statically inspects an element list without running any
// calculator. It returns false only for an empty element list; everything
// else, including a missing source element, is reported as a warning but
// does not fail validation.
func ValidatePath(elements []PathElement) (bool, []string) {
	var warnings []string
	if len(elements) == 0 {
		return false, []string{"path has no elements"}
	}

	hasSource := false
	for _, e := range elements {
		switch e.Kind {
		case ElementSource:
			hasSource = true
		case ElementDuct:
			if e.Duct == nil {
				warnings = append(warnings, e.ID+": duct element missing detail")
				continue
			}
			if e.Duct.LengthFt <= 0 {
				warnings = append(warnings, e.ID+": duct has non-positive length")
			}
			hasDim := e.Duct.WidthIn > 0 || e.Duct.HeightIn > 0 || e.Duct.DiameterIn > 0
			if !hasDim {
				warnings = append(warnings, e.ID+": duct has no positive geometric dimension")
			}
		case ElementJunction:
			if e.Junction == nil {
				warnings = append(warnings, e.ID+": junction element missing detail")
				continue
			}
			if e.Junction.BranchFlowCFM < 0 || e.Junction.MainFlowCFM < 0 {
				warnings = append(warnings, e.ID+": junction has negative flow rate")
			}
		case ElementElbow:
			if e.Elbow != nil && e.Elbow.FlowRateCFM < 0 {
				warnings = append(warnings, e.ID+": elbow has negative flow rate")
			}
		}
	}

	if !hasSource {
		warnings = append(warnings, "path has no source element; a default 50 dBA flat spectrum will be used")
	}

	return true, warnings
}

// CalculatePath threads an octave-band spectrum through elements in
// order, applying each element's attenuation and generated noise, and
// returns the full per-element trace plus final ratings.
func CalculatePath(elements []PathElement, explicitSource *Spectrum, debug bool) PathResult {
	var result PathResult

	if len(elements) == 0 {
		result.Valid = false
		result.Error = (&InvalidInputError{Reason: "element list is empty"}).Error()
		return result
	}

	withDebug(debug, func() {
		result = calculatePath(elements, explicitSource)
	})
	return result
}

func calculatePath(elements []PathElement, explicitSource *Spectrum) PathResult {
	result := PathResult{Valid: true}

	sourceIdx := -1
	for i, e := range elements {
		if e.Kind == ElementSource {
			sourceIdx = i
			break
		}
	}

	var current Spectrum
	var sourceDBA float64
	if sourceIdx == -1 {
		result.Warnings = append(result.Warnings, "path has no source element; using default 50 dBA flat spectrum")
		sourceDBA = defaultSourceDBA
		for i := range current {
			current[i] = defaultSourceDBA
		}
	} else {
		src := elements[sourceIdx].Source
		switch {
		case explicitSource != nil:
			current = *explicitSource
		case src != nil && src.ExplicitSpectrum != nil:
			current = *src.ExplicitSpectrum
		case src != nil:
			current = EstimateSpectrum(src.OverallDBA)
		default:
			current = EstimateSpectrum(defaultSourceDBA)
		}
		if src != nil {
			sourceDBA = src.OverallDBA
		} else {
			sourceDBA = defaultSourceDBA
		}
	}
	result.Elements = append(result.Elements, PathElementResult{
		ElementID:      elementID(elements, sourceIdx),
		Kind:           ElementSource,
		NoiseBeforeDBA: DBA(current),
		NoiseAfterDBA:  DBA(current),
		StateAfter:     current,
		NCRating:       NCRating(current),
	})

	var lastDuct *DuctDetail
	var totalAttenuationDBA float64

	for i, e := range elements {
		if i == sourceIdx {
			continue
		}
		if e.Kind == ElementDuct && e.Duct != nil {
			lastDuct = e.Duct
		}

		before := DBA(current)

		if e.Kind == ElementDuct && e.Duct != nil {
			if token, ok := upstreamFittingAllowed(elements, i); ok {
				upstreamNoise := fittingGeneratedNoise(token, e.Duct)
				current = AddGenerated(current, upstreamNoise)
				before = DBA(current)
			}
		}

		atten, generated, elErr, warnings := computeElementEffect(&e, lastDuct)

		elResult := PathElementResult{
			ElementID: e.ID,
			Kind:      e.Kind,
			Warnings:  warnings,
		}

		if elErr != nil {
			elResult.Error = (&CalculatorError{Element: e.ID, Cause: elErr}).Error()
			elResult.NoiseBeforeDBA = before
			elResult.NoiseAfterDBA = before
			elResult.StateAfter = current
			elResult.NCRating = NCRating(current)
			trace.Debug("element failed", "id", e.ID, "kind", e.Kind.String(), "error", elResult.Error)
			result.Elements = append(result.Elements, elResult)
			result.Warnings = append(result.Warnings, warnings...)
			continue
		}

		afterAtten := current
		if atten != nil {
			afterAtten = SubtractAttenuation(current, *atten)
			elResult.Attenuation = atten
			totalAttenuationDBA += before - DBA(afterAtten)
		}

		after := afterAtten
		if generated != nil {
			after = AddGenerated(afterAtten, *generated)
			elResult.Generated = generated
		}

		if e.Kind == ElementDuct && e.Duct != nil {
			if token, ok := downstreamFittingAllowed(elements, i); ok {
				downstreamNoise := fittingGeneratedNoise(token, e.Duct)
				after = AddGenerated(after, downstreamNoise)
				if elResult.Generated != nil {
					merged := EnergySum(*elResult.Generated, downstreamNoise)
					elResult.Generated = &merged
				} else {
					elResult.Generated = &downstreamNoise
				}
			}
		}

		guarded, guardWarnings := guardSpectrum(e.ID, after)
		after = guarded
		warnings = append(warnings, guardWarnings...)

		current = after
		elResult.NoiseBeforeDBA = before
		elResult.NoiseAfterDBA = DBA(after)
		elResult.StateAfter = after
		elResult.NCRating = NCRating(after)
		elResult.Warnings = append(elResult.Warnings, guardWarnings...)
		trace.Debug("element processed", "id", e.ID, "kind", e.Kind.String(), "before_dba", before, "after_dba", elResult.NoiseAfterDBA)

		result.Elements = append(result.Elements, elResult)
		result.Warnings = append(result.Warnings, warnings...)
	}

	result.SourceDBA = sourceDBA
	result.TerminalDBA = DBA(current)
	result.TotalAttenuationDBA = totalAttenuationDBA
	result.NCRating = NCRating(current)
	result.FinalSpectrum = current
	return result
}

func elementID(elements []PathElement, idx int) string {
	if idx < 0 || idx >= len(elements) {
		return "source"
	}
	return elements[idx].ID
}

// computeElementEffect dispatches on element kind and returns the
// element's attenuation spectrum, generated-noise spectrum (either may be
// nil), any calculator error, and accumulated warnings.
func computeElementEffect(e *PathElement, lastDuct *DuctDetail) (*Spectrum, *Spectrum, error, []string) {
	switch e.Kind {
	case ElementDuct:
		return computeDuctEffect(e)
	case ElementFlexDuct:
		return computeFlexDuctEffect(e)
	case ElementElbow:
		return computeElbowEffect(e)
	case ElementJunction:
		return computeJunctionEffect(e)
	case ElementTerminal:
		return computeTerminalEffect(e, lastDuct)
	default:
		return nil, nil, nil, nil
	}
}

func computeDuctEffect(e *PathElement) (*Spectrum, *Spectrum, error, []string) {
	d := e.Duct
	if d == nil {
		return nil, nil, &InvalidInputError{Reason: e.ID + ": duct element missing detail"}, nil
	}

	var warnings []string
	if d.Shape == ShapeCircular {
		if d.LiningThickness > 0 {
			diameter, clampedD := ClampCircularDiameter(d.DiameterIn)
			lining, clampedL := ClampLiningThickness(d.LiningThickness)
			if clampedD {
				warnings = append(warnings, (&OutOfRangeWarning{Element: e.ID, Detail: "circular duct diameter outside [6,60] in"}).Error())
			}
			if clampedL {
				warnings = append(warnings, (&OutOfRangeWarning{Element: e.ID, Detail: "lining thickness outside [1,3] in"}).Error())
			}
			spec := CircularLinedInsertionLoss(diameter, lining, d.LengthFt)
			return &spec, nil, nil, warnings
		}
		spec := CircularUnlinedAttenuation(d.DiameterIn, d.LengthFt)
		return &spec, nil, nil, warnings
	}

	// Rectangular.
	if d.LiningThickness > 0 {
		if d.LiningThickness <= 1.0 {
			spec := Rect1InLiningInsertionLoss(d.WidthIn, d.HeightIn, d.LengthFt)
			return &spec, nil, nil, warnings
		}
		spec := Rect2InLiningAttenuation(d.WidthIn, d.HeightIn, d.LengthFt)
		return &spec, nil, nil, warnings
	}
	spec := RectUnlinedAttenuation(d.WidthIn, d.HeightIn, d.LengthFt)
	return &spec, nil, nil, warnings
}

func computeFlexDuctEffect(e *PathElement) (*Spectrum, *Spectrum, error, []string) {
	f := e.FlexDuct
	if f == nil {
		return nil, nil, &InvalidInputError{Reason: e.ID + ": flex duct element missing detail"}, nil
	}
	spec := FlexDuctInsertionLoss(f.DiameterIn, f.LengthFt)
	return &spec, nil, nil, nil
}

func computeElbowEffect(e *PathElement) (*Spectrum, *Spectrum, error, []string) {
	el := e.Elbow
	if el == nil {
		return nil, nil, &InvalidInputError{Reason: e.ID + ": elbow element missing detail"}, nil
	}

	if el.VaneChordIn > 0 && el.NumVanes > 0 {
		spec := ElbowVanedGeneratedNoise(el)
		return nil, &spec, nil, nil
	}

	// Plain 90-degree elbow without vanes: fall back to the junction
	// calculator's elbow_90_no_vanes spectrum, treating the elbow as a
	// junction whose main and branch sides are the same duct.
	areaSqFt := elbowAreaSqFt(el)
	j := JunctionDetail{
		Kind:             JunctionElbow90NoVanes,
		MainShape:        el.Shape,
		BranchShape:      el.Shape,
		MainAreaSqFt:     areaSqFt,
		BranchAreaSqFt:   areaSqFt,
		MainFlowCFM:      el.FlowRateCFM,
		BranchFlowCFM:    el.FlowRateCFM,
		MainDiameterIn:   el.DiameterIn,
		BranchDiameterIn: el.DiameterIn,
		BendRadiusIn:     el.BendRadiusIn,
	}
	spectra := JunctionGeneratedNoise(&j)
	return nil, &spectra.Main, nil, nil
}

func computeJunctionEffect(e *PathElement) (*Spectrum, *Spectrum, error, []string) {
	j := e.Junction
	if j == nil {
		return nil, nil, &InvalidInputError{Reason: e.ID + ": junction element missing detail"}, nil
	}
	spectra := JunctionGeneratedNoise(j)
	side := selectJunctionSide(j)
	switch side {
	case SideBranch:
		return nil, &spectra.Branch, nil, nil
	default:
		return nil, &spectra.Main, nil, nil
	}
}

// selectJunctionSide resolves SideAuto to SideBranch when the downstream
// duct's area matches the branch side within 5%, else SideMain. This is
// the spec's fixed resolution of the "auto" open question in §9.
func selectJunctionSide(j *JunctionDetail) JunctionSide {
	if j.PreferredSide != SideAuto {
		return j.PreferredSide
	}
	if j.DownstreamAreaSqFt <= 0 || j.BranchAreaSqFt <= 0 {
		return SideMain
	}
	diff := math.Abs(j.DownstreamAreaSqFt-j.BranchAreaSqFt) / j.BranchAreaSqFt
	if diff <= 0.05 {
		return SideBranch
	}
	return SideMain
}

func computeTerminalEffect(e *PathElement, lastDuct *DuctDetail) (*Spectrum, *Spectrum, error, []string) {
	t := e.Terminal
	if t == nil {
		return nil, nil, &InvalidInputError{Reason: e.ID + ": terminal element missing detail"}, nil
	}

	shape := t.Shape
	width, height, diameter := t.WidthIn, t.HeightIn, t.DiameterIn
	if width == 0 && height == 0 && diameter == 0 && lastDuct != nil {
		shape = lastDuct.Shape
		width, height, diameter = lastDuct.WidthIn, lastDuct.HeightIn, lastDuct.DiameterIn
	}

	var equivDiameterIn float64
	if shape == ShapeCircular {
		equivDiameterIn = diameter
	} else {
		equivDiameterIn = math.Sqrt(4 * width * height / math.Pi)
	}
	if equivDiameterIn <= 0 {
		return nil, nil, nil, nil
	}

	spec := endReflectionLoss(equivDiameterIn, t.Type)
	return &spec, nil, nil, nil
}

// endReflectionLoss computes the per-band end-reflection loss at a duct
// termination, using the standard unflanged/flanged opening formula
// ERL = 10*log10(1 + (c/(pi*f*D))^2), scaled up for a flush (flanged)
// termination relative to a free (unflanged) discharge, since a flush
// mount reflects more low-frequency energy back down the duct.
func endReflectionLoss(equivDiameterIn float64, termType TerminationType) Spectrum {
	d := equivDiameterIn / 12.0
	var s Spectrum
	for i, freq := range Frequencies {
		x := soundSpeedFtPerSec / (math.Pi * float64(freq) * d)
		base := 10 * math.Log10(1+x*x)
		if termType == TerminationFlush {
			base *= 1.5
		}
		s[i] = base
	}
	return s
}
