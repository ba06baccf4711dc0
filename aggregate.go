package ductnoise

import "math"

// CombineReceiver converts each path's terminal spectrum to sound
// pressure at a shared receiver via its chosen model, energy-sums the
// results across paths, and rates the total against targetNC.
func CombineReceiver(paths []PathResult, params []ReceiverPathParams, targetNC int) ReceiverResult {
	var result ReceiverResult

	if len(paths) == 0 || len(paths) != len(params) {
		result.Warnings = append(result.Warnings, (&AggregationError{Reason: "no valid path/parameter pairs supplied"}).Error())
		result.TargetNC = targetNC
		result.NCRating = NCRating(result.CombinedSpectrum)
		result.MeetsTarget = result.NCRating <= targetNC
		return result
	}

	var linearEnergy [NumBands]float64
	validCount := 0

	for i, path := range paths {
		if !path.Valid {
			result.Warnings = append(result.Warnings, "skipped invalid path "+path.PathID+" in receiver aggregation")
			continue
		}
		p := params[i]
		pressure := pathPressureSpectrum(path.FinalSpectrum, p)
		for b, level := range pressure {
			if level > 0 {
				linearEnergy[b] += math.Pow(10, level/10)
			}
		}
		validCount++
	}

	if validCount == 0 {
		result.Warnings = append(result.Warnings, (&AggregationError{Reason: "no valid path spectra to aggregate"}).Error())
		result.TargetNC = targetNC
		result.NCRating = NCRating(result.CombinedSpectrum)
		result.MeetsTarget = result.NCRating <= targetNC
		return result
	}

	var combined Spectrum
	for b, energy := range linearEnergy {
		if energy > 0 {
			combined[b] = 10 * math.Log10(energy)
		}
	}

	result.CombinedSpectrum = combined
	result.TotalDBA = DBA(combined)
	result.NCRating = NCRating(combined)
	result.TargetNC = targetNC
	result.MeetsTarget = result.NCRating <= targetNC
	return result
}

// pathPressureSpectrum converts one path's terminal (sound-power) spectrum
// into a sound-pressure spectrum at the receiver, per the path's chosen
// model. The receiver correction tables (35-38) stop at 4000 Hz; the
// 8 kHz band has no pressure conversion and is dropped rather than
// carried forward as an unconverted power level.
func pathPressureSpectrum(terminal Spectrum, p ReceiverPathParams) Spectrum {
	var out Spectrum
	for i, freq := range Frequencies {
		if freq > 4000 {
			out[i] = 0
			continue
		}
		out[i] = ReceiverPressureBand(p.Model, terminal[i], p.DistanceFt, p.RoomVolumeCuFt, p.CeilingHeightFt, p.FloorAreaPerDiffuserSqFt, freq)
	}
	return out
}
