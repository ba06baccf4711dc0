package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/airnoise/ductnoise"
)

// pathFile is the on-disk YAML shape for a path description, following
// the teacher's deviceid.go pattern of loading a plain YAML document into
// typed Go structures at startup.
type pathFile struct {
	PathID   string        `yaml:"path_id"`
	TargetNC int           `yaml:"target_nc"`
	Elements []elementSpec `yaml:"elements"`
}

// elementSpec is the YAML shape for one path element. Only the fields
// relevant to Kind need be set; ShapeRaw is normalized through
// ductnoise.NormalizeDuctShape.
type elementSpec struct {
	ID              string  `yaml:"id"`
	Kind            string  `yaml:"kind"`
	FittingToken    string  `yaml:"fitting_token"`
	OverallDBA      float64 `yaml:"overall_dba"`
	Spectrum        []float64 `yaml:"spectrum"`
	FlowRateCFM     float64 `yaml:"flow_rate_cfm"`
	ShapeRaw        string  `yaml:"shape"`
	LengthFt        float64 `yaml:"length_ft"`
	WidthIn         float64 `yaml:"width_in"`
	HeightIn        float64 `yaml:"height_in"`
	DiameterIn      float64 `yaml:"diameter_in"`
	LiningThickness float64 `yaml:"lining_thickness_in"`
	VaneChordIn     float64 `yaml:"vane_chord_in"`
	NumVanes        int     `yaml:"num_vanes"`
	BendRadiusIn    float64 `yaml:"bend_radius_in"`
	JunctionKind    string  `yaml:"junction_kind"`
	MainAreaSqFt    float64 `yaml:"main_area_sqft"`
	BranchAreaSqFt  float64 `yaml:"branch_area_sqft"`
	MainFlowCFM     float64 `yaml:"main_flow_cfm"`
	BranchFlowCFM   float64 `yaml:"branch_flow_cfm"`
	Turbulence      bool    `yaml:"turbulence"`
	RoomVolumeCuFt  float64 `yaml:"room_volume_cuft"`
	TerminationRaw  string  `yaml:"termination"`
	UpstreamFittingToken   string `yaml:"upstream_fitting_token"`
	DownstreamFittingToken string `yaml:"downstream_fitting_token"`
}

func loadPathFile(path string) (pathFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return pathFile{}, fmt.Errorf("open path file: %w", err)
	}
	defer f.Close()

	var pf pathFile
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&pf); err != nil {
		return pathFile{}, fmt.Errorf("decode path file: %w", err)
	}
	return pf, nil
}

// toPathElements converts the YAML description into engine input,
// applying shape normalization and fitting-token reclassification.
func (pf pathFile) toPathElements() []ductnoise.PathElement {
	elements := make([]ductnoise.PathElement, 0, len(pf.Elements))
	for i, spec := range pf.Elements {
		e := ductnoise.PathElement{
			ID:              spec.ID,
			Order:           i,
			RawFittingToken: spec.FittingToken,
		}

		switch spec.Kind {
		case "source":
			e.Kind = ductnoise.ElementSource
			sd := &ductnoise.SourceDetail{OverallDBA: spec.OverallDBA, FlowRateCFM: spec.FlowRateCFM}
			if len(spec.Spectrum) == ductnoise.NumBands {
				var s ductnoise.Spectrum
				copy(s[:], spec.Spectrum)
				sd.ExplicitSpectrum = &s
			}
			e.Source = sd
		case "duct":
			e.Kind = ductnoise.ElementDuct
			e.Duct = &ductnoise.DuctDetail{
				Shape:                  ductnoise.NormalizeDuctShape(spec.ShapeRaw),
				LengthFt:               spec.LengthFt,
				WidthIn:                spec.WidthIn,
				HeightIn:               spec.HeightIn,
				DiameterIn:             spec.DiameterIn,
				LiningThickness:        spec.LiningThickness,
				FlowRateCFM:            spec.FlowRateCFM,
				UpstreamFittingToken:   spec.UpstreamFittingToken,
				DownstreamFittingToken: spec.DownstreamFittingToken,
			}
			ductnoise.ReclassifyDuctSegment(&e)
		case "flex_duct":
			e.Kind = ductnoise.ElementFlexDuct
			e.FlexDuct = &ductnoise.FlexDuctDetail{DiameterIn: spec.DiameterIn, LengthFt: spec.LengthFt}
		case "elbow":
			e.Kind = ductnoise.ElementElbow
			e.Elbow = &ductnoise.ElbowDetail{
				Shape:        ductnoise.NormalizeDuctShape(spec.ShapeRaw),
				WidthIn:      spec.WidthIn,
				HeightIn:     spec.HeightIn,
				DiameterIn:   spec.DiameterIn,
				VaneChordIn:  spec.VaneChordIn,
				NumVanes:     spec.NumVanes,
				FlowRateCFM:  spec.FlowRateCFM,
				BendRadiusIn: spec.BendRadiusIn,
			}
		case "junction":
			e.Kind = ductnoise.ElementJunction
			e.Junction = &ductnoise.JunctionDetail{
				Kind:              junctionKindFromString(spec.JunctionKind),
				MainShape:         ductnoise.NormalizeDuctShape(spec.ShapeRaw),
				BranchShape:       ductnoise.NormalizeDuctShape(spec.ShapeRaw),
				MainAreaSqFt:      spec.MainAreaSqFt,
				BranchAreaSqFt:    spec.BranchAreaSqFt,
				MainFlowCFM:       spec.MainFlowCFM,
				BranchFlowCFM:     spec.BranchFlowCFM,
				BendRadiusIn:      spec.BendRadiusIn,
				TurbulencePresent: spec.Turbulence,
			}
		case "terminal":
			e.Kind = ductnoise.ElementTerminal
			e.Terminal = &ductnoise.TerminalDetail{
				Type:           terminationFromString(spec.TerminationRaw),
				RoomVolumeCuFt: spec.RoomVolumeCuFt,
				Shape:          ductnoise.NormalizeDuctShape(spec.ShapeRaw),
				WidthIn:        spec.WidthIn,
				HeightIn:       spec.HeightIn,
				DiameterIn:     spec.DiameterIn,
			}
		}
		elements = append(elements, e)
	}
	return elements
}

func junctionKindFromString(raw string) ductnoise.JunctionKind {
	switch raw {
	case "x_junction":
		return ductnoise.JunctionX
	case "elbow_90_no_vanes":
		return ductnoise.JunctionElbow90NoVanes
	case "branch_takeoff_90":
		return ductnoise.JunctionBranchTakeoff90
	default:
		return ductnoise.JunctionT
	}
}

func terminationFromString(raw string) ductnoise.TerminationType {
	if raw == "free" {
		return ductnoise.TerminationFree
	}
	return ductnoise.TerminationFlush
}
