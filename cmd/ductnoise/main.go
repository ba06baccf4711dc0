package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/airnoise/ductnoise"
)

func main() {
	var pathFilePath = pflag.StringP("path", "p", "", "Path to a YAML path description file.")
	var debug = pflag.BoolP("debug", "d", false, "Enable debug trace logging.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ductnoise: compute duct-borne noise for an HVAC air-distribution path.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ductnoise --path path.yaml [--debug]\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help || *pathFilePath == "" {
		pflag.Usage()
		if *pathFilePath == "" {
			os.Exit(1)
		}
		os.Exit(0)
	}

	pf, err := loadPathFile(*pathFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ductnoise: %v\n", err)
		os.Exit(1)
	}

	elements := pf.toPathElements()

	if valid, warnings := ductnoise.ValidatePath(elements); !valid {
		fmt.Fprintf(os.Stderr, "ductnoise: path %q failed validation: %v\n", pf.PathID, warnings)
		os.Exit(1)
	} else {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "ductnoise: warning: %s\n", w)
		}
	}

	result := ductnoise.CalculatePath(elements, nil, *debug)
	printReport(pf.PathID, result)
}

func printReport(pathID string, result ductnoise.PathResult) {
	fmt.Printf("Path %s\n", pathID)
	if !result.Valid {
		fmt.Printf("  invalid: %s\n", result.Error)
		return
	}
	fmt.Printf("  source:             %.1f dBA\n", result.SourceDBA)
	fmt.Printf("  terminal:           %.1f dBA\n", result.TerminalDBA)
	fmt.Printf("  total attenuation:  %.1f dB\n", result.TotalAttenuationDBA)
	fmt.Printf("  NC rating:          NC-%d\n", result.NCRating)
	fmt.Printf("  final spectrum:     %v\n", result.FinalSpectrum)
	fmt.Println("  elements:")
	for _, e := range result.Elements {
		fmt.Printf("    %-16s %-10s before=%.1f dBA after=%.1f dBA NC-%d\n",
			e.ElementID, e.Kind, e.NoiseBeforeDBA, e.NoiseAfterDBA, e.NCRating)
		if e.Error != "" {
			fmt.Printf("      error: %s\n", e.Error)
		}
		for _, w := range e.Warnings {
			fmt.Printf("      warning: %s\n", w)
		}
	}
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
