package ductnoise

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TableOverrides holds caller-supplied replacement rows for the built-in
// flex duct table (Table 25); no other table can be overridden. It
// follows the same load-once-at-
// startup pattern the teacher uses for its vendor lookup table: read a
// YAML document, populate typed Go structures, and hand back a value the
// caller applies before running any calculations.
type TableOverrides struct {
	// FlexDuct replaces flexTable entries. Each entry's Bands must have
	// exactly 8 values, ordered per Frequencies.
	FlexDuct []FlexOverrideRow `yaml:"flex_duct"`
}

// FlexOverrideRow is one (diameter, length) -> 8-band override for the
// flex duct insertion-loss table.
type FlexOverrideRow struct {
	DiameterIn float64    `yaml:"diameter_in"`
	LengthFt   float64    `yaml:"length_ft"`
	Bands      [NumBands]float64 `yaml:"bands"`
}

// LoadTableOverrides reads a YAML document describing table overrides.
func LoadTableOverrides(r io.Reader) (TableOverrides, error) {
	var overrides TableOverrides
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&overrides); err != nil {
		return TableOverrides{}, fmt.Errorf("decode table overrides: %w", err)
	}
	return overrides, nil
}

// LoadTableOverridesFile opens path and loads table overrides from it.
func LoadTableOverridesFile(path string) (TableOverrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return TableOverrides{}, fmt.Errorf("open table overrides file: %w", err)
	}
	defer f.Close()
	return LoadTableOverrides(f)
}

// Apply installs the overrides into the package's flex duct table,
// replacing any existing entry at the same (diameter, length) key and
// adding new ones. It does not touch any other table; the flex table is
// the one table callers have historically needed to substitute with a
// manufacturer's own tested data.
func (o TableOverrides) Apply() {
	for _, row := range o.FlexDuct {
		flexTable[flexKey{row.DiameterIn, row.LengthFt}] = Spectrum(row.Bands)
	}
}
