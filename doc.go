// Package ductnoise computes HVAC duct-borne background noise at occupied
// receiver positions, using ASHRAE-style octave-band calculators for
// ducts, fittings, and receiver rooms.
//
// CalculatePath threads a source spectrum through an ordered list of
// PathElements, applying attenuation and generated noise in turn.
// CombineReceiver energy-sums the terminal spectra of multiple paths
// serving one receiver room and rates the result against a target NC.
// ValidatePath performs a static pre-traversal check.
package ductnoise
