package cjson

// Spectra holds non-vibrational spectra.
type Spectra struct {
	Electronic *Electronic `json:"electronic,omitempty" jsonschema_description:"Optional electronic spectra"`
	NMR        *NMR        `json:"nmr,omitempty"        jsonschema_description:"Optional NMR spectra"`
}

// Electronic is an electronic (UV/Vis, CD) spectrum.
type Electronic struct {
	Energies    []float64 `json:"energies"          jsonschema:"required" jsonschema_description:"List of excitation energies for the electronic spectra (in eV)"`
	Intensities []float64 `json:"intensities"       jsonschema:"required" jsonschema_description:"List of intensities for the electronic spectra"`
	Rotation    []float64 `json:"rotation,omitzero"                       jsonschema_description:"Optional list of rotation angles for the CD spectra (in degrees)"`
}

// NMR is a nuclear magnetic resonance spectrum.
type NMR struct {
	Shifts []float64 `json:"shifts" jsonschema:"required" jsonschema_description:"List of absolute chemical shifts for the NMR spectra (in ppm)"`
}
