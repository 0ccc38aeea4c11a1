package cjson

// Vibrations describes the vibrational modes of the system.
type Vibrations struct {
	Frequencies      []float64   `json:"frequencies"               jsonschema:"required" jsonschema_description:"List of frequencies (in cm-1) for the vibrations."`
	Intensities      []float64   `json:"intensities"               jsonschema:"required" jsonschema_description:"List of IR intensities for the vibrations."`
	EigenVectors     [][]float64 `json:"eigenVectors"              jsonschema:"required" jsonschema_description:"List of eigenvectors (displacements in Angstroms) for the vibrations."`
	RamanIntensities []float64   `json:"ramanIntensities,omitzero"                       jsonschema_description:"Optional list of Raman intensities for the vibrations."`
	Symmetries       []string    `json:"symmetries,omitzero"                             jsonschema_description:"Optional list of symmetries for the vibrations (e.g., 'a1g', 'eg' ...)"`
	Modes            []int       `json:"modes,omitzero"                                  jsonschema_description:"Optional list of mode numbers (e.g, [ 1, 2, 3, 4, 5, 6, ... ])"`
}

// Count returns the number of vibrational modes.
func (v Vibrations) Count() int {
	return len(v.Frequencies)
}
