package cjson

// Shell types, using the angular momentum (l-value) convention.
const (
	ShellS = 0
	ShellP = 1
	ShellD = 2
	ShellF = 3
	ShellG = 4
)

// BasisSet describes a Gaussian basis set.
type BasisSet struct {
	Coefficients       []float64 `json:"coefficients"       jsonschema:"required" jsonschema_description:"List of coefficients for the basis functions."`
	Exponents          []float64 `json:"exponents"          jsonschema:"required" jsonschema_description:"List of exponents for the basis functions."`
	PrimitivesPerShell []int     `json:"primitivesPerShell" jsonschema:"required" jsonschema_description:"List of number of primitives per shell."`
	ShellToAtomMap     []int     `json:"shellToAtomMap"     jsonschema:"required" jsonschema_description:"List of atom indices for the basis functions."`
	ShellTypes         []int     `json:"shellTypes"         jsonschema:"required" jsonschema_description:"List of shell types for the basis functions (l-value, so s=0, p=1, d=2, etc.)."`
}

// Orbitals holds molecular orbital energies and coefficients. Coefficients
// are only meaningful together with a [BasisSet].
//
// MOCoefficients is used for closed-shell (restricted) calculations where
// alpha and beta orbitals are identical; AlphaCoefficients and
// BetaCoefficients are used for open-shell calculations.
type Orbitals struct {
	ElectronCount     int        `json:"electronCount"              jsonschema:"required" jsonschema_description:"Number of electrons in the species"`
	Energies          []float64  `json:"energies,omitzero"                                jsonschema_description:"List of energies for the molecular orbitals (in eV)"`
	MOCoefficients    []float64  `json:"moCoefficients,omitzero"                          jsonschema_description:"List of coefficients (flattened) for restricted molecular orbitals, i.e., alpha=beta (requires BasisSet to be present)."`
	AlphaCoefficients []float64  `json:"alphaCoefficients,omitzero"                       jsonschema_description:"List of coefficients (flattened) for alpha open-shell orbitals, (requires BasisSet to be present)."`
	BetaCoefficients  []float64  `json:"betaCoefficients,omitzero"                        jsonschema_description:"List of coefficients (flattened) for beta open-shell orbitals, (requires BasisSet to be present)."`
	Occupations       []int      `json:"occupations,omitzero"                             jsonschema_description:"List of occupations for the molecular orbitals"`
	Symmetries        [][]string `json:"symmetries,omitzero"                              jsonschema_description:"Symmetry of the orbital (e.g., a1, eg, t1g, etc.)"`
}

// OpenShell reports whether separate alpha and beta coefficients are given.
func (o Orbitals) OpenShell() bool {
	return len(o.AlphaCoefficients) > 0 || len(o.BetaCoefficients) > 0
}
