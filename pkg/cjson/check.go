package cjson

import (
	"fmt"
	"strconv"

	"github.com/macropower/chemicaljson/pkg/jsonschema"
)

// WarningCode classifies a [SemanticWarning].
type WarningCode string

const (
	CodeAtomCount            WarningCode = "atom-count"
	CodeBondCount            WarningCode = "bond-count"
	CodeBondIndex            WarningCode = "bond-index"
	CodeOrbitalsWithoutBasis WarningCode = "orbitals-without-basis"
	CodeUnsupportedVersion   WarningCode = "unsupported-version"
	CodeVibrationShape       WarningCode = "vibration-shape"
	CodeSpectraShape         WarningCode = "spectra-shape"
	CodeBasisShape           WarningCode = "basis-shape"
	CodeLayerShape           WarningCode = "layer-shape"
	CodeOrbitalShape         WarningCode = "orbital-shape"
)

// SemanticWarning is a violation of a cross-member rule that the schema
// cannot express.
type SemanticWarning struct {
	Code    WarningCode `json:"code"`
	Path    string      `json:"path"`
	Message string      `json:"message"`
}

func (w SemanticWarning) Error() string {
	return fmt.Sprintf("%s: %s (%s)", w.Path, w.Message, w.Code)
}

// Unwrap returns [ErrUnsupportedVersion] for version warnings.
func (w SemanticWarning) Unwrap() error {
	if w.Code == CodeUnsupportedVersion {
		return ErrUnsupportedVersion
	}

	return nil
}

// Check runs the semantic pass over d and returns every warning found, in
// document order. A nil result means d is consistent.
func (d *Document) Check() []SemanticWarning {
	c := &checker{atoms: d.Atoms.Count()}

	if w, ok := d.checkVersion(); !ok {
		c.warnings = append(c.warnings, w)
	}

	c.checkAtoms(d.Atoms)

	if d.Bonds != nil {
		c.checkBonds(*d.Bonds)
	}

	c.checkPartialCharges(d.PartialCharges)

	if d.Vibrations != nil {
		c.checkVibrations(*d.Vibrations)
	}

	if d.Layer != nil {
		c.checkLayer(*d.Layer, d.Atoms.Layer)
	}

	if d.BasisSet != nil {
		c.checkBasisSet(*d.BasisSet)
	}

	if d.Orbitals != nil {
		if d.BasisSet == nil {
			c.add(CodeOrbitalsWithoutBasis, "/orbitals", "orbitals are present without basisSet")
		}

		c.checkOrbitals(*d.Orbitals)
	}

	if d.Spectra != nil && d.Spectra.Electronic != nil {
		c.checkElectronic(*d.Spectra.Electronic)
	}

	return c.warnings
}

func (d *Document) checkVersion() (SemanticWarning, bool) {
	if IsSupportedVersion(d.ChemicalJSON) {
		return SemanticWarning{}, true
	}

	return SemanticWarning{
		Code:    CodeUnsupportedVersion,
		Path:    "/chemicalJson",
		Message: fmt.Sprintf("version %d is not supported (supported: %v)", d.ChemicalJSON, SupportedVersions),
	}, false
}

type checker struct {
	warnings []SemanticWarning
	atoms    int
}

func (c *checker) add(code WarningCode, path, format string, args ...any) {
	c.warnings = append(c.warnings, SemanticWarning{
		Code:    code,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// length reports a warning when got differs from want.
func (c *checker) length(code WarningCode, path string, got, want int, what string) {
	if got != want {
		c.add(code, path, "has %d entries, want %d (%s)", got, want, what)
	}
}

func (c *checker) checkAtoms(a Atoms) {
	n := c.atoms

	c.length(CodeAtomCount, "/atoms/coords/3d", len(a.Coords.XYZ), 3*n, "3 per atom")

	if a.Coords.XYZFractional != nil {
		c.length(CodeAtomCount, "/atoms/coords/3dFractional", len(a.Coords.XYZFractional), 3*n, "3 per atom")
	}

	for i, set := range a.Coords.XYZSets {
		c.length(CodeAtomCount, "/atoms/coords/3dSets/"+strconv.Itoa(i), len(set), 3*n, "3 per atom")
	}

	if a.FormalCharges != nil {
		c.length(CodeAtomCount, "/atoms/formalCharges", len(a.FormalCharges), n, "1 per atom")
	}

	if a.Labels != nil {
		c.length(CodeAtomCount, "/atoms/labels", len(a.Labels), n, "1 per atom")
	}

	if a.Layer != nil {
		c.length(CodeAtomCount, "/atoms/layer", len(a.Layer), n, "1 per atom")
	}
}

func (c *checker) checkBonds(b Bonds) {
	c.length(CodeBondCount, "/bonds/connections/index", len(b.Connections.Index), 2*len(b.Order), "2 per bond order")

	for i, idx := range b.Connections.Index {
		if idx < 0 || idx >= c.atoms {
			c.add(CodeBondIndex, "/bonds/connections/index/"+strconv.Itoa(i),
				"atom index %d is outside [0, %d)", idx, c.atoms)
		}
	}
}

func (c *checker) checkPartialCharges(p PartialCharges) {
	for _, method := range p.Methods() {
		c.length(CodeAtomCount, jsonschema.Pointer([]string{"partialCharges", method}), len(p[method]), c.atoms, "1 per atom")
	}
}

func (c *checker) checkVibrations(v Vibrations) {
	m := v.Count()

	c.length(CodeVibrationShape, "/vibrations/intensities", len(v.Intensities), m, "1 per frequency")
	c.length(CodeVibrationShape, "/vibrations/eigenVectors", len(v.EigenVectors), m, "1 per frequency")

	for i, ev := range v.EigenVectors {
		c.length(CodeAtomCount, "/vibrations/eigenVectors/"+strconv.Itoa(i), len(ev), 3*c.atoms, "3 per atom")
	}

	if v.RamanIntensities != nil {
		c.length(CodeVibrationShape, "/vibrations/ramanIntensities", len(v.RamanIntensities), m, "1 per frequency")
	}

	if v.Symmetries != nil {
		c.length(CodeVibrationShape, "/vibrations/symmetries", len(v.Symmetries), m, "1 per frequency")
	}

	if v.Modes != nil {
		c.length(CodeVibrationShape, "/vibrations/modes", len(v.Modes), m, "1 per frequency")
	}
}

func (c *checker) checkLayer(l Layer, atomLayers []int) {
	n := l.Count()

	c.length(CodeLayerShape, "/layer/locked", len(l.Locked), n, "1 per layer")

	enable := l.Enable.Styles()
	for _, name := range sortedKeys(enable) {
		c.length(CodeLayerShape, "/layer/enable/"+name, len(enable[name]), n, "1 per layer")
	}

	settings := l.Settings.Styles()
	for _, name := range sortedKeys(settings) {
		c.length(CodeLayerShape, "/layer/settings/"+name, len(settings[name]), n, "1 per layer")
	}

	for i, idx := range atomLayers {
		if idx < 0 || idx >= n {
			c.add(CodeLayerShape, "/atoms/layer/"+strconv.Itoa(i), "layer %d is outside [0, %d)", idx, n)
		}
	}
}

func (c *checker) checkBasisSet(b BasisSet) {
	shells := len(b.ShellTypes)

	c.length(CodeBasisShape, "/basisSet/primitivesPerShell", len(b.PrimitivesPerShell), shells, "1 per shell")
	c.length(CodeBasisShape, "/basisSet/shellToAtomMap", len(b.ShellToAtomMap), shells, "1 per shell")
	c.length(CodeBasisShape, "/basisSet/coefficients", len(b.Coefficients), len(b.Exponents), "1 per exponent")

	primitives := 0
	for _, p := range b.PrimitivesPerShell {
		primitives += p
	}

	c.length(CodeBasisShape, "/basisSet/exponents", len(b.Exponents), primitives, "sum of primitivesPerShell")

	for i, idx := range b.ShellToAtomMap {
		if idx < 0 || idx >= c.atoms {
			c.add(CodeBasisShape, "/basisSet/shellToAtomMap/"+strconv.Itoa(i),
				"atom index %d is outside [0, %d)", idx, c.atoms)
		}
	}
}

func (c *checker) checkOrbitals(o Orbitals) {
	if o.ElectronCount < 0 {
		c.add(CodeOrbitalShape, "/orbitals/electronCount", "electron count %d is negative", o.ElectronCount)
	}

	if o.Occupations != nil && o.Energies != nil {
		c.length(CodeOrbitalShape, "/orbitals/occupations", len(o.Occupations), len(o.Energies), "1 per orbital energy")
	}
}

func (c *checker) checkElectronic(e Electronic) {
	n := len(e.Energies)

	c.length(CodeSpectraShape, "/spectra/electronic/intensities", len(e.Intensities), n, "1 per energy")

	if e.Rotation != nil {
		c.length(CodeSpectraShape, "/spectra/electronic/rotation", len(e.Rotation), n, "1 per energy")
	}
}
