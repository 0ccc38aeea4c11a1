package cjson

// Atoms describes the atoms of the system. Every per-atom array has one
// entry per atom.
type Atoms struct {
	Elements      Elements `json:"elements"               jsonschema:"required" jsonschema_description:"List of atomic numbers for the atoms."`
	Coords        Coords   `json:"coords"                 jsonschema:"required" jsonschema_description:"List of coordinates."`
	FormalCharges []int    `json:"formalCharges,omitzero"                       jsonschema_description:"Optional list of formal charges for the atoms."`
	Labels        []string `json:"labels,omitzero"                              jsonschema_description:"Optional list of custom labels for atoms (e.g., 'R' / 'S' or '0.12', etc.)"`
	Layer         []int    `json:"layer,omitzero"                               jsonschema_description:"Optional list of layer numbers for the atoms (generally just 1 for most molecules)."`
}

// Count returns the number of atoms, taken from the element list.
func (a Atoms) Count() int {
	return len(a.Elements.Number)
}

// Elements lists the atomic number of each atom.
type Elements struct {
	Number []int `json:"number" jsonschema:"required" jsonschema_description:"Required list of atomic numbers for the atoms in this file."`
}

// Coords holds flat coordinate arrays, three values (x, y, z) per atom.
type Coords struct {
	XYZ           []float64   `json:"3d"                    jsonschema:"required" jsonschema_description:"List of 3d Cartesian coordinates (in Angstrom) for the atoms [ x, y, z, x, y, z, ... ]"`
	XYZFractional []float64   `json:"3dFractional,omitzero"                       jsonschema_description:"Optional list of 3d fractional coordinates for the atoms [ x, y, z, x, y, z, ... ]"`
	XYZSets       [][]float64 `json:"3dSets,omitzero"                             jsonschema_description:"Optional list of lists of 3d Cartesian coordinates (in Angstrom) for the atoms [ [x, y, z], [x, y, z], ... ]"`
}

// Positions groups the Cartesian coordinates into one triple per atom.
// Trailing values that do not form a full triple are ignored.
func (c Coords) Positions() [][3]float64 {
	return triples(c.XYZ)
}

// Conformer returns the Cartesian coordinates of conformer i from 3dSets.
func (c Coords) Conformer(i int) ([][3]float64, bool) {
	if i < 0 || i >= len(c.XYZSets) {
		return nil, false
	}

	return triples(c.XYZSets[i]), true
}

func triples(flat []float64) [][3]float64 {
	out := make([][3]float64, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		out = append(out, [3]float64{flat[i], flat[i+1], flat[i+2]})
	}

	return out
}
