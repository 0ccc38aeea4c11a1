package cjson

import (
	"encoding/json"
	"math"
)

// UnitCell describes the periodic cell of the system.
//
// Consumers should prefer CellVectors when it is fully specified (nine
// values, not all zero), since it fully describes the cell, and fall back to
// the a, b, c, alpha, beta and gamma parameters otherwise. See [UnitCell.Vectors].
type UnitCell struct {
	A           float64   `json:"a"                    jsonschema:"required"             jsonschema_description:"Unit cell a-axis length (in Angstrom)."`
	B           float64   `json:"b"                    jsonschema:"required"             jsonschema_description:"Unit cell b-axis length (in Angstrom)."`
	C           float64   `json:"c"                    jsonschema:"required"             jsonschema_description:"Unit cell c-axis length (in Angstrom)."`
	Alpha       float64   `json:"alpha"                jsonschema:"required"             jsonschema_description:"Unit cell alpha angle (in degrees)."`
	Beta        float64   `json:"beta"                 jsonschema:"required"             jsonschema_description:"Unit cell beta angle (in degrees)."`
	Gamma       float64   `json:"gamma"                jsonschema:"required"             jsonschema_description:"Unit cell gamma angle (in degrees)."`
	CellVectors []float64 `json:"cellVectors,omitzero" jsonschema:"minItems=9,maxItems=9" jsonschema_description:"Optional list of cell vectors (in Angstrom): [ x1, y1, z1, x2, y2, z2, ... ]"`
}

// CellVectorsLength is the fixed length of UnitCell.CellVectors.
const CellVectorsLength = 9

// NewUnitCell returns a unit cell from its parameters, with the default
// all-zero cell vectors.
func NewUnitCell(a, b, c, alpha, beta, gamma float64) *UnitCell {
	return &UnitCell{
		A: a, B: b, C: c,
		Alpha: alpha, Beta: beta, Gamma: gamma,
		CellVectors: make([]float64, CellVectorsLength),
	}
}

type unitCell UnitCell

func (u *UnitCell) UnmarshalJSON(data []byte) error {
	var out unitCell
	if err := json.Unmarshal(data, &out); err != nil {
		return err //nolint:wrapcheck // Preserve json error types.
	}

	if out.CellVectors == nil {
		out.CellVectors = make([]float64, CellVectorsLength)
	}

	*u = UnitCell(out)

	return nil
}

// HasCellVectors reports whether CellVectors fully specifies the cell.
func (u UnitCell) HasCellVectors() bool {
	if len(u.CellVectors) != CellVectorsLength {
		return false
	}

	for _, v := range u.CellVectors {
		if v != 0 {
			return true
		}
	}

	return false
}

// Vectors returns the three lattice vectors in Angstrom. CellVectors is used
// when it fully specifies the cell; otherwise the vectors are derived from
// the cell parameters with a along x and b in the xy-plane.
func (u UnitCell) Vectors() [3][3]float64 {
	if u.HasCellVectors() {
		v := u.CellVectors

		return [3][3]float64{
			{v[0], v[1], v[2]},
			{v[3], v[4], v[5]},
			{v[6], v[7], v[8]},
		}
	}

	cosA := math.Cos(radians(u.Alpha))
	cosB := math.Cos(radians(u.Beta))
	cosG := math.Cos(radians(u.Gamma))
	sinG := math.Sin(radians(u.Gamma))

	cy := (cosA - cosB*cosG) / sinG
	cz := math.Sqrt(math.Max(0, 1-cosB*cosB-cy*cy))

	return [3][3]float64{
		{u.A, 0, 0},
		{u.B * cosG, u.B * sinG, 0},
		{u.C * cosB, u.C * cy, u.C * cz},
	}
}

// Volume returns the cell volume in cubic Angstrom.
func (u UnitCell) Volume() float64 {
	v := u.Vectors()
	a, b, c := v[0], v[1], v[2]

	return math.Abs(a[0]*(b[1]*c[2]-b[2]*c[1]) -
		a[1]*(b[0]*c[2]-b[2]*c[0]) +
		a[2]*(b[0]*c[1]-b[1]*c[0]))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
