package cjson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a Chemical JSON document describing one chemical system.
type Document struct {
	ChemicalJSON    int              `json:"chemicalJson"              jsonschema:"default=1" jsonschema_description:"Version number of the Chemical JSON format. Currently 1. Only changed for backwards-incompatible changes to the schema."`
	Atoms           Atoms            `json:"atoms"                     jsonschema:"required"  jsonschema_description:"Atoms object, describing the atoms in this system."`
	Name            string           `json:"name,omitempty"                                   jsonschema_description:"Optional name / title for the molecule"`
	InChI           string           `json:"inchi,omitempty"                                  jsonschema_description:"Optional InChI descriptor for the molecule"`
	Formula         string           `json:"formula,omitempty"                                jsonschema_description:"Optional chemical formula in Hill order"`
	Bonds           *Bonds           `json:"bonds,omitempty"                                  jsonschema_description:"Optional Bonds object, describing covalent bonds"`
	Properties      *Properties      `json:"properties,omitempty"                             jsonschema_description:"Optional free-form Properties, including total charge and total spin multiplicity."`
	InputParameters *InputParameters `json:"inputParameters,omitempty"                        jsonschema_description:"Optional InputParameters object, including calculation metadata such as basis set, job type, etc."`
	Metadata        *Metadata        `json:"metadata,omitempty"                               jsonschema_description:"Optional Metadata object, including non-scientific data such as the run date."`
	PartialCharges  PartialCharges   `json:"partialCharges,omitzero"                          jsonschema_description:"Optional PartialCharges object. Includes atomic partial charges and population analysis."`
	Vibrations      *Vibrations      `json:"vibrations,omitempty"                             jsonschema_description:"Optional Vibrations object, describing vibrational modes."`
	UnitCell        *UnitCell        `json:"unitCell,omitempty"                               jsonschema_description:"Optional UnitCell object, describing the periodic cell."`
	Layer           *Layer           `json:"layer,omitempty"                                  jsonschema_description:"Optional Layer object, used for rendering / settings."`
	BasisSet        *BasisSet        `json:"basisSet,omitempty"                               jsonschema_description:"Optional BasisSet object."`
	Orbitals        *Orbitals        `json:"orbitals,omitempty"                               jsonschema_description:"Optional Orbitals object. Requires BasisSet to be present."`
	Spectra         *Spectra         `json:"spectra,omitempty"                                jsonschema_description:"Optional Spectra object, describing non-vibrational spectra."`
}

// NewDocument returns a document at [CurrentVersion] for the given atoms.
func NewDocument(atoms Atoms) *Document {
	return &Document{
		ChemicalJSON: CurrentVersion,
		Atoms:        atoms,
	}
}

type document Document

func (d *Document) UnmarshalJSON(data []byte) error {
	out := document{ChemicalJSON: CurrentVersion}
	if err := json.Unmarshal(data, &out); err != nil {
		return err //nolint:wrapcheck // Preserve json error types.
	}

	*d = Document(out)

	return nil
}

// Marshal encodes d using wire names, with 2-space indentation and a
// trailing newline.
func Marshal(d *Document) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	return buf.Bytes(), nil
}
