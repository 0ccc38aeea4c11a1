package cjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

// Default property values applied when a member is absent.
const (
	DefaultTotalCharge           = 0
	DefaultTotalSpinMultiplicity = 1
)

var propertiesKeys = map[string]struct{}{
	"molecularMass":         {},
	"meltingPoint":          {},
	"boilingPoint":          {},
	"totalCharge":           {},
	"totalSpinMultiplicity": {},
	"spinMultiplicity":      {},
	"totalEnergy":           {},
}

// Properties is a free-form set of system properties. Members other than the
// typed ones are kept in Extra and written back on marshal.
type Properties struct {
	MolecularMass         *float64 `json:"molecularMass,omitempty"    jsonschema_description:"Optional molecular mass (in g/mol)."`
	MeltingPoint          *float64 `json:"meltingPoint,omitempty"     jsonschema_description:"Optional melting point."`
	BoilingPoint          *float64 `json:"boilingPoint,omitempty"     jsonschema_description:"Optional boiling point."`
	TotalCharge           int      `json:"totalCharge"                jsonschema:"default=0" jsonschema_description:"Total charge of the system. If omitted, assume 0 (charge neutral)"`
	TotalSpinMultiplicity int      `json:"totalSpinMultiplicity"      jsonschema:"default=1" jsonschema_description:"Total spin multiplicity of the system (2S+1, e.g., 1, 2, 3, etc.). If omitted, assume to be 1 (singlet)"`
	SpinMultiplicity      *int     `json:"spinMultiplicity,omitempty" jsonschema:"default=1" jsonschema_description:"Spin multiplicity (2S+1) as written by revision 1 documents. Read as totalSpinMultiplicity when that is absent."`
	TotalEnergy           *float64 `json:"totalEnergy,omitempty"      jsonschema_description:"Optional total energy of the system in eV"`

	// Extra holds members not covered by the typed fields, as compact JSON.
	Extra map[string]json.RawMessage `json:"-"`
}

// NewProperties returns properties with every default applied.
func NewProperties() *Properties {
	return &Properties{
		TotalCharge:           DefaultTotalCharge,
		TotalSpinMultiplicity: DefaultTotalSpinMultiplicity,
	}
}

type properties Properties

func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck // Preserve json error types.
	}

	typed := make(map[string]json.RawMessage, len(propertiesKeys))
	for k := range propertiesKeys {
		if v, ok := raw[k]; ok {
			typed[k] = v
		}
	}

	known, err := json.Marshal(typed)
	if err != nil {
		return fmt.Errorf("properties: %w", err)
	}

	out := properties(*NewProperties())
	if err := json.Unmarshal(known, &out); err != nil {
		return err //nolint:wrapcheck // Preserve json error types.
	}

	if isAbsent(raw, "totalSpinMultiplicity") && out.SpinMultiplicity != nil {
		out.TotalSpinMultiplicity = *out.SpinMultiplicity
	}

	for k, v := range raw {
		if _, ok := propertiesKeys[k]; ok {
			continue
		}

		buf := &bytes.Buffer{}
		if err := json.Compact(buf, v); err != nil {
			return fmt.Errorf("properties %q: %w", k, err)
		}

		if out.Extra == nil {
			out.Extra = map[string]json.RawMessage{}
		}

		out.Extra[k] = buf.Bytes()
	}

	*p = Properties(out)

	return nil
}

// MarshalJSON writes the typed members and any Extra members. Typed members
// win when a key exists in both.
func (p Properties) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(properties(p))
	if err != nil {
		return nil, err //nolint:wrapcheck // Preserve json error types.
	}

	if len(p.Extra) == 0 {
		return typed, nil
	}

	var known map[string]json.RawMessage
	if err := json.Unmarshal(typed, &known); err != nil {
		return nil, err //nolint:wrapcheck // Preserve json error types.
	}

	out := maps.Clone(p.Extra)
	maps.Copy(out, known)

	return json.Marshal(out) //nolint:wrapcheck // Preserve json error types.
}

func isAbsent(raw map[string]json.RawMessage, key string) bool {
	v, ok := raw[key]

	return !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// InputParameters describes the calculation that produced the document.
type InputParameters struct {
	Basis      string `json:"basis,omitempty"      jsonschema_description:"Basis set used for the calculation (e.g. '6-31G(d)' or 'Custom')."`
	Dispersion string `json:"dispersion,omitempty" jsonschema_description:"Dispersion correction used for the calculation (e.g. 'D3BJ')."`
	Functional string `json:"functional,omitempty" jsonschema_description:"Functional used for the calculation if DFT (e.g. 'B3LYP' or 'Custom')."`
	Grid       string `json:"grid,omitempty"       jsonschema_description:"Integration grid used for the calculation."`
	Memory     string `json:"memory,omitempty"     jsonschema_description:"Memory requested for the calculation (e.g. '4GB')."`
	Processors string `json:"processors,omitempty" jsonschema_description:"Number of processors requested for the calculation."`
	Task       string `json:"task,omitempty"       jsonschema_description:"Calculation task: 'Energy' or 'Optimize' or 'Frequencies' or 'Transition State' or 'Custom'."`
	Theory     string `json:"theory,omitempty"     jsonschema_description:"Method used for the calculation (e.g. 'DFT' or 'HF' or 'MP2')."`
}

// Metadata holds non-scientific provenance data.
type Metadata struct {
	RunDate string `json:"runDate,omitempty" jsonschema_description:"Date the calculation was run."`
}
