package cjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/macropower/chemicaljson/pkg/jsonschema"
)

// SchemaFileName is the conventional file name of the emitted schema.
const SchemaFileName = "cjson.schema"

const (
	schemaTitle       = "CJSONModel"
	schemaDescription = "Full Chemical JSON model. " +
		"A Chemical JSON (CJSON) model is intended to represent one molecular or periodic system. " +
		"Catenating multiple systems will result in invalid JSON - store separate systems as separate files / JSON entries."
)

// The schema is generated once per process and never changes afterwards.
var (
	schemaModel     = sync.OnceValue(reflectSchema)
	schemaJSON      = sync.OnceValues(generateSchema)
	schemaValidator = sync.OnceValues(compileSchema)
)

// Schema returns the CJSON JSON Schema document, indented with two spaces
// and ending in a newline. Every call returns the same bytes in a fresh
// slice.
func Schema() ([]byte, error) {
	b, err := schemaJSON()
	if err != nil {
		return nil, err
	}

	return bytes.Clone(b), nil
}

// EmitSchema returns the CJSON JSON Schema. Every call returns a new,
// structurally identical value that the caller may modify.
func EmitSchema() (*jsonschema.Schema, error) {
	b, err := schemaJSON()
	if err != nil {
		return nil, err
	}

	s := &jsonschema.Schema{}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaEmission, err)
	}

	return s, nil
}

// reflectSchema builds the schema model. The result is shared and must not
// be modified.
func reflectSchema() *jsonschema.Schema {
	r := jsonschema.NewReflector()
	s := r.Reflect(reflect.TypeFor[Document]())
	s.Title = schemaTitle
	s.Description = schemaDescription

	if cv, ok := jsonschema.Property(s, "unitCell", "cellVectors"); ok {
		cv.Default = make([]float64, CellVectorsLength)
	}

	if p, ok := jsonschema.Property(s, "properties"); ok {
		p.AdditionalProperties = jsonschema.TrueSchema
	}

	if pc, ok := jsonschema.Property(s, "partialCharges"); ok {
		jsonschema.SetProperty(pc, MullikenMethod, &jsonschema.Schema{
			Type:        "array",
			Items:       &jsonschema.Schema{Type: "number"},
			Description: "Mulliken partial charges, one per atom.",
		})

		pc.AnyOf = []*jsonschema.Schema{
			{Required: []string{MullikenMethod}},
			{Required: []string{strings.ToLower(MullikenMethod)}},
		}
	}

	return s
}

func generateSchema() ([]byte, error) {
	b, err := jsonschema.MarshalIndent(schemaModel())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaEmission, err)
	}

	return b, nil
}

func compileSchema() (*jsonschema.Validator, error) {
	b, err := schemaJSON()
	if err != nil {
		return nil, err
	}

	v, err := jsonschema.Compile(SchemaFileName, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaEmission, err)
	}

	return v, nil
}
