package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	invopopjsonschema "github.com/invopop/jsonschema"
)

// Draft07 is the meta-schema URI written to reflected schemas.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Schema is a reflected JSON Schema document.
type Schema = invopopjsonschema.Schema

// TrueSchema accepts any value. Set it as AdditionalProperties to keep
// undeclared members through [StripUnknown].
var TrueSchema = invopopjsonschema.TrueSchema

// Reflector builds Draft-07 JSON Schemas from Go types.
//
// Property names come from `json` struct tags, so wire names such as "3d" or
// "Ball and Stick" appear verbatim. A property is only listed as required when
// its field carries `jsonschema:"required"`.
type Reflector struct {
	Reflector *invopopjsonschema.Reflector
}

func NewReflector() *Reflector {
	return &Reflector{
		Reflector: &invopopjsonschema.Reflector{
			Anonymous:                  true,
			DoNotReference:             true,
			ExpandedStruct:             true,
			AllowAdditionalProperties:  true,
			RequiredFromJSONSchemaTags: true,
		},
	}
}

// Reflect returns the schema for t with the Draft-07 meta-schema set.
func (r *Reflector) Reflect(t reflect.Type) *Schema {
	s := r.Reflector.ReflectFromType(t)
	s.Version = Draft07

	return s
}

// MarshalIndent renders a schema with 2-space indentation and a trailing
// newline.
func MarshalIndent(s *Schema) ([]byte, error) {
	raw, err := s.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaToJSON, err)
	}

	buf := &bytes.Buffer{}
	if err := json.Indent(buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaToJSON, err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// Property walks nested object properties and returns the schema found at
// the end of path.
func Property(s *Schema, path ...string) (*Schema, bool) {
	cur := s
	for _, name := range path {
		if cur == nil || cur.Properties == nil {
			return nil, false
		}

		next, ok := cur.Properties.Get(name)
		if !ok {
			return nil, false
		}

		cur = next
	}

	return cur, cur != nil
}

// SetProperty sets (or replaces) the named property of s, creating the
// property map when needed.
func SetProperty(s *Schema, name string, prop *Schema) {
	if s.Properties == nil {
		s.Properties = invopopjsonschema.NewProperties()
	}

	s.Properties.Set(name, prop)
}

// StripUnknown returns a copy of v without object members that s does not
// declare. Member names are matched exactly. Objects whose schema sets
// AdditionalProperties keep every member, and values are walked with the
// declared property schema or the AdditionalProperties schema. Objects
// without declared properties are kept whole.
func StripUnknown(s *Schema, v any) any {
	if s == nil {
		return v
	}

	switch t := v.(type) {
	case map[string]any:
		open := s.AdditionalProperties != nil && s.AdditionalProperties != invopopjsonschema.FalseSchema
		if s.Properties == nil && !open {
			return v
		}

		out := make(map[string]any, len(t))
		for k, val := range t {
			var prop *Schema
			if s.Properties != nil {
				prop, _ = s.Properties.Get(k)
			}

			switch {
			case prop != nil:
				out[k] = StripUnknown(prop, val)
			case open:
				out[k] = StripUnknown(s.AdditionalProperties, val)
			}
		}

		return out

	case []any:
		if s.Items == nil {
			return v
		}

		out := make([]any, len(t))
		for i, val := range t {
			out[i] = StripUnknown(s.Items, val)
		}

		return out

	default:
		return v
	}
}
