package cjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/macropower/chemicaljson/pkg/jsonschema"
)

type validateOptions struct {
	strict                  bool
	requireSupportedVersion bool
}

// ValidateOption configures [Validate].
type ValidateOption func(*validateOptions)

// WithStrict runs [Document.Check] after structural validation and fails
// with a [*SemanticError] when it reports anything. By default semantic
// problems are left to the caller.
func WithStrict() ValidateOption {
	return func(o *validateOptions) { o.strict = true }
}

// WithRequireSupportedVersion fails with a [*SemanticError] wrapping
// [ErrUnsupportedVersion] when chemicalJson is not a supported version.
func WithRequireSupportedVersion() ValidateOption {
	return func(o *validateOptions) { o.requireSupportedVersion = true }
}

// Validate parses an untyped JSON value (as produced by a JSON decoder, or
// raw JSON bytes) into a [Document].
//
// It fails with a [*StructuralError] when a required member is absent, a
// member holds the wrong JSON type, or a fixed-arity array has the wrong
// length. Object members set to null are treated as absent. Member names are
// matched exactly. Undeclared members are ignored, except in properties and
// partialCharges where they are kept. Cross-member rules are only enforced
// with [WithStrict] or [WithRequireSupportedVersion].
func Validate(v any, opts ...ValidateOption) (*Document, error) {
	switch raw := v.(type) {
	case []byte:
		return ValidateJSON(raw, opts...)
	case json.RawMessage:
		return ValidateJSON(raw, opts...)
	}

	o := validateOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	validator, err := schemaValidator()
	if err != nil {
		return nil, err
	}

	value := pruneNulls(v)

	err = validator.Validate(value)
	if err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, &StructuralError{Problems: ve.Problems}
		}

		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}

	data, err := json.Marshal(jsonschema.StripUnknown(schemaModel(), value))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, &StructuralError{Problems: []jsonschema.Problem{decodeProblem(err)}}
	}

	if err := o.check(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// ValidateJSON is [Validate] for encoded JSON. Number precision is kept
// until the value is decoded into the typed document.
func ValidateJSON(data []byte, opts ...ValidateOption) (*Document, error) {
	value, err := jsonschema.UnmarshalJSON(data)
	if err != nil {
		return nil, &StructuralError{Problems: []jsonschema.Problem{{Path: "/", Message: err.Error()}}}
	}

	return Validate(value, opts...)
}

func (o validateOptions) check(doc *Document) error {
	switch {
	case o.strict:
		if warnings := doc.Check(); len(warnings) > 0 {
			return newSemanticError(warnings)
		}

	case o.requireSupportedVersion:
		if w, ok := doc.checkVersion(); !ok {
			return newSemanticError([]SemanticWarning{w})
		}
	}

	return nil
}

// pruneNulls returns a copy of v without null object members.
func pruneNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}

			out[k] = pruneNulls(val)
		}

		return out

	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = pruneNulls(val)
		}

		return out

	default:
		return v
	}
}

func decodeProblem(err error) jsonschema.Problem {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return jsonschema.Problem{
			Path:    "/" + strings.ReplaceAll(ute.Field, ".", "/"),
			Message: fmt.Sprintf("cannot use %s as %s", ute.Value, ute.Type),
		}
	}

	return jsonschema.Problem{Path: "/", Message: err.Error()}
}
