package jsonschema

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	santhoshjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Problem is a single schema violation.
type Problem struct {
	// Path is a JSON pointer to the offending instance location ("/" for the
	// document root).
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Message)
}

// ValidationError is returned by [Validator.Validate]. It holds every leaf
// violation reported by the schema engine, sorted by path.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.String())
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validator validates decoded JSON values against a compiled schema.
type Validator struct {
	schema  *santhoshjsonschema.Schema
	printer *message.Printer
}

// Compile compiles a Draft-07 schema document. The name is only used to
// identify the schema resource inside the compiler.
func Compile(name string, schemaJSON []byte) (*Validator, error) {
	doc, err := santhoshjsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalSchema, err)
	}

	c := santhoshjsonschema.NewCompiler()
	c.DefaultDraft(santhoshjsonschema.Draft7)

	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileSchema, err)
	}

	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileSchema, err)
	}

	return &Validator{
		schema:  s,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Validate checks v, which must be a value produced by a JSON decoder
// (maps, slices, strings, bools, nil, float64 or json.Number).
func (v *Validator) Validate(value any) error {
	err := v.schema.Validate(value)
	if err == nil {
		return nil
	}

	var ve *santhoshjsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	problems := v.collect(ve, nil)
	slices.SortStableFunc(problems, func(a, b Problem) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Message, b.Message))
	})

	return &ValidationError{Problems: slices.Compact(problems)}
}

// ValidateJSON decodes data with number precision preserved and validates it.
func (v *Validator) ValidateJSON(data []byte) error {
	value, err := UnmarshalJSON(data)
	if err != nil {
		return err
	}

	return v.Validate(value)
}

func (v *Validator) collect(ve *santhoshjsonschema.ValidationError, out []Problem) []Problem {
	if len(ve.Causes) == 0 {
		return append(out, Problem{
			Path:    Pointer(ve.InstanceLocation),
			Message: ve.ErrorKind.LocalizedString(v.printer),
		})
	}

	for _, c := range ve.Causes {
		out = v.collect(c, out)
	}

	return out
}

// Pointer formats instance location tokens as an RFC 6901 JSON pointer.
func Pointer(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}

	r := strings.NewReplacer("~", "~0", "/", "~1")

	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteByte('/')
		sb.WriteString(r.Replace(tok))
	}

	return sb.String()
}

// UnmarshalJSON decodes a JSON instance document with number precision
// preserved (numbers become [encoding/json.Number]).
func UnmarshalJSON(data []byte) (any, error) {
	value, err := santhoshjsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return value, nil
}
