package cjson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/macropower/chemicaljson/pkg/jsonschema"
)

var (
	// ErrStructural indicates a document does not match the CJSON schema.
	ErrStructural = errors.New("structural error")

	// ErrSemantic indicates a document violates a cross-member rule.
	ErrSemantic = errors.New("semantic error")

	// ErrSchemaEmission indicates the CJSON schema could not be generated.
	ErrSchemaEmission = errors.New("schema emission")

	// ErrUnsupportedVersion indicates an unknown chemicalJson version.
	ErrUnsupportedVersion = errors.New("unsupported chemicalJson version")
)

// StructuralError lists every schema violation found in a document.
type StructuralError struct {
	Problems []jsonschema.Problem
}

func (e *StructuralError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.String())
	}

	return fmt.Sprintf("%s: %s", ErrStructural, strings.Join(msgs, "; "))
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// SemanticError is returned by [Validate] in strict modes. Each collected
// [SemanticWarning] can be retrieved with [errors.As].
type SemanticError struct {
	merr *multierror.Error
}

func newSemanticError(warnings []SemanticWarning) *SemanticError {
	var merr *multierror.Error
	for _, w := range warnings {
		merr = multierror.Append(merr, w)
	}

	merr.ErrorFormat = listFormat

	return &SemanticError{merr: merr}
}

// Warnings returns the collected warnings.
func (e *SemanticError) Warnings() []SemanticWarning {
	out := make([]SemanticWarning, 0, e.merr.Len())
	for _, err := range e.merr.WrappedErrors() {
		var w SemanticWarning
		if errors.As(err, &w) {
			out = append(out, w)
		}
	}

	return out
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSemantic, e.merr.Error())
}

func (e *SemanticError) Unwrap() []error {
	return []error{ErrSemantic, e.merr}
}

func listFormat(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "; ")
}
