package jsonschema

import "errors"

// Error types for the jsonschema package.
var (
	// ErrSchemaToJSON indicates an error occurred while converting a schema to JSON.
	ErrSchemaToJSON = errors.New("failed to convert schema to JSON")

	// ErrUnmarshalSchema indicates an error occurred while unmarshaling the JSON Schema.
	ErrUnmarshalSchema = errors.New("failed to unmarshal JSON Schema")

	// ErrCompileSchema indicates the JSON Schema could not be compiled.
	ErrCompileSchema = errors.New("failed to compile JSON Schema")

	// ErrInvalidJSON indicates an instance document is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrValidation indicates an instance document does not match the schema.
	ErrValidation = errors.New("schema validation failed")
)
