// Package jsonschema provides functionality for managing JSON Schema documents.
//
// It provides utilities for:
//   - Reflecting Go structs into Draft-07 JSON Schemas.
//   - Compiling JSON Schemas and validating decoded JSON values against them.
package jsonschema
