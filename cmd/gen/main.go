package main

import (
	"fmt"
	"os"

	"github.com/macropower/chemicaljson/pkg/cjson"
)

func main() {
	if err := generate(cjson.SchemaFileName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func generate(path string) error {
	b, err := cjson.Schema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	//nolint:gosec // G306 the schema is not secret.
	err = os.WriteFile(path, b, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
