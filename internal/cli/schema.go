package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/macropower/chemicaljson/pkg/cjson"
)

const schemaExample = `  # Write cjson.schema to the current directory
  cjson schema

  # Print the schema
  cjson schema -o -`

// NewSchemaCmd returns the schema command.
func NewSchemaCmd(rootArgs *RootArgs) *cobra.Command {
	output := new(string)

	cmd := &cobra.Command{
		Use:     "schema",
		Short:   "Write the Chemical JSON schema",
		Example: schemaExample,
		Args:    cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			b, err := cjson.Schema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			if *output == "-" {
				if _, err := cc.OutOrStdout().Write(b); err != nil {
					return fmt.Errorf("failed to write schema: %w", err)
				}

				return nil
			}

			//nolint:gosec // G306 the schema is not secret.
			if err := os.WriteFile(*output, b, 0o644); err != nil {
				return fmt.Errorf("failed to write schema: %w", err)
			}

			rootArgs.GetLogger().Info("wrote schema", slog.String("path", *output))

			return nil
		},
	}

	cmd.Flags().StringVarP(output, "output", "o", cjson.SchemaFileName, "Output path, or - for stdout")

	err := cmd.MarkFlagFilename("output")
	if err != nil {
		panic(err)
	}

	return cmd
}
