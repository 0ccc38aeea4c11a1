package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/macropower/chemicaljson/pkg/cjson"
	"github.com/macropower/chemicaljson/pkg/cjsonio"
	"github.com/macropower/chemicaljson/pkg/tracing"
)

var ErrInvalidDocuments = errors.New("invalid documents")

const validateExample = `  # Validate documents, reporting semantic problems as warnings
  cjson validate water.cjson methane.yaml

  # Fail on semantic problems too
  cjson validate --strict water.cjson.gz`

type validateArgs struct {
	strict                  *bool
	requireSupportedVersion *bool
	concurrency             *int
}

func (a *validateArgs) options() []cjson.ValidateOption {
	opts := []cjson.ValidateOption{}
	if *a.strict {
		opts = append(opts, cjson.WithStrict())
	}

	if *a.requireSupportedVersion {
		opts = append(opts, cjson.WithRequireSupportedVersion())
	}

	return opts
}

// NewValidateCmd returns the validate command.
func NewValidateCmd(rootArgs *RootArgs) *cobra.Command {
	args := &validateArgs{
		strict:                  new(bool),
		requireSupportedVersion: new(bool),
		concurrency:             new(int),
	}

	cmd := &cobra.Command{
		Use:     "validate FILE...",
		Short:   "Validate Chemical JSON documents",
		Example: validateExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, files []string) error {
			if *args.concurrency < 1 {
				return fmt.Errorf("invalid argument: concurrency must be at least 1, got %d", *args.concurrency)
			}

			results := make([]error, len(files))
			opts := args.options()

			tracer := tracing.NewLoggingTracer(rootArgs.GetLogger())

			g := &errgroup.Group{}
			g.SetLimit(*args.concurrency)

			for i, file := range files {
				g.Go(func() error {
					results[i] = validateFile(rootArgs.GetLogger(), tracer, file, *args.strict, opts)

					return nil
				})
			}

			//nolint:errcheck // Results are collected per file.
			_ = g.Wait()

			var merr error
			for i, err := range results {
				if err != nil {
					merr = multierror.Append(merr, err)
					continue
				}

				fmt.Fprintf(cc.OutOrStdout(), "%s: valid\n", files[i])
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDocuments, merr)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(args.strict, "strict", false, "Fail on semantic problems")
	cmd.Flags().BoolVar(args.requireSupportedVersion, "require_supported_version", false,
		"Fail when chemicalJson is not a supported version")
	cmd.Flags().IntVar(args.concurrency, "concurrency", runtime.GOMAXPROCS(0), "Number of documents to validate at once")

	return cmd
}

// validateFile reads and validates one document. Unless strict is set, where
// semantic problems already fail validation, they are logged as warnings.
func validateFile(logger *slog.Logger, tracer tracing.Tracer, path string, strict bool, opts []cjson.ValidateOption) error {
	span := tracer.StartSpan("validate")
	span.SetAttr(slog.String("path", path))

	defer span.Finish()

	doc, err := cjsonio.ReadFile(path, opts...)
	if err != nil {
		return err //nolint:wrapcheck // Already carries the path.
	}

	if strict {
		return nil
	}

	warnings := doc.Check()
	span.SetAttr(slog.Int("warnings", len(warnings)))

	for _, w := range warnings {
		logger.Warn("semantic problem",
			slog.String("path", path),
			slog.String("pointer", w.Path),
			slog.String("code", string(w.Code)),
			slog.String("problem", w.Message),
		)
	}

	return nil
}
