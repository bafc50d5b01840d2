package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/internal/pipeline"
)

func newRationalizeCmd() *cobra.Command {
	var (
		z      field.Rationalizer
		format string
	)

	cmd := &cobra.Command{
		Use:   "rationalize X",
		Short: "Approximate a number by a fraction with continued fractions",
		Example: `  lplab rationalize 0.333333333
  lplab rationalize 3.14159265 --max-den 1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown output format %q (want text or json)", format)
			}
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("rationalize: %w", err)
			}
			ctx := cmd.Context()
			runner := pipeline.NewRunner(configFromContext(ctx), loggerFromContext(ctx))
			res, err := runner.Rationalize(x, z)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), format, res, res.Value)
		},
	}

	cmd.Flags().Float64Var(&z.Eps, "eps", 0, "stop once the error drops below eps (default from config)")
	cmd.Flags().IntVar(&z.MaxIterations, "max-iter", 0, "maximum continued-fraction terms (default from config)")
	cmd.Flags().Int64Var(&z.MaxDenominator, "max-den", 0, "largest allowed denominator (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")

	return cmd
}
