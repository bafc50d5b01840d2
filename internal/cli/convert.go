package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/internal/pipeline"
)

func newConvertCmd() *cobra.Command {
	var (
		validate bool
		kind     string
	)

	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Rewrite a problem file in another format",
		Long: `Convert reads IN and writes OUT; both formats follow the file extensions (.json, .yaml, .yml, .toml).
With --field the coefficients are rewritten in that field: decimals become
fractions by continued-fraction approximation, fractions become decimals.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			doc, err := converters.ReadFile(args[0])
			if err != nil {
				return err
			}
			if validate {
				if err := doc.Validate(); err != nil {
					return err
				}
			}
			if kind != "" {
				to, err := field.ParseKind(kind)
				if err != nil {
					return err
				}
				if doc, err = pipeline.Convert(configFromContext(cmd.Context()), doc, to); err != nil {
					return err
				}
			}
			if err := converters.WriteFile(args[1], doc); err != nil {
				return err
			}
			logger.Info("converted", "from", args[0], "to", args[1], "field", doc.Field)
			return nil
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", true, "check the document before writing")
	cmd.Flags().StringVar(&kind, "field", "", "rewrite coefficients as real or rational")

	return cmd
}
