package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lplab/internal/tui"
)

func newSolveCmd() *cobra.Command {
	var (
		opts   problemOpts
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a linear program with the two-phase simplex method",
		Long: `Solve reads a problem file (JSON, YAML or TOML by extension) and runs the
two-phase simplex method. Inequality documents get one slack per row.`,
		Example: `  lplab solve factory.yaml
  lplab solve textbook.json --field real --verify -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, runner, err := opts.request(cmd, args[0])
			if err != nil {
				return err
			}
			req.Verify = verify
			res, err := runner.Solve(cmd.Context(), req)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), opts.format, res, res.Text)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the result with the reference solver")

	return cmd
}

func newStepsCmd() *cobra.Command {
	var opts problemOpts

	cmd := &cobra.Command{
		Use:   "steps FILE",
		Short: "Print every simplex tableau from the first to the last",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, runner, err := opts.request(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := runner.Steps(cmd.Context(), req)
			if err != nil {
				return err
			}

			var sb strings.Builder
			for i, st := range res.Steps {
				if i > 0 {
					sb.WriteString("\n\n")
				}
				sb.WriteString(st.Text)
			}
			if res.Solution != nil {
				sb.WriteString("\n\n")
				sb.WriteString(res.Solution.Text)
			}
			return emit(cmd.OutOrStdout(), opts.format, res, sb.String())
		},
	}

	opts.register(cmd)

	return cmd
}

func newStepCmd() *cobra.Command {
	var opts problemOpts

	cmd := &cobra.Command{
		Use:   "step FILE",
		Short: "Step through the simplex method interactively",
		Long: `Step opens a terminal stepper over the simplex run.

Keys: n/space next, p back, r reset, m manual pivot ("row col"), e end, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, runner, err := opts.request(cmd, args[0])
			if err != nil {
				return err
			}
			s, err := runner.NewSession(req)
			if err != nil {
				return err
			}
			return tui.Run(s)
		},
	}

	cmd.Flags().StringVar(&opts.field, "field", "", "number field: real or rational")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "minimize or maximize")
	cmd.Flags().StringVar(&opts.form, "form", "", "canonical or inequality")
	opts.format = formatText

	return cmd
}

func newGraphCmd() *cobra.Command {
	var opts problemOpts

	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Solve a two-variable program graphically",
		Long: `Graph intersects the constraint boundaries of a two-variable program,
reading every row as A x <= b, and reports the feasible polygon, the
objective values at the corners of the plot window and the optimum.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, runner, err := opts.request(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := runner.Graph(cmd.Context(), req)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), opts.format, res, res.Text)
		},
	}

	opts.register(cmd)

	return cmd
}
