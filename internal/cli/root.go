// Package cli implements the lplab command-line interface.
//
// # Commands
//
//   - solve: two-phase simplex solve of a problem file
//   - steps: print every tableau of the simplex run
//   - step: interactive stepper (TUI)
//   - graph: graphical solve of a two-variable problem
//   - rationalize: continued-fraction approximation of a number
//   - convert: rewrite a problem file as JSON, YAML or TOML
//   - generate: write a Klee–Minty or random problem file
//   - serve: HTTP API
//
// All commands accept --verbose (-v) for debug logging and --config for a
// TOML settings file. The logger and the configuration travel through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lplab/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the information printed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the command tree; logs go to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "lplab",
		Short:         "lplab solves small linear programs step by step",
		Long:          `lplab solves linear programs with the two-phase simplex method, shows every tableau along the way, and solves two-variable programs graphically.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Debug("config loaded", "path", configPath, "field", cfg.Field, "max_iterations", cfg.MaxIterations)
			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lplab %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML settings file")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newStepsCmd())
	root.AddCommand(newStepCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newRationalizeCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context, stderr io.Writer) error {
	return NewRootCommand(stderr).ExecuteContext(ctx)
}
