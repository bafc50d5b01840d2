package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lplab/builder"
	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
)

const (
	familyKleeMinty = "klee-minty"
	familyRandom    = "random"
)

func newGenerateCmd() *cobra.Command {
	var (
		n, m int
		seed int64
		lo   int64
		hi   int64
	)

	cmd := &cobra.Command{
		Use:   "generate FAMILY OUT",
		Short: "Write a generated problem to a file",
		Long: `Generate writes a problem of the given family to OUT (format by extension).

Families:
  klee-minty   the n-dimensional Klee–Minty cube (-n)
  random       dense positive program with -m rows and -n variables`,
		Example: `  lplab generate klee-minty km4.yaml -n 4
  lplab generate random r.json -m 3 -n 5 --seed 42`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := field.Rational{}
			var (
				in  builder.Instance[*big.Rat]
				err error
			)
			switch strings.ToLower(args[0]) {
			case familyKleeMinty:
				in, err = builder.KleeMinty[*big.Rat](f, n)
			case familyRandom:
				in, err = builder.Random[*big.Rat](f, m, n, builder.WithSeed(seed), builder.WithRange(lo, hi))
			default:
				return fmt.Errorf("unknown family %q (want %s or %s)", args[0], familyKleeMinty, familyRandom)
			}
			if err != nil {
				return err
			}
			if err := converters.WriteFile(args[1], in.Document()); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("generated", "name", in.Name, "out", args[1])
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "vars", "n", 3, "number of variables")
	cmd.Flags().IntVarP(&m, "rows", "m", 3, "number of constraints (random)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed (random)")
	cmd.Flags().Int64Var(&lo, "min", 1, "smallest coefficient (random)")
	cmd.Flags().Int64Var(&hi, "max", 9, "largest coefficient (random)")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if lo < 1 || hi < lo {
			return fmt.Errorf("coefficient range needs 1 <= min <= max, got [%d, %d]", lo, hi)
		}
		return nil
	}

	return cmd
}
