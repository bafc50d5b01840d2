package builder_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lplab/builder"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/simplex"
)

func ExampleKleeMinty() {
	f := field.Rational{}
	in, _ := builder.KleeMinty[*big.Rat](f, 3)
	sol, _ := simplex.NewSolver[*big.Rat](f).Solve(in.Canonical(), in.Goal)
	fmt.Println(sol.Type, f.Format(sol.ExtremeValue))
	// Output: optimal 125
}
