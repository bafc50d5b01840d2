package graphical_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/graphical"
	"github.com/katalvlaran/lplab/lp"
)

var (
	ratF  = field.Rational{}
	realF = field.Real{}
)

func ratProblem(t testing.TB, c []int64, a [][]int64, b []int64) *lp.ProblemData[*big.Rat] {
	t.Helper()
	ints := func(xs []int64) []*big.Rat {
		out := make([]*big.Rat, len(xs))
		for i, x := range xs {
			out[i] = ratF.FromInt(x)
		}
		return out
	}
	rows := make([][]*big.Rat, len(a))
	for i := range a {
		rows[i] = ints(a[i])
	}
	p, err := lp.NewProblemData[*big.Rat](ratF, ints(c), rows, ints(b))
	require.NoError(t, err)

	return p
}

// factory is the textbook region x1 ≤ 4, 2x2 ≤ 12, 3x1 + 2x2 ≤ 18.
func factory(t testing.TB, c ...int64) *lp.ProblemData[*big.Rat] {
	return ratProblem(t, c, [][]int64{{1, 0}, {0, 2}, {3, 2}}, []int64{4, 12, 18})
}

func pointStrings(pts []graphical.Point2D[*big.Rat]) []string {
	out := make([]string, len(pts))
	for i, p := range pts {
		out[i] = graphical.FormatPoint[*big.Rat](ratF, p)
	}

	return out
}
