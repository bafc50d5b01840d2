package simplex_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

var (
	ratF  = field.Rational{}
	realF = field.Real{}
)

// ratProblem parses every coefficient with field.Rational.Parse ("3/2", "-1").
func ratProblem(t testing.TB, c []string, a [][]string, b []string) *lp.ProblemData[*big.Rat] {
	t.Helper()
	parse := func(xs []string) []*big.Rat {
		out := make([]*big.Rat, len(xs))
		for i, s := range xs {
			v, err := ratF.Parse(s)
			require.NoError(t, err)
			out[i] = v
		}
		return out
	}
	rows := make([][]*big.Rat, len(a))
	for i := range a {
		rows[i] = parse(a[i])
	}
	p, err := lp.NewProblemData[*big.Rat](ratF, parse(c), rows, parse(b))
	require.NoError(t, err)

	return p
}

func realProblem(t testing.TB, c []float64, a [][]float64, b []float64) *lp.ProblemData[float64] {
	t.Helper()
	p, err := lp.NewProblemData[float64](realF, c, a, b)
	require.NoError(t, err)

	return p
}

func textbook1(t testing.TB) *lp.ProblemData[*big.Rat] {
	return ratProblem(t,
		[]string{"-10", "5", "7", "-3"},
		[][]string{{"-1", "-2", "3", "3"}, {"1", "1", "7", "2"}, {"2", "2", "8", "1"}},
		[]string{"3/2", "7/2", "4"},
	)
}

func textbook2(t testing.TB) *lp.ProblemData[*big.Rat] {
	return ratProblem(t,
		[]string{"-3", "1", "-2", "-1"},
		[][]string{{"2", "-1", "4", "1"}, {"-3", "2", "1", "-2"}, {"4", "-1", "2", "0"}},
		[]string{"10", "8", "4"},
	)
}

// ratStrings formats a rational vector for readable comparisons.
func ratStrings(xs []*big.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.RatString()
	}

	return out
}

// chvatal is the classic cycling program
//
//	max 10x1 − 57x2 − 9x3 − 24x4
//	s.t. ½x1 − 11/2x2 − 5/2x3 + 9x4 ≤ 0
//	     ½x1 − 3/2x2 − ½x3 + x4 ≤ 0
//	     x1 ≤ 1
//
// in slack form. Dantzig's rule alone cycles on it.
func chvatal(t testing.TB) *lp.ProblemData[*big.Rat] {
	return ratProblem(t,
		[]string{"10", "-57", "-9", "-24"},
		[][]string{{"1/2", "-11/2", "-5/2", "9"}, {"1/2", "-3/2", "-1/2", "1"}, {"1", "0", "0", "0"}},
		[]string{"0", "0", "1"},
	).WithSlacks()
}
