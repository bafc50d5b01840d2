package verify_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/internal/verify"
	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/simplex"
)

func ratProblem(t *testing.T, c []string, a [][]string, b []string) *lp.ProblemData[*big.Rat] {
	t.Helper()
	f := field.Rational{}
	parse := func(xs []string) []*big.Rat {
		out := make([]*big.Rat, len(xs))
		for i, s := range xs {
			v, err := f.Parse(s)
			require.NoError(t, err)
			out[i] = v
		}
		return out
	}
	rows := make([][]*big.Rat, len(a))
	for i := range a {
		rows[i] = parse(a[i])
	}
	p, err := lp.NewProblemData[*big.Rat](f, parse(c), rows, parse(b))
	require.NoError(t, err)

	return p
}

func TestCheck_Textbook(t *testing.T) {
	tests := []struct {
		name string
		data *lp.ProblemData[*big.Rat]
		goal lp.Goal
	}{
		{"textbook 1", ratProblem(t,
			[]string{"-10", "5", "7", "-3"},
			[][]string{{"-1", "-2", "3", "3"}, {"1", "1", "7", "2"}, {"2", "2", "8", "1"}},
			[]string{"3/2", "7/2", "4"}), lp.Minimize},
		{"textbook 1 maximize", ratProblem(t,
			[]string{"-10", "5", "7", "-3"},
			[][]string{{"-1", "-2", "3", "3"}, {"1", "1", "7", "2"}, {"2", "2", "8", "1"}},
			[]string{"3/2", "7/2", "4"}), lp.Maximize},
		{"textbook 2", ratProblem(t,
			[]string{"-3", "1", "-2", "-1"},
			[][]string{{"2", "-1", "4", "1"}, {"-3", "2", "1", "-2"}, {"4", "-1", "2", "0"}},
			[]string{"10", "8", "4"}), lp.Minimize},
		{"unbounded", ratProblem(t, []string{"-1", "0"}, [][]string{{"1", "-1"}}, []string{"1"}), lp.Minimize},
		{"inconsistent", ratProblem(t, []string{"1", "1"}, [][]string{{"1", "1"}}, []string{"-1"}), lp.Minimize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := simplex.NewSolver[*big.Rat](field.Rational{}).Solve(tc.data, tc.goal)
			require.NoError(t, err)

			ref, err := verify.Check(tc.data, tc.goal, sol, verify.DefaultTolerance)
			require.NoError(t, err)
			require.Equal(t, sol.Type, ref.Type)
		})
	}
}

func TestCheck_Mismatch(t *testing.T) {
	data := ratProblem(t,
		[]string{"-2", "-1", "-3", "-1"},
		[][]string{{"1", "2", "5", "-1"}, {"1", "-1", "-1", "2"}},
		[]string{"4", "1"})
	sol, err := simplex.NewSolver[*big.Rat](field.Rational{}).Solve(data, lp.Minimize)
	require.NoError(t, err)

	wrong := sol
	wrong.ExtremeValue = big.NewRat(-4, 1)
	_, err = verify.Check(data, lp.Minimize, wrong, verify.DefaultTolerance)
	require.ErrorIs(t, err, verify.ErrMismatch)

	wrong = sol
	wrong.Type = lp.Unbounded
	_, err = verify.Check(data, lp.Minimize, wrong, verify.DefaultTolerance)
	require.ErrorIs(t, err, verify.ErrMismatch)
}

func TestCanonical_Unsupported(t *testing.T) {
	a := mat.NewDense(2, 1, []float64{1, 1})
	_, err := verify.Canonical([]float64{1}, a, []float64{1, 1}, lp.Minimize)
	require.ErrorIs(t, err, verify.ErrUnsupported)
}

func TestInequality(t *testing.T) {
	g := mat.NewDense(3, 2, []float64{1, 0, 0, 2, 3, 2})
	res, err := verify.Inequality([]float64{3, 5}, g, []float64{4, 12, 18}, lp.Maximize)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Type)
	require.InDelta(t, 36, res.Value, 1e-9)
	require.InDeltaSlice(t, []float64{2, 6}, res.Point, 1e-9)
}

func TestProject(t *testing.T) {
	data := ratProblem(t, []string{"1/2", "1"}, [][]string{{"1", "3/4"}}, []string{"5"})
	c, a, b := verify.Project(data)
	require.Equal(t, []float64{0.5, 1}, c)
	require.Equal(t, 0.75, a.At(0, 1))
	require.Equal(t, []float64{5}, b)
}

// The classic degenerate program on which Dantzig's rule with lowest-index
// row ties cycles.
func chvatal(t *testing.T) *lp.ProblemData[*big.Rat] {
	return ratProblem(t,
		[]string{"10", "-57", "-9", "-24"},
		[][]string{{"1/2", "-11/2", "-5/2", "9"}, {"1/2", "-3/2", "-1/2", "1"}, {"1", "0", "0", "0"}},
		[]string{"0", "0", "1"})
}

func TestInequality_Degenerate(t *testing.T) {
	c, g, h := verify.Project(chvatal(t))
	res, err := verify.Inequality(c, g, h, lp.Maximize)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Type)
	require.InDelta(t, 1, res.Value, 1e-9)
	require.Len(t, res.Point, 4)
}

func TestCheckInequality(t *testing.T) {
	data := chvatal(t)
	sol, err := simplex.NewSolver[*big.Rat](field.Rational{}).Solve(data.WithSlacks(), lp.Maximize)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Type)

	ref, err := verify.CheckInequality(data, lp.Maximize, sol, verify.DefaultTolerance)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, ref.Type)

	wrong := sol
	wrong.ExtremeValue = big.NewRat(2, 1)
	_, err = verify.CheckInequality(data, lp.Maximize, wrong, verify.DefaultTolerance)
	require.ErrorIs(t, err, verify.ErrMismatch)

	wrong = sol
	wrong.ExtremePoint = []*big.Rat{big.NewRat(2, 1), new(big.Rat), new(big.Rat), new(big.Rat)}
	_, err = verify.CheckInequality(data, lp.Maximize, wrong, verify.DefaultTolerance)
	require.ErrorIs(t, err, verify.ErrMismatch)
}

func TestCheckInequality_Unbounded(t *testing.T) {
	data := ratProblem(t, []string{"1", "1"}, [][]string{{"1", "-1"}}, []string{"1"})
	sol, err := simplex.NewSolver[*big.Rat](field.Rational{}).Solve(data.WithSlacks(), lp.Maximize)
	require.NoError(t, err)
	require.Equal(t, lp.Unbounded, sol.Type)

	ref, err := verify.CheckInequality(data, lp.Maximize, sol, verify.DefaultTolerance)
	require.NoError(t, err)
	require.Equal(t, lp.Unbounded, ref.Type)
}
