package lp_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

var realF = field.Real{}

func mustProblem(t *testing.T, c []float64, a [][]float64, b []float64) *lp.ProblemData[float64] {
	t.Helper()
	p, err := lp.NewProblemData[float64](realF, c, a, b)
	require.NoError(t, err)

	return p
}

func TestNewProblemData_Validation(t *testing.T) {
	for _, tc := range []struct {
		name  string
		c     []float64
		a     [][]float64
		b     []float64
		cause error
	}{
		{"no variables", nil, [][]float64{{}}, []float64{1}, lp.ErrEmptyProblem},
		{"no constraints", []float64{1}, nil, nil, lp.ErrEmptyProblem},
		{"rhs length", []float64{1, 2}, [][]float64{{1, 2}}, []float64{1, 2}, lp.ErrDimensionMismatch},
		{"ragged row", []float64{1, 2}, [][]float64{{1, 2}, {1}}, []float64{1, 2}, lp.ErrDimensionMismatch},
		{"nan objective", []float64{math.NaN()}, [][]float64{{1}}, []float64{1}, lp.ErrNotFinite},
		{"inf coefficient", []float64{1}, [][]float64{{math.Inf(1)}}, []float64{1}, lp.ErrNotFinite},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lp.NewProblemData[float64](realF, tc.c, tc.a, tc.b)
			require.ErrorIs(t, err, lp.ErrInvalidArgument)
			require.ErrorIs(t, err, tc.cause)
		})
	}
}

func TestProblemData_IsImmutable(t *testing.T) {
	c := []float64{1, 2}
	a := [][]float64{{3, 4}}
	b := []float64{5}
	p := mustProblem(t, c, a, b)

	c[0], a[0][0], b[0] = 100, 100, 100 // caller mutates inputs
	require.Equal(t, []float64{1, 2}, p.Objective())
	require.Equal(t, [][]float64{{3, 4}}, p.ConstraintRows())
	require.Equal(t, []float64{5}, p.RHS())

	got := p.Objective()
	got[1] = -1 // accessor returns a copy
	require.Equal(t, []float64{1, 2}, p.Objective())
	require.Equal(t, 2, p.Vars())
	require.Equal(t, 1, p.Constraints())
}

func TestProblemData_Evaluation(t *testing.T) {
	p := mustProblem(t, []float64{1, 1}, [][]float64{{1, 2}, {3, 1}}, []float64{4, 6})

	v, err := p.ObjectiveAt([]float64{1.6, 1.2})
	require.NoError(t, err)
	require.InDelta(t, 2.8, v, 1e-12)

	res, err := p.Residual([]float64{1.6, 1.2})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0}, res, 1e-12)

	require.True(t, p.SatisfiesEqualities([]float64{1.6, 1.2}))
	require.False(t, p.SatisfiesEqualities([]float64{0, 0}))
	require.True(t, p.SatisfiesInequalities([]float64{0, 0}))
	require.False(t, p.SatisfiesInequalities([]float64{-1, 0})) // x >= 0 violated
	require.False(t, p.SatisfiesInequalities([]float64{5, 5}))
	require.False(t, p.SatisfiesEqualities([]float64{1})) // wrong length

	tight, err := p.TightCount([]float64{0, 2})
	require.NoError(t, err)
	require.Equal(t, 2, tight) // row 0 and x1 = 0

	_, err = p.ObjectiveAt([]float64{1})
	require.Error(t, err)
}

func TestProblemData_WithSlacks(t *testing.T) {
	p := mustProblem(t, []float64{-1, -2}, [][]float64{{1, 1}, {1, -1}}, []float64{4, 1})
	s := p.WithSlacks()

	require.Equal(t, 4, s.Vars())
	require.Equal(t, 2, s.Constraints())
	require.Equal(t, []float64{-1, -2, 0, 0}, s.Objective())
	require.Equal(t, [][]float64{{1, 1, 1, 0}, {1, -1, 0, 1}}, s.ConstraintRows())
	require.Equal(t, 2, p.Vars()) // receiver untouched

	// x = (1,1) is inequality-feasible, so (1,1,2,1) is canonical-feasible
	require.True(t, p.SatisfiesInequalities([]float64{1, 1}))
	require.True(t, s.SatisfiesEqualities([]float64{1, 1, 2, 1}))
}

func TestConvertProblem_RealToRational(t *testing.T) {
	p := mustProblem(t, []float64{0.5, -2}, [][]float64{{1.0 / 3.0, 1}}, []float64{0.25})
	q, err := lp.ConvertProblem[float64, *big.Rat](p, field.Rational{}, field.RealToRational(field.DefaultRationalizer()))
	require.NoError(t, err)

	require.Equal(t, "1/3", q.ConstraintRows()[0][0].RatString())
	require.Equal(t, "1/2", q.Objective()[0].RatString())
	require.Equal(t, "1/4", q.RHS()[0].RatString())

	back, err := lp.ConvertProblem[*big.Rat, float64](q, realF, field.RationalToReal())
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, back.ConstraintRows()[0][0], 1e-15)
}

func TestProblemData_String(t *testing.T) {
	p := mustProblem(t, []float64{1, 2}, [][]float64{{3, 4}}, []float64{5})
	require.Equal(t, "c = [1, 2]\n[3, 4] | 5\n", p.String())
}
