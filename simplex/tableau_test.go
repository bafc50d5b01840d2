package simplex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/simplex"
)

func TestMakePhaseOne_Textbook1Layout(t *testing.T) {
	tab, err := simplex.MakePhaseOne(ratF, textbook1(t))
	require.NoError(t, err)

	require.Equal(t, simplex.PhaseOne, tab.Phase())
	require.Equal(t, 4, tab.Rows()) // 3 constraints + objective
	require.Equal(t, 5, tab.Cols()) // 4 free columns + rhs
	require.Equal(t, []int{4, 5, 6}, tab.BasicVars())
	require.Equal(t, []int{0, 1, 2, 3}, tab.FreeVars())

	obj, err := tab.Row(3)
	require.NoError(t, err)
	// d_j = −Σ_i a_ij, rhs = −Σ b_i
	require.Equal(t, []string{"-2", "-1", "-18", "-6", "-9"}, ratStrings(obj))
	require.Equal(t, "9", tab.Infeasibility().RatString())
	require.True(t, tab.IsArtificial(4))
	require.False(t, tab.IsArtificial(3))
	require.Equal(t, 4, tab.DecisionVars())

	// no decision variable is basic yet
	require.Equal(t, []string{"0", "0", "0", "0"}, ratStrings(tab.ExtremePoint()))
}

func TestMakePhaseOne_FlipsNegativeRows(t *testing.T) {
	p := realProblem(t, []float64{1, 1}, [][]float64{{1, -2}, {3, 1}}, []float64{-4, 6})
	tab, err := simplex.MakePhaseOne[float64](realF, p)
	require.NoError(t, err)

	row0, _ := tab.Row(0)
	require.Equal(t, []float64{-1, 2, 4}, row0)
	row1, _ := tab.Row(1)
	require.Equal(t, []float64{3, 1, 6}, row1)
	obj, _ := tab.Row(2)
	require.Equal(t, []float64{-2, -3, -10}, obj)
}

func TestMakePhaseOne_NilProblem(t *testing.T) {
	_, err := simplex.MakePhaseOne[float64](realF, nil)
	require.ErrorIs(t, err, lp.ErrInvalidArgument)
	require.ErrorIs(t, err, simplex.ErrNilProblem)
}

func TestMakePhaseTwo_RejectsNonOptimalPhaseOne(t *testing.T) {
	data := textbook1(t)
	p1, err := simplex.MakePhaseOne(ratF, data)
	require.NoError(t, err)

	_, err = simplex.MakePhaseTwo(ratF, data, p1, lp.Minimize)
	require.ErrorIs(t, err, simplex.ErrNotPhaseOneOptimal)
	require.ErrorIs(t, err, lp.ErrInvalidArgument)

	_, err = simplex.MakePhaseTwo(ratF, textbook2(t), nil, lp.Minimize)
	require.ErrorIs(t, err, simplex.ErrNilTableau)
}

func TestMakePhaseTwo_DrivesOutDegenerateArtificial(t *testing.T) {
	data := textbook1(t)
	s := simplex.NewSolver(ratF)
	tab, err := simplex.MakePhaseOne(ratF, data)
	require.NoError(t, err)
	for _, p := range []simplex.Pivot{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0}} {
		tab, err = s.Pivot(tab, p.Row, p.Col)
		require.NoError(t, err)
	}
	require.Equal(t, lp.Optimal, s.CheckPhase1Solution(tab))
	require.Equal(t, []int{2, 0, 6}, tab.BasicVars()) // a3 still basic at level 0

	p2, err := simplex.MakePhaseTwo(ratF, data, tab, lp.Minimize)
	require.NoError(t, err)
	require.Equal(t, simplex.PhaseTwo, p2.Phase())
	require.Equal(t, []int{2, 0, 1}, p2.BasicVars())
	require.Equal(t, []int{3}, p2.FreeVars())

	obj, err := p2.Row(3)
	require.NoError(t, err)
	require.Equal(t, []string{"-43/2", "-7/2"}, ratStrings(obj))
	require.Equal(t, "7/2", p2.ExtremeValue(lp.Minimize).RatString())
	require.Equal(t, "-7/2", p2.ExtremeValue(lp.Maximize).RatString())

	// phase-one snapshot is untouched
	require.Equal(t, []int{2, 0, 6}, tab.BasicVars())
}

func TestTableau_SetVarsValidation(t *testing.T) {
	tab, err := simplex.MakePhaseOne(ratF, textbook1(t))
	require.NoError(t, err)

	require.ErrorIs(t, tab.SetBasicVars([]int{4, 5}), simplex.ErrBadBasis)    // wrong length
	require.ErrorIs(t, tab.SetBasicVars([]int{4, 5, 0}), simplex.ErrBadBasis) // 0 is free
	require.ErrorIs(t, tab.SetFreeVars([]int{0, 1, 2, 9}), simplex.ErrBadBasis)
	require.NoError(t, tab.SetBasicVars([]int{6, 5, 4}))
	require.Equal(t, []int{6, 5, 4}, tab.BasicVars())
}

func TestTableau_CloneAndEqual(t *testing.T) {
	tab, err := simplex.MakePhaseOne(ratF, textbook2(t))
	require.NoError(t, err)
	c := tab.Clone()
	require.Empty(t, cmp.Diff(tab, c))

	require.NoError(t, c.SetBasicVars([]int{5, 4, 6}))
	require.False(t, tab.Equal(c))
	require.Equal(t, []int{4, 5, 6}, tab.BasicVars())

	bv := tab.BasicVars()
	bv[0] = 99 // copy
	require.Equal(t, 4, tab.BasicVars()[0])
}

func TestTableau_AccessorsAndString(t *testing.T) {
	tab, err := simplex.MakePhaseOne[float64](realF, realProblem(t, []float64{1}, [][]float64{{2}}, []float64{4}))
	require.NoError(t, err)

	v, err := tab.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	_, err = tab.At(5, 0)
	require.Error(t, err)

	col, err := tab.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{2, -2}, col)

	require.Equal(t, "x1", tab.VarName(0))
	require.Equal(t, "a1", tab.VarName(1))
	require.Contains(t, tab.String(), "phase 1")
	require.Contains(t, tab.String(), "a1")
}
