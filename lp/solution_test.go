package lp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/lp"
)

func TestSolutionType_StringParseTerminal(t *testing.T) {
	for _, st := range []lp.SolutionType{lp.Optimal, lp.Unbounded, lp.Inconsistent, lp.Incomplete, lp.Unknown} {
		got, err := lp.ParseSolutionType(st.String())
		require.NoError(t, err)
		require.Equal(t, st, got)
	}
	require.False(t, lp.Incomplete.IsTerminal())
	require.True(t, lp.Unknown.IsTerminal())
	require.Equal(t, "SolutionType(42)", lp.SolutionType(42).String())

	_, err := lp.ParseSolutionType("feasible")
	require.ErrorIs(t, err, lp.ErrUnknownSolutionType)
}

func TestGoal_ParseAndText(t *testing.T) {
	g, err := lp.ParseGoal("MAX")
	require.NoError(t, err)
	require.Equal(t, lp.Maximize, g)

	g, err = lp.ParseGoal("")
	require.NoError(t, err)
	require.Equal(t, lp.Minimize, g)

	_, err = lp.ParseGoal("sideways")
	require.ErrorIs(t, err, lp.ErrUnknownGoal)

	var back lp.Goal
	txt, _ := lp.Maximize.MarshalText()
	require.NoError(t, back.UnmarshalText(txt))
	require.Equal(t, lp.Maximize, back)
}

func TestSolution_Truncate(t *testing.T) {
	s := lp.Solution[float64]{Type: lp.Optimal, ExtremePoint: []float64{1, 2, 3, 4}, ExtremeValue: 7}
	tr := s.Truncate(2)
	require.Equal(t, []float64{1, 2}, tr.ExtremePoint)
	require.Equal(t, 7.0, tr.ExtremeValue)
	require.Len(t, s.ExtremePoint, 4)

	require.Equal(t, []float64{1, 2, 3, 4}, s.Truncate(10).ExtremePoint)
}
