package simplex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/simplex"
)

func TestController_Textbook1Sequence(t *testing.T) {
	c, err := simplex.NewController(ratF, textbook1(t), lp.Minimize)
	require.NoError(t, err)
	require.True(t, c.IsEmpty())
	require.False(t, c.HasNext())

	require.NoError(t, c.Start())
	require.True(t, c.HasNext())
	require.True(t, c.StateChanged())
	require.Equal(t, 1, c.ElementsCount())

	want := []struct {
		pivot   simplex.Pivot
		pivoted bool
		phase   simplex.Phase
	}{
		{simplex.Pivot{Row: 0, Col: 2}, true, simplex.PhaseOne},
		{simplex.Pivot{Row: 1, Col: 1}, true, simplex.PhaseOne},
		{simplex.Pivot{Row: 1, Col: 0}, true, simplex.PhaseOne}, // phase one optimal
		{simplex.NoPivot, false, simplex.PhaseTwo},               // phase two built
		{simplex.Pivot{Row: 0, Col: 0}, true, simplex.PhaseTwo},  // optimal
	}
	for i, w := range want {
		step, err := c.Next(nil)
		require.NoError(t, err, "step %d", i)
		require.Equal(t, w.pivot, step.Pivot, "step %d", i)
		require.Equal(t, w.pivoted, step.Pivoted, "step %d", i)
		require.Equal(t, w.phase, step.Tableau.Phase(), "step %d", i)
		require.True(t, c.StateChanged())
	}

	require.False(t, c.HasNext())
	require.Equal(t, lp.Optimal, c.Outcome())
	require.Equal(t, 5, c.IterationsCount())
	require.Equal(t, 6, c.ElementsCount())

	sol, err := c.Solution()
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Type)
	require.Equal(t, []string{"3/2", "0", "0", "1"}, ratStrings(sol.ExtremePoint))
	require.Equal(t, "-18", sol.ExtremeValue.RatString())

	_, err = c.Next(nil)
	require.ErrorIs(t, err, simplex.ErrNoNext)
	require.ErrorIs(t, err, simplex.ErrOutOfRange)
}

func TestController_HistorySymmetry(t *testing.T) {
	for _, tc := range []struct {
		name    string
		manuals []*simplex.Pivot
	}{
		{"automatic", []*simplex.Pivot{nil, nil, nil, nil, nil}},
		{"mixed", []*simplex.Pivot{{Row: 1, Col: 2}, nil, nil, nil}},
		{"manual first column", []*simplex.Pivot{{Row: 2, Col: 0}, nil}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := simplex.NewController(ratF, textbook1(t), lp.Minimize)
			require.NoError(t, err)
			require.NoError(t, c.Start())
			initial, err := c.Current()
			require.NoError(t, err)

			for _, p := range tc.manuals {
				if !c.HasNext() {
					break
				}
				_, err := c.Next(p)
				require.NoError(t, err)
			}
			k := c.IterationsCount()
			require.Positive(t, k)
			require.Equal(t, k+1, c.ElementsCount())

			for i := 0; i < k; i++ {
				_, err := c.Previous()
				require.NoError(t, err)
				require.True(t, c.HasNext())
				require.Equal(t, lp.Incomplete, c.Outcome())
			}
			back, err := c.Current()
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(initial, back))
			require.Equal(t, 0, c.IterationsCount())
			require.False(t, c.HasPrevious())
		})
	}
}

func TestController_ForwardAfterBackwardReplays(t *testing.T) {
	c, err := simplex.NewController(ratF, textbook2(t), lp.Minimize)
	require.NoError(t, err)
	require.NoError(t, c.Start())

	for c.HasNext() {
		_, err = c.Next(nil)
		require.NoError(t, err)
	}
	first := c.History()

	_, err = c.Previous()
	require.NoError(t, err)
	_, err = c.Previous()
	require.NoError(t, err)
	for c.HasNext() {
		_, err = c.Next(nil)
		require.NoError(t, err)
	}
	require.Empty(t, cmp.Diff(first, c.History()))

	sol, err := c.Solution()
	require.NoError(t, err)
	require.Equal(t, []string{"28", "108", "0", "62"}, ratStrings(sol.ExtremePoint))
	require.Equal(t, "-38", sol.ExtremeValue.RatString())
}

func TestController_NavigationErrors(t *testing.T) {
	c, err := simplex.NewController(ratF, textbook1(t), lp.Minimize)
	require.NoError(t, err)

	_, err = c.Current()
	require.ErrorIs(t, err, simplex.ErrEmptyHistory)
	require.ErrorIs(t, err, simplex.ErrOutOfRange)
	_, err = c.Next(nil)
	require.ErrorIs(t, err, simplex.ErrEmptyHistory)
	_, err = c.Previous()
	require.ErrorIs(t, err, simplex.ErrOutOfRange)
	_, _, err = c.Pivot()
	require.ErrorIs(t, err, simplex.ErrEmptyHistory)
	_, err = c.Solution()
	require.ErrorIs(t, err, simplex.ErrEmptyHistory)

	require.NoError(t, c.Start())
	_, err = c.Previous()
	require.ErrorIs(t, err, simplex.ErrNoPrevious)
	require.ErrorIs(t, err, simplex.ErrOutOfRange)
	_, err = c.Solution()
	require.ErrorIs(t, err, simplex.ErrNoSolution)

	// an invalid manual pivot leaves the controller untouched
	_, err = c.Next(&simplex.Pivot{Row: 0, Col: 0})
	require.ErrorIs(t, err, simplex.ErrInvalidPivot)
	require.Equal(t, 1, c.ElementsCount())
	require.True(t, c.HasNext())

	_, err = simplex.NewController[float64](realF, nil, lp.Minimize)
	require.ErrorIs(t, err, lp.ErrInvalidArgument)
}

func TestController_PivotHintDoesNotCommit(t *testing.T) {
	c, err := simplex.NewController(ratF, textbook1(t), lp.Minimize)
	require.NoError(t, err)
	require.NoError(t, c.Start())

	p, typ, err := c.Pivot()
	require.NoError(t, err)
	require.Equal(t, simplex.Pivot{Row: 0, Col: 2}, p)
	require.Equal(t, lp.Incomplete, typ)
	require.Equal(t, 1, c.ElementsCount())
	require.Equal(t, 0, c.IterationsCount())
}

func TestController_StartIsIdempotentAndResetClears(t *testing.T) {
	c, err := simplex.NewController(ratF, textbook1(t), lp.Minimize)
	require.NoError(t, err)
	require.NoError(t, c.Start())
	_, err = c.Next(nil)
	require.NoError(t, err)

	require.NoError(t, c.Start())
	require.False(t, c.StateChanged())
	require.Equal(t, 2, c.ElementsCount())

	c.Reset()
	require.True(t, c.IsEmpty())
	require.Equal(t, 0, c.IterationsCount())
	require.False(t, c.HasNext())
	require.NoError(t, c.Start())
	require.Equal(t, 1, c.ElementsCount())
}

func TestController_TerminalOutcomes(t *testing.T) {
	t.Run("inconsistent", func(t *testing.T) {
		c, err := simplex.NewController[float64](realF, realProblem(t, []float64{1}, [][]float64{{1}}, []float64{-1}), lp.Minimize)
		require.NoError(t, err)
		require.NoError(t, c.Start())
		step, err := c.Next(nil)
		require.NoError(t, err)
		require.Equal(t, lp.Inconsistent, step.Type)
		require.False(t, c.StateChanged())
		require.False(t, c.HasNext())

		sol, err := c.Solution()
		require.NoError(t, err)
		require.Equal(t, lp.Inconsistent, sol.Type)
		require.Nil(t, sol.ExtremePoint)
	})

	t.Run("unbounded", func(t *testing.T) {
		data := realProblem(t, []float64{1, 0}, [][]float64{{1, -1}}, []float64{0})
		c, err := simplex.NewController[float64](realF, data, lp.Maximize)
		require.NoError(t, err)
		require.NoError(t, c.Start())
		for c.HasNext() {
			_, err = c.Next(nil)
			require.NoError(t, err)
		}
		require.Equal(t, lp.Unbounded, c.Outcome())
	})

	t.Run("zero-iteration phase one stops", func(t *testing.T) {
		data := realProblem(t, []float64{1, 1}, [][]float64{{-1, -1}}, []float64{0})
		c, err := simplex.NewController[float64](realF, data, lp.Minimize)
		require.NoError(t, err)
		require.NoError(t, c.Start())
		_, err = c.Next(nil)
		require.NoError(t, err)
		require.False(t, c.HasNext())
		require.Equal(t, lp.Optimal, c.Outcome())
		require.Equal(t, 1, c.ElementsCount())

		_, err = c.Solution()
		require.ErrorIs(t, err, simplex.ErrNoSolution)
	})

	t.Run("iteration cap", func(t *testing.T) {
		c, err := simplex.NewController(ratF, textbook1(t), lp.Minimize, simplex.WithMaxIterations(2))
		require.NoError(t, err)
		require.NoError(t, c.Start())
		for c.HasNext() {
			_, err = c.Next(nil)
			require.NoError(t, err)
		}
		require.Equal(t, 2, c.IterationsCount())
		require.Equal(t, lp.Incomplete, c.Outcome())

		sol, err := c.Solution()
		require.NoError(t, err)
		require.Equal(t, lp.Incomplete, sol.Type)
	})
}
