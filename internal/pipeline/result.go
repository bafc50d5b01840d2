package pipeline

import (
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/graphical"
	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/simplex"
)

// SolveResult is a simplex outcome with formatted numbers.
type SolveResult struct {
	Field      string          `json:"field"`
	Goal       lp.Goal         `json:"goal"`
	Type       lp.SolutionType `json:"type"`
	Point      []string        `json:"point,omitempty"`
	Value      string          `json:"value,omitempty"`
	Iterations int             `json:"iterations"`
	// Verified is set when the reference solver agreed.
	Verified bool `json:"verified,omitempty"`

	Text string `json:"-"`
}

// PlotResult is a graphical outcome with formatted numbers.
type PlotResult struct {
	Field string                      `json:"field"`
	Goal  lp.Goal                     `json:"goal"`
	Type  lp.SolutionType             `json:"type"`
	Plot  graphical.PlotData2D[string] `json:"plot"`

	Text string `json:"-"`
}

// TableauView is one snapshot with formatted entries.
type TableauView struct {
	Phase string     `json:"phase"`
	Basic []string   `json:"basic"`
	Free  []string   `json:"free"`
	Rows  [][]string `json:"rows"`
}

// StateView describes a session after an operation.
type StateView struct {
	Tableau     TableauView     `json:"tableau"`
	Iterations  int             `json:"iterations"`
	HasNext     bool            `json:"has_next"`
	HasPrevious bool            `json:"has_previous"`
	Changed     bool            `json:"changed"`
	Outcome     lp.SolutionType `json:"outcome"`
	// Hint is the pivot the next automatic step would use.
	Hint *simplex.Pivot `json:"hint,omitempty"`

	Text string `json:"-"`
}

func formatEach[T any](f field.Field[T], xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = f.Format(x)
	}

	return out
}

func solveResult[T any](f field.Field[T], goal lp.Goal, sol lp.Solution[T]) SolveResult {
	res := SolveResult{
		Field:      f.Kind().String(),
		Goal:       goal,
		Type:       sol.Type,
		Iterations: sol.Iterations,
	}
	if sol.Type == lp.Optimal {
		res.Point = formatEach(f, sol.ExtremePoint)
		res.Value = f.Format(sol.ExtremeValue)
	}

	return res
}

func tableauView[T any](t *simplex.Tableau[T]) TableauView {
	f := t.Field()
	v := TableauView{Phase: t.Phase().String()}
	for _, b := range t.BasicVars() {
		v.Basic = append(v.Basic, t.VarName(b))
	}
	for _, c := range t.FreeVars() {
		v.Free = append(v.Free, t.VarName(c))
	}
	v.Rows = make([][]string, t.Rows())
	for r := range v.Rows {
		row, err := t.Row(r)
		if err != nil {
			continue
		}
		v.Rows[r] = formatEach(f, row)
	}

	return v
}

func formatPoint[T any](f field.Field[T], p graphical.Point2D[T]) graphical.Point2D[string] {
	return graphical.Point2D[string]{X: f.Format(p.X), Y: f.Format(p.Y)}
}

func formatLine[T any](f field.Field[T], l graphical.Line2D[T]) graphical.Line2D[string] {
	return graphical.Line2D[string]{Origin: formatPoint(f, l.Origin), Direction: formatPoint(f, l.Direction)}
}

// formatPlot maps every scalar of p to text.
func formatPlot[T any](f field.Field[T], p graphical.PlotData2D[T], typ lp.SolutionType) graphical.PlotData2D[string] {
	points := func(ps []graphical.Point2D[T]) []graphical.Point2D[string] {
		if ps == nil {
			return nil
		}
		out := make([]graphical.Point2D[string], len(ps))
		for i, q := range ps {
			out[i] = formatPoint(f, q)
		}
		return out
	}
	out := graphical.PlotData2D[string]{
		Vertices:        points(p.Vertices),
		ExtremeVertices: points(p.ExtremeVertices),
		OptimalEdge:     p.OptimalEdge,
		Gradient:        formatLine(f, p.Gradient),
		LevelLine:       formatLine(f, p.LevelLine),
		BoundingBox: graphical.Box2D[string]{
			Min: formatPoint(f, p.BoundingBox.Min),
			Max: formatPoint(f, p.BoundingBox.Max),
		},
		Bounded: p.Bounded,
	}
	if typ == lp.Optimal {
		out.ExtremeVertex = formatPoint(f, p.ExtremeVertex)
		out.ExtremeValue = f.Format(p.ExtremeValue)
		out.OptimalLevelLine = formatLine(f, p.OptimalLevelLine)
	}
	for i := range p.CornerValues {
		for j := range p.CornerValues[i] {
			out.CornerValues[i][j] = f.Format(p.CornerValues[i][j])
		}
	}

	return out
}
