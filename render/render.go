package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/graphical"
	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/simplex"
)

// Status renders a solution type.
func Status(typ lp.SolutionType) string {
	failed := typ == lp.Unbounded || typ == lp.Inconsistent || typ == lp.Unknown
	return statusStyle(typ == lp.Optimal, failed).Render(typ.String())
}

// Error renders err behind a failure mark.
func Error(err error) string {
	return statusStyle(false, true).Render("✗") + " " + err.Error()
}

// KeyValue renders one labelled line.
func KeyValue(key, value string) string {
	return styleKey.Render(key) + " " + StyleValue.Render(value)
}

// Tableau renders t as a bordered table: one column per free variable plus
// rhs, one row per basic variable plus the objective row. A pivot inside the
// tableau is highlighted; pass simplex.NoPivot for none.
func Tableau[T any](t *simplex.Tableau[T], pivot simplex.Pivot) string {
	f := t.Field()
	free := t.FreeVars()
	basic := t.BasicVars()

	headers := make([]string, 0, len(free)+2)
	headers = append(headers, t.Phase().String())
	for _, v := range free {
		headers = append(headers, t.VarName(v))
	}
	headers = append(headers, "rhs")

	rows := make([][]string, t.Rows())
	for r := range rows {
		label := "z"
		if r < len(basic) {
			label = t.VarName(basic[r])
		}
		vals, err := t.Row(r)
		if err != nil {
			continue
		}
		rows[r] = append([]string{label}, formatEach(f, vals)...)
	}

	last := t.Rows() - 1
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case row == pivot.Row && col == pivot.Col+1:
				return styleCell.Inherit(StylePivot)
			case col == 0:
				return styleCell.Align(lipgloss.Left).Foreground(colorGray)
			case row == last:
				return styleCell.Foreground(colorCyan)
			default:
				return styleCell
			}
		})

	return tbl.Render()
}

// Solution renders a solution as labelled lines.
func Solution[T any](f field.Field[T], sol lp.Solution[T]) string {
	lines := []string{KeyValue("status", Status(sol.Type))}
	if sol.Type == lp.Optimal {
		lines = append(lines,
			KeyValue("point", field.FormatAll(f, sol.ExtremePoint)),
			KeyValue("value", f.Format(sol.ExtremeValue)),
		)
	}
	lines = append(lines, KeyValue("iterations", fmt.Sprint(sol.Iterations)))

	return strings.Join(lines, "\n")
}

// Plot renders the graphical result as labelled lines.
func Plot[T any](f field.Field[T], plot graphical.PlotData2D[T], typ lp.SolutionType) string {
	vs := make([]string, len(plot.Vertices))
	for i, v := range plot.Vertices {
		vs[i] = graphical.FormatPoint(f, v)
	}
	lines := []string{
		KeyValue("status", Status(typ)),
		KeyValue("vertices", strings.Join(vs, " ")),
		KeyValue("bounded", fmt.Sprint(plot.Bounded)),
	}
	if typ == lp.Optimal {
		lines = append(lines,
			KeyValue("vertex", graphical.FormatPoint(f, plot.ExtremeVertex)),
			KeyValue("value", f.Format(plot.ExtremeValue)),
		)
		if plot.OptimalEdge {
			es := make([]string, len(plot.ExtremeVertices))
			for i, v := range plot.ExtremeVertices {
				es[i] = graphical.FormatPoint(f, v)
			}
			lines = append(lines, KeyValue("optimal edge", strings.Join(es, " ")))
		}
	}
	lines = append(lines,
		KeyValue("gradient", graphical.FormatPoint(f, plot.Gradient.Direction)),
		KeyValue("box", graphical.FormatPoint(f, plot.BoundingBox.Min)+" "+graphical.FormatPoint(f, plot.BoundingBox.Max)),
	)

	return strings.Join(lines, "\n")
}

// Step renders one controller step: a title line and the tableau with the
// pivot that produced it highlighted.
func Step[T any](index int, step simplex.Step[T]) string {
	title := fmt.Sprintf("step %d", index)
	if step.Pivoted {
		title += " " + StyleDim.Render("pivot "+step.Pivot.String())
	}
	title = StyleTitle.Render(title) + "  " + Status(step.Type)

	return title + "\n" + Tableau(step.Tableau, simplex.NoPivot)
}

func formatEach[T any](f field.Field[T], xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = f.Format(x)
	}

	return out
}
