package converters

import (
	"fmt"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

// ToProblem parses doc over f. The rows are returned as written; callers
// apply lp.ProblemData.WithSlacks for an Inequality document when they need
// the canonical form.
func ToProblem[T any](f field.Field[T], doc Document) (*lp.ProblemData[T], error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	parse := func(name string, xs []string) ([]T, error) {
		out := make([]T, len(xs))
		for i, s := range xs {
			v, err := f.Parse(s)
			if err != nil {
				return nil, invalidField(fmt.Sprintf("%s[%d]", name, i), err.Error())
			}
			out[i] = v
		}
		return out, nil
	}

	c, err := parse("objective", doc.Objective)
	if err != nil {
		return nil, err
	}
	b, err := parse("rhs", doc.RHS)
	if err != nil {
		return nil, err
	}
	a := make([][]T, len(doc.Constraints))
	for i, row := range doc.Constraints {
		if a[i], err = parse(fmt.Sprintf("constraints[%d]", i), row); err != nil {
			return nil, err
		}
	}

	return lp.NewProblemData(f, c, a, b)
}

// FromProblem renders p with the field's own notation.
func FromProblem[T any](p *lp.ProblemData[T], goal lp.Goal, form Form) Document {
	f := p.Field()
	format := func(xs []T) []string {
		out := make([]string, len(xs))
		for i, x := range xs {
			out[i] = f.Format(x)
		}
		return out
	}
	rows := p.ConstraintRows()
	doc := Document{
		Goal:        goal.String(),
		Form:        form.String(),
		Field:       f.Kind().String(),
		Objective:   format(p.Objective()),
		Constraints: make([][]string, len(rows)),
		RHS:         format(p.RHS()),
	}
	for i, row := range rows {
		doc.Constraints[i] = format(row)
	}

	return doc
}
