// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/matrix"
)

// ProblemData is one linear program over the field T: objective c (length n),
// constraint matrix A (m×n) and right-hand side b (length m).
//
// A ProblemData is immutable once built; every accessor returns a copy.
type ProblemData[T any] struct {
	f           field.Field[T]
	objective   []T
	constraints *matrix.Dense[T]
	rhs         []T
}

// NewProblemData validates and copies c, a and b.
//
// Errors (each wrapped together with ErrInvalidArgument):
//   - ErrEmptyProblem: len(a) == 0 or len(c) == 0.
//   - ErrDimensionMismatch: ragged rows, len(a[i]) != len(c) or len(b) != len(a).
//   - ErrNotFinite: a value the field reports as not finite.
func NewProblemData[T any](f field.Field[T], c []T, a [][]T, b []T) (*ProblemData[T], error) {
	m, n := len(a), len(c)
	if m == 0 || n == 0 {
		return nil, invalid(fmt.Sprintf("NewProblemData(m=%d,n=%d)", m, n), ErrEmptyProblem)
	}
	if len(b) != m {
		return nil, invalid(fmt.Sprintf("NewProblemData: |b|=%d, m=%d", len(b), m), ErrDimensionMismatch)
	}
	for i, row := range a {
		if len(row) != n {
			return nil, invalid(fmt.Sprintf("NewProblemData: row %d has %d coefficients, n=%d", i, len(row), n), ErrDimensionMismatch)
		}
	}
	if i, ok := firstNonFinite(f, c); !ok {
		return nil, invalid(fmt.Sprintf("NewProblemData: objective[%d]", i), ErrNotFinite)
	}
	if i, ok := firstNonFinite(f, b); !ok {
		return nil, invalid(fmt.Sprintf("NewProblemData: rhs[%d]", i), ErrNotFinite)
	}
	for i, row := range a {
		if j, ok := firstNonFinite(f, row); !ok {
			return nil, invalid(fmt.Sprintf("NewProblemData: constraints[%d][%d]", i, j), ErrNotFinite)
		}
	}

	dense, err := matrix.NewDenseFromRows(f, a)
	if err != nil {
		return nil, invalid("NewProblemData", err)
	}

	return &ProblemData[T]{
		f:           f,
		objective:   append([]T(nil), c...),
		constraints: dense,
		rhs:         append([]T(nil), b...),
	}, nil
}

func firstNonFinite[T any](f field.Field[T], xs []T) (int, bool) {
	for i, x := range xs {
		if !f.IsFinite(x) {
			return i, false
		}
	}

	return -1, true
}

// Field returns the scalar field the problem is stored in.
func (p *ProblemData[T]) Field() field.Field[T] { return p.f }

// Vars returns n, the number of decision variables.
func (p *ProblemData[T]) Vars() int { return len(p.objective) }

// Constraints returns m, the number of constraint rows.
func (p *ProblemData[T]) Constraints() int { return len(p.rhs) }

// Objective returns a copy of c.
func (p *ProblemData[T]) Objective() []T { return append([]T(nil), p.objective...) }

// RHS returns a copy of b.
func (p *ProblemData[T]) RHS() []T { return append([]T(nil), p.rhs...) }

// ConstraintMatrix returns a copy of A.
func (p *ProblemData[T]) ConstraintMatrix() *matrix.Dense[T] { return p.constraints.Clone() }

// ConstraintRows returns A as freshly allocated rows.
func (p *ProblemData[T]) ConstraintRows() [][]T { return p.constraints.RawRows() }

// ObjectiveAt evaluates cᵀx.
func (p *ProblemData[T]) ObjectiveAt(x []T) (T, error) {
	v, err := matrix.Dot(p.f, p.objective, x)
	if err != nil {
		return v, fmt.Errorf("ObjectiveAt: %w", err)
	}

	return v, nil
}

// Residual returns A x − b.
func (p *ProblemData[T]) Residual(x []T) ([]T, error) {
	ax, err := matrix.MatVec(p.constraints, x)
	if err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	for i := range ax {
		ax[i] = p.f.Sub(ax[i], p.rhs[i])
	}

	return ax, nil
}

// SatisfiesEqualities reports whether x ≥ 0 and A x = b under the field's
// equality policy. A point of the wrong length is never feasible.
func (p *ProblemData[T]) SatisfiesEqualities(x []T) bool {
	return p.satisfies(x, func(s int) bool { return s == 0 })
}

// SatisfiesInequalities reports whether x ≥ 0 and A x ≤ b.
func (p *ProblemData[T]) SatisfiesInequalities(x []T) bool {
	return p.satisfies(x, func(s int) bool { return s <= 0 })
}

func (p *ProblemData[T]) satisfies(x []T, ok func(sign int) bool) bool {
	res, err := p.Residual(x)
	if err != nil {
		return false
	}
	for _, v := range x {
		if p.f.Sign(v) < 0 {
			return false
		}
	}
	for _, r := range res {
		if !ok(p.f.Sign(r)) {
			return false
		}
	}

	return true
}

// TightCount returns how many of the m+n constraints (rows A_i x = b_i and
// bounds x_j = 0) hold with equality at x. A vertex has at least n.
func (p *ProblemData[T]) TightCount(x []T) (int, error) {
	res, err := p.Residual(x)
	if err != nil {
		return 0, fmt.Errorf("TightCount: %w", err)
	}
	tight := 0
	for _, r := range res {
		if p.f.IsZero(r) {
			tight++
		}
	}
	for _, v := range x {
		if p.f.IsZero(v) {
			tight++
		}
	}

	return tight, nil
}

// WithSlacks returns the canonical form of the inequality reading A x ≤ b:
// the matrix [A | I], objective (c, 0…0) and the same b.
// The first Vars() coordinates of any solution are the original variables.
func (p *ProblemData[T]) WithSlacks() *ProblemData[T] {
	m, n := p.Constraints(), p.Vars()
	rows := p.constraints.RawRows()
	for i := range rows {
		ext := make([]T, n+m)
		copy(ext, rows[i])
		for j := n; j < n+m; j++ {
			ext[j] = p.f.Zero()
		}
		ext[n+i] = p.f.One()
		rows[i] = ext
	}
	c := make([]T, n+m)
	copy(c, p.objective)
	for j := n; j < n+m; j++ {
		c[j] = p.f.Zero()
	}
	dense, _ := matrix.NewDenseFromRows(p.f, rows) // shape and values already validated

	return &ProblemData[T]{f: p.f, objective: c, constraints: dense, rhs: p.RHS()}
}

// String renders the program in a compact human-readable form.
func (p *ProblemData[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "c = %s\n", field.FormatAll(p.f, p.objective))
	for i, row := range p.constraints.RawRows() {
		fmt.Fprintf(&sb, "%s | %s\n", field.FormatAll(p.f, row), p.f.Format(p.rhs[i]))
	}

	return sb.String()
}

// ConvertProblem re-expresses src in the field dst, converting every
// coefficient with conv.
func ConvertProblem[S, D any](src *ProblemData[S], dst field.Field[D], conv field.Converter[S, D]) (*ProblemData[D], error) {
	c, err := field.ConvertAll(src.objective, conv)
	if err != nil {
		return nil, fmt.Errorf("ConvertProblem: objective: %w", err)
	}
	b, err := field.ConvertAll(src.rhs, conv)
	if err != nil {
		return nil, fmt.Errorf("ConvertProblem: rhs: %w", err)
	}
	srcRows := src.constraints.RawRows()
	a := make([][]D, len(srcRows))
	for i, row := range srcRows {
		if a[i], err = field.ConvertAll(row, conv); err != nil {
			return nil, fmt.Errorf("ConvertProblem: constraints row %d: %w", i, err)
		}
	}

	return NewProblemData(dst, c, a, b)
}
