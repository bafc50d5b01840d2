// Package verify cross-checks simplex results against gonum's
// optimize/convex/lp reference solver in float64.
package verify

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	glp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

// DefaultTolerance is the absolute/relative tolerance used by Check.
const DefaultTolerance = 1e-7

var (
	// ErrUnsupported indicates a program the reference solver cannot take:
	// more rows than columns, rank-deficient rows, or zero rows/columns.
	ErrUnsupported = errors.New("verify: reference solver does not accept this program")

	// ErrMismatch indicates the two solvers disagree.
	ErrMismatch = errors.New("verify: solutions disagree")
)

// Result is the reference outcome.
type Result struct {
	Type  lp.SolutionType
	Point []float64
	Value float64
}

// Project returns the float64 image of data.
func Project[T any](data *lp.ProblemData[T]) (c []float64, a *mat.Dense, b []float64) {
	f := data.Field()
	c = make([]float64, data.Vars())
	for j, v := range data.Objective() {
		c[j] = f.Float(v)
	}
	rows := data.ConstraintRows()
	a = mat.NewDense(len(rows), len(c), nil)
	for i, row := range rows {
		for j, v := range row {
			a.Set(i, j, f.Float(v))
		}
	}
	b = make([]float64, data.Constraints())
	for i, v := range data.RHS() {
		b[i] = f.Float(v)
	}

	return c, a, b
}

// Canonical solves goal cᵀx subject to A x = b, x ≥ 0.
func Canonical(c []float64, a *mat.Dense, b []float64, goal lp.Goal) (Result, error) {
	m, n := a.Dims()
	if m > n {
		return Result{}, fmt.Errorf("%w: %d rows > %d columns", ErrUnsupported, m, n)
	}
	cc := append([]float64(nil), c...)
	if goal == lp.Maximize {
		floats.Scale(-1, cc)
	}

	opt, x, err := glp.Simplex(cc, a, b, 0, nil)
	switch {
	case err == nil:
	case errors.Is(err, glp.ErrInfeasible):
		return Result{Type: lp.Inconsistent}, nil
	case errors.Is(err, glp.ErrUnbounded):
		return Result{Type: lp.Unbounded}, nil
	default:
		return Result{}, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	if goal == lp.Maximize {
		opt = -opt
	}

	return Result{Type: lp.Optimal, Point: x, Value: opt}, nil
}

// Inequality solves goal cᵀx subject to G x ≤ h, x ≥ 0 by appending one
// slack column per row, [G | I] (x, s) = h, and solving that canonical
// program. The returned point is trimmed to x.
func Inequality(c []float64, g *mat.Dense, h []float64, goal lp.Goal) (Result, error) {
	m, n := g.Dims()
	a := mat.NewDense(m, n+m, nil)
	a.Slice(0, m, 0, n).(*mat.Dense).Copy(g)
	for i := 0; i < m; i++ {
		a.Set(i, n+i, 1)
	}
	cc := make([]float64, n+m)
	copy(cc, c)

	res, err := Canonical(cc, a, h, goal)
	if err != nil || res.Type != lp.Optimal {
		return res, err
	}
	res.Point = res.Point[:n]

	return res, nil
}

// Check solves data (canonical form) with the reference solver and compares
// the outcome with sol: the solution types must match and, when optimal, the
// values must agree within tol and sol's point must satisfy A x = b within
// tol. Points are not compared directly because ties may pick different
// optimal vertices.
func Check[T any](data *lp.ProblemData[T], goal lp.Goal, sol lp.Solution[T], tol float64) (Result, error) {
	c, a, b := Project(data)
	ref, err := Canonical(c, a, b, goal)
	if err != nil {
		return Result{}, err
	}
	x, err := compare(data.Field(), ref, sol, tol)
	if err != nil || x == nil {
		return ref, err
	}
	var ax mat.VecDense
	ax.MulVec(a, mat.NewVecDense(len(x), x))
	if !floats.EqualApprox(ax.RawVector().Data, b, tol) {
		return ref, fmt.Errorf("%w: point violates A x = b", ErrMismatch)
	}

	return ref, nil
}

// CheckInequality is Check for data read as G x ≤ h, x ≥ 0, where sol was
// computed on data.WithSlacks(). Only the first data.Vars() entries of sol's
// point are checked, against G x ≤ h within tol.
func CheckInequality[T any](data *lp.ProblemData[T], goal lp.Goal, sol lp.Solution[T], tol float64) (Result, error) {
	c, g, h := Project(data)
	ref, err := Inequality(c, g, h, goal)
	if err != nil {
		return Result{}, err
	}
	x, err := compare(data.Field(), ref, sol, tol)
	if err != nil || x == nil {
		return ref, err
	}
	if len(x) < len(c) {
		return ref, fmt.Errorf("%w: point has %d entries, want at least %d", ErrMismatch, len(x), len(c))
	}
	var gx mat.VecDense
	gx.MulVec(g, mat.NewVecDense(len(c), x[:len(c)]))
	for i, v := range gx.RawVector().Data {
		if v > h[i]+tol {
			return ref, fmt.Errorf("%w: point violates row %d of G x ≤ h", ErrMismatch, i+1)
		}
	}

	return ref, nil
}

// compare matches sol against ref and, when both are optimal, returns sol's
// point in float64 after checking it is non-negative.
func compare[T any](f field.Field[T], ref Result, sol lp.Solution[T], tol float64) ([]float64, error) {
	if ref.Type != sol.Type {
		return nil, fmt.Errorf("%w: type %s, reference %s", ErrMismatch, sol.Type, ref.Type)
	}
	if ref.Type != lp.Optimal {
		return nil, nil
	}
	got := f.Float(sol.ExtremeValue)
	if !scalar.EqualWithinAbsOrRel(got, ref.Value, tol, tol) {
		return nil, fmt.Errorf("%w: value %g, reference %g", ErrMismatch, got, ref.Value)
	}
	x := make([]float64, len(sol.ExtremePoint))
	for j, v := range sol.ExtremePoint {
		x[j] = f.Float(v)
	}
	if len(x) > 0 && floats.Min(x) < -tol {
		return nil, fmt.Errorf("%w: point has a negative entry", ErrMismatch)
	}

	return x, nil
}
