// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

// Solver is the stateless pivoting algorithm. A Solver holds only its field
// and options and may be shared by any number of goroutines.
type Solver[T any] struct {
	f    field.Field[T]
	opts Options
}

// NewSolver returns a Solver for the field f.
func NewSolver[T any](f field.Field[T], opts ...Option) *Solver[T] {
	return &Solver[T]{f: f, opts: buildOptions(opts)}
}

// Options returns the effective options.
func (s *Solver[T]) Options() Options { return s.opts }

// PivotColumn picks the entering column. Dantzig's rule (the most negative
// reduced cost, ties to the lowest column index) is used while pivots make
// progress; after a degenerate pivot the column with the lowest variable
// index among the negative reduced costs is taken instead (Bland's rule),
// which together with the row tie-break rules out cycling. ok is false when
// no reduced cost is negative under the field policy.
func (s *Solver[T]) PivotColumn(t *Tableau[T]) (col int, ok bool) {
	return pivotColumn(t)
}

func pivotColumn[T any](t *Tableau[T]) (int, bool) {
	f := t.f
	m := t.m()
	best := -1
	for c := 0; c < t.k(); c++ {
		d := t.get(m, c)
		if f.Sign(d) >= 0 {
			continue
		}
		switch {
		case best < 0:
			best = c
		case t.degenerate:
			if t.free[c] < t.free[best] {
				best = c
			}
		case f.Cmp(d, t.get(m, best)) < 0:
			best = c
		}
	}

	return best, best >= 0
}

// PivotRow applies the minimum-ratio test on column col over rows with a
// strictly positive entry. Ties go to the row whose basic variable has the
// lowest index (Bland). ok is false when no entry is positive.
func (s *Solver[T]) PivotRow(t *Tableau[T], col int) (row int, ok bool) {
	if col < 0 || col >= t.k() {
		return -1, false
	}

	return pivotRow(t, col)
}

func pivotRow[T any](t *Tableau[T], col int) (int, bool) {
	f := t.f
	best := -1
	var bestRatio T
	for r := 0; r < t.m(); r++ {
		a := t.get(r, col)
		if f.Sign(a) <= 0 {
			continue
		}
		ratio := f.Div(t.rhs(r), a)
		if best < 0 {
			best, bestRatio = r, ratio
			continue
		}
		switch cmp := f.Cmp(ratio, bestRatio); {
		case cmp < 0, cmp == 0 && t.basic[r] < t.basic[best]:
			best, bestRatio = r, ratio
		}
	}

	return best, best >= 0
}

// ComputePivot is a non-committing hint for the next automatic step:
//   - (pivot, lp.Incomplete) when a pivot exists;
//   - (Pivot{-1, col}, lp.Unbounded) when column col has no positive entry;
//   - (NoPivot, phase check) when no column improves.
func (s *Solver[T]) ComputePivot(t *Tableau[T]) (Pivot, lp.SolutionType) {
	if t == nil {
		return NoPivot, lp.Unknown
	}
	col, ok := pivotColumn(t)
	if !ok {
		return NoPivot, s.Check(t)
	}
	row, ok := pivotRow(t, col)
	if !ok {
		return Pivot{Row: -1, Col: col}, lp.Unbounded
	}

	return Pivot{Row: row, Col: col}, lp.Incomplete
}

// Pivot performs the Jordan exchange at (row, col) and returns a new tableau;
// t is not modified.
//
// Errors: ErrNilTableau, ErrPivotOutOfRange, ErrZeroPivot, and ErrInvalidPivot
// when the exchange overflows the field.
func (s *Solver[T]) Pivot(t *Tableau[T], row, col int) (*Tableau[T], error) {
	if t == nil {
		return nil, ErrNilTableau
	}
	if row < 0 || row >= t.m() || col < 0 || col >= t.k() {
		return nil, fmt.Errorf("Pivot(%d,%d): %w", row, col, ErrPivotOutOfRange)
	}
	if s.f.IsZero(t.get(row, col)) {
		return nil, fmt.Errorf("Pivot(%d,%d): %w", row, col, ErrZeroPivot)
	}
	next, ok := t.exchange(row, col)
	if !ok {
		return nil, fmt.Errorf("Pivot(%d,%d): non-finite result: %w", row, col, ErrInvalidPivot)
	}

	return next, nil
}

// Iterate performs one automatic step on t.
//
// Implementation:
//   - Stage 1: no improving column → a copy of t classified by the phase
//     check (lp.Optimal or lp.Inconsistent), Pivoted false.
//   - Stage 2: improving column without a positive entry → lp.Unbounded.
//   - Stage 3: pivot, then classify the result (lp.Incomplete while an
//     improving column remains).
//
// A step whose pivot would produce non-finite values, or a tableau with an
// unknown phase, yields lp.Unknown.
func (s *Solver[T]) Iterate(t *Tableau[T]) (Step[T], error) {
	if t == nil {
		return Step[T]{}, ErrNilTableau
	}
	if t.phase != PhaseOne && t.phase != PhaseTwo {
		return Step[T]{Tableau: t.Clone(), Type: lp.Unknown, Pivot: NoPivot}, nil
	}
	pivot, typ := s.ComputePivot(t)
	if typ != lp.Incomplete {
		return Step[T]{Tableau: t.Clone(), Type: typ, Pivot: pivot}, nil
	}

	return s.apply(t, pivot), nil
}

// IterateWith performs one step with a caller-chosen pivot. The pivot must lie
// in the constraint block, be strictly positive and attain the minimum ratio
// of its column, so that the resulting basis stays feasible.
//
// Errors: ErrNilTableau, ErrPivotOutOfRange, ErrZeroPivot, ErrInvalidPivot.
func (s *Solver[T]) IterateWith(t *Tableau[T], p Pivot) (Step[T], error) {
	if t == nil {
		return Step[T]{}, ErrNilTableau
	}
	if p.Row < 0 || p.Row >= t.m() || p.Col < 0 || p.Col >= t.k() {
		return Step[T]{}, fmt.Errorf("IterateWith%s: %w", p, ErrPivotOutOfRange)
	}
	f := s.f
	a := t.get(p.Row, p.Col)
	switch f.Sign(a) {
	case 0:
		return Step[T]{}, fmt.Errorf("IterateWith%s: %w", p, ErrZeroPivot)
	case -1:
		return Step[T]{}, fmt.Errorf("IterateWith%s: negative entry: %w", p, ErrInvalidPivot)
	}
	best, _ := pivotRow(t, p.Col)
	if f.Cmp(f.Div(t.rhs(p.Row), a), f.Div(t.rhs(best), t.get(best, p.Col))) != 0 {
		return Step[T]{}, fmt.Errorf("IterateWith%s: ratio above column minimum: %w", p, ErrInvalidPivot)
	}

	return s.apply(t, p), nil
}

// apply pivots at p and classifies the result.
func (s *Solver[T]) apply(t *Tableau[T], p Pivot) Step[T] {
	next, ok := t.exchange(p.Row, p.Col)
	if !ok {
		s.opts.Logger.Debug("pivot produced non-finite values", "phase", t.phase, "row", p.Row, "col", p.Col)
		return Step[T]{Tableau: t.Clone(), Type: lp.Unknown, Pivot: p}
	}
	typ := lp.Incomplete
	if _, more := pivotColumn(next); !more {
		typ = s.Check(next)
	}
	s.opts.Logger.Debug("pivot",
		"phase", t.phase,
		"row", p.Row,
		"col", p.Col,
		"enters", t.VarName(t.free[p.Col]),
		"leaves", t.VarName(t.basic[p.Row]),
		"type", typ,
	)

	return Step[T]{Tableau: next, Type: typ, Pivot: p, Pivoted: true}
}

// CheckPhase1Solution classifies a phase-one tableau: lp.Incomplete while an
// improving column exists, otherwise lp.Optimal when the infeasibility is
// zero and lp.Inconsistent when it is positive.
func (s *Solver[T]) CheckPhase1Solution(t *Tableau[T]) lp.SolutionType {
	return checkPhaseOne(t)
}

func checkPhaseOne[T any](t *Tableau[T]) lp.SolutionType {
	if t == nil || t.phase != PhaseOne {
		return lp.Unknown
	}
	if _, more := pivotColumn(t); more {
		return lp.Incomplete
	}
	switch t.f.Sign(t.Infeasibility()) {
	case 0:
		return lp.Optimal
	case 1:
		return lp.Inconsistent
	default:
		return lp.Unknown // negative sum of non-negative artificials
	}
}

// CheckPhase2Solution classifies a phase-two tableau: lp.Optimal when no
// reduced cost is negative, lp.Incomplete otherwise.
func (s *Solver[T]) CheckPhase2Solution(t *Tableau[T]) lp.SolutionType {
	if t == nil || t.phase != PhaseTwo {
		return lp.Unknown
	}
	if _, more := pivotColumn(t); more {
		return lp.Incomplete
	}

	return lp.Optimal
}

// Check dispatches to the phase-appropriate predicate.
func (s *Solver[T]) Check(t *Tableau[T]) lp.SolutionType {
	if t == nil {
		return lp.Unknown
	}
	switch t.phase {
	case PhaseOne:
		return s.CheckPhase1Solution(t)
	case PhaseTwo:
		return s.CheckPhase2Solution(t)
	default:
		return lp.Unknown
	}
}
