// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/matrix"
)

// Tableau is a compact simplex tableau over the field T.
//
// Row i < m reads  x_{basic[i]} + Σ_j entries[i][j]·x_{free[j]} = entries[i][k],
// and the objective row m reads  −z + Σ_j entries[m][j]·x_{free[j]} = entries[m][k].
// Variable indices 0..n−1 are decision variables, n..n+m−1 the artificial
// variables of phase one.
//
// A Tableau handed out by the solver or the controller is a snapshot: the
// solver never mutates one in place, so snapshots can be compared and kept.
type Tableau[T any] struct {
	f       field.Field[T]
	phase   Phase
	nVars   int
	basic   []int
	free    []int
	entries *matrix.Dense[T]
	// degenerate marks a tableau reached by a pivot on a zero right-hand side.
	degenerate bool
}

// newTableau assembles a tableau from rows it takes ownership of.
func newTableau[T any](f field.Field[T], phase Phase, nVars int, basic, free []int, rows [][]T) (*Tableau[T], error) {
	entries, err := matrix.NewDenseFromRows(f, rows)
	if err != nil {
		return nil, err
	}

	return &Tableau[T]{f: f, phase: phase, nVars: nVars, basic: basic, free: free, entries: entries}, nil
}

// Field returns the scalar field.
func (t *Tableau[T]) Field() field.Field[T] { return t.f }

// Phase returns the phase whose objective the last row carries.
func (t *Tableau[T]) Phase() Phase { return t.phase }

// Rows returns m+1 (constraint rows plus the objective row).
func (t *Tableau[T]) Rows() int { return t.entries.Rows() }

// Cols returns k+1 (non-basic columns plus the RHS column).
func (t *Tableau[T]) Cols() int { return t.entries.Cols() }

// DecisionVars returns n, the number of decision variables of the problem.
func (t *Tableau[T]) DecisionVars() int { return t.nVars }

// IsArtificial reports whether variable v is a phase-one artificial.
func (t *Tableau[T]) IsArtificial(v int) bool { return v >= t.nVars }

// At returns entries[r][c].
func (t *Tableau[T]) At(r, c int) (T, error) { return t.entries.At(r, c) }

// Row returns a copy of row r (including the RHS).
func (t *Tableau[T]) Row(r int) ([]T, error) { return t.entries.Row(r) }

// Col returns a copy of column c (including the objective row).
func (t *Tableau[T]) Col(c int) ([]T, error) { return t.entries.Col(c) }

// Entries returns a copy of the underlying matrix.
func (t *Tableau[T]) Entries() *matrix.Dense[T] { return t.entries.Clone() }

// BasicVars returns a copy of the row → variable map.
func (t *Tableau[T]) BasicVars() []int { return slices.Clone(t.basic) }

// FreeVars returns a copy of the column → variable map.
func (t *Tableau[T]) FreeVars() []int { return slices.Clone(t.free) }

// SetBasicVars replaces the row → variable map. The indices must have one
// entry per constraint row and, together with FreeVars, name every variable
// of the tableau exactly once.
func (t *Tableau[T]) SetBasicVars(vars []int) error {
	if len(vars) != t.Rows()-1 {
		return fmt.Errorf("SetBasicVars: %d indices for %d rows: %w", len(vars), t.Rows()-1, ErrBadBasis)
	}
	if err := checkPartition(vars, t.free, t.nVars+t.Rows()-1); err != nil {
		return fmt.Errorf("SetBasicVars: %w", err)
	}
	t.basic = slices.Clone(vars)

	return nil
}

// SetFreeVars replaces the column → variable map under the same rules.
func (t *Tableau[T]) SetFreeVars(vars []int) error {
	if len(vars) != t.Cols()-1 {
		return fmt.Errorf("SetFreeVars: %d indices for %d columns: %w", len(vars), t.Cols()-1, ErrBadBasis)
	}
	if err := checkPartition(t.basic, vars, t.nVars+t.Rows()-1); err != nil {
		return fmt.Errorf("SetFreeVars: %w", err)
	}
	t.free = slices.Clone(vars)

	return nil
}

// checkPartition rejects negative, too large or repeated indices.
func checkPartition(basic, free []int, limit int) error {
	seen := make(map[int]struct{}, len(basic)+len(free))
	for _, v := range slices.Concat(basic, free) {
		if v < 0 || v >= limit {
			return ErrBadBasis
		}
		if _, dup := seen[v]; dup {
			return ErrBadBasis
		}
		seen[v] = struct{}{}
	}

	return nil
}

func (t *Tableau[T]) m() int { return t.Rows() - 1 }
func (t *Tableau[T]) k() int { return t.Cols() - 1 }

func (t *Tableau[T]) get(r, c int) T { return t.entries.MustAt(r, c) }

// rhs returns the right-hand side of row r.
func (t *Tableau[T]) rhs(r int) T { return t.get(r, t.k()) }

// ExtremePoint projects the current basic solution onto the n decision
// variables: free variables are zero and each basic decision variable takes
// the RHS of its row. Artificial variables are left out. Entries the field
// treats as zero are returned as its exact zero.
func (t *Tableau[T]) ExtremePoint() []T {
	x := make([]T, t.nVars)
	for j := range x {
		x[j] = t.f.Zero()
	}
	for i, v := range t.basic {
		if v < t.nVars {
			x[v] = t.snap(t.rhs(i))
		}
	}

	return x
}

// snap returns the field's exact zero for values the field treats as zero.
func (t *Tableau[T]) snap(v T) T {
	if t.f.IsZero(v) {
		return t.f.Zero()
	}

	return v
}

// ExtremeValue returns the current objective value for goal. The stored
// objective-row RHS is −z of the internal minimisation, so Minimize negates
// it and Maximize (which minimised −cᵀx) reads it as is.
func (t *Tableau[T]) ExtremeValue(goal lp.Goal) T {
	v := t.rhs(t.m())
	if goal == lp.Minimize {
		v = t.f.Neg(v)
	}

	return t.snap(v)
}

// Infeasibility returns the phase-one objective, the sum of the artificial
// variables. It is only meaningful on phase-one tableaus.
func (t *Tableau[T]) Infeasibility() T { return t.f.Neg(t.rhs(t.m())) }

// Clone returns an independent copy.
func (t *Tableau[T]) Clone() *Tableau[T] {
	return &Tableau[T]{
		f:       t.f,
		phase:   t.phase,
		nVars:   t.nVars,
		basic:   slices.Clone(t.basic),
		free:    slices.Clone(t.free),
		entries: t.entries.Clone(),

		degenerate: t.degenerate,
	}
}

// Degenerate reports whether t was reached by a degenerate pivot, one whose
// row had a zero right-hand side and so left the objective unchanged. The
// next column is then chosen by Bland's rule.
func (t *Tableau[T]) Degenerate() bool { return t.degenerate }

// Equal reports whether o has the same phase, bookkeeping and entries under
// the field's equality policy. go-cmp picks this method up.
func (t *Tableau[T]) Equal(o *Tableau[T]) bool {
	if t == nil || o == nil {
		return t == o
	}

	return t.phase == o.phase &&
		t.nVars == o.nVars &&
		slices.Equal(t.basic, o.basic) &&
		slices.Equal(t.free, o.free) &&
		t.entries.Equal(o.entries)
}

// String renders the tableau with variable labels, e.g. "x2" or "a1".
func (t *Tableau[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", t.phase)
	sb.WriteString("     ")
	for _, v := range t.free {
		fmt.Fprintf(&sb, "%8s", t.VarName(v))
	}
	fmt.Fprintf(&sb, "%8s\n", "rhs")
	for r := 0; r < t.Rows(); r++ {
		label := "z"
		if r < t.m() {
			label = t.VarName(t.basic[r])
		}
		fmt.Fprintf(&sb, "%-5s", label)
		for c := 0; c < t.Cols(); c++ {
			fmt.Fprintf(&sb, "%8s", t.f.Format(t.get(r, c)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// VarName labels variable v: decision variables are x1..xn, artificials a1..am.
func (t *Tableau[T]) VarName(v int) string {
	if t.IsArtificial(v) {
		return fmt.Sprintf("a%d", v-t.nVars+1)
	}

	return fmt.Sprintf("x%d", v+1)
}

// exchange performs the compact Jordan exchange at (r, c) on a copy.
// With p = entries[r][c]:
//
//	row r:        e'[r][c] = 1/p,         e'[r][j] = e[r][j]/p
//	other rows i: e'[i][c] = −e[i][c]/p,  e'[i][j] = e[i][j] − e[i][c]·e[r][j]/p
//
// and basic[r] swaps with free[c]. The caller guarantees p is non-zero.
// ok is false when the result would hold a non-finite value.
func (t *Tableau[T]) exchange(r, c int) (next *Tableau[T], ok bool) {
	f := t.f
	rows, cols := t.Rows(), t.Cols()
	p := t.get(r, c)
	out := make([][]T, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]T, cols)
		if i == r {
			for j := 0; j < cols; j++ {
				if j == c {
					out[i][j] = f.Div(f.One(), p)
				} else {
					out[i][j] = f.Div(t.get(r, j), p)
				}
			}
			continue
		}
		factor := f.Div(t.get(i, c), p)
		for j := 0; j < cols; j++ {
			if j == c {
				out[i][j] = f.Neg(factor)
			} else {
				out[i][j] = f.Sub(t.get(i, j), f.Mul(factor, t.get(r, j)))
			}
		}
	}

	entries, err := matrix.NewDenseFromRows(f, out)
	if err != nil {
		return nil, false
	}
	next = &Tableau[T]{
		f:       f,
		phase:   t.phase,
		nVars:   t.nVars,
		basic:   slices.Clone(t.basic),
		free:    slices.Clone(t.free),
		entries: entries,
	}
	next.basic[r], next.free[c] = t.free[c], t.basic[r]
	next.degenerate = f.IsZero(t.rhs(r))

	return next, true
}
