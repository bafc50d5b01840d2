// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

// MakePhaseOne builds the phase-one tableau of data.
//
// Implementation:
//   - Stage 1: copy A | b, negating every row whose b_i < 0 so that all
//     right-hand sides are non-negative.
//   - Stage 2: make artificial a_i (variable n+i) basic in row i; all n
//     decision variables are free.
//   - Stage 3: objective row for min Σ a_i: d_j = −Σ_i a_ij, RHS −Σ_i b_i.
//
// Errors: ErrNilProblem (wrapped with lp.ErrInvalidArgument).
//
// Complexity: O(m·n).
func MakePhaseOne[T any](f field.Field[T], data *lp.ProblemData[T]) (*Tableau[T], error) {
	if data == nil {
		return nil, invalidArgument("MakePhaseOne", ErrNilProblem)
	}
	m, n := data.Constraints(), data.Vars()
	a := data.ConstraintRows()
	b := data.RHS()

	rows := make([][]T, m+1)
	obj := make([]T, n+1)
	for j := range obj {
		obj[j] = f.Zero()
	}
	for i := 0; i < m; i++ {
		row := make([]T, n+1)
		flip := f.Sign(b[i]) < 0
		for j := 0; j < n; j++ {
			row[j] = a[i][j]
			if flip {
				row[j] = f.Neg(row[j])
			}
		}
		row[n] = b[i]
		if flip {
			row[n] = f.Neg(b[i])
		}
		for j := 0; j <= n; j++ {
			obj[j] = f.Sub(obj[j], row[j])
		}
		rows[i] = row
	}
	rows[m] = obj

	basic := make([]int, m)
	for i := range basic {
		basic[i] = n + i
	}
	free := make([]int, n)
	for j := range free {
		free[j] = j
	}

	t, err := newTableau(f, PhaseOne, n, basic, free, rows)
	if err != nil {
		return nil, invalidArgument("MakePhaseOne", err)
	}

	return t, nil
}

// MakePhaseTwo turns an optimal, feasible phase-one tableau into the
// phase-two tableau of data for goal.
//
// Implementation:
//   - Stage 1: validate phase, dimensions and phase-one optimality with zero
//     infeasibility (ErrNotPhaseOneOptimal otherwise).
//   - Stage 2: pivot every basic artificial out on a non-zero entry of a
//     decision-variable column; its row has RHS 0, so the basis stays
//     feasible. A row with no such entry is redundant and is dropped.
//   - Stage 3: drop the artificial columns and rebuild the objective row from
//     the costs c (−c for Maximize): c̄_j = c_{free_j} − Σ_i c_{basic_i}·e[i][j],
//     RHS −Σ_i c_{basic_i}·e[i][k].
//
// Errors: ErrNilProblem, ErrNilTableau, ErrProblemMismatch,
// ErrNotPhaseOneOptimal, all wrapped with lp.ErrInvalidArgument.
//
// Complexity: O(m²·n) in the worst case of Stage 2.
func MakePhaseTwo[T any](f field.Field[T], data *lp.ProblemData[T], phase1 *Tableau[T], goal lp.Goal) (*Tableau[T], error) {
	const op = "MakePhaseTwo"
	switch {
	case data == nil:
		return nil, invalidArgument(op, ErrNilProblem)
	case phase1 == nil:
		return nil, invalidArgument(op, ErrNilTableau)
	case phase1.DecisionVars() != data.Vars() || phase1.Rows()-1 != data.Constraints():
		return nil, invalidArgument(op, ErrProblemMismatch)
	case phase1.Phase() != PhaseOne || checkPhaseOne(phase1) != lp.Optimal:
		return nil, invalidArgument(op, ErrNotPhaseOneOptimal)
	}

	n := data.Vars()
	t := phase1
	var redundant []bool
	for r := 0; r < t.m(); r++ {
		if !t.IsArtificial(t.basic[r]) {
			continue
		}
		col := -1
		for c := 0; c < t.k(); c++ {
			if !t.IsArtificial(t.free[c]) && !f.IsZero(t.get(r, c)) {
				col = c
				break
			}
		}
		if col < 0 {
			if redundant == nil {
				redundant = make([]bool, t.m())
			}
			redundant[r] = true
			continue
		}
		next, ok := t.exchange(r, col)
		if !ok {
			return nil, invalidArgument(op, ErrNotPhaseOneOptimal)
		}
		t = next
	}

	var keepCols []int
	for c := 0; c < t.k(); c++ {
		if !t.IsArtificial(t.free[c]) {
			keepCols = append(keepCols, c)
		}
	}
	var keepRows []int
	for r := 0; r < t.m(); r++ {
		if redundant == nil || !redundant[r] {
			keepRows = append(keepRows, r)
		}
	}

	cost := data.Objective()
	if goal == lp.Maximize {
		for j := range cost {
			cost[j] = f.Neg(cost[j])
		}
	}

	k := len(keepCols)
	rows := make([][]T, len(keepRows)+1)
	basic := make([]int, len(keepRows))
	free := make([]int, k)
	obj := make([]T, k+1)
	for j, c := range keepCols {
		free[j] = t.free[c]
		obj[j] = cost[t.free[c]]
	}
	obj[k] = f.Zero()
	for i, r := range keepRows {
		basic[i] = t.basic[r]
		cb := cost[t.basic[r]]
		row := make([]T, k+1)
		for j, c := range keepCols {
			row[j] = t.get(r, c)
			obj[j] = f.Sub(obj[j], f.Mul(cb, row[j]))
		}
		row[k] = t.rhs(r)
		obj[k] = f.Sub(obj[k], f.Mul(cb, row[k]))
		rows[i] = row
	}
	rows[len(keepRows)] = obj

	out, err := newTableau(f, PhaseTwo, n, basic, free, rows)
	if err != nil {
		return nil, invalidArgument(op, err)
	}

	return out, nil
}
