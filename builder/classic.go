// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

// KleeMinty returns the n-dimensional Klee–Minty cube
//
//	max  Σ_j 2^(n-j) x_j
//	s.t. 2 Σ_{j<i} 2^(i-j) x_j + x_i ≤ 5^i,   i = 1..n
//
// whose optimum is x = (0, …, 0, 5^n) with value 5^n. Under Dantzig's rule
// started from the origin it visits all 2^n vertices.
//
// Errors: ErrTooSmall if n < MinKleeMinty, ErrTooLarge if n > MaxKleeMinty.
// Complexity: O(n²).
func KleeMinty[T any](f field.Field[T], n int) (Instance[T], error) {
	if n < MinKleeMinty {
		return Instance[T]{}, builderErrorf(MethodKleeMinty, ErrTooSmall, "n must be >= %d, got %d", MinKleeMinty, n)
	}
	if n > MaxKleeMinty {
		return Instance[T]{}, builderErrorf(MethodKleeMinty, ErrTooLarge, "n must be <= %d, got %d", MaxKleeMinty, n)
	}

	c := make([]T, n)
	a := make([][]T, n)
	b := make([]T, n)
	five := int64(1)
	for i := 0; i < n; i++ {
		c[i] = f.FromInt(int64(1) << (n - 1 - i))
		a[i] = make([]T, n)
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				a[i][j] = f.FromInt(int64(1) << (i - j + 1))
			case j == i:
				a[i][j] = f.One()
			default:
				a[i][j] = f.Zero()
			}
		}
		five *= 5
		b[i] = f.FromInt(five)
	}

	data, err := lp.NewProblemData(f, c, a, b)
	if err != nil {
		return Instance[T]{}, fmt.Errorf("%s: %w", MethodKleeMinty, err)
	}

	return Instance[T]{
		Name: fmt.Sprintf("klee-minty-%d", n),
		Data: data,
		Goal: lp.Maximize,
		Form: converters.Inequality,
	}, nil
}

// Transportation returns the balanced transportation problem
//
//	min  Σ_ij cost[i][j] x_ij
//	s.t. Σ_j x_ij = supply[i],  Σ_i x_ij = demand[j]
//
// Variables are laid out row-major: x_ij is column i*len(demand)+j. The
// last demand row is linearly dependent on the others; phase one drops it.
//
// Errors: ErrTooSmall for empty supply or demand, ErrShape if cost is not
// len(supply)×len(demand), ErrNegative for negative entries, ErrUnbalanced
// when Σ supply ≠ Σ demand.
func Transportation[T any](f field.Field[T], supply, demand []T, cost [][]T) (Instance[T], error) {
	const method = MethodTransportation
	m, n := len(supply), len(demand)
	if m == 0 || n == 0 {
		return Instance[T]{}, builderErrorf(method, ErrTooSmall, "need at least one source and one sink, got %d×%d", m, n)
	}
	if len(cost) != m {
		return Instance[T]{}, builderErrorf(method, ErrShape, "cost has %d rows, want %d", len(cost), m)
	}
	for i, row := range cost {
		if len(row) != n {
			return Instance[T]{}, builderErrorf(method, ErrShape, "cost row %d has %d entries, want %d", i, len(row), n)
		}
		for j, v := range row {
			if f.Sign(v) < 0 {
				return Instance[T]{}, builderErrorf(method, ErrNegative, "cost[%d][%d] = %s", i, j, f.Format(v))
			}
		}
	}

	total := func(name string, xs []T) (T, error) {
		s := f.Zero()
		for i, v := range xs {
			if f.Sign(v) < 0 {
				return s, builderErrorf(method, ErrNegative, "%s[%d] = %s", name, i, f.Format(v))
			}
			s = f.Add(s, v)
		}
		return s, nil
	}
	ts, err := total("supply", supply)
	if err != nil {
		return Instance[T]{}, err
	}
	td, err := total("demand", demand)
	if err != nil {
		return Instance[T]{}, err
	}
	if f.Cmp(ts, td) != 0 {
		return Instance[T]{}, builderErrorf(method, ErrUnbalanced, "supply %s, demand %s", f.Format(ts), f.Format(td))
	}

	vars := m * n
	c := make([]T, 0, vars)
	for _, row := range cost {
		c = append(c, row...)
	}
	a := make([][]T, 0, m+n)
	b := make([]T, 0, m+n)
	for i := 0; i < m; i++ {
		row := zeros(f, vars)
		for j := 0; j < n; j++ {
			row[i*n+j] = f.One()
		}
		a = append(a, row)
		b = append(b, supply[i])
	}
	for j := 0; j < n; j++ {
		row := zeros(f, vars)
		for i := 0; i < m; i++ {
			row[i*n+j] = f.One()
		}
		a = append(a, row)
		b = append(b, demand[j])
	}

	data, err := lp.NewProblemData(f, c, a, b)
	if err != nil {
		return Instance[T]{}, fmt.Errorf("%s: %w", method, err)
	}

	return Instance[T]{
		Name: fmt.Sprintf("transportation-%dx%d", m, n),
		Data: data,
		Goal: lp.Minimize,
		Form: converters.Canonical,
	}, nil
}

// Assignment returns the n×n assignment problem for a square cost matrix:
// a transportation problem with unit supplies and demands. Its vertices are
// permutation matrices, so the simplex optimum is an optimal assignment.
func Assignment[T any](f field.Field[T], cost [][]T) (Instance[T], error) {
	n := len(cost)
	if n == 0 {
		return Instance[T]{}, builderErrorf(MethodAssignment, ErrTooSmall, "empty cost matrix")
	}
	ones := make([]T, n)
	for i := range ones {
		ones[i] = f.One()
	}
	in, err := Transportation(f, ones, ones, cost)
	if err != nil {
		return Instance[T]{}, fmt.Errorf("%s: %w", MethodAssignment, err)
	}
	in.Name = fmt.Sprintf("assignment-%d", n)

	return in, nil
}

func zeros[T any](f field.Field[T], n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = f.Zero()
	}

	return out
}
