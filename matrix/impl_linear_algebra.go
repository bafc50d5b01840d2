// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over Dense[T].
//
// Notes:
//   - Every kernel validates through validators.go and wraps failures with an
//     op* tag via matrixErrorf, so callers see "Solve: matrix: singular matrix".
//   - Pivot choice uses the field's Abs/Cmp, which keeps the float path stable
//     (partial pivoting) and is harmless for exact rationals.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lplab/field"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec    = "MatVec"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opRREF      = "RREF"
	opSolve     = "Solve"
	opDot       = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns Σ x_i·y_i.
func Dot[T any](f field.Field[T], x, y []T) (T, error) {
	if err := ValidateVecLen(y, len(x)); err != nil {
		var zero T
		return zero, matrixErrorf(opDot, err)
	}
	acc := f.Zero()
	for i := range x {
		acc = f.Add(acc, f.Mul(x[i], y[i]))
	}

	return acc, nil
}

// MatVec computes y = m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols()).
//
// Complexity: O(r*c).
func MatVec[T any](m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	f := m.f
	y := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		acc := f.Zero()
		for j := 0; j < m.c; j++ {
			acc = f.Add(acc, f.Mul(m.at(i, j), x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Mul computes the product a·b into a fresh Dense.
func Mul[T any](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	f := a.f
	out, err := NewDense(f, a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.at(i, k)
			if f.IsZero(aik) {
				continue
			}
			for j := 0; j < b.c; j++ {
				idx := i*out.c + j
				out.data[idx] = f.Add(out.data[idx], f.Mul(aik, b.at(k, j)))
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose[T any](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(m.f, m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.at(i, j)
		}
	}

	return out, nil
}

// RREF returns the reduced row echelon form of m and its rank.
//
// Implementation:
//   - Stage 1: clone m; walk columns left to right with a moving pivot row.
//   - Stage 2: pick the row with the largest |value| at or below the pivot row;
//     skip the column when that value is zero under the field policy.
//   - Stage 3: swap, normalize the pivot row, eliminate the column in every other row.
//
// Complexity: O(r*c*min(r,c)).
func RREF[T any](m *Dense[T]) (*Dense[T], int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, matrixErrorf(opRREF, err)
	}
	out := m.Clone()
	rank := eliminate(out, out.c)

	return out, rank, nil
}

// eliminate reduces m in place over its first cols columns and returns the rank.
func eliminate[T any](m *Dense[T], cols int) int {
	f := m.f
	row := 0
	for col := 0; col < cols && row < m.r; col++ {
		best := row
		for i := row + 1; i < m.r; i++ {
			if f.Cmp(f.Abs(m.at(i, col)), f.Abs(m.at(best, col))) > 0 {
				best = i
			}
		}
		if f.IsZero(m.at(best, col)) {
			continue
		}
		m.swapRows(row, best)

		p := m.at(row, col)
		for j := 0; j < m.c; j++ {
			m.data[row*m.c+j] = f.Div(m.at(row, j), p)
		}
		for i := 0; i < m.r; i++ {
			if i == row {
				continue
			}
			factor := m.at(i, col)
			if f.IsZero(factor) {
				continue
			}
			for j := 0; j < m.c; j++ {
				m.data[i*m.c+j] = f.Sub(m.at(i, j), f.Mul(factor, m.at(row, j)))
			}
		}
		row++
	}

	return row
}

func (m *Dense[T]) swapRows(i, k int) {
	if i == k {
		return
	}
	for j := 0; j < m.c; j++ {
		m.data[i*m.c+j], m.data[k*m.c+j] = m.data[k*m.c+j], m.data[i*m.c+j]
	}
}

// Solve returns x with a·x = b for a square, non-singular a.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != Rows()).
//   - ErrSingular when a column has no pivot under the field's zero test.
//
// Complexity: O(n³).
func Solve[T any](a *Dense[T], b []T) ([]T, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.r
	aug, err := NewDense(a.f, n, n+1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for i := 0; i < n; i++ {
		copy(aug.data[i*aug.c:i*aug.c+n], a.data[i*n:(i+1)*n])
		aug.data[i*aug.c+n] = b[i]
	}
	if rank := eliminate(aug, n); rank < n {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	x := make([]T, n)
	for i := 0; i < n; i++ {
		x[i] = aug.at(i, n)
	}

	return x, nil
}
