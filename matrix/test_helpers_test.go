// SPDX-License-Identifier: MIT
// Package matrix_test contains small deterministic fixtures shared by the tests.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/matrix"
)

var (
	realF = field.Real{}
	ratF  = field.Rational{}
)

// MustDense builds a float Dense from literal rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDenseFromRows[float64](realF, rows)
	require.NoError(t, err)

	return m
}

// MustRat builds a rational Dense from integer rows or fails the test.
func MustRat(t testing.TB, rows [][]int64) *matrix.Dense[*big.Rat] {
	t.Helper()
	qs := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		qs[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			qs[i][j] = ratF.FromInt(v)
		}
	}
	m, err := matrix.NewDenseFromRows[*big.Rat](ratF, qs)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
