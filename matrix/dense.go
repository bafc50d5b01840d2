// SPDX-License-Identifier: MIT
// Dense is the concrete row-major matrix used by the tableau and the
// graphical solver. Elements live in a flat slice; the field f supplies
// arithmetic, equality and formatting.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lplab/field"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an r×c matrix over the field f.
type Dense[T any] struct {
	f    field.Field[T]
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense filled with f.Zero().
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice and zero it.
// Complexity: O(r*c) time and memory.
func NewDense[T any](f field.Field[T], rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = f.Zero()
	}

	return &Dense[T]{f: f, r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows copies rows into a new Dense. All rows must be non-empty
// and of equal length, and every value must be finite under f.
func NewDenseFromRows[T any](f field.Field[T], rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrBadShape)
	}
	m, err := NewDense(f, len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w", i, len(row), m.c, ErrBadShape)
		}
		for j, v := range row {
			if !f.IsFinite(v) {
				return nil, denseErrorf("FromRows", i, j, ErrNonFinite)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Field returns the scalar field of m.
func (m *Dense[T]) Field() field.Field[T] { return m.f }

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). Non-finite values are rejected.
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if !m.f.IsFinite(v) {
		return denseErrorf("Set", row, col, ErrNonFinite)
	}
	m.data[idx] = v

	return nil
}

// MustAt is At for callers that already validated the indices; it panics on
// an out-of-range index.
func (m *Dense[T]) MustAt(row, col int) T {
	v, err := m.At(row, col)
	if err != nil {
		panic(err)
	}

	return v
}

// at is the unchecked indexer for in-package kernels.
func (m *Dense[T]) at(row, col int) T { return m.data[row*m.c+col] }

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RawRows returns the contents as freshly allocated [][]T.
func (m *Dense[T]) RawRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of the backing slice. Scalars themselves are
// shared; every field.Field implementation treats them as immutable.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{f: m.f, r: m.r, c: m.c, data: data}
}

// Equal reports whether o has the same shape and element-wise equal values
// under m's field equality policy.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.f.Cmp(m.data[i], o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(field.FormatAll(m.f, m.data[i*m.c:(i+1)*m.c]))
		sb.WriteByte('\n')
	}

	return sb.String()
}
