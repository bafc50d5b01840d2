// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/lp"
)

// Instance is a generated program.
type Instance[T any] struct {
	Name string
	Data *lp.ProblemData[T]
	Goal lp.Goal
	// Form tells how the rows of Data read: A x = b or A x ≤ b.
	Form converters.Form
}

// Canonical returns the data in A x = b form, adding slacks when needed.
func (in Instance[T]) Canonical() *lp.ProblemData[T] {
	if in.Form == converters.Inequality {
		return in.Data.WithSlacks()
	}

	return in.Data
}

// Document renders the instance as a problem document.
func (in Instance[T]) Document() converters.Document {
	return converters.FromProblem(in.Data, in.Goal, in.Form)
}
