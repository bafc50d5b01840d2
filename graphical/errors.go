// SPDX-License-Identifier: MIT

package graphical

import "errors"

var (
	// ErrNilProblem indicates that a nil *lp.ProblemData was passed to Solve.
	ErrNilProblem = errors.New("graphical: problem is nil")

	// ErrNotTwoDimensional indicates a problem with n != 2 variables.
	ErrNotTwoDimensional = errors.New("graphical: problem must have exactly two variables")
)

const panicPaddingInvalid = "graphical: WithPadding: ratio must be finite and non-negative"
