// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lplab/lp"
)

// Sentinel errors returned by the simplex implementation.
var (
	// ErrNilProblem indicates that a nil *lp.ProblemData was passed.
	ErrNilProblem = errors.New("simplex: problem is nil")

	// ErrNilTableau indicates that a nil *Tableau was passed.
	ErrNilTableau = errors.New("simplex: tableau is nil")

	// ErrNotPhaseOneOptimal is returned by MakePhaseTwo when its input is not
	// an optimal phase-one tableau with zero infeasibility.
	ErrNotPhaseOneOptimal = errors.New("simplex: phase-one tableau is not optimal and feasible")

	// ErrProblemMismatch is returned when a tableau does not belong to the problem.
	ErrProblemMismatch = errors.New("simplex: tableau does not match problem dimensions")

	// ErrBadBasis is returned by SetBasicVars/SetFreeVars for invalid index sets.
	ErrBadBasis = errors.New("simplex: invalid basic/free variable indices")

	// ErrPivotOutOfRange indicates a pivot outside the constraint block.
	ErrPivotOutOfRange = errors.New("simplex: pivot out of range")

	// ErrZeroPivot indicates a pivot on a zero entry.
	ErrZeroPivot = errors.New("simplex: pivot element is zero")

	// ErrInvalidPivot indicates a manual pivot that would leave the basis infeasible:
	// a non-positive entry or a row that does not attain the minimum ratio.
	ErrInvalidPivot = errors.New("simplex: pivot breaks the ratio test")
)

// ErrOutOfRange is the umbrella for navigation misuse on a Controller.
var ErrOutOfRange = errors.New("simplex: out of range")

var (
	// ErrEmptyHistory is returned when the controller has not been started.
	ErrEmptyHistory = errors.New("simplex: history is empty")

	// ErrNoNext is returned by Next after the sequence has terminated.
	ErrNoNext = errors.New("simplex: no next step")

	// ErrNoPrevious is returned by Previous on a single-snapshot history.
	ErrNoPrevious = errors.New("simplex: no previous step")

	// ErrNoSolution is returned by Controller.Solution while the sequence has
	// not ended, or when it ended in phase one without a phase-two tableau.
	ErrNoSolution = errors.New("simplex: no solution available")
)

func outOfRange(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrOutOfRange, cause)
}

func invalidArgument(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, lp.ErrInvalidArgument, cause)
}
