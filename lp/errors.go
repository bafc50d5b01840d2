// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella for construction failures. Every more
// specific construction error below is returned wrapped together with it, so
// callers may match either one with errors.Is.
var ErrInvalidArgument = errors.New("lp: invalid argument")

var (
	// ErrEmptyProblem is returned when there are no variables or no constraints.
	ErrEmptyProblem = errors.New("lp: problem has no variables or no constraints")

	// ErrDimensionMismatch is returned for ragged rows or |c| != n or |b| != m.
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrNotFinite is returned when a coefficient is NaN or ±Inf.
	ErrNotFinite = errors.New("lp: coefficient is not finite")

	// ErrUnknownGoal is returned by ParseGoal.
	ErrUnknownGoal = errors.New("lp: unknown optimization goal")

	// ErrUnknownSolutionType is returned by ParseSolutionType.
	ErrUnknownSolutionType = errors.New("lp: unknown solution type")
)

// invalid wraps both ErrInvalidArgument and the specific cause.
func invalid(ctx string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, ctx, cause)
}
