// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"strings"
)

// SolutionType classifies the result of a solve attempt. It is a domain
// outcome, not an error.
type SolutionType int

const (
	// Incomplete means one more pivot is needed; the normal in-progress state.
	Incomplete SolutionType = iota
	// Optimal means an optimal vertex was reached.
	Optimal
	// Unbounded means the objective improves without limit.
	Unbounded
	// Inconsistent means the constraints admit no feasible point.
	Inconsistent
	// Unknown flags an unclassifiable internal state. It indicates a defect.
	Unknown
)

var solutionTypeNames = [...]string{
	Incomplete:   "incomplete",
	Optimal:      "optimal",
	Unbounded:    "unbounded",
	Inconsistent: "inconsistent",
	Unknown:      "unknown",
}

func (s SolutionType) String() string {
	if s < 0 || int(s) >= len(solutionTypeNames) {
		return fmt.Sprintf("SolutionType(%d)", int(s))
	}

	return solutionTypeNames[s]
}

// IsTerminal reports whether no further iteration can change the outcome.
func (s SolutionType) IsTerminal() bool { return s != Incomplete }

// ParseSolutionType is the inverse of String.
func ParseSolutionType(str string) (SolutionType, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	for i, name := range solutionTypeNames {
		if name == str {
			return SolutionType(i), nil
		}
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownSolutionType, str)
}

// MarshalText implements encoding.TextMarshaler.
func (s SolutionType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SolutionType) UnmarshalText(b []byte) error {
	v, err := ParseSolutionType(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Solution is the result of a completed algebraic solve.
// ExtremePoint and ExtremeValue hold the optimum when Type is Optimal. For
// Unbounded and Incomplete they describe the last feasible vertex reached, or
// ExtremePoint is nil when no feasible vertex was reached.
type Solution[T any] struct {
	Type         SolutionType
	ExtremePoint []T
	ExtremeValue T
	Iterations   int
}

// Truncate returns a copy keeping only the first n coordinates of the point,
// which drops slack variables appended by WithSlacks.
func (s Solution[T]) Truncate(n int) Solution[T] {
	out := s
	if n < len(s.ExtremePoint) {
		out.ExtremePoint = append([]T(nil), s.ExtremePoint[:n]...)
	} else {
		out.ExtremePoint = append([]T(nil), s.ExtremePoint...)
	}

	return out
}
