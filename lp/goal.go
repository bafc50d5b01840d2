// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"strings"
)

// Goal selects the optimisation direction.
type Goal int

const (
	// Minimize is the default goal.
	Minimize Goal = iota
	// Maximize is solved internally as minimising the negated objective.
	Maximize
)

func (g Goal) String() string {
	switch g {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Goal(%d)", int(g))
	}
}

// ParseGoal accepts "min", "minimize", "max", "maximize" (case-insensitive);
// the empty string means Minimize.
func ParseGoal(s string) (Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "min", "minimize", "minimise":
		return Minimize, nil
	case "max", "maximize", "maximise":
		return Maximize, nil
	default:
		return Minimize, fmt.Errorf("%w: %q", ErrUnknownGoal, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Goal) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Goal) UnmarshalText(b []byte) error {
	v, err := ParseGoal(string(b))
	if err != nil {
		return err
	}
	*g = v

	return nil
}
