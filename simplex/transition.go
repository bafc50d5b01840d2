// SPDX-License-Identifier: MIT

package simplex

import "github.com/katalvlaran/lplab/lp"

// action is what the controller does with a finished step.
type action int

const (
	// actionPush records the step's tableau and keeps the sequence open.
	actionPush action = iota
	// actionPushStop records the step's tableau and ends the sequence.
	actionPushStop
	// actionPhaseTwo records the phase-two tableau built from the current one.
	actionPhaseTwo
	// actionStop ends the sequence without recording anything.
	actionStop
)

func (a action) String() string {
	switch a {
	case actionPush:
		return "push"
	case actionPushStop:
		return "push+stop"
	case actionPhaseTwo:
		return "phase-two"
	default:
		return "stop"
	}
}

// transition maps the outcome of one step onto the controller action.
//
// pivoted tells whether the step produced a new tableau; phaseOnePivots
// whether phase one has performed at least one pivot so far (this step
// included). Each Next records at most one snapshot, so a pivot that makes
// phase one optimal is recorded first and phase two is built on the
// following Next.
//
//	phase  type          pivoted  phaseOnePivots  → action
//	any    Incomplete    -        -               → push
//	1      Optimal       yes      -               → push
//	1      Optimal       no       yes             → phase-two
//	1      Optimal       no       no              → stop (zero-iteration phase one)
//	2      Optimal       yes      -               → push+stop
//	any    Inconsistent  yes      -               → push+stop
//	any    other         -        -               → stop
func transition(phase Phase, typ lp.SolutionType, pivoted, phaseOnePivots bool) action {
	switch typ {
	case lp.Incomplete:
		return actionPush
	case lp.Optimal:
		switch {
		case phase == PhaseOne && pivoted:
			return actionPush
		case phase == PhaseOne && phaseOnePivots:
			return actionPhaseTwo
		case phase == PhaseTwo && pivoted:
			return actionPushStop
		}
	case lp.Inconsistent:
		if pivoted {
			return actionPushStop
		}
	}

	return actionStop
}
