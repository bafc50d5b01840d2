// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/katalvlaran/lplab/lp"
)

// Solve runs both phases on data to completion.
//
// State machine:
//
//	Start → (phase-1 iterate)* → phase-1 optimal → MakePhaseTwo →
//	(phase-2 iterate)* → {Optimal | Unbounded}
//
// Phase one may end in lp.Inconsistent. Reaching MaxIterations pivots ends
// with lp.Incomplete. Unlike Controller, Solve builds phase two even when
// phase one needed no pivot.
//
// The returned Solution carries the extreme point and value of the last
// phase-two tableau (Optimal, Unbounded, or Incomplete in phase two); in
// every other case ExtremePoint is nil.
//
// Errors: construction failures from MakePhaseOne/MakePhaseTwo.
func (s *Solver[T]) Solve(data *lp.ProblemData[T], goal lp.Goal) (lp.Solution[T], error) {
	log := s.opts.Logger
	t, err := MakePhaseOne(s.f, data)
	if err != nil {
		return lp.Solution[T]{}, err
	}

	iterations := 0
	for {
		if iterations >= s.opts.MaxIterations {
			if _, typ := s.ComputePivot(t); typ == lp.Incomplete {
				log.Debug("iteration cap reached", "phase", t.Phase(), "iterations", iterations)
				return s.solution(t, lp.Incomplete, goal, iterations), nil
			}
		}

		step, err := s.Iterate(t)
		if err != nil {
			return lp.Solution[T]{}, err
		}
		t = step.Tableau
		if step.Pivoted {
			iterations++
		}

		switch {
		case step.Type == lp.Incomplete:
			continue
		case step.Type == lp.Optimal && t.Phase() == PhaseOne:
			log.Debug("phase one optimal", "iterations", iterations)
			if t, err = MakePhaseTwo(s.f, data, t, goal); err != nil {
				return lp.Solution[T]{}, err
			}
			continue
		}

		log.Debug("solve finished", "phase", t.Phase(), "type", step.Type, "iterations", iterations)
		return s.solution(t, step.Type, goal, iterations), nil
	}
}

// solution packages t as an lp.Solution.
func (s *Solver[T]) solution(t *Tableau[T], typ lp.SolutionType, goal lp.Goal, iterations int) lp.Solution[T] {
	sol := lp.Solution[T]{Type: typ, ExtremeValue: s.f.Zero(), Iterations: iterations}
	if t.Phase() == PhaseTwo {
		sol.ExtremePoint = t.ExtremePoint()
		sol.ExtremeValue = t.ExtremeValue(goal)
	}

	return sol
}
