// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

// Controller turns the stateless Solver into a navigable sequence of
// tableau snapshots. It owns its problem data and history; every Next
// records at most one snapshot and every Previous removes one, so
// IterationsCount always equals ElementsCount()−1.
//
// A Controller is not safe for concurrent use.
type Controller[T any] struct {
	f      field.Field[T]
	data   *lp.ProblemData[T]
	goal   lp.Goal
	solver *Solver[T]

	history    []*Tableau[T]
	iterations int
	hasNext    bool
	changed    bool
	outcome    lp.SolutionType
}

// NewController returns an empty controller for data; call Start to begin.
//
// Errors: ErrNilProblem wrapped with lp.ErrInvalidArgument.
func NewController[T any](f field.Field[T], data *lp.ProblemData[T], goal lp.Goal, opts ...Option) (*Controller[T], error) {
	if data == nil {
		return nil, invalidArgument("NewController", ErrNilProblem)
	}

	return &Controller[T]{
		f:       f,
		data:    data,
		goal:    goal,
		solver:  NewSolver(f, opts...),
		outcome: lp.Incomplete,
	}, nil
}

// Problem returns the problem being solved.
func (c *Controller[T]) Problem() *lp.ProblemData[T] { return c.data }

// Goal returns the optimisation goal.
func (c *Controller[T]) Goal() lp.Goal { return c.goal }

// Start records the phase-one tableau if the history is empty. It is a
// no-op otherwise.
func (c *Controller[T]) Start() error {
	c.changed = false
	if len(c.history) > 0 {
		return nil
	}
	t, err := MakePhaseOne(c.f, c.data)
	if err != nil {
		return err
	}
	c.history = append(c.history, t)
	c.hasNext = true
	c.changed = true
	c.outcome = lp.Incomplete
	c.solver.opts.Logger.Debug("controller started", "rows", t.Rows(), "cols", t.Cols())

	return nil
}

// Current returns a copy of the most recent snapshot.
func (c *Controller[T]) Current() (*Tableau[T], error) {
	if len(c.history) == 0 {
		return nil, outOfRange("Current", ErrEmptyHistory)
	}

	return c.history[len(c.history)-1].Clone(), nil
}

// Pivot is a non-committing hint for the next automatic step on Current.
func (c *Controller[T]) Pivot() (Pivot, lp.SolutionType, error) {
	if len(c.history) == 0 {
		return NoPivot, lp.Unknown, outOfRange("Pivot", ErrEmptyHistory)
	}
	p, typ := c.solver.ComputePivot(c.history[len(c.history)-1])

	return p, typ, nil
}

// Next performs one step on a copy of Current, automatically when manual is
// nil and with the given pivot otherwise, then records the result according
// to transition. A phase-two tableau that is already optimal (or unbounded)
// ends the sequence as soon as it is recorded. An invalid manual pivot
// returns an error and leaves the controller untouched.
//
// Errors: ErrEmptyHistory and ErrNoNext (wrapped with ErrOutOfRange),
// pivot validation errors from Solver.IterateWith, and construction errors
// from MakePhaseTwo.
func (c *Controller[T]) Next(manual *Pivot) (Step[T], error) {
	if len(c.history) == 0 {
		return Step[T]{}, outOfRange("Next", ErrEmptyHistory)
	}
	if !c.hasNext {
		return Step[T]{}, outOfRange("Next", ErrNoNext)
	}

	cur := c.history[len(c.history)-1]
	var (
		step Step[T]
		err  error
	)
	if manual != nil {
		step, err = c.solver.IterateWith(cur, *manual)
	} else {
		step, err = c.solver.Iterate(cur)
	}
	if err != nil {
		return Step[T]{}, err
	}

	phaseOnePivots := step.Pivoted || c.phaseOneSnapshots() > 1
	act := transition(cur.Phase(), step.Type, step.Pivoted, phaseOnePivots)
	c.changed = false
	switch act {
	case actionPush:
		c.push(step.Tableau)
		c.outcome = lp.Incomplete
	case actionPushStop:
		c.push(step.Tableau)
		c.stop(step.Type)
	case actionPhaseTwo:
		p2, err := MakePhaseTwo(c.f, c.data, cur, c.goal)
		if err != nil {
			return Step[T]{}, err
		}
		c.push(p2)
		_, typ := c.solver.ComputePivot(p2)
		step = Step[T]{Tableau: p2, Type: typ, Pivot: NoPivot}
		if typ.IsTerminal() {
			c.stop(typ)
		} else {
			c.outcome = lp.Incomplete
		}
	case actionStop:
		c.stop(step.Type)
	}
	if c.hasNext && c.iterations >= c.solver.opts.MaxIterations {
		c.stop(lp.Incomplete)
	}
	c.solver.opts.Logger.Debug("controller next",
		"action", act,
		"type", step.Type,
		"iterations", c.iterations,
		"outcome", c.outcome,
	)
	step.Tableau = step.Tableau.Clone()

	return step, nil
}

func (c *Controller[T]) push(t *Tableau[T]) {
	c.history = append(c.history, t)
	c.iterations++
	c.changed = true
}

func (c *Controller[T]) stop(outcome lp.SolutionType) {
	c.hasNext = false
	c.outcome = outcome
}

func (c *Controller[T]) phaseOneSnapshots() int {
	n := 0
	for _, t := range c.history {
		if t.Phase() == PhaseOne {
			n++
		}
	}

	return n
}

// Previous drops the most recent snapshot and reopens the sequence.
//
// Errors: ErrEmptyHistory or ErrNoPrevious, wrapped with ErrOutOfRange.
func (c *Controller[T]) Previous() (*Tableau[T], error) {
	switch len(c.history) {
	case 0:
		return nil, outOfRange("Previous", ErrEmptyHistory)
	case 1:
		return nil, outOfRange("Previous", ErrNoPrevious)
	}
	c.history[len(c.history)-1] = nil
	c.history = c.history[:len(c.history)-1]
	c.iterations--
	c.hasNext = true
	c.changed = true
	c.outcome = lp.Incomplete

	return c.history[len(c.history)-1].Clone(), nil
}

// Reset clears the history; Start begins a new sequence.
func (c *Controller[T]) Reset() {
	c.history = nil
	c.iterations = 0
	c.hasNext = false
	c.changed = true
	c.outcome = lp.Incomplete
}

// HasNext reports whether Next may be called.
func (c *Controller[T]) HasNext() bool { return c.hasNext }

// HasPrevious reports whether Previous may be called.
func (c *Controller[T]) HasPrevious() bool { return len(c.history) > 1 }

// IsEmpty reports whether Start has not been called since creation or Reset.
func (c *Controller[T]) IsEmpty() bool { return len(c.history) == 0 }

// IterationsCount returns the number of recorded steps after the initial tableau.
func (c *Controller[T]) IterationsCount() int { return c.iterations }

// ElementsCount returns the number of snapshots.
func (c *Controller[T]) ElementsCount() int { return len(c.history) }

// StateChanged reports whether the last Start, Next, Previous or Reset
// modified the history.
func (c *Controller[T]) StateChanged() bool { return c.changed }

// Outcome returns lp.Incomplete while the sequence is open and the terminal
// classification once it has stopped.
func (c *Controller[T]) Outcome() lp.SolutionType { return c.outcome }

// History returns copies of all snapshots, oldest first.
func (c *Controller[T]) History() []*Tableau[T] {
	out := make([]*Tableau[T], len(c.history))
	for i, t := range c.history {
		out[i] = t.Clone()
	}

	return out
}

// Solution packages the terminal state of the sequence.
//
// Errors: ErrEmptyHistory (wrapped with ErrOutOfRange); ErrNoSolution while
// the sequence is open or when it stopped with an optimal phase-one tableau
// reached without any pivot.
func (c *Controller[T]) Solution() (lp.Solution[T], error) {
	if len(c.history) == 0 {
		return lp.Solution[T]{}, outOfRange("Solution", ErrEmptyHistory)
	}
	if c.hasNext {
		return lp.Solution[T]{}, ErrNoSolution
	}
	cur := c.history[len(c.history)-1]
	if cur.Phase() == PhaseOne && c.outcome == lp.Optimal {
		return lp.Solution[T]{}, ErrNoSolution
	}

	return c.solver.solution(cur, c.outcome, c.goal, c.iterations), nil
}
