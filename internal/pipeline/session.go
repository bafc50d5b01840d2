package pipeline

import (
	"math/big"
	"strconv"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/render"
	"github.com/katalvlaran/lplab/simplex"
)

// Session navigates the simplex iterations of one request. Implementations
// are not safe for concurrent use.
type Session interface {
	// State describes the current snapshot.
	State() (StateView, error)
	// Next steps forward, automatically when manual is nil.
	Next(manual *simplex.Pivot) (StateView, error)
	// Previous steps back one snapshot.
	Previous() (StateView, error)
	// Reset starts over from the first tableau.
	Reset() (StateView, error)
	// Solution reports the outcome once the sequence has stopped.
	Solution() (SolveResult, error)
}

// NewSession builds a started session for req.
func (r *Runner) NewSession(req Request) (Session, error) {
	if req.Kind == field.KindReal {
		return newSession[float64](r, r.cfg.Real(), req)
	}

	return newSession[*big.Rat](r, field.Rational{}, req)
}

type session[T any] struct {
	f    field.Field[T]
	goal lp.Goal
	ctl  *simplex.Controller[T]
}

func newSession[T any](r *Runner, f field.Field[T], req Request) (*session[T], error) {
	data, err := problem(f, req, true)
	if err != nil {
		return nil, err
	}
	ctl, err := simplex.NewController(f, data, req.Goal, r.simplexOptions()...)
	if err != nil {
		return nil, err
	}
	if err := ctl.Start(); err != nil {
		return nil, err
	}

	return &session[T]{f: f, goal: req.Goal, ctl: ctl}, nil
}

func (s *session[T]) State() (StateView, error) {
	cur, err := s.ctl.Current()
	if err != nil {
		return StateView{}, err
	}
	v := StateView{
		Tableau:     tableauView(cur),
		Iterations:  s.ctl.IterationsCount(),
		HasNext:     s.ctl.HasNext(),
		HasPrevious: s.ctl.HasPrevious(),
		Changed:     s.ctl.StateChanged(),
		Outcome:     s.ctl.Outcome(),
	}
	if v.HasNext {
		if p, typ, err := s.ctl.Pivot(); err == nil && typ == lp.Incomplete {
			v.Hint = &p
		}
	}
	// The upcoming pivot is highlighted while the sequence is open.
	hl := simplex.NoPivot
	if v.Hint != nil {
		hl = *v.Hint
	}
	title := render.StyleTitle.Render("iteration "+strconv.Itoa(v.Iterations)) + "  " + render.Status(v.Outcome)
	v.Text = title + "\n" + render.Tableau(cur, hl)

	return v, nil
}

func (s *session[T]) Next(manual *simplex.Pivot) (StateView, error) {
	if _, err := s.ctl.Next(manual); err != nil {
		return StateView{}, err
	}

	return s.State()
}

func (s *session[T]) Previous() (StateView, error) {
	if _, err := s.ctl.Previous(); err != nil {
		return StateView{}, err
	}
	return s.State()
}

func (s *session[T]) Reset() (StateView, error) {
	s.ctl.Reset()
	if err := s.ctl.Start(); err != nil {
		return StateView{}, err
	}
	return s.State()
}

func (s *session[T]) Solution() (SolveResult, error) {
	sol, err := s.ctl.Solution()
	if err != nil {
		return SolveResult{}, err
	}
	res := solveResult(s.f, s.goal, sol)
	res.Text = render.Solution(s.f, sol)

	return res, nil
}
