package pipeline

import (
	"context"
	"errors"
	"math/big"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/graphical"
	"github.com/katalvlaran/lplab/internal/config"
	"github.com/katalvlaran/lplab/internal/verify"
	"github.com/katalvlaran/lplab/render"
	"github.com/katalvlaran/lplab/simplex"
)

// Runner executes requests with one configuration.
type Runner struct {
	cfg    config.Config
	logger *log.Logger
}

// NewRunner returns a Runner; a nil logger discards.
func NewRunner(cfg config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = simplex.DefaultOptions().Logger
	}

	return &Runner{cfg: cfg, logger: logger}
}

// Config returns the runner's configuration.
func (r *Runner) Config() config.Config { return r.cfg }

func (r *Runner) simplexOptions() []simplex.Option {
	return []simplex.Option{
		simplex.WithMaxIterations(r.cfg.MaxIterations),
		simplex.WithLogger(r.logger),
	}
}

// Solve runs the two-phase simplex method on req.
func (r *Runner) Solve(ctx context.Context, req Request) (SolveResult, error) {
	if err := ctx.Err(); err != nil {
		return SolveResult{}, err
	}
	if req.Kind == field.KindReal {
		return solve[float64](r, r.cfg.Real(), req)
	}

	return solve[*big.Rat](r, field.Rational{}, req)
}

func solve[T any](r *Runner, f field.Field[T], req Request) (SolveResult, error) {
	orig, err := problem(f, req, false)
	if err != nil {
		return SolveResult{}, err
	}
	data := orig
	if req.Form == converters.Inequality {
		data = orig.WithSlacks()
	}
	sol, err := simplex.NewSolver(f, r.simplexOptions()...).Solve(data, req.Goal)
	if err != nil {
		return SolveResult{}, err
	}
	r.logger.Debug("solved", "field", f.Kind(), "type", sol.Type, "iterations", sol.Iterations)

	res := solveResult(f, req.Goal, sol)
	if req.Verify {
		check := verify.Check[T]
		if req.Form == converters.Inequality {
			data, check = orig, verify.CheckInequality[T]
		}
		_, err := check(data, req.Goal, sol, verify.DefaultTolerance)
		switch {
		case err == nil:
			res.Verified = true
		case errors.Is(err, verify.ErrUnsupported):
			r.logger.Warn("reference check skipped", "err", err)
		default:
			return SolveResult{}, err
		}
	}
	res.Text = render.Solution(f, sol)

	return res, nil
}

// Graph runs the graphical method; the document must have two variables and
// its rows are read as A x ≤ b whatever its form.
func (r *Runner) Graph(ctx context.Context, req Request) (PlotResult, error) {
	if err := ctx.Err(); err != nil {
		return PlotResult{}, err
	}
	if req.Kind == field.KindReal {
		return graph[float64](r, r.cfg.Real(), req)
	}

	return graph[*big.Rat](r, field.Rational{}, req)
}

func graph[T any](r *Runner, f field.Field[T], req Request) (PlotResult, error) {
	data, err := problem(f, req, false)
	if err != nil {
		return PlotResult{}, err
	}
	plot, typ, err := graphical.Solve(f, data, req.Goal, graphical.WithPadding(r.cfg.Graphical.Padding))
	if err != nil {
		return PlotResult{}, err
	}
	r.logger.Debug("graphical solve", "field", f.Kind(), "type", typ, "vertices", len(plot.Vertices))

	return PlotResult{
		Field: f.Kind().String(),
		Goal:  req.Goal,
		Type:  typ,
		Plot:  formatPlot(f, plot, typ),
		Text:  render.Plot(f, plot, typ),
	}, nil
}

// StepsResult is every snapshot of an automatic run.
type StepsResult struct {
	Steps    []StateView  `json:"steps"`
	Solution *SolveResult `json:"solution,omitempty"`
}

// Steps drives a controller from the first tableau until it stops.
func (r *Runner) Steps(ctx context.Context, req Request) (StepsResult, error) {
	s, err := r.NewSession(req)
	if err != nil {
		return StepsResult{}, err
	}
	st, err := s.State()
	if err != nil {
		return StepsResult{}, err
	}
	out := StepsResult{Steps: []StateView{st}}
	for st.HasNext {
		if err := ctx.Err(); err != nil {
			return StepsResult{}, err
		}
		if st, err = s.Next(nil); err != nil {
			return StepsResult{}, err
		}
		if st.Changed {
			out.Steps = append(out.Steps, st)
		}
	}
	if sol, err := s.Solution(); err == nil {
		out.Solution = &sol
	} else if !errors.Is(err, simplex.ErrNoSolution) {
		return StepsResult{}, err
	}

	return out, nil
}

// RationalizeResult is a continued-fraction approximation.
type RationalizeResult struct {
	Input float64 `json:"input"`
	Num   int64   `json:"num"`
	Den   int64   `json:"den"`
	Value string  `json:"value"`
}

// Rationalize approximates x with z, falling back to the configured settings
// for zero-valued entries of z.
func (r *Runner) Rationalize(x float64, z field.Rationalizer) (RationalizeResult, error) {
	def := r.cfg.Rationalizer()
	if z.Eps == 0 {
		z.Eps = def.Eps
	}
	if z.MaxIterations == 0 {
		z.MaxIterations = def.MaxIterations
	}
	if z.MaxDenominator == 0 {
		z.MaxDenominator = def.MaxDenominator
	}
	num, den, err := field.Rationalize(x, z.Eps, z.MaxIterations, z.MaxDenominator)
	if err != nil {
		return RationalizeResult{}, err
	}

	return RationalizeResult{Input: x, Num: num, Den: den, Value: big.NewRat(num, den).RatString()}, nil
}
