// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lplab/lp"
)

// Phase identifies which objective a tableau's last row carries.
type Phase int

const (
	// PhaseOne minimises the sum of artificial variables.
	PhaseOne Phase = iota + 1
	// PhaseTwo minimises the real objective (negated for Maximize).
	PhaseTwo
)

func (p Phase) String() string {
	switch p {
	case PhaseOne:
		return "phase 1"
	case PhaseTwo:
		return "phase 2"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Pivot addresses one entry of the constraint block: Row in [0, m),
// Col in [0, k). A negative Row means "no row" (e.g. an unbounded column).
type Pivot struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoPivot is returned where no pivot exists.
var NoPivot = Pivot{Row: -1, Col: -1}

func (p Pivot) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Step is the result of one iteration: the resulting tableau, its
// classification and the pivot applied (Pivoted false means Tableau is an
// unchanged copy of the input).
type Step[T any] struct {
	Tableau *Tableau[T]
	Type    lp.SolutionType
	Pivot   Pivot
	Pivoted bool
}

// DefaultMaxIterations caps pivots per solve.
const DefaultMaxIterations = 48

const panicMaxIterations = "simplex: WithMaxIterations: n must be >= 1"

// Options configures a Solver (and the Controller that embeds one).
//
// MaxIterations – pivots allowed before a solve reports lp.Incomplete. Must be ≥ 1.
// Logger        – receives debug records per pivot; nil selects a discard logger.
type Options struct {
	MaxIterations int
	Logger        *log.Logger
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaxIterations sets the iteration cap. Panics on n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithLogger routes debug records to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults: 48 iterations, discard logger.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Logger:        log.NewWithOptions(io.Discard, log.Options{}),
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return o
}
