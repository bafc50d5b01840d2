// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

// Random returns a dense program with m rows and n variables,
//
//	max c·x  s.t.  A x ≤ b,  x ≥ 0,
//
// with every entry of c and A drawn from the configured range and
// b_i = n·hi·draw. Positive A bounds the region and the origin is feasible,
// so the result is always lp.Optimal.
//
// Errors: ErrTooSmall if m or n < MinRandom, ErrNeedRandSource without
// WithSeed or WithRand.
// Complexity: O(m·n) draws.
func Random[T any](f field.Field[T], m, n int, opts ...Option) (Instance[T], error) {
	if m < MinRandom || n < MinRandom {
		return Instance[T]{}, builderErrorf(MethodRandom, ErrTooSmall, "size must be >= %d, got %d×%d", MinRandom, m, n)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Instance[T]{}, builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	c := make([]T, n)
	for j := range c {
		c[j] = f.FromInt(cfg.draw())
	}
	a := make([][]T, m)
	b := make([]T, m)
	for i := range a {
		a[i] = make([]T, n)
		for j := range a[i] {
			a[i][j] = f.FromInt(cfg.draw())
		}
		b[i] = f.FromInt(int64(n) * cfg.hi * cfg.draw())
	}

	data, err := lp.NewProblemData(f, c, a, b)
	if err != nil {
		return Instance[T]{}, fmt.Errorf("%s: %w", MethodRandom, err)
	}

	return Instance[T]{
		Name: fmt.Sprintf("random-%dx%d", m, n),
		Data: data,
		Goal: lp.Maximize,
		Form: converters.Inequality,
	}, nil
}
