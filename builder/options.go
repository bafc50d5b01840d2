// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes a constructor.
type Option func(*config)

// WithRand provides the random source for Random. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh source; equal seeds give equal instances.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRange sets the inclusive range [lo, hi] of generated coefficients.
// Panics unless 1 ≤ lo ≤ hi.
func WithRange(lo, hi int64) Option {
	if lo < 1 || hi < lo {
		panic("builder: WithRange requires 1 <= lo <= hi")
	}
	return func(c *config) { c.lo, c.hi = lo, hi }
}
