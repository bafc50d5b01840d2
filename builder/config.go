// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Method names used as error prefixes.
const (
	MethodKleeMinty      = "KleeMinty"
	MethodTransportation = "Transportation"
	MethodAssignment     = "Assignment"
	MethodRandom         = "Random"
)

// Size limits.
const (
	MinKleeMinty = 1
	// MaxKleeMinty keeps 5^n inside int64.
	MaxKleeMinty = 27
	MinRandom    = 1
)

const (
	defaultLo = int64(1)
	defaultHi = int64(9)
)

type config struct {
	rng    *rand.Rand
	lo, hi int64
}

func newConfig(opts ...Option) config {
	cfg := config{lo: defaultLo, hi: defaultHi}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draw returns a uniform integer in [lo, hi].
func (c config) draw() int64 {
	return c.lo + c.rng.Int63n(c.hi-c.lo+1)
}
