// SPDX-License-Identifier: MIT

package graphical

import "math"

// DefaultPadding is the bounding-box padding as a fraction of its extent.
const DefaultPadding = 0.1

// Options configures Solve.
//
// Padding – fraction of the vertex extent added on each side of the bounding
// box; an axis with zero extent is padded by 1. Must be ≥ 0.
type Options struct {
	Padding float64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithPadding sets the bounding-box padding ratio. Panics on a negative or
// non-finite ratio.
func WithPadding(ratio float64) Option {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < 0 {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.Padding = ratio }
}

// DefaultOptions returns the defaults (padding 0.1).
func DefaultOptions() Options {
	return Options{Padding: DefaultPadding}
}
