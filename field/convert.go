// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
)

// Converter maps a scalar of one field into another. It is the only sanctioned
// way for values to cross field boundaries.
type Converter[S, D any] func(S) (D, error)

// Identity returns the no-op converter.
func Identity[T any]() Converter[T, T] {
	return func(v T) (T, error) { return v, nil }
}

// RealToRational converts through the continued-fraction approximation z.
func RealToRational(z Rationalizer) Converter[float64, *big.Rat] {
	return func(x float64) (*big.Rat, error) {
		q, err := z.Approximate(x)
		if err != nil {
			return nil, fmt.Errorf("RealToRational(%g): %w", x, err)
		}

		return q, nil
	}
}

// ExactRational embeds a float64 exactly (the binary fraction it stores).
func ExactRational() Converter[float64, *big.Rat] {
	return func(x float64) (*big.Rat, error) {
		return Rational{}.FromFloat(x)
	}
}

// RationalToReal rounds to the nearest float64.
func RationalToReal() Converter[*big.Rat, float64] {
	return func(q *big.Rat) (float64, error) {
		if q == nil {
			return 0, ErrNotFinite
		}
		v, _ := q.Float64()

		return v, nil
	}
}

// ConvertAll applies conv to each element of xs.
func ConvertAll[S, D any](xs []S, conv Converter[S, D]) ([]D, error) {
	out := make([]D, len(xs))
	for i, x := range xs {
		v, err := conv(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
