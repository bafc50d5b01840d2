// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"math/big"
)

// Rationalize defaults.
const (
	// DefaultRationalizeEpsilon is the absolute error at which the expansion stops.
	DefaultRationalizeEpsilon = 1e-8

	// DefaultRationalizeIterations caps the number of continued-fraction terms.
	DefaultRationalizeIterations = 22

	// DefaultMaxDenominator leaves the denominator bounded only by int64.
	DefaultMaxDenominator int64 = math.MaxInt64
)

// int64Limit is the first float64 value that no longer fits into int64.
const int64Limit = float64(math.MaxInt64)

// Rationalize approximates x by num/den using its continued-fraction expansion.
//
// Implementation:
//   - Stage 1: validate inputs; integral x (within eps) returns (⌊x⌋, 1).
//   - Stage 2: walk the expansion r_{k+1} = 1/(r_k − a_k), a_k = ⌊r_k⌋ and build
//     convergents p_k = a_k·p_{k−1} + p_{k−2}, q_k = a_k·q_{k−1} + q_{k−2}.
//   - Stage 3: stop when |p/q − x| <= eps, after maxIter terms, when the
//     expansion terminates, or when the next denominator would exceed maxDen
//     (or overflow int64). In the last case the previous convergent is kept.
//
// The denominator of the result is always in [1, maxDen] and the sign lives
// in the numerator.
//
// Errors: ErrNotFinite, ErrBadTolerance, ErrBadIterations, ErrBadDenominator, ErrOverflow.
//
// Complexity: O(maxIter) time, O(1) space.
func Rationalize(x, eps float64, maxIter int, maxDen int64) (num, den int64, err error) {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return 0, 0, ErrNotFinite
	case math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0:
		return 0, 0, ErrBadTolerance
	case maxIter < 0:
		return 0, 0, ErrBadIterations
	case maxDen < 1:
		return 0, 0, ErrBadDenominator
	case math.Abs(x) >= int64Limit:
		return 0, 0, fmt.Errorf("%w: %g", ErrOverflow, x)
	}

	r := x
	a := math.Floor(r)
	if math.Abs(a-x) <= eps {
		return int64(a), 1, nil
	}

	var (
		pPrev, qPrev int64 = 1, 0
		p, q               = int64(a), int64(1)
	)
	for k := 0; k < maxIter; k++ {
		frac := r - a
		if frac == 0 {
			break // expansion terminated: p/q == x in float64
		}
		r = 1 / frac
		if r >= int64Limit {
			break
		}
		a = math.Floor(r)
		ak := int64(a)

		// next q = ak*q + qPrev must stay within maxDen
		if ak > (maxDen-qPrev)/q {
			break
		}
		if math.Abs(float64(ak)*float64(p)) >= int64Limit {
			break
		}
		pNext := ak*p + pPrev
		qNext := ak*q + qPrev

		pPrev, qPrev = p, q
		p, q = pNext, qNext

		if math.Abs(float64(p)/float64(q)-x) <= eps {
			break
		}
	}

	return p, q, nil
}

// Rationalizer bundles the Rationalize settings used when a float value has
// to enter the rational field.
type Rationalizer struct {
	Eps            float64
	MaxIterations  int
	MaxDenominator int64
}

// DefaultRationalizer returns the package defaults.
func DefaultRationalizer() Rationalizer {
	return Rationalizer{
		Eps:            DefaultRationalizeEpsilon,
		MaxIterations:  DefaultRationalizeIterations,
		MaxDenominator: DefaultMaxDenominator,
	}
}

// Approximate returns the rational approximation of x as a *big.Rat.
func (z Rationalizer) Approximate(x float64) (*big.Rat, error) {
	num, den, err := Rationalize(x, z.Eps, z.MaxIterations, z.MaxDenominator)
	if err != nil {
		return nil, err
	}

	return big.NewRat(num, den), nil
}
