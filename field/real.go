// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// DefaultEpsilon is the tolerance a zero-value Real uses.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "field: NewReal: eps must be finite, non-negative"

// Real is the float64 field. Values whose magnitude is at most Eps count as zero.
// The zero value uses DefaultEpsilon.
type Real struct {
	Eps float64
}

var _ Field[float64] = Real{}

// NewReal returns a Real with tolerance eps. It panics on a negative or non-finite eps.
func NewReal(eps float64) Real {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return Real{Eps: eps}
}

func (r Real) eps() float64 {
	if r.Eps == 0 {
		return DefaultEpsilon
	}

	return r.Eps
}

// Epsilon returns the effective tolerance.
func (r Real) Epsilon() float64 { return r.eps() }

func (Real) Zero() float64 { return 0 }
func (Real) One() float64 { return 1 }
func (Real) FromInt(v int64) float64 { return float64(v) }
func (Real) FromFrac(n, d int64) float64 { return float64(n) / float64(d) }
func (Real) Float(a float64) float64 { return a }
func (Real) Add(a, b float64) float64 { return a + b }
func (Real) Sub(a, b float64) float64 { return a - b }
func (Real) Mul(a, b float64) float64 { return a * b }
func (Real) Div(a, b float64) float64 { return a / b }
func (Real) Neg(a float64) float64 { return -a }
func (Real) Abs(a float64) float64 { return math.Abs(a) }
func (Real) IsFinite(a float64) bool { return !math.IsNaN(a) && !math.IsInf(a, 0) }
func (Real) Kind() Kind { return KindReal }
func (r Real) IsZero(a float64) bool { return math.Abs(a) <= r.eps() }
func (r Real) Cmp(a, b float64) int { return r.Sign(a - b) }
func (Real) Format(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }

// FromFloat rejects NaN and ±Inf.
func (Real) FromFloat(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrNotFinite
	}

	return x, nil
}

// Sign returns 0 for |a| <= Eps.
func (r Real) Sign(a float64) int {
	switch {
	case a > r.eps():
		return 1
	case a < -r.eps():
		return -1
	default:
		return 0
	}
}

// Parse accepts anything strconv.ParseFloat does plus "p/q" fractions.
func (Real) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		q, ok := new(big.Rat).SetString(s)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrParse, s)
		}
		v, _ := q.Float64()

		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}

	return v, nil
}
