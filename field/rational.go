// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Rational is the exact field over *big.Rat.
//
// Every operation allocates its result and never touches its operands, so a
// *big.Rat handed out by this field may be shared between tableau snapshots.
// A nil *big.Rat is not a value of the field.
type Rational struct{}

var _ Field[*big.Rat] = Rational{}

func (Rational) Zero() *big.Rat { return new(big.Rat) }
func (Rational) One() *big.Rat { return big.NewRat(1, 1) }
func (Rational) FromInt(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }
func (Rational) FromFrac(n, d int64) *big.Rat {
	return big.NewRat(n, d)
}
func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rational) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }
func (Rational) Abs(a *big.Rat) *big.Rat { return new(big.Rat).Abs(a) }
func (Rational) Cmp(a, b *big.Rat) int { return a.Cmp(b) }
func (Rational) Sign(a *big.Rat) int { return a.Sign() }
func (Rational) IsZero(a *big.Rat) bool { return a.Sign() == 0 }
func (Rational) IsFinite(a *big.Rat) bool { return a != nil }
func (Rational) Kind() Kind { return KindRational }

// Float returns the nearest float64.
func (Rational) Float(a *big.Rat) float64 {
	v, _ := a.Float64()

	return v
}

// FromFloat embeds x exactly (every finite float64 is a dyadic rational).
func (Rational) FromFloat(x float64) (*big.Rat, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, ErrNotFinite
	}

	return new(big.Rat).SetFloat64(x), nil
}

// Format prints integers without a denominator and everything else as "p/q".
func (Rational) Format(a *big.Rat) string {
	if a == nil {
		return "<nil>"
	}

	return a.RatString()
}

// Parse accepts integers, decimals, exponents and "p/q" fractions.
func (Rational) Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	q, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return q, nil
}
