// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"strings"
)

// Kind names a concrete numeric field.
type Kind int

const (
	// KindReal is the float64 field with ε-tolerant comparisons.
	KindReal Kind = iota + 1
	// KindRational is the exact big.Rat field.
	KindRational
)

// String returns the lower-case name used in configs and problem documents.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindRational:
		return "rational"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "real" or "rational" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "real", "float", "float64":
		return KindReal, nil
	case "rational", "exact":
		return KindRational, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Field is the scalar arithmetic the tableau, solvers and geometry are written against.
//
// Implementations must be value-semantic: no operation may mutate its
// arguments, so that tableau snapshots can share scalars safely.
// Sign, Cmp and IsZero carry the field's equality policy (exact for
// Rational, ε-tolerant for Real); algorithms never compare T values directly.
type Field[T any] interface {
	Zero() T
	One() T
	FromInt(v int64) T
	// FromFrac returns num/den; den must be non-zero.
	FromFrac(num, den int64) T
	// FromFloat embeds a float64 value. Rational performs an exact embedding.
	FromFloat(x float64) (T, error)
	// Float projects a value onto float64 (lossy for Rational).
	Float(a T) float64

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Div returns a/b; callers guard b with IsZero.
	Div(a, b T) T
	Neg(a T) T
	Abs(a T) T

	// Cmp returns -1, 0 or +1 under the field's equality policy.
	Cmp(a, b T) int
	// Sign returns -1, 0 or +1 under the field's equality policy.
	Sign(a T) int
	IsZero(a T) bool
	IsFinite(a T) bool

	Parse(s string) (T, error)
	Format(a T) string
	Kind() Kind
}

// Sum folds Add over xs starting from Zero.
func Sum[T any](f Field[T], xs ...T) T {
	acc := f.Zero()
	for _, x := range xs {
		acc = f.Add(acc, x)
	}

	return acc
}

// Min returns the smaller of a and b under f's ordering (a on ties).
func Min[T any](f Field[T], a, b T) T {
	if f.Cmp(b, a) < 0 {
		return b
	}

	return a
}

// Max returns the larger of a and b under f's ordering (a on ties).
func Max[T any](f Field[T], a, b T) T {
	if f.Cmp(b, a) > 0 {
		return b
	}

	return a
}

// FormatAll formats a vector as "[a, b, c]".
func FormatAll[T any](f Field[T], xs []T) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Format(x))
	}
	sb.WriteString("]")

	return sb.String()
}
