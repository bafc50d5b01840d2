// Package field provides the numeric fields the solvers are parametrised by.
//
// Every algorithm in lplab is written once against the Field[T] interface and
// instantiated for two concrete fields:
//
//   - Real: float64 values with an ε-tolerant sign/compare policy.
//   - Rational: exact *big.Rat values; comparisons are exact.
//
// Values crossing from one field into the other go through a Converter:
// either the continued-fraction approximation (Rationalize, Rationalizer)
// or an exact embedding (ExactRational). Nothing truncates silently.
//
// Quick start:
//
//	var f field.Rational
//	x, _ := f.Parse("3/2")
//	y := f.Mul(x, f.FromInt(4)) // 6
//
//	num, den, _ := field.Rationalize(0.5, 1e-6, 22, 100) // (1, 2)
package field
