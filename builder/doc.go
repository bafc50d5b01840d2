// SPDX-License-Identifier: MIT

// Package builder constructs linear programs with a known shape: textbook
// families whose optimum is known in closed form, and seeded random
// programs for cross-checking solvers.
//
// Every constructor is generic over field.Field[T] and returns an
// Instance[T] carrying the problem data, its goal and the form its rows are
// written in, so it can be fed to simplex.Solver or graphical.Solve as is,
// or saved through converters:
//
//	inst, _ := builder.KleeMinty(field.Rational{}, 3)
//	_ = converters.WriteFile("km3.yaml", inst.Document())
//
// Families:
//
//   - KleeMinty:      the n-dimensional Klee–Minty cube (inequality form).
//   - Transportation: balanced transportation problem (canonical form).
//   - Assignment:     n×n assignment problem (canonical form).
//   - Random:         dense positive program, always feasible and bounded.
//
// Options follow the functional style: WithSeed or WithRand select the
// random source, WithRange bounds the generated integers. Option
// constructors panic on meaningless values; constructors themselves only
// return errors wrapping the sentinels in errors.go.
package builder
