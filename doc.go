// Package lplab is a small laboratory for linear programming: solve a
// program with the two-phase simplex method, watch every tableau on the
// way, step back and forth, pivot by hand, or solve a two-variable program
// on the plane.
//
// 🚀 What is lplab?
//
//	A generic toolkit that works the same over two number fields:
//		• field/      – Field[T] arithmetic for float64 (with ε) and exact *big.Rat
//		• matrix/     – dense matrices and small linear systems over any field
//		• lp/         – problem data, goals and solution classification
//		• simplex/    – compact tableau, two-phase solver, stepping controller
//		• graphical/  – vertex enumeration and plot geometry for two variables
//		• converters/ – JSON, YAML and TOML problem documents
//		• render/     – terminal rendering of tableaux and results
//
// ✨ Why lplab?
//
//   - Exact by default – rational arithmetic gives the textbook tableaux
//   - Step by step – every pivot is kept, so history can be replayed
//   - Same code, two fields – switch to float64 for speed
//
// Quick example (min −2x1 − x2 − 3x3 − x4 in canonical form):
//
//	f := field.Rational{}
//	data, _ := lp.NewProblemData(f, c, A, b)
//	sol, _ := simplex.NewSolver(f).Solve(data, lp.Minimize)
//	fmt.Println(sol.Type, field.FormatAll(f, sol.ExtremePoint))
//	// optimal [2, 1, 0, 0]
//
// The lplab command (cmd/lplab) wraps all of this in a CLI, an interactive
// stepper and an HTTP API:
//
//	go install github.com/katalvlaran/lplab/cmd/lplab@latest
package lplab
