// Package lp holds the plain data that flows in and out of the solvers:
// the immutable ProblemData of one linear program, the optimisation Goal,
// the SolutionType classification and the Solution value.
//
// The algebraic solvers read ProblemData in canonical form
//
//	minimize / maximize  cᵀx   subject to   A x = b,  x ≥ 0
//
// and WithSlacks turns the inequality reading A x ≤ b into that form by
// appending one slack column per row. The graphical solver reads the rows
// as half-planes A_i·x ≤ b_i directly.
//
// Every value is generic over a scalar field (see package field); values
// cross fields only through ConvertProblem with an explicit converter.
package lp
