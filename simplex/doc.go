// Package simplex implements the two-phase Simplex method on a compact
// tableau, together with a navigable history of its iterations.
//
// The package is split the way the algorithm is:
//
//   - Tableau: the (m+1)×(k+1) matrix of a basis plus its bookkeeping. Only
//     non-basic columns are stored; the last row holds the reduced costs and
//     the last column the right-hand side. The objective-row RHS stores −z.
//     MakePhaseOne and MakePhaseTwo are the only constructors.
//   - Solver: a stateless pivoting algorithm (Dantzig's column rule, minimum
//     ratio row with Bland's lowest-index tie-break, Bland's column rule
//     after a degenerate pivot) that turns a tableau into a new one plus an
//     lp.SolutionType.
//   - Controller: owns the problem and an append-only slice of snapshots and
//     lets a caller walk forward (automatic or manual pivots) and backward.
//
// Phase one minimises the sum of one artificial variable per constraint row
// (rows with a negative right-hand side are sign-flipped first). Phase two
// pivots out degenerate artificial variables, drops their columns and
// rebuilds the objective row from the real costs; Maximize is solved as
// minimising −cᵀx.
//
// Options:
//
//	– WithMaxIterations: cap on pivots per solve (default 48).
//	– WithLogger:        charmbracelet/log logger for debug records (default discards).
//
// Errors (sentinel):
//
//	– ErrNotPhaseOneOptimal, ErrProblemMismatch wrap lp.ErrInvalidArgument.
//	– ErrPivotOutOfRange, ErrZeroPivot, ErrInvalidPivot for pivot requests.
//	– ErrEmptyHistory, ErrNoNext, ErrNoPrevious wrap ErrOutOfRange.
//
// Complexity:
//
//	– Pivot: O(m·k) field operations.
//	– Solve: at most MaxIterations pivots.
package simplex
