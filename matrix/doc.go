// Package matrix provides a small dense matrix generic over a scalar field.
//
// What & Why:
//
//	Dense[T] stores r×c values of any field.Field[T] in a flat row-major slice.
//	The field travels with the matrix, so every kernel (MatVec, RREF, Solve)
//	uses the same arithmetic and equality policy as the caller: exact for
//	*big.Rat, ε-tolerant for float64.
//
// Contracts:
//
//   - Public indexers (At/Set) never panic; they return ErrOutOfRange.
//   - Kernels never mutate their operands and always return fresh storage.
//   - Errors are sentinels matched with errors.Is and wrapped with an
//     operation tag ("Solve: matrix: singular matrix").
//
// Complexity:
//
//	At/Set are O(1); Clone, Equal and String are O(r*c); RREF and Solve are
//	O(r*c*min(r,c)) field operations.
package matrix
