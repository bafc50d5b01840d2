// Package graphical solves two-variable linear programs geometrically.
//
// Every row A_i·x ≤ b_i and the bounds x1 ≥ 0, x2 ≥ 0 are boundary lines.
// Solve intersects every pair of lines, keeps the intersections that satisfy
// all constraints, orders them clockwise around their centroid and reads the
// optimum off the vertices. A recession ray along which the objective
// improves makes the problem unbounded.
//
// PlotData2D carries everything a plot needs: the polygon, the optimum (and
// every tied vertex when a whole edge is optimal), the objective gradient and
// its perpendicular level line, and the objective values at the corners of a
// padded bounding box for bilinear shading via Interpolate.
//
// Errors (sentinel):
//
//	– ErrNilProblem        if the problem is nil.
//	– ErrNotTwoDimensional if the problem does not have exactly two variables.
//
// Degenerate geometry (parallel lines, repeated vertices) is handled by
// skipping and deduplicating, never reported as an error.
package graphical
