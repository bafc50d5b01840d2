// SPDX-License-Identifier: MIT

package graphical

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/matrix"
)

// halfPlane is a·x ≤ b.
type halfPlane[T any] struct {
	a Point2D[T]
	b T
}

// Solve reconstructs the feasible polygon of data, read as A x ≤ b, x ≥ 0,
// and finds the optimum for goal.
//
// Implementation:
//   - Stage 1: one boundary line per row plus x1 = 0 and x2 = 0.
//   - Stage 2: intersect every pair with matrix.Solve; singular pairs are skipped.
//   - Stage 3: keep intersections satisfying every half-plane within the
//     field tolerance; deduplicate. None left → lp.Inconsistent.
//   - Stage 4: look for an improving recession ray (axis directions and both
//     directions of every boundary line) → lp.Unbounded.
//   - Stage 5: a bounded region with fewer than 3 distinct vertices is
//     degenerate → lp.Inconsistent.
//   - Stage 6: sort clockwise, evaluate the objective, collect ties.
//   - Stage 7: bounding box, corner values, gradient and level lines.
//
// Errors: ErrNilProblem, ErrNotTwoDimensional.
//
// Complexity: O(L² · L) with L = m + 2 lines.
func Solve[T any](f field.Field[T], data *lp.ProblemData[T], goal lp.Goal, opts ...Option) (PlotData2D[T], lp.SolutionType, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if data == nil {
		return PlotData2D[T]{}, lp.Unknown, ErrNilProblem
	}
	if data.Vars() != 2 {
		return PlotData2D[T]{}, lp.Unknown, fmt.Errorf("Solve: n=%d: %w", data.Vars(), ErrNotTwoDimensional)
	}

	planes := halfPlanes(f, data)
	c := objectiveOf(data)

	plot := PlotData2D[T]{f: f, ExtremeValue: f.Zero()}
	plot.Gradient = Line2D[T]{Origin: origin(f), Direction: c}
	plot.LevelLine = Line2D[T]{Origin: origin(f), Direction: Perp(f, c)}

	vertices, err := candidateVertices(f, planes)
	if err != nil {
		return PlotData2D[T]{}, lp.Unknown, err
	}

	rays := recessionRays(f, planes)
	plot.Bounded = len(rays) == 0

	typ := lp.Optimal
	switch {
	case len(vertices) == 0:
		typ = lp.Inconsistent
	case improvingRay(f, rays, c, goal):
		typ = lp.Unbounded
	case plot.Bounded && len(vertices) < 3:
		typ = lp.Inconsistent
	}

	plot.Vertices = SortClockwise(f, vertices)
	if typ == lp.Optimal {
		plot.setOptimum(f, c, goal)
	}

	plot.BoundingBox = BoundingBoxOf(f, plot.Vertices, o.Padding)
	xs := [2]T{plot.BoundingBox.Min.X, plot.BoundingBox.Max.X}
	ys := [2]T{plot.BoundingBox.Min.Y, plot.BoundingBox.Max.Y}
	for i := range xs {
		for j := range ys {
			plot.CornerValues[i][j] = Dot(f, c, Point2D[T]{X: xs[i], Y: ys[j]})
		}
	}

	return plot, typ, nil
}

func origin[T any](f field.Field[T]) Point2D[T] { return Point2D[T]{X: f.Zero(), Y: f.Zero()} }

func objectiveOf[T any](data *lp.ProblemData[T]) Point2D[T] {
	c := data.Objective()
	return Point2D[T]{X: c[0], Y: c[1]}
}

// halfPlanes lists the rows followed by −x1 ≤ 0 and −x2 ≤ 0.
func halfPlanes[T any](f field.Field[T], data *lp.ProblemData[T]) []halfPlane[T] {
	rows := data.ConstraintRows()
	b := data.RHS()
	out := make([]halfPlane[T], 0, len(rows)+2)
	for i, row := range rows {
		out = append(out, halfPlane[T]{a: Point2D[T]{X: row[0], Y: row[1]}, b: b[i]})
	}
	minusOne := f.Neg(f.One())
	out = append(out,
		halfPlane[T]{a: Point2D[T]{X: minusOne, Y: f.Zero()}, b: f.Zero()},
		halfPlane[T]{a: Point2D[T]{X: f.Zero(), Y: minusOne}, b: f.Zero()},
	)

	return out
}

func satisfiesAll[T any](f field.Field[T], planes []halfPlane[T], p Point2D[T]) bool {
	for _, h := range planes {
		if f.Sign(f.Sub(Dot(f, h.a, p), h.b)) > 0 {
			return false
		}
	}

	return true
}

// snap replaces values that are zero under the field policy with an exact zero.
func snap[T any](f field.Field[T], v T) T {
	if f.IsZero(v) {
		return f.Zero()
	}

	return v
}

func samePoint[T any](f field.Field[T], p, q Point2D[T]) bool {
	return f.Cmp(p.X, q.X) == 0 && f.Cmp(p.Y, q.Y) == 0
}

// candidateVertices intersects every pair of boundary lines and keeps the
// distinct feasible intersections in discovery order.
func candidateVertices[T any](f field.Field[T], planes []halfPlane[T]) ([]Point2D[T], error) {
	var out []Point2D[T]
	for i := 0; i < len(planes); i++ {
		for j := i + 1; j < len(planes); j++ {
			a, err := matrix.NewDenseFromRows(f, [][]T{
				{planes[i].a.X, planes[i].a.Y},
				{planes[j].a.X, planes[j].a.Y},
			})
			if err != nil {
				return nil, err
			}
			x, err := matrix.Solve(a, []T{planes[i].b, planes[j].b})
			if errors.Is(err, matrix.ErrSingular) {
				continue // parallel or coincident
			}
			if err != nil {
				return nil, err
			}
			p := Point2D[T]{X: snap(f, x[0]), Y: snap(f, x[1])}
			if !satisfiesAll(f, planes, p) {
				continue
			}
			dup := false
			for _, q := range out {
				if samePoint(f, p, q) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, p)
			}
		}
	}

	return out, nil
}

// recessionRays returns the extreme-ray candidates r ≠ 0 with a·r ≤ 0 for
// every half-plane (which includes r ≥ 0). The recession cone of a region in
// the non-negative quadrant is pointed, so its extreme rays lie on an axis or
// along a boundary line.
func recessionRays[T any](f field.Field[T], planes []halfPlane[T]) []Point2D[T] {
	cands := []Point2D[T]{
		{X: f.One(), Y: f.Zero()},
		{X: f.Zero(), Y: f.One()},
	}
	for _, h := range planes {
		d := Point2D[T]{X: h.a.Y, Y: f.Neg(h.a.X)}
		if f.IsZero(d.X) && f.IsZero(d.Y) {
			continue
		}
		cands = append(cands, d, Point2D[T]{X: f.Neg(d.X), Y: f.Neg(d.Y)})
	}

	var rays []Point2D[T]
	for _, r := range cands {
		ok := true
		for _, h := range planes {
			if f.Sign(Dot(f, h.a, r)) > 0 {
				ok = false
				break
			}
		}
		if ok {
			rays = append(rays, r)
		}
	}

	return rays
}

// improvingRay reports whether the objective strictly improves along a ray.
func improvingRay[T any](f field.Field[T], rays []Point2D[T], c Point2D[T], goal lp.Goal) bool {
	for _, r := range rays {
		s := f.Sign(Dot(f, c, r))
		if (goal == lp.Maximize && s > 0) || (goal != lp.Maximize && s < 0) {
			return true
		}
	}

	return false
}

// setOptimum evaluates the objective over the ordered vertices.
func (p *PlotData2D[T]) setOptimum(f field.Field[T], c Point2D[T], goal lp.Goal) {
	better := func(a, b T) bool {
		if goal == lp.Maximize {
			return f.Cmp(a, b) > 0
		}
		return f.Cmp(a, b) < 0
	}
	best := 0
	values := make([]T, len(p.Vertices))
	for i, v := range p.Vertices {
		values[i] = Dot(f, c, v)
		if better(values[i], values[best]) {
			best = i
		}
	}
	p.ExtremeVertex = p.Vertices[best]
	p.ExtremeValue = values[best]
	p.ExtremeVertices = []Point2D[T]{p.ExtremeVertex}
	for i, v := range p.Vertices {
		if i != best && f.Cmp(values[i], values[best]) == 0 {
			p.ExtremeVertices = append(p.ExtremeVertices, v)
		}
	}
	p.OptimalEdge = len(p.ExtremeVertices) > 1
	p.OptimalLevelLine = Line2D[T]{Origin: p.ExtremeVertex, Direction: Perp(f, c)}
}
