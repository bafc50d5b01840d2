// SPDX-License-Identifier: MIT

package graphical

import (
	"fmt"

	"github.com/katalvlaran/lplab/field"
)

// Point2D is a point (or a direction) in the (x1, x2) plane.
type Point2D[T any] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Line2D is the line through Origin along Direction.
type Line2D[T any] struct {
	Origin    Point2D[T] `json:"origin"`
	Direction Point2D[T] `json:"direction"`
}

// Box2D is an axis-aligned box.
type Box2D[T any] struct {
	Min Point2D[T] `json:"min"`
	Max Point2D[T] `json:"max"`
}

// PlotData2D is the result of a graphical solve.
//
// Vertices are ordered clockwise. ExtremeVertex, ExtremeVertices and
// ExtremeValue are set only for an optimal result; ExtremeVertices lists every
// vertex attaining the optimum with the representative ExtremeVertex first,
// and OptimalEdge reports more than one of them. CornerValues[i][j] is the
// objective at (X_i, Y_j) where X_0/X_1 are BoundingBox.Min.X/Max.X and
// Y_0/Y_1 are BoundingBox.Min.Y/Max.Y. Bounded is false when the feasible
// region contains a ray, whether or not the objective improves along it.
type PlotData2D[T any] struct {
	Vertices         []Point2D[T] `json:"vertices"`
	ExtremeVertex    Point2D[T]   `json:"extreme_vertex"`
	ExtremeVertices  []Point2D[T] `json:"extreme_vertices,omitempty"`
	ExtremeValue     T            `json:"extreme_value"`
	OptimalEdge      bool         `json:"optimal_edge"`
	Gradient         Line2D[T]    `json:"gradient"`
	LevelLine        Line2D[T]    `json:"level_line"`
	OptimalLevelLine Line2D[T]    `json:"optimal_level_line"`
	BoundingBox      Box2D[T]     `json:"bounding_box"`
	CornerValues     [2][2]T      `json:"corner_values"`
	Bounded          bool         `json:"bounded"`

	f field.Field[T]
}

// Interpolate returns the objective value at (x, y) by bilinear
// interpolation of CornerValues. Because the objective is linear this
// reproduces cᵀ(x, y) up to float rounding, also outside the box.
func (p PlotData2D[T]) Interpolate(x, y float64) float64 {
	if p.f == nil {
		return 0
	}
	f := p.f
	x0, x1 := f.Float(p.BoundingBox.Min.X), f.Float(p.BoundingBox.Max.X)
	y0, y1 := f.Float(p.BoundingBox.Min.Y), f.Float(p.BoundingBox.Max.Y)
	tx, ty := 0.0, 0.0
	if x1 != x0 {
		tx = (x - x0) / (x1 - x0)
	}
	if y1 != y0 {
		ty = (y - y0) / (y1 - y0)
	}

	return Blerp(
		f.Float(p.CornerValues[0][0]), f.Float(p.CornerValues[1][0]),
		f.Float(p.CornerValues[0][1]), f.Float(p.CornerValues[1][1]),
		tx, ty,
	)
}

// FormatPoint renders p as "(x, y)" in the field's notation.
func FormatPoint[T any](f field.Field[T], p Point2D[T]) string {
	return fmt.Sprintf("(%s, %s)", f.Format(p.X), f.Format(p.Y))
}
