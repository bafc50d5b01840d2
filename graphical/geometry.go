// SPDX-License-Identifier: MIT

package graphical

import (
	"math"
	"sort"

	"github.com/katalvlaran/lplab/field"
)

// Perp rotates p by +90°: (x, y) → (−y, x).
func Perp[T any](f field.Field[T], p Point2D[T]) Point2D[T] {
	return Point2D[T]{X: f.Neg(p.Y), Y: p.X}
}

// Dot returns a·b.
func Dot[T any](f field.Field[T], a, b Point2D[T]) T {
	return f.Add(f.Mul(a.X, b.X), f.Mul(a.Y, b.Y))
}

// Lerp interpolates linearly between a (t = 0) and b (t = 1).
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Blerp interpolates bilinearly between the corner values c00 (tx=0, ty=0),
// c10 (tx=1, ty=0), c01 (tx=0, ty=1) and c11 (tx=1, ty=1).
func Blerp(c00, c10, c01, c11, tx, ty float64) float64 {
	return Lerp(Lerp(c00, c10, tx), Lerp(c01, c11, tx), ty)
}

// Normalize scales (x, y) to unit length; the zero vector is returned as is.
func Normalize(x, y float64) (float64, float64) {
	n := math.Hypot(x, y)
	if n == 0 {
		return x, y
	}

	return x / n, y / n
}

// Centroid returns the float mean of pts.
func Centroid[T any](f field.Field[T], pts []Point2D[T]) (cx, cy float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	for _, p := range pts {
		cx += f.Float(p.X)
		cy += f.Float(p.Y)
	}
	n := float64(len(pts))

	return cx / n, cy / n
}

// SortClockwise returns a copy of pts ordered by strictly decreasing polar
// angle atan2(y−cy, x−cx) about their centroid.
func SortClockwise[T any](f field.Field[T], pts []Point2D[T]) []Point2D[T] {
	cx, cy := Centroid(f, pts)
	type keyed struct {
		p     Point2D[T]
		angle float64
	}
	ks := make([]keyed, len(pts))
	for i, p := range pts {
		ks[i] = keyed{p: p, angle: math.Atan2(f.Float(p.Y)-cy, f.Float(p.X)-cx)}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].angle > ks[j].angle })

	out := make([]Point2D[T], len(ks))
	for i, k := range ks {
		out[i] = k.p
	}

	return out
}

// BoundingBoxOf returns the axis-aligned box around pts, widened on every
// side by ratio times its extent (by 1 for an axis of zero extent). An empty
// pts is treated as the single point (0, 0).
func BoundingBoxOf[T any](f field.Field[T], pts []Point2D[T], ratio float64) Box2D[T] {
	if len(pts) == 0 {
		pts = []Point2D[T]{{X: f.Zero(), Y: f.Zero()}}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, hi.X = field.Min(f, lo.X, p.X), field.Max(f, hi.X, p.X)
		lo.Y, hi.Y = field.Min(f, lo.Y, p.Y), field.Max(f, hi.Y, p.Y)
	}
	r := f.Zero()
	if num, den, err := field.Rationalize(ratio, 1e-12, field.DefaultRationalizeIterations, 1_000_000); err == nil {
		r = f.FromFrac(num, den)
	}
	pad := func(a, b T) (T, T) {
		d := f.Mul(f.Sub(b, a), r)
		if f.IsZero(f.Sub(b, a)) {
			d = f.One()
		}
		return f.Sub(a, d), f.Add(b, d)
	}
	lo.X, hi.X = pad(lo.X, hi.X)
	lo.Y, hi.Y = pad(lo.Y, hi.Y)

	return Box2D[T]{Min: lo, Max: hi}
}
