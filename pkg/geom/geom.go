// Package geom provides the minimal 2D geometry used by the scene model and
// the SVG compiler: points and affine transformations.
//
// Affine matrices use the conventional SVG/Canvas2D layout [a, b, c, d, e, f]:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// where a/d carry scale, b/c carry skew and rotation, and e/f carry
// translation. Composition is associative and applies the right operand
// first: Mul(m, n).Apply(p) == m.Apply(n.Apply(p)).
package geom

import "math"

// Point is a position or offset in 2D space.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Affine is a 2D affine transformation matrix.
type Affine [6]float64

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{1, 0, 0, 1, tx, ty}
}

// Scale returns a uniform scale by s.
func Scale(s float64) Affine {
	return ScaleXY(s, s)
}

// ScaleXY returns a non-uniform scale by (sx, sy).
func ScaleXY(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// FlipY returns a reflection across the x axis.
func FlipY() Affine {
	return Affine{1, 0, 0, -1, 0, 0}
}

// Rotate returns a rotation by the given angle in radians.
func Rotate(radians float64) Affine {
	sin, cos := math.Sincos(radians)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul composes two transforms: the result applies other first, then m.
func (m Affine) Mul(other Affine) Affine {
	return Affine{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// Apply transforms the point p.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyVector transforms p as a direction, ignoring translation.
// Used for relative path offsets, which must not be shifted by e/f.
func (m Affine) ApplyVector(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y,
		Y: m[1]*p.X + m[3]*p.Y,
	}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}
