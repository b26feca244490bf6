package vecto

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"
)

// ErrSingularTransform is returned when inverting a transform without an inverse.
var ErrSingularTransform = errors.New("vecto: singular transform")

// Transform is a 2D affine transformation stored as the top two rows of a 3x3 matrix:
//
//	| a b c |
//	| d e f |
//	| 0 0 1 |
//
// where c and f hold the translation.
type Transform struct {
	m f64.Aff3
}

// Identity returns the transform that leaves every point in place.
func Identity() Transform {
	return Transform{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// NewTransform wraps an existing affine matrix.
func NewTransform(m f64.Aff3) Transform {
	return Transform{m: m}
}

// NewTranslate returns a transform moving points by v.
func NewTranslate(v Vector) Transform {
	return Transform{m: f64.Aff3{1, 0, v.X, 0, 1, v.Y}}
}

// NewScale returns a transform scaling around the origin.
func NewScale(sx, sy float64) Transform {
	return Transform{m: f64.Aff3{sx, 0, 0, 0, sy, 0}}
}

// NewRotate returns a counter-clockwise rotation by theta radians around the origin.
func NewRotate(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return Transform{m: f64.Aff3{cos, -sin, 0, sin, cos, 0}}
}

// Aff3 returns the underlying matrix.
func (t Transform) Aff3() f64.Aff3 {
	return t.m
}

// Concat returns the transform applying t first and then o.
func (t Transform) Concat(o Transform) Transform {
	a, b := o.m, t.m
	return Transform{m: f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}}
}

// Invert returns the inverse transform or ErrSingularTransform
// when the determinant is zero.
func (t Transform) Invert() (Transform, error) {
	m := t.m
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return Transform{}, ErrSingularTransform
	}
	a := m[4] / det
	b := -m[1] / det
	d := -m[3] / det
	e := m[0] / det
	return Transform{m: f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}}, nil
}

// ApplyPoint maps a point through the transform.
func (t Transform) ApplyPoint(p Point) Point {
	m := t.m
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// ApplyVector maps a vector through the linear part of the transform.
// Vectors are displacements, so the translation is ignored.
func (t Transform) ApplyVector(v Vector) Vector {
	m := t.m
	return Vector{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[3]*v.X + m[4]*v.Y,
	}
}
