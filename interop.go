package vecto

import (
	"image"
	"math"

	"github.com/esimov/vecto/utils"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// toInt32 rounds f using round and saturates it to the int32 range.
// Converting an out of range float to an integer is implementation defined in Go.
func toInt32(f float64, round func(float64) float64) int32 {
	return int32(utils.Clamp(round(f), math.MinInt32, math.MaxInt32))
}

// Vec2 converts the vector to the x/image representation.
func (v Vector) Vec2() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

// VectorFromVec2 converts an x/image vector.
func VectorFromVec2(v f64.Vec2) Vector {
	return Vector{X: v[0], Y: v[1]}
}

// Fixed converts the point to 26.6 fixed point coordinates, as used by font rasterizers.
// Coordinates outside the representable range, roughly ±3.3e7, saturate.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(toInt32(p.X*64, math.Round)),
		Y: fixed.Int26_6(toInt32(p.Y*64, math.Round)),
	}
}

// PointFromFixed converts 26.6 fixed point coordinates.
func PointFromFixed(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Image rounds the point to the nearest integer pixel position.
// Coordinates outside the int32 range saturate.
func (p Point) Image() image.Point {
	return image.Pt(int(toInt32(p.X, math.Round)), int(toInt32(p.Y, math.Round)))
}

// PointFromImage converts an integer pixel position.
func PointFromImage(p image.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// Image returns the smallest integer rectangle covering r.
// Edges outside the int32 range saturate.
func (r Rect) Image() image.Rectangle {
	max := r.Max()
	return image.Rect(
		int(toInt32(r.Origin.X, math.Floor)), int(toInt32(r.Origin.Y, math.Floor)),
		int(toInt32(max.X, math.Ceil)), int(toInt32(max.Y, math.Ceil)),
	)
}
