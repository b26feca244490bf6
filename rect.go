package vecto

import (
	"fmt"

	"github.com/esimov/vecto/utils"
)

// Size holds the extent of a rectangle.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Rect is an axis aligned rectangle defined by its origin (the minimum corner) and size.
type Rect struct {
	Origin Point `json:"origin" yaml:"origin"`
	Size   Size  `json:"size" yaml:"size"`
}

// NewRect creates a rectangle. Negative sizes are normalized,
// so the origin always holds the minimum corner.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// RectFromPoints returns the bounding box of the points.
// The zero rectangle is returned for an empty point list.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = utils.Min(min.X, p.X)
		min.Y = utils.Min(min.Y, p.Y)
		max.X = utils.Max(max.X, p.X)
		max.Y = utils.Max(max.Y, p.Y)
	}
	return Rect{
		Origin: min,
		Size:   Size{Width: max.X - min.X, Height: max.Y - min.Y},
	}
}

// Min returns the minimum corner.
func (r Rect) Min() Point {
	return r.Origin
}

// Max returns the maximum corner.
func (r Rect) Max() Point {
	return Point{X: r.Origin.X + r.Size.Width, Y: r.Origin.Y + r.Size.Height}
}

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// SetCenter moves the rectangle so that its center lands on c.
func (r *Rect) SetCenter(c Point) {
	r.Origin = r.Origin.Add(c.Sub(r.Center()))
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Contains reports whether p is inside the rectangle. The max edges are excluded.
func (r Rect) Contains(p Point) bool {
	max := r.Max()
	return p.X >= r.Origin.X && p.X < max.X &&
		p.Y >= r.Origin.Y && p.Y < max.Y
}

// Intersects reports whether the two rectangles overlap with a non empty area.
func (r Rect) Intersects(s Rect) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	rmax, smax := r.Max(), s.Max()
	return r.Origin.X < smax.X && s.Origin.X < rmax.X &&
		r.Origin.Y < smax.Y && s.Origin.Y < rmax.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return RectFromPoints(r.Min(), r.Max(), s.Min(), s.Max())
}

// Inset shrinks the rectangle by dx horizontally and dy vertically on each side.
// Negative values grow it. The size never goes below zero.
func (r Rect) Inset(dx, dy float64) Rect {
	c := r.Center()
	w := utils.Max(r.Size.Width-2*dx, 0)
	h := utils.Max(r.Size.Height-2*dy, 0)
	return Rect{
		Origin: Point{X: c.X - w/2, Y: c.Y - h/2},
		Size:   Size{Width: w, Height: h},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%v, %gx%g}", r.Origin, r.Size.Width, r.Size.Height)
}
