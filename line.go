package vecto

import "errors"

// ErrTooFewPoints is returned when a shape is built from less points than it needs.
var ErrTooFewPoints = errors.New("vecto: not enough points")

// Line is a segment delimited by its two end points.
type Line struct {
	Begin Point `json:"begin" yaml:"begin"`
	End   Point `json:"end" yaml:"end"`
}

// NewLine creates a line between two points.
func NewLine(begin, end Point) Line {
	return Line{Begin: begin, End: end}
}

// LineFromPoints creates a line from the first two points of pts.
// The remaining points are ignored.
func LineFromPoints(pts []Point) (Line, error) {
	if len(pts) < 2 {
		return Line{}, ErrTooFewPoints
	}
	return Line{Begin: pts[0], End: pts[1]}, nil
}

// Vector returns the displacement from Begin to End.
func (l Line) Vector() Vector {
	return l.End.Sub(l.Begin)
}

// Length returns the distance between the end points.
func (l Line) Length() float64 {
	return l.Vector().Magnitude()
}

// Angle returns the heading of the line, measured from Begin towards End.
func (l Line) Angle() float64 {
	return l.Vector().Heading()
}

// Bounds returns the bounding box of the line.
func (l Line) Bounds() Rect {
	return RectFromPoints(l.Begin, l.End)
}

// Center returns the middle point of the line.
func (l Line) Center() Point {
	return l.Begin.Lerp(l.End, 0.5)
}

// SetCenter moves the line so that its middle point lands on c.
// Both end points are displaced by the same amount.
func (l *Line) SetCenter(c Point) {
	l.Translate(c.Sub(l.Center()))
}

// Origin returns the minimum corner of the line's bounding box.
func (l Line) Origin() Point {
	return l.Bounds().Origin
}

// SetOrigin moves the line so that the minimum corner of its bounding box lands on o.
func (l *Line) SetOrigin(o Point) {
	l.Translate(o.Sub(l.Origin()))
}

// Translate moves both end points by v.
func (l *Line) Translate(v Vector) {
	l.Begin.Translate(v)
	l.End.Translate(v)
}

// PointAt returns the point at the t fraction of the way from Begin to End.
func (l Line) PointAt(t float64) Point {
	return l.Begin.Lerp(l.End, t)
}

// Transform returns the line with both end points mapped by t.
func (l Line) Transform(t Transform) Line {
	return Line{Begin: t.ApplyPoint(l.Begin), End: t.ApplyPoint(l.End)}
}
