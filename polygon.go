package vecto

// Polygon is an ordered list of vertices. It is considered open
// unless the last point repeats the first one.
type Polygon struct {
	Points []Point `json:"points" yaml:"points"`
}

// NewPolygon creates a polygon from at least two points.
// The points are copied, so the caller's slice can be reused.
func NewPolygon(pts ...Point) (*Polygon, error) {
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	p := &Polygon{Points: make([]Point, len(pts))}
	copy(p.Points, pts)
	return p, nil
}

// Copy returns a deep copy of the polygon.
func (p *Polygon) Copy() *Polygon {
	c := &Polygon{Points: make([]Point, len(p.Points))}
	copy(c.Points, p.Points)
	return c
}

// Bounds returns the bounding box of the vertices.
func (p *Polygon) Bounds() Rect {
	return RectFromPoints(p.Points...)
}

// Center returns the center of the polygon's bounding box.
func (p *Polygon) Center() Point {
	return p.Bounds().Center()
}

// SetCenter moves every vertex so that the bounding box center lands on c.
func (p *Polygon) SetCenter(c Point) {
	p.Translate(c.Sub(p.Center()))
}

// Translate moves every vertex by v.
func (p *Polygon) Translate(v Vector) {
	for i := range p.Points {
		p.Points[i].Translate(v)
	}
}

// IsClosed reports whether the last vertex repeats the first one.
func (p *Polygon) IsClosed() bool {
	n := len(p.Points)
	return n > 2 && p.Points[0].Equal(p.Points[n-1])
}

// Close appends the first vertex to the end, unless the polygon is already closed.
func (p *Polygon) Close() {
	if len(p.Points) < 2 || p.IsClosed() {
		return
	}
	p.Points = append(p.Points, p.Points[0])
}

// Perimeter returns the length of the outline. When closed is true
// the segment joining the last vertex back to the first one is also counted.
func (p *Polygon) Perimeter(closed bool) float64 {
	var total float64
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i].DistanceTo(p.Points[i-1])
	}
	if closed && len(p.Points) > 2 && !p.IsClosed() {
		total += p.Points[0].DistanceTo(p.Points[len(p.Points)-1])
	}
	return total
}

// Area returns the signed area enclosed by the vertices using the shoelace formula.
// Counter-clockwise polygons have a positive area.
func (p *Polygon) Area() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a, b := p.Points[i], p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Transform returns a new polygon with every vertex mapped by t.
func (p *Polygon) Transform(t Transform) *Polygon {
	c := &Polygon{Points: make([]Point, len(p.Points))}
	for i, pt := range p.Points {
		c.Points[i] = t.ApplyPoint(pt)
	}
	return c
}
