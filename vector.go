package vecto

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/esimov/vecto/utils"
)

var (
	// ErrDivisionByZero is returned when a vector is divided by a zero scalar.
	ErrDivisionByZero = errors.New("vecto: division by zero")
	// ErrZeroMagnitude is returned by operations which are undefined for
	// a vector without length, like the angle between two vectors.
	ErrZeroMagnitude = errors.New("vecto: zero magnitude vector")
)

// Vector is a 2D geometric quantity having both a cartesian (X, Y)
// and a polar (magnitude, heading) representation.
// Only the cartesian components are stored, the polar ones are always derived.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewVector creates a vector from its cartesian coordinates.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromPolar creates a vector from a magnitude and a heading expressed in radians.
func FromPolar(magnitude, heading float64) Vector {
	return Vector{
		X: magnitude * math.Cos(heading),
		Y: magnitude * math.Sin(heading),
	}
}

// Magnitude returns the euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagnitudeSquared returns the squared length, avoiding the square root.
func (v Vector) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// SetMagnitude rescales the vector to the new magnitude, keeping its current heading.
// The heading of a zero vector is 0, so rescaling it points the result along the x axis.
func (v *Vector) SetMagnitude(m float64) {
	h := v.Heading()
	v.X = m * math.Cos(h)
	v.Y = m * math.Sin(h)
}

// Heading returns the angle between the vector and the positive x axis,
// in radians, within the (-π, π] interval.
func (v Vector) Heading() float64 {
	return utils.NormalizeAngle(math.Atan2(v.Y, v.X))
}

// SetHeading rotates the vector to the h angle, keeping its current magnitude.
func (v *Vector) SetHeading(h float64) {
	m := v.Magnitude()
	v.X = m * math.Cos(h)
	v.Y = m * math.Sin(h)
}

// Dot returns the dot product of the two vectors.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// AngleTo returns the unsigned angle between v and o in the [0, π] range.
// It returns ErrZeroMagnitude if any of the vectors has no length.
func (v Vector) AngleTo(o Vector) (float64, error) {
	m := v.Magnitude() * o.Magnitude()
	if m == 0 {
		return 0, ErrZeroMagnitude
	}
	// Rounding can push the cosine of (anti)parallel vectors slightly outside [-1, 1].
	return math.Acos(utils.Clamp(v.Dot(o)/m, -1, 1)), nil
}

// Unit returns a vector with the same heading and a magnitude of 1.
// The unit vector of the zero vector is the zero vector.
func (v Vector) Unit() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return Vector{X: v.X / m, Y: v.Y / m}
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equal compares the components exactly, without any tolerance.
func (v Vector) Equal(o Vector) bool {
	return v.X == o.X && v.Y == o.Y
}

// ApproxEqual compares the components allowing an eps absolute difference.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return utils.ApproxEqual(v.X, o.X, eps) && utils.ApproxEqual(v.Y, o.Y, eps)
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by the s scalar.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by the s scalar.
func (v Vector) Div(s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, ErrDivisionByZero
	}
	return Vector{X: v.X / s, Y: v.Y / s}, nil
}

// Neg returns the vector pointing in the opposite direction.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// AddAssign adds o to the vector in place.
func (v *Vector) AddAssign(o Vector) {
	*v = v.Add(o)
}

// SubAssign subtracts o from the vector in place.
func (v *Vector) SubAssign(o Vector) {
	*v = v.Sub(o)
}

// ScaleAssign multiplies the vector in place.
func (v *Vector) ScaleAssign(s float64) {
	*v = v.Scale(s)
}

// DivAssign divides the vector in place. On error the vector is left untouched.
func (v *Vector) DivAssign(s float64) error {
	r, err := v.Div(s)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// Perp returns the vector rotated by 90 degrees counter-clockwise.
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated by theta radians around the origin.
func (v Vector) Rotate(theta float64) Vector {
	sin, cos := math.Sincos(theta)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp linearly interpolates between v (t=0) and o (t=1).
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

func (v Vector) String() string {
	return fmt.Sprintf("{%g, %g}", v.X, v.Y)
}

// ParseVector parses a vector written in the "x,y" form.
func ParseVector(s string) (Vector, error) {
	x, y, err := parsePair(s)
	if err != nil {
		return Vector{}, err
	}
	return Vector{X: x, Y: y}, nil
}

// parsePair parses two comma separated floating point numbers.
func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("vecto: expected \"x,y\", got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("vecto: invalid coordinate %q: %w", parts[0], err)
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("vecto: invalid coordinate %q: %w", parts[1], err)
	}
	return a, b, nil
}
