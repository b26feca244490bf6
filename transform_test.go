package vecto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f64"
)

func assertPointInDelta(t *testing.T, expected, actual Point) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, eps)
	assert.InDelta(t, expected.Y, actual.Y, eps)
}

func TestTransform_Basic(t *testing.T) {
	assert := assert.New(t)

	p := Pt(2, 3)
	assert.Equal(p, Identity().ApplyPoint(p))
	assert.Equal(Pt(3, 1), NewTranslate(NewVector(1, -2)).ApplyPoint(p))
	assert.Equal(Pt(4, 9), NewScale(2, 3).ApplyPoint(p))
	assertPointInDelta(t, Pt(-3, 2), NewRotate(math.Pi/2).ApplyPoint(p))

	// Vectors are not affected by translation.
	v := NewVector(1, 1)
	assert.Equal(v, NewTranslate(NewVector(5, 5)).ApplyVector(v))
	assert.Equal(f64.Aff3{1, 0, 0, 0, 1, 0}, Identity().Aff3())
}

func TestTransform_Concat(t *testing.T) {
	// Scale first, then translate.
	tr := NewScale(2, 2).Concat(NewTranslate(NewVector(10, 0)))
	assert.Equal(t, Pt(12, 2), tr.ApplyPoint(Pt(1, 1)))

	// Translate first, then scale.
	tr = NewTranslate(NewVector(10, 0)).Concat(NewScale(2, 2))
	assert.Equal(t, Pt(22, 2), tr.ApplyPoint(Pt(1, 1)))
}

func TestTransform_Invert(t *testing.T) {
	tr := NewRotate(0.3).Concat(NewScale(2, 0.5)).Concat(NewTranslate(NewVector(-4, 7)))
	inv, err := tr.Invert()
	assert.NoError(t, err)

	p := Pt(3, -8)
	assertPointInDelta(t, p, inv.ApplyPoint(tr.ApplyPoint(p)))
	assertPointInDelta(t, p, tr.Concat(inv).ApplyPoint(p))

	_, err = NewScale(0, 1).Invert()
	assert.ErrorIs(t, err, ErrSingularTransform)
}

func TestTransform_Shapes(t *testing.T) {
	tr := NewTranslate(NewVector(1, 1))

	l := NewLine(Pt(0, 0), Pt(1, 0)).Transform(tr)
	assert.Equal(t, NewLine(Pt(1, 1), Pt(2, 1)), l)

	p, err := NewPolygon(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	assert.NoError(t, err)
	moved := p.Transform(NewTransform(f64.Aff3{3, 0, 0, 0, 3, 0}))
	assert.Equal(t, Pt(0, 0), p.Points[0])
	assert.Equal(t, Pt(0, 3), moved.Points[2])
}
