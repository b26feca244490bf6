package calc

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/esimov/vecto"
	"github.com/stretchr/testify/assert"
)

func vec(x, y float64) Operand {
	return Operand{vecto.NewVector(x, y)}
}

func TestCalc_ParseOperand(t *testing.T) {
	assert := assert.New(t)

	op, err := ParseOperand("3,4")
	assert.NoError(err)
	assert.Equal(vecto.NewVector(3, 4), op.Vector)

	op, err = ParseOperand("polar:2,0")
	assert.NoError(err)
	assert.InDelta(2, op.X, 1e-12)
	assert.InDelta(0, op.Y, 1e-12)

	_, err = ParseOperand("polar:2")
	assert.Error(err)
	_, err = ParseOperand("a,b")
	assert.Error(err)
}

func TestCalc_Eval(t *testing.T) {
	assert := assert.New(t)

	res, err := Eval(Step{Op: Magnitude, Args: []Operand{vec(3, 4)}})
	assert.NoError(err)
	assert.False(res.IsVector)
	assert.Equal(5.0, res.Scalar)
	assert.Equal("5", res.String())

	res, err = Eval(Step{Op: Add, Args: []Operand{vec(1, 2), vec(3, 4)}})
	assert.NoError(err)
	assert.True(res.IsVector)
	assert.Equal(vecto.NewVector(4, 6), res.Vector)
	assert.Equal("{4, 6}", res.String())

	res, err = Eval(Step{Op: Sub, Args: []Operand{vec(1, 2), vec(3, 4)}})
	assert.NoError(err)
	assert.Equal(vecto.NewVector(-2, -2), res.Vector)

	res, err = Eval(Step{Op: Dot, Args: []Operand{vec(1, 2), vec(3, 4)}})
	assert.NoError(err)
	assert.Equal(11.0, res.Scalar)

	res, err = Eval(Step{Op: Angle, Args: []Operand{vec(1, 0), vec(0, 1)}})
	assert.NoError(err)
	assert.InDelta(math.Pi/2, res.Scalar, 1e-12)

	res, err = Eval(Step{Op: Scale, Args: []Operand{vec(1, 2)}, Scalar: 3})
	assert.NoError(err)
	assert.Equal(vecto.NewVector(3, 6), res.Vector)

	res, err = Eval(Step{Op: Div, Args: []Operand{vec(3, 6)}, Scalar: 3})
	assert.NoError(err)
	assert.Equal(vecto.NewVector(1, 2), res.Vector)

	res, err = Eval(Step{Op: Unit, Args: []Operand{vec(0, 0)}})
	assert.NoError(err)
	assert.True(res.Vector.IsZero())

	res, err = Eval(Step{Op: Neg, Args: []Operand{vec(1, -1)}})
	assert.NoError(err)
	assert.Equal(vecto.NewVector(-1, 1), res.Vector)

	res, err = Eval(Step{Op: Heading, Args: []Operand{vec(0, 2)}})
	assert.NoError(err)
	assert.InDelta(math.Pi/2, res.Scalar, 1e-12)

	res, err = Eval(Step{Op: Rotate, Args: []Operand{vec(1, 0)}, Scalar: math.Pi})
	assert.NoError(err)
	assert.True(res.Vector.ApproxEqual(vecto.NewVector(-1, 0), 1e-12))
}

func TestCalc_EvalErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Eval(Step{Op: "cross", Args: []Operand{vec(1, 2)}})
	assert.ErrorIs(err, ErrUnknownOp)

	_, err = Eval(Step{Op: Add, Args: []Operand{vec(1, 2)}})
	assert.ErrorIs(err, ErrArity)

	_, err = Eval(Step{Name: "halve", Op: Div, Args: []Operand{vec(1, 2)}})
	assert.ErrorIs(err, vecto.ErrDivisionByZero)
	assert.Contains(err.Error(), "halve")

	_, err = Eval(Step{Op: Angle, Args: []Operand{vec(0, 0), vec(1, 2)}})
	assert.ErrorIs(err, vecto.ErrZeroMagnitude)
}

func TestCalc_LoadBatch(t *testing.T) {
	assert := assert.New(t)

	src := `
steps:
  - name: length
    op: magnitude
    args: ["3,4"]
  - op: add
    args:
      - {x: 1, y: 2}
      - "polar:0,1"
  - name: double
    op: scale
    scalar: 2
    args:
      - {magnitude: 1}
`
	b, err := LoadBatch(strings.NewReader(src))
	assert.NoError(err)
	assert.Len(b.Steps, 3)
	assert.Equal("length", b.Steps[0].Label())
	assert.Equal(Add, b.Steps[1].Label())
	assert.Equal(vecto.NewVector(1, 2), b.Steps[1].Args[0].Vector)
	assert.Equal(2.0, b.Steps[2].Scalar)
	assert.InDelta(1, b.Steps[2].Args[0].X, 1e-12)

	var out bytes.Buffer
	assert.NoError(Run(b, &out))
	assert.Equal("length: 5\nadd: {1, 2}\ndouble: {2, 0}\n", out.String())
}

func TestCalc_LoadBatchErrors(t *testing.T) {
	assert := assert.New(t)

	b, err := LoadBatch(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(b.Steps)

	_, err = LoadBatch(strings.NewReader("steps:\n  - op: add\n    args: [\"1\"]\n"))
	assert.Error(err)

	_, err = LoadBatch(strings.NewReader("steps:\n  - op: add\n    args: [{x: 1, magnitude: 2}]\n"))
	assert.Error(err)

	_, err = LoadBatch(strings.NewReader("steps:\n  - op: add\n    args: [[1, 2]]\n"))
	assert.Error(err)

	// Mistyped operand keys must not decode into a zero vector.
	for _, arg := range []string{"{X: 3, Y: 4}", "{mag: 5}", "{}", "{x: 1, x: 2}", "{x: one}"} {
		_, err = LoadBatch(strings.NewReader("steps:\n  - op: magnitude\n    args: [" + arg + "]\n"))
		assert.Error(err, arg)
	}

	// Mistyped step keys must not leave fields at their zero value.
	_, err = LoadBatch(strings.NewReader("steps:\n  - op: scale\n    scaler: 2\n    args: [\"1,2\"]\n"))
	assert.Error(err)
	_, err = LoadBatch(strings.NewReader("step:\n  - op: magnitude\n    args: [\"3,4\"]\n"))
	assert.Error(err)
}

func TestCalc_RunWith(t *testing.T) {
	b := &Batch{Steps: []Step{
		{Name: "len", Op: Magnitude, Args: []Operand{vec(3, 4)}},
		{Op: Neg, Args: []Operand{vec(1, 2)}},
	}}
	format := func(s Step, r Result) string {
		return "[" + s.Label() + "] " + r.String()
	}

	var out bytes.Buffer
	assert.NoError(t, RunWith(b, &out, format))
	assert.Equal(t, "[len] 5\n[neg] {-1, -2}\n", out.String())
}

func TestCalc_RunStopsOnError(t *testing.T) {
	b := &Batch{Steps: []Step{
		{Op: Magnitude, Args: []Operand{vec(3, 4)}},
		{Op: Div, Args: []Operand{vec(3, 4)}},
		{Op: Magnitude, Args: []Operand{vec(6, 8)}},
	}}

	var out bytes.Buffer
	err := Run(b, &out)
	assert.ErrorIs(t, err, vecto.ErrDivisionByZero)
	assert.Equal(t, "magnitude: 5\n", out.String())
}
