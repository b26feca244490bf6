// Package calc evaluates vector operations described either on the command line
// or in a YAML batch file. It backs the vecto command line tool.
package calc

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/esimov/vecto"
	"gopkg.in/yaml.v3"
)

// The supported operations.
const (
	Magnitude = "magnitude"
	Heading   = "heading"
	Unit      = "unit"
	Neg       = "neg"
	Dot       = "dot"
	Angle     = "angle"
	Add       = "add"
	Sub       = "sub"
	Scale     = "scale"
	Div       = "div"
	Rotate    = "rotate"
)

var (
	// ErrUnknownOp is returned for an operation name which is not supported.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrArity is returned when an operation receives the wrong number of vectors.
	ErrArity = errors.New("wrong number of operands")
)

// arity holds the number of vector operands expected by each operation.
var arity = map[string]int{
	Magnitude: 1,
	Heading:   1,
	Unit:      1,
	Neg:       1,
	Scale:     1,
	Div:       1,
	Rotate:    1,
	Dot:       2,
	Angle:     2,
	Add:       2,
	Sub:       2,
}

// Ops returns the names of the supported operations.
func Ops() []string {
	return []string{Magnitude, Heading, Unit, Neg, Dot, Angle, Add, Sub, Scale, Div, Rotate}
}

// Step describes a single operation.
type Step struct {
	Name   string    `yaml:"name"`
	Op     string    `yaml:"op"`
	Args   []Operand `yaml:"args"`
	Scalar float64   `yaml:"scalar"`
}

// Label returns the name of the step, falling back to the operation name.
func (s Step) Label() string {
	if len(s.Name) > 0 {
		return s.Name
	}
	return s.Op
}

// Batch is a list of steps evaluated in order.
type Batch struct {
	Steps []Step `yaml:"steps"`
}

// LoadBatch decodes a YAML batch file.
func LoadBatch(r io.Reader) (*Batch, error) {
	b := &Batch{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(b); err != nil {
		if errors.Is(err, io.EOF) {
			return b, nil
		}
		return nil, fmt.Errorf("could not decode batch file: %w", err)
	}
	return b, nil
}

// Result holds the outcome of an operation, which is either a vector or a scalar.
type Result struct {
	IsVector bool
	Vector   vecto.Vector
	Scalar   float64
}

func vectorResult(v vecto.Vector) Result {
	return Result{IsVector: true, Vector: v}
}

func scalarResult(s float64) Result {
	return Result{Scalar: s}
}

func (r Result) String() string {
	if r.IsVector {
		return r.Vector.String()
	}
	return strconv.FormatFloat(r.Scalar, 'g', -1, 64)
}

// Eval evaluates a single step.
func Eval(s Step) (Result, error) {
	n, ok := arity[s.Op]
	if !ok {
		return Result{}, fmt.Errorf("%s: %w %q", s.Label(), ErrUnknownOp, s.Op)
	}
	if len(s.Args) != n {
		return Result{}, fmt.Errorf("%s: %w: expected %d, got %d", s.Label(), ErrArity, n, len(s.Args))
	}

	a := s.Args[0].Vector
	var b vecto.Vector
	if n > 1 {
		b = s.Args[1].Vector
	}

	switch s.Op {
	case Magnitude:
		return scalarResult(a.Magnitude()), nil
	case Heading:
		return scalarResult(a.Heading()), nil
	case Unit:
		return vectorResult(a.Unit()), nil
	case Neg:
		return vectorResult(a.Neg()), nil
	case Scale:
		return vectorResult(a.Scale(s.Scalar)), nil
	case Rotate:
		return vectorResult(a.Rotate(s.Scalar)), nil
	case Div:
		v, err := a.Div(s.Scalar)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", s.Label(), err)
		}
		return vectorResult(v), nil
	case Dot:
		return scalarResult(a.Dot(b)), nil
	case Angle:
		theta, err := a.AngleTo(b)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", s.Label(), err)
		}
		return scalarResult(theta), nil
	case Add:
		return vectorResult(a.Add(b)), nil
	case Sub:
		return vectorResult(a.Sub(b)), nil
	}
	return Result{}, fmt.Errorf("%s: %w %q", s.Label(), ErrUnknownOp, s.Op)
}

// Formatter renders the outcome of a step as a single output line, without the newline.
type Formatter func(Step, Result) string

// PlainFormat renders a step as "label: result".
func PlainFormat(s Step, r Result) string {
	return fmt.Sprintf("%s: %v", s.Label(), r)
}

// Run evaluates every step of the batch, writing one plain line per step into w.
// It stops at the first failing step.
func Run(b *Batch, w io.Writer) error {
	return RunWith(b, w, PlainFormat)
}

// RunWith is like Run, but renders each line with the provided formatter.
func RunWith(b *Batch, w io.Writer, format Formatter) error {
	for _, s := range b.Steps {
		res, err := Eval(s)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, format(s, res)); err != nil {
			return err
		}
	}
	return nil
}
