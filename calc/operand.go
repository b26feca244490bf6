package calc

import (
	"fmt"
	"strings"

	"github.com/esimov/vecto"
	"gopkg.in/yaml.v3"
)

// polarPrefix marks an operand written in polar form, e.g. "polar:5,0.785".
const polarPrefix = "polar:"

// Operand is a vector argument of an operation.
// In YAML it can be written as a "x,y" string, as a {x, y} mapping
// or as a {magnitude, heading} mapping.
type Operand struct {
	vecto.Vector
}

// ParseOperand parses the "x,y" or "polar:magnitude,heading" form.
func ParseOperand(s string) (Operand, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, polarPrefix) {
		p, err := vecto.ParseVector(strings.TrimPrefix(s, polarPrefix))
		if err != nil {
			return Operand{}, err
		}
		return Operand{vecto.FromPolar(p.X, p.Y)}, nil
	}
	v, err := vecto.ParseVector(s)
	if err != nil {
		return Operand{}, err
	}
	return Operand{v}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		op, err := ParseOperand(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*o = op
		return nil
	case yaml.MappingNode:
		return o.decodeMapping(node)
	}
	return fmt.Errorf("line %d: operand should be a string or a mapping", node.Line)
}

// decodeMapping decodes the {x, y} and {magnitude, heading} forms.
// Unknown or repeated keys are rejected, so a typo cannot turn into a zero coordinate.
func (o *Operand) decodeMapping(node *yaml.Node) error {
	if len(node.Content) == 0 {
		return fmt.Errorf("line %d: empty operand", node.Line)
	}
	coords := make(map[string]float64, 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "x", "y", "magnitude", "heading":
		default:
			return fmt.Errorf("line %d: unknown operand key %q", key.Line, key.Value)
		}
		if _, ok := coords[key.Value]; ok {
			return fmt.Errorf("line %d: operand key %q already defined", key.Line, key.Value)
		}
		var f float64
		if err := val.Decode(&f); err != nil {
			return fmt.Errorf("line %d: invalid %q coordinate: %w", val.Line, key.Value, err)
		}
		coords[key.Value] = f
	}

	_, hasX := coords["x"]
	_, hasY := coords["y"]
	_, hasMag := coords["magnitude"]
	_, hasHeading := coords["heading"]
	if (hasX || hasY) && (hasMag || hasHeading) {
		return fmt.Errorf("line %d: operand mixes cartesian and polar coordinates", node.Line)
	}
	if hasMag || hasHeading {
		o.Vector = vecto.FromPolar(coords["magnitude"], coords["heading"])
		return nil
	}
	o.Vector = vecto.NewVector(coords["x"], coords["y"])
	return nil
}
