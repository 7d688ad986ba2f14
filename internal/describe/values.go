package describe

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/flexkit"
)

// Dim is a dimension written as a cell count (12), a percentage ("50%") or
// "auto".
type Dim struct {
	Value flexkit.Value
	Set   bool
}

// ParseDim parses the string spelling of a dimension.
func ParseDim(s string) (Dim, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "auto":
		return Dim{Value: flexkit.Auto(), Set: true}, nil
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || p < 0 {
			return Dim{}, fmt.Errorf("bad percentage %q", s)
		}
		return Dim{Value: flexkit.Percent(p), Set: true}, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Dim{}, fmt.Errorf("bad dimension %q", s)
		}
		return Dim{Value: flexkit.Fixed(n), Set: true}, nil
	}
}

// UnmarshalYAML accepts any scalar.
func (d *Dim) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a scalar", node.Line)
	}
	parsed, err := ParseDim(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}

// UnmarshalTOML accepts an integer or a string.
func (d *Dim) UnmarshalTOML(data any) error {
	var parsed Dim
	var err error
	switch v := data.(type) {
	case int64:
		parsed, err = ParseDim(strconv.FormatInt(v, 10))
	case string:
		parsed, err = ParseDim(v)
	default:
		err = fmt.Errorf("dimension must be an integer or string, got %T", data)
	}
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Spacing is an edge set written like CSS shorthand: one value for all
// sides, two for vertical and horizontal, or four in top, right, bottom,
// left order.
type Spacing struct {
	Edges flexkit.Edges
	Set   bool
}

func spacingFrom(values []int) (Spacing, error) {
	for _, v := range values {
		if v < 0 {
			return Spacing{}, fmt.Errorf("negative spacing %d", v)
		}
	}
	switch len(values) {
	case 1:
		return Spacing{Edges: flexkit.EdgeAll(values[0]), Set: true}, nil
	case 2:
		return Spacing{Edges: flexkit.EdgeSymmetric(values[0], values[1]), Set: true}, nil
	case 4:
		return Spacing{Edges: flexkit.EdgeTRBL(values[0], values[1], values[2], values[3]), Set: true}, nil
	default:
		return Spacing{}, fmt.Errorf("spacing takes 1, 2 or 4 values, got %d", len(values))
	}
}

// UnmarshalYAML accepts an integer or a list of integers.
func (s *Spacing) UnmarshalYAML(node *yaml.Node) error {
	var values []int
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		values = []int{n}
	case yaml.SequenceNode:
		if err := node.Decode(&values); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: spacing must be an integer or a list", node.Line)
	}
	parsed, err := spacingFrom(values)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = parsed
	return nil
}

// UnmarshalTOML accepts an integer or an array of integers.
func (s *Spacing) UnmarshalTOML(data any) error {
	var values []int
	switch v := data.(type) {
	case int64:
		values = []int{int(v)}
	case []any:
		for _, item := range v {
			n, ok := item.(int64)
			if !ok {
				return fmt.Errorf("spacing values must be integers, got %T", item)
			}
			values = append(values, int(n))
		}
	default:
		return fmt.Errorf("spacing must be an integer or an array, got %T", data)
	}
	parsed, err := spacingFrom(values)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func parseJustify(s string) (flexkit.Justify, error) {
	switch s {
	case "", "start":
		return flexkit.JustifyStart, nil
	case "end":
		return flexkit.JustifyEnd, nil
	case "center":
		return flexkit.JustifyCenter, nil
	case "space-between":
		return flexkit.JustifySpaceBetween, nil
	case "space-around":
		return flexkit.JustifySpaceAround, nil
	case "space-evenly":
		return flexkit.JustifySpaceEvenly, nil
	}
	return 0, fmt.Errorf("unknown justify %q", s)
}

func parseAlign(s string) (flexkit.Align, error) {
	switch s {
	case "", "stretch":
		return flexkit.AlignStretch, nil
	case "start":
		return flexkit.AlignStart, nil
	case "end":
		return flexkit.AlignEnd, nil
	case "center":
		return flexkit.AlignCenter, nil
	}
	return 0, fmt.Errorf("unknown align %q", s)
}

func parseAxes(s string) (flexkit.CenterAxes, error) {
	switch s {
	case "", "xy":
		return flexkit.CenterXY, nil
	case "x":
		return flexkit.CenterX, nil
	case "y":
		return flexkit.CenterY, nil
	case "none":
		return flexkit.CenterNone, nil
	}
	return 0, fmt.Errorf("unknown axes %q", s)
}

func parseSizing(s string) (flexkit.Sizing, error) {
	switch s {
	case "", "default":
		return flexkit.SizingDefault, nil
	case "min-x":
		return flexkit.SizingMinimumX, nil
	case "min-y":
		return flexkit.SizingMinimumY, nil
	case "min-xy":
		return flexkit.SizingMinimumXY, nil
	}
	return 0, fmt.Errorf("unknown sizing %q", s)
}

func parsePosition(s string) (flexkit.Position, error) {
	switch s {
	case "", "start":
		return flexkit.PositionStart, nil
	case "center":
		return flexkit.PositionCenter, nil
	case "end":
		return flexkit.PositionEnd, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}
