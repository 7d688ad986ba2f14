package describe

import (
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/grindlemire/flexkit"
)

// Description is a document built against a set of variables.
type Description struct {
	// Vars are the effective variables: document defaults plus overrides.
	Vars map[string]bool
	// Root is the described node tree.
	Root flexkit.Node
}

// Build turns the document into a node tree. Entries in vars override the
// document's defaults. Errors name the offending node by path.
func (d *Document) Build(vars map[string]bool) (*Description, error) {
	merged := make(map[string]bool, len(d.Vars)+len(vars))
	maps.Copy(merged, d.Vars)
	maps.Copy(merged, vars)

	b := builder{vars: merged}
	root, err := b.node(&d.Root, "root")
	if err != nil {
		return nil, err
	}
	return &Description{Vars: merged, Root: root}, nil
}

type builder struct {
	vars   map[string]bool
	item   string
	inEach bool
}

func invalid(path string, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", path, ErrInvalidNode, fmt.Sprintf(format, args...))
}

// kind returns the single kind key set on d.
func (d *NodeDesc) kind() (string, error) {
	var set []string
	add := func(name string, ok bool) {
		if ok {
			set = append(set, name)
		}
	}
	add("text", d.Text != nil)
	add("box", d.Box != nil)
	add("empty", d.Empty != nil)
	add("vstack", d.VStack != nil)
	add("hstack", d.HStack != nil)
	add("zstack", d.ZStack != nil)
	add("wrap", d.Wrap != nil)
	add("center", d.Center != nil)
	add("relative", d.Relative != nil)
	add("inset", d.Inset != nil)
	add("overlay", d.Overlay != nil)
	add("background", d.Background != nil)
	add("ratio", d.Ratio != nil)
	add("spacer", d.Spacer != nil)
	add("if", d.If != nil)
	add("each", d.Each != nil)

	switch len(set) {
	case 0:
		return "", fmt.Errorf("no kind key")
	case 1:
		return set[0], nil
	default:
		return "", fmt.Errorf("several kind keys: %s", strings.Join(set, ", "))
	}
}

// node builds d. It returns a nil node for a false if without else.
func (b builder) node(d *NodeDesc, path string) (flexkit.Node, error) {
	kind, err := d.kind()
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	path += "." + kind

	opts, err := b.options(d.Style)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}

	var n flexkit.Node
	switch kind {
	case "text":
		return flexkit.Label(b.expand(*d.Text), opts...), nil
	case "box":
		return flexkit.Box(opts...), nil
	case "empty":
		n = flexkit.Empty()
	case "vstack", "hstack":
		n, err = b.stack(kind, d, path)
	case "zstack":
		n, err = b.layer(flexkit.ZStack, d.ZStack, path)
	case "wrap":
		n, err = b.layer(flexkit.Wrap, d.Wrap, path)
	case "center":
		n, err = b.center(d.Center, path)
	case "relative":
		n, err = b.relative(d.Relative, path)
	case "inset":
		n, err = b.inset(d.Inset, path)
	case "overlay":
		n, err = b.dual(func(c, o flexkit.Node) flexkit.Node { return flexkit.Overlay(c, o) },
			d.Overlay.Content, d.Overlay.Overlay, "overlay", path)
	case "background":
		n, err = b.dual(func(c, o flexkit.Node) flexkit.Node { return flexkit.Background(c, o) },
			d.Background.Content, d.Background.Background, "background", path)
	case "ratio":
		n, err = b.ratio(d.Ratio, path)
	case "spacer":
		n, err = b.spacer(d.Spacer, path)
	case "if":
		n, err = b.conditional(d.If, path)
	case "each":
		n, err = b.each(d.Each, path)
	}
	if err != nil {
		return nil, err
	}

	if n != nil && len(opts) > 0 {
		n = flexkit.Apply(n, flexkit.Styled(opts...))
	}
	return n, nil
}

// child builds an optional single child. A missing child is empty content.
func (b builder) child(d *NodeDesc, path string) (flexkit.Node, error) {
	if d == nil {
		return flexkit.Empty(), nil
	}
	return b.node(d, path)
}

func (b builder) children(list []NodeDesc, path string) (flexkit.Node, error) {
	nodes := make([]flexkit.Node, 0, len(list))
	for i := range list {
		n, err := b.node(&list[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return flexkit.Build(nodes...), nil
}

func (b builder) stack(kind string, d *NodeDesc, path string) (flexkit.Node, error) {
	desc, build := d.VStack, flexkit.VStack
	if kind == "hstack" {
		desc, build = d.HStack, flexkit.HStack
	}

	justify, err := parseJustify(desc.Justify)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	align, err := parseAlign(desc.Align)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	if desc.Spacing < 0 {
		return nil, invalid(path, "negative spacing %d", desc.Spacing)
	}

	content, err := b.children(desc.Children, path)
	if err != nil {
		return nil, err
	}
	return build(content,
		flexkit.WithSpacing(desc.Spacing),
		flexkit.WithJustify(justify),
		flexkit.WithAlign(align),
	), nil
}

func (b builder) layer(build func(flexkit.Node) flexkit.LayerNode, desc *GroupDesc, path string) (flexkit.Node, error) {
	content, err := b.children(desc.Children, path)
	if err != nil {
		return nil, err
	}
	return build(content), nil
}

func (b builder) center(desc *CenterDesc, path string) (flexkit.Node, error) {
	axes, err := parseAxes(desc.Axes)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	sizing, err := parseSizing(desc.Sizing)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	content, err := b.child(desc.Child, path+".child")
	if err != nil {
		return nil, err
	}
	return flexkit.Center(content, flexkit.CenterOn(axes), flexkit.WithSizing(sizing)), nil
}

func (b builder) relative(desc *RelativeDesc, path string) (flexkit.Node, error) {
	x, err := parsePosition(desc.X)
	if err != nil {
		return nil, invalid(path, "x: %v", err)
	}
	y, err := parsePosition(desc.Y)
	if err != nil {
		return nil, invalid(path, "y: %v", err)
	}
	sizing, err := parseSizing(desc.Sizing)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	content, err := b.child(desc.Child, path+".child")
	if err != nil {
		return nil, err
	}
	return flexkit.Relative(content, flexkit.AtX(x), flexkit.AtY(y), flexkit.WithSizing(sizing)), nil
}

func (b builder) inset(desc *InsetDesc, path string) (flexkit.Node, error) {
	content, err := b.child(desc.Child, path+".child")
	if err != nil {
		return nil, err
	}
	return flexkit.Inset(content, desc.Edges.Edges), nil
}

func (b builder) dual(build func(content, other flexkit.Node) flexkit.Node, content, other *NodeDesc, role, path string) (flexkit.Node, error) {
	c, err := b.child(content, path+".content")
	if err != nil {
		return nil, err
	}
	o, err := b.child(other, path+"."+role)
	if err != nil {
		return nil, err
	}
	return build(c, o), nil
}

func (b builder) ratio(desc *RatioDesc, path string) (flexkit.Node, error) {
	value := desc.Value
	if value == 0 && desc.Width != 0 {
		value = desc.Height / desc.Width
	}
	if !(value > 0) || math.IsInf(value, 0) {
		return nil, invalid(path, "ratio needs a positive value or width and height")
	}
	content, err := b.child(desc.Child, path+".child")
	if err != nil {
		return nil, err
	}
	return flexkit.AspectRatio(content, value), nil
}

func (b builder) spacer(desc *SpacerDesc, path string) (flexkit.Node, error) {
	if desc.Min < 0 {
		return nil, invalid(path, "negative min %d", desc.Min)
	}
	switch desc.Axis {
	case "", "horizontal":
		return flexkit.HSpacer(desc.Min), nil
	case "vertical":
		return flexkit.VSpacer(desc.Min), nil
	}
	return nil, invalid(path, "unknown axis %q", desc.Axis)
}

// conditional builds both branches so errors surface regardless of the
// variable's value.
func (b builder) conditional(desc *IfDesc, path string) (flexkit.Node, error) {
	cond, ok := b.vars[desc.Var]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownVar, desc.Var)
	}
	if desc.Then == nil {
		return nil, invalid(path, "missing then")
	}

	then, err := b.node(desc.Then, path+".then")
	if err != nil {
		return nil, err
	}
	if desc.Else == nil {
		return flexkit.When(cond, func() flexkit.Node { return then }), nil
	}
	otherwise, err := b.node(desc.Else, path+".else")
	if err != nil {
		return nil, err
	}
	return flexkit.If(cond,
		func() flexkit.Node { return then },
		func() flexkit.Node { return otherwise },
	), nil
}

func (b builder) each(desc *EachDesc, path string) (flexkit.Node, error) {
	if desc.Node == nil {
		return nil, invalid(path, "missing node")
	}

	var firstErr error
	items := flexkit.ForEach(desc.Items, func(item string) flexkit.Node {
		inner := b
		inner.item, inner.inEach = item, true
		n, err := inner.node(desc.Node, path+".node")
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return n
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return items, nil
}

// expand substitutes the current each item into s.
func (b builder) expand(s string) string {
	if !b.inEach {
		return s
	}
	return strings.ReplaceAll(s, "{item}", b.item)
}

func (b builder) options(s Style) ([]flexkit.Option, error) {
	var opts []flexkit.Option

	if s.Name != "" {
		opts = append(opts, flexkit.WithName(b.expand(s.Name)))
	}

	dims := []struct {
		key     string
		dim     Dim
		fixed   func(int) flexkit.Option
		percent func(float64) flexkit.Option
		auto    func() flexkit.Option
	}{
		{"width", s.Width, flexkit.WithWidth, flexkit.WithWidthPercent, flexkit.WithWidthAuto},
		{"height", s.Height, flexkit.WithHeight, flexkit.WithHeightPercent, flexkit.WithHeightAuto},
		{"min-width", s.MinWidth, flexkit.WithMinWidth, nil, nil},
		{"min-height", s.MinHeight, flexkit.WithMinHeight, nil, nil},
		{"max-width", s.MaxWidth, flexkit.WithMaxWidth, nil, nil},
		{"max-height", s.MaxHeight, flexkit.WithMaxHeight, nil, nil},
	}
	for _, d := range dims {
		if !d.dim.Set {
			continue
		}
		switch d.dim.Value.Unit {
		case flexkit.UnitFixed:
			opts = append(opts, d.fixed(int(d.dim.Value.Amount)))
		case flexkit.UnitPercent:
			if d.percent == nil {
				return nil, fmt.Errorf("%s must be a cell count", d.key)
			}
			opts = append(opts, d.percent(d.dim.Value.Amount))
		case flexkit.UnitAuto:
			if d.auto == nil {
				return nil, fmt.Errorf("%s must be a cell count", d.key)
			}
			opts = append(opts, d.auto())
		}
	}

	if s.Grow != nil {
		opts = append(opts, flexkit.WithFlexGrow(*s.Grow))
	}
	if s.Shrink != nil {
		opts = append(opts, flexkit.WithFlexShrink(*s.Shrink))
	}
	if s.AlignSelf != "" {
		a, err := parseAlign(s.AlignSelf)
		if err != nil {
			return nil, fmt.Errorf("align-self: %w", err)
		}
		opts = append(opts, flexkit.WithAlignSelf(a))
	}
	if s.Padding.Set {
		e := s.Padding.Edges
		opts = append(opts, flexkit.WithPaddingTRBL(e.Top, e.Right, e.Bottom, e.Left))
	}
	if s.Margin.Set {
		e := s.Margin.Edges
		opts = append(opts, flexkit.WithMarginTRBL(e.Top, e.Right, e.Bottom, e.Left))
	}
	if s.Border != "" {
		border, ok := flexkit.ParseBorder(s.Border)
		if !ok {
			return nil, fmt.Errorf("unknown border %q", s.Border)
		}
		opts = append(opts, flexkit.WithBorder(border))
	}
	return opts, nil
}
