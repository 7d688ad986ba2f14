package flexkit

import "strconv"

// Snapshot is a detached, comparable description of a produced element
// tree. Attrs lists only the layout properties that differ from
// DefaultLayoutStyle, keyed by property name.
type Snapshot struct {
	Kind     string            `yaml:"kind" json:"kind"`
	Name     string            `yaml:"name,omitempty" json:"name,omitempty"`
	Text     string            `yaml:"text,omitempty" json:"text,omitempty"`
	Border   string            `yaml:"border,omitempty" json:"border,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Children []Snapshot        `yaml:"children,omitempty" json:"children,omitempty"`
}

// Snapshot describes the subtree rooted at e.
func (e *Element) Snapshot() Snapshot {
	s := Snapshot{
		Kind:  e.kind.String(),
		Name:  e.name,
		Text:  e.text,
		Attrs: styleAttrs(e.style),
	}
	if e.border != BorderNone {
		s.Border = e.border.String()
	}
	for _, child := range e.children {
		s.Children = append(s.Children, child.Snapshot())
	}
	return s
}

// Snapshots describes each element in order.
func Snapshots(elems []*Element) []Snapshot {
	out := make([]Snapshot, len(elems))
	for i, e := range elems {
		out[i] = e.Snapshot()
	}
	return out
}

func styleAttrs(style LayoutStyle) map[string]string {
	def := DefaultLayoutStyle()
	attrs := map[string]string{}
	set := func(key string, changed bool, value string) {
		if changed {
			attrs[key] = value
		}
	}

	set("width", style.Width != def.Width, style.Width.String())
	set("height", style.Height != def.Height, style.Height.String())
	set("min-width", style.MinWidth != def.MinWidth, style.MinWidth.String())
	set("min-height", style.MinHeight != def.MinHeight, style.MinHeight.String())
	set("max-width", style.MaxWidth != def.MaxWidth, style.MaxWidth.String())
	set("max-height", style.MaxHeight != def.MaxHeight, style.MaxHeight.String())
	set("ratio", style.AspectRatio != def.AspectRatio, strconv.FormatFloat(style.AspectRatio, 'f', -1, 64))
	set("fit-width", style.Fit.Has(FitWidth), "true")
	set("fit-height", style.Fit.Has(FitHeight), "true")
	set("arrange", style.Arrange != def.Arrange, style.Arrange.String())

	if style.Arrange == ArrangeLayer {
		set("place-x", style.Place.X != def.Place.X, style.Place.X.String())
		set("place-y", style.Place.Y != def.Place.Y, style.Place.Y.String())
	} else {
		set("direction", style.Direction != def.Direction, style.Direction.String())
		set("justify", style.JustifyContent != def.JustifyContent, style.JustifyContent.String())
		set("align", style.AlignItems != def.AlignItems, style.AlignItems.String())
		set("gap", style.Gap != def.Gap, strconv.Itoa(style.Gap))
	}

	set("grow", style.FlexGrow != def.FlexGrow, strconv.FormatFloat(style.FlexGrow, 'f', -1, 64))
	set("shrink", style.FlexShrink != def.FlexShrink, strconv.FormatFloat(style.FlexShrink, 'f', -1, 64))
	if style.AlignSelf != nil {
		attrs["align-self"] = style.AlignSelf.String()
	}
	set("padding", style.Padding != def.Padding, edgesString(style.Padding))
	set("margin", style.Margin != def.Margin, edgesString(style.Margin))

	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

func edgesString(e Edges) string {
	return strconv.Itoa(e.Top) + " " + strconv.Itoa(e.Right) + " " +
		strconv.Itoa(e.Bottom) + " " + strconv.Itoa(e.Left)
}
