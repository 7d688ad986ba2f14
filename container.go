package flexkit

// CenterAxes selects the axes a CenterNode centers on.
type CenterAxes uint8

const (
	CenterNone CenterAxes = iota
	CenterX
	CenterY
	CenterXY
)

// Position places a child on one axis of a RelativeNode.
type Position uint8

const (
	PositionStart Position = iota
	PositionCenter
	PositionEnd
)

func (p Position) align() Align {
	switch p {
	case PositionCenter:
		return AlignCenter
	case PositionEnd:
		return AlignEnd
	default:
		return AlignStart
	}
}

// Sizing selects the axes on which a centering or relative element shrinks
// to its child instead of filling the space it is given.
type Sizing uint8

const (
	SizingDefault Sizing = iota
	SizingMinimumX
	SizingMinimumY
	SizingMinimumXY
)

func (s Sizing) fit() Fit {
	switch s {
	case SizingMinimumX:
		return FitWidth
	case SizingMinimumY:
		return FitHeight
	case SizingMinimumXY:
		return FitBoth
	default:
		return FitNone
	}
}

// placeParams holds the parameters shared by Center and Relative.
type placeParams struct {
	axes   CenterAxes
	x, y   Position
	sizing Sizing
}

// PlaceOption configures a CenterNode or RelativeNode.
type PlaceOption func(*placeParams)

// CenterOn selects the centering axes of a CenterNode. Default CenterXY.
func CenterOn(axes CenterAxes) PlaceOption {
	return func(p *placeParams) {
		p.axes = axes
	}
}

// AtX sets the horizontal position of a RelativeNode. Default PositionStart.
func AtX(pos Position) PlaceOption {
	return func(p *placeParams) {
		p.x = pos
	}
}

// AtY sets the vertical position of a RelativeNode. Default PositionStart.
func AtY(pos Position) PlaceOption {
	return func(p *placeParams) {
		p.y = pos
	}
}

// WithSizing sets the sizing option. Default SizingDefault.
func WithSizing(s Sizing) PlaceOption {
	return func(p *placeParams) {
		p.sizing = s
	}
}

func newPlaceParams(axes CenterAxes, opts []PlaceOption) placeParams {
	p := placeParams{axes: axes}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// CenterNode centers each of its content's elements.
type CenterNode struct {
	params  placeParams
	content Node
}

// Center centers content; see CenterOn and WithSizing.
func Center(content Node, opts ...PlaceOption) CenterNode {
	return CenterNode{params: newPlaceParams(CenterXY, opts), content: content}
}

// Produce wraps every content element in its own center element.
func (n CenterNode) Produce() []*Element {
	place := Placement{X: AlignStart, Y: AlignStart}
	if n.params.axes == CenterX || n.params.axes == CenterXY {
		place.X = AlignCenter
	}
	if n.params.axes == CenterY || n.params.axes == CenterXY {
		place.Y = AlignCenter
	}
	return wrapEach(KindCenter, n.content, func(style *LayoutStyle) {
		style.Place = place
		style.Fit = n.params.sizing.fit()
	})
}

// RelativeNode pins each of its content's elements to a start, center or
// end position on each axis.
type RelativeNode struct {
	params  placeParams
	content Node
}

// Relative positions content; see AtX, AtY and WithSizing.
func Relative(content Node, opts ...PlaceOption) RelativeNode {
	return RelativeNode{params: newPlaceParams(CenterNone, opts), content: content}
}

// Produce wraps every content element in its own relative element.
func (n RelativeNode) Produce() []*Element {
	return wrapEach(KindRelative, n.content, func(style *LayoutStyle) {
		style.Place = Placement{X: n.params.x.align(), Y: n.params.y.align()}
		style.Fit = n.params.sizing.fit()
	})
}

// InsetNode pads each of its content's elements.
type InsetNode struct {
	insets  Edges
	content Node
}

// Inset pads content by insets.
func Inset(content Node, insets Edges) InsetNode {
	return InsetNode{insets: insets, content: content}
}

// Produce wraps every content element in its own inset element.
func (n InsetNode) Produce() []*Element {
	return wrapEach(KindInset, n.content, func(style *LayoutStyle) {
		style.Padding = n.insets
	})
}

// wrapEach builds one single-child layer element of kind per element content
// produces.
func wrapEach(kind Kind, content Node, configure func(*LayoutStyle)) []*Element {
	in := produceOrEmpty(content)
	out := make([]*Element, 0, len(in))
	for _, child := range in {
		style := layerStyle()
		configure(&style)
		e := newElement(kind, style)
		e.addChild(child)
		out = append(out, e)
	}
	return out
}
