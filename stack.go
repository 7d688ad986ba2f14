package flexkit

// StackNode arranges its content's elements along one axis.
type StackNode struct {
	direction Direction
	spacing   int
	justify   Justify
	align     Align
	content   Node
}

// StackOption configures a StackNode.
type StackOption func(*StackNode)

// WithSpacing sets the gap between children in cells. Default 0.
func WithSpacing(cells int) StackOption {
	return func(s *StackNode) {
		s.spacing = cells
	}
}

// WithJustify sets main-axis distribution. Default JustifyStart.
func WithJustify(j Justify) StackOption {
	return func(s *StackNode) {
		s.justify = j
	}
}

// WithAlign sets cross-axis alignment. Default AlignStretch.
func WithAlign(a Align) StackOption {
	return func(s *StackNode) {
		s.align = a
	}
}

// VStack lays content out top to bottom.
func VStack(content Node, opts ...StackOption) StackNode {
	return newStack(Column, content, opts)
}

// HStack lays content out left to right.
func HStack(content Node, opts ...StackOption) StackNode {
	return newStack(Row, content, opts)
}

func newStack(direction Direction, content Node, opts []StackOption) StackNode {
	s := StackNode{
		direction: direction,
		justify:   JustifyStart,
		align:     AlignStretch,
		content:   content,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Produce returns one stack element whose children are the content's output.
func (s StackNode) Produce() []*Element {
	style := DefaultLayoutStyle()
	style.Direction = s.direction
	style.Gap = s.spacing
	style.JustifyContent = s.justify
	style.AlignItems = s.align

	e := newElement(KindStack, style)
	e.addChild(produceOrEmpty(s.content)...)
	return []*Element{e}
}

// LayerNode stacks its content's elements back to front.
type LayerNode struct {
	kind    Kind
	content Node
}

// ZStack layers content in declaration order, first element at the back.
func ZStack(content Node) LayerNode {
	return LayerNode{kind: KindLayer, content: content}
}

// Wrap groups content under one pass-through wrapper element.
func Wrap(content Node) LayerNode {
	return LayerNode{kind: KindWrapper, content: content}
}

// Produce returns one layer or wrapper element holding all content elements.
func (n LayerNode) Produce() []*Element {
	e := newElement(n.kind, layerStyle())
	e.addChild(produceOrEmpty(n.content)...)
	return []*Element{e}
}
