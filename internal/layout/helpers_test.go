package layout

// testNode is a minimal Layoutable used by the engine tests.
type testNode struct {
	style     Style
	children  []*testNode
	parent    *testNode
	layout    Layout
	dirty     bool
	intrinsic [2]int
	laidOut   int
}

func newTestNode(style Style) *testNode {
	return &testNode{style: style, dirty: true}
}

func (n *testNode) AddChild(children ...*testNode) {
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	n.MarkDirty()
}

func (n *testNode) SetIntrinsicSize(width, height int) {
	n.intrinsic = [2]int{width, height}
}

func (n *testNode) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) SetLayout(l Layout) {
	n.layout = l
	n.laidOut++
}

func (n *testNode) GetLayout() Layout   { return n.layout }
func (n *testNode) IsDirty() bool       { return n.dirty }
func (n *testNode) SetDirty(dirty bool) { n.dirty = dirty }

func (n *testNode) IntrinsicSize() (int, int) {
	return n.intrinsic[0], n.intrinsic[1]
}

// styled returns DefaultStyle with fn applied.
func styled(fn func(s *Style)) Style {
	s := DefaultStyle()
	fn(&s)
	return s
}
