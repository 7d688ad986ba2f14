package flexkit

// Node is anything that can produce concrete elements.
//
// Produce must be pure: calling it twice on the same node yields
// structurally equal sequences in the same order. Nodes are built once per
// layout pass, produced once and discarded.
type Node interface {
	Produce() []*Element
}

// NodeFunc adapts a function to the Node interface.
type NodeFunc func() []*Element

// Produce calls f.
func (f NodeFunc) Produce() []*Element {
	return f()
}

// LeafNode wraps one pre-existing element.
type LeafNode struct {
	element *Element
}

// Leaf wraps an element the caller built directly. Produce hands out the
// wrapped element itself, so a leaf belongs in exactly one tree.
func Leaf(e *Element) LeafNode {
	return LeafNode{element: e}
}

// Produce returns the wrapped element, or a placeholder for a nil element.
func (n LeafNode) Produce() []*Element {
	if n.element == nil {
		return EmptyNode{}.Produce()
	}
	return []*Element{n.element}
}

// LabelNode produces a fresh text element on every call.
type LabelNode struct {
	text string
	opts []Option
}

// Label describes a text leaf.
func Label(text string, opts ...Option) LabelNode {
	return LabelNode{text: text, opts: opts}
}

// Produce builds the text element.
func (n LabelNode) Produce() []*Element {
	return []*Element{Text(n.text, n.opts...)}
}

// BoxNode produces a fresh box element on every call.
type BoxNode struct {
	opts []Option
}

// Box describes a box leaf, typically sized or bordered with opts.
func Box(opts ...Option) BoxNode {
	return BoxNode{opts: opts}
}

// Produce builds the box element.
func (n BoxNode) Produce() []*Element {
	return []*Element{New(n.opts...)}
}

// EmptyNode stands in for absent content.
type EmptyNode struct{}

// Empty returns the node used for empty blocks.
func Empty() EmptyNode {
	return EmptyNode{}
}

// Produce returns a single placeholder element so containers that need
// exactly one child still get one.
func (EmptyNode) Produce() []*Element {
	return []*Element{newElement(KindPlaceholder, DefaultLayoutStyle())}
}

// produceOrEmpty treats a nil node as empty content.
func produceOrEmpty(n Node) []*Element {
	if n == nil {
		return EmptyNode{}.Produce()
	}
	return n.Produce()
}
