package flexkit

import "strings"

// Element is a concrete node of the layout engine.
// It implements Layoutable and owns its children directly.
type Element struct {
	kind Kind
	name string

	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	// Layout properties
	style  LayoutStyle
	layout LayoutResult
	dirty  bool

	// Visual properties
	border BorderStyle
	text   string
}

// Compile-time check that Element implements Layoutable
var _ Layoutable = (*Element)(nil)

// New creates a new box Element with the given options.
// By default, an Element has Auto width/height (flexes to fill available space).
func New(opts ...Option) *Element {
	return newElement(KindBox, DefaultLayoutStyle(), opts...)
}

// Text creates a text leaf. Multi-line content is split on newlines.
func Text(content string, opts ...Option) *Element {
	e := newElement(KindText, DefaultLayoutStyle(), opts...)
	e.text = content
	return e
}

// newElement is the constructor container adapters share.
func newElement(kind Kind, style LayoutStyle, opts ...Option) *Element {
	e := &Element{
		kind:  kind,
		style: style,
		dirty: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// layerStyle is the base style of every layer-arranged container.
func layerStyle() LayoutStyle {
	style := DefaultLayoutStyle()
	style.Arrange = ArrangeLayer
	return style
}

// lines splits text content into display lines.
func (e *Element) lines() []string {
	if e.text == "" {
		return nil
	}
	return strings.Split(e.text, "\n")
}
