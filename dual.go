package flexkit

// OverlayNode draws one element on top of another.
type OverlayNode struct {
	content Node
	overlay Node
}

// Overlay layers overlay over content. The result is sized by content.
// Both sides must produce exactly one element.
func Overlay(content, overlay Node) OverlayNode {
	return OverlayNode{content: content, overlay: overlay}
}

// Produce returns one overlay element with children [content, overlay].
func (n OverlayNode) Produce() []*Element {
	return []*Element{newDual(KindOverlay,
		produceOne("overlay", "content", n.content),
		produceOne("overlay", "overlay", n.overlay),
	)}
}

// BackgroundNode draws one element behind another.
type BackgroundNode struct {
	content    Node
	background Node
}

// Background layers background behind content. The result is sized by
// content. Both sides must produce exactly one element.
func Background(content, background Node) BackgroundNode {
	return BackgroundNode{content: content, background: background}
}

// Produce returns one background element with children [content, background].
// Paint order puts the background first.
func (n BackgroundNode) Produce() []*Element {
	return []*Element{newDual(KindBackground,
		produceOne("background", "content", n.content),
		produceOne("background", "background", n.background),
	)}
}

func newDual(kind Kind, primary, secondary *Element) *Element {
	e := newElement(kind, layerStyle())
	e.addChild(primary, secondary)
	return e
}
