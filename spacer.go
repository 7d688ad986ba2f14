package flexkit

// SpacerNode produces a flexible gap that grows to absorb free space.
type SpacerNode struct {
	direction Direction
	minLength int
}

// HSpacer is a spacer for horizontal stacks, at least minLength cells wide.
func HSpacer(minLength int) SpacerNode {
	return SpacerNode{direction: Row, minLength: minLength}
}

// VSpacer is a spacer for vertical stacks, at least minLength cells tall.
func VSpacer(minLength int) SpacerNode {
	return SpacerNode{direction: Column, minLength: minLength}
}

// Produce returns one spacer element.
func (n SpacerNode) Produce() []*Element {
	style := DefaultLayoutStyle()
	style.FlexGrow = 1
	style.FlexShrink = 0
	if n.direction == Row {
		style.MinWidth = Fixed(n.minLength)
	} else {
		style.MinHeight = Fixed(n.minLength)
	}
	return []*Element{newElement(KindSpacer, style)}
}
