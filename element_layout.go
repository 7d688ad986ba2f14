package flexkit

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// --- Implement Layoutable interface ---

// LayoutStyle returns the layout style properties for this element.
// If the element has a border, padding is increased to account for border width.
func (e *Element) LayoutStyle() LayoutStyle {
	style := e.style
	if e.border != BorderNone {
		style.Padding = style.Padding.Add(EdgeAll(1))
	}
	return style
}

// LayoutChildren returns the children to be laid out.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// SetLayout is called by the layout engine to store computed layout.
func (e *Element) SetLayout(l LayoutResult) {
	e.layout = l
}

// GetLayout returns the last computed layout.
func (e *Element) GetLayout() LayoutResult {
	return e.layout
}

// IsDirty returns whether this element needs layout recalculation.
func (e *Element) IsDirty() bool {
	return e.dirty
}

// SetDirty marks this element as needing recalculation or not.
func (e *Element) SetDirty(dirty bool) {
	e.dirty = dirty
}

// IntrinsicSize returns the natural content-based border-box dimensions.
// Text measures its widest line and line count. Flex containers sum their
// children along the main axis and take the maximum across it. Layer
// containers take the maximum of their children, except overlay and
// background elements, which size to their content child alone.
func (e *Element) IntrinsicSize() (width, height int) {
	switch {
	case e.text != "":
		for _, line := range e.lines() {
			width = max(width, runewidth.StringWidth(line))
		}
		height = len(e.lines())
	case len(e.children) == 0:
	case e.kind == KindOverlay || e.kind == KindBackground:
		width, height = outerSize(e.children[0])
	case e.style.Arrange == ArrangeLayer:
		for _, child := range e.children {
			w, h := outerSize(child)
			width = max(width, w)
			height = max(height, h)
		}
	default:
		width, height = e.flexIntrinsic()
	}

	if ratio := e.style.AspectRatio; ratio > 0 {
		height = int(math.Round(float64(width) * ratio))
	}

	style := e.LayoutStyle()
	return width + style.Padding.Horizontal(), height + style.Padding.Vertical()
}

// flexIntrinsic sums children on the main axis (with gaps) and takes the
// maximum on the cross axis.
func (e *Element) flexIntrinsic() (width, height int) {
	isRow := e.style.Direction == Row
	for i, child := range e.children {
		w, h := outerSize(child)
		if isRow {
			width += w
			height = max(height, h)
		} else {
			width = max(width, w)
			height += h
		}
		if i > 0 {
			if isRow {
				width += e.style.Gap
			} else {
				height += e.style.Gap
			}
		}
	}
	return width, height
}

// outerSize is the space a child asks its parent for: fixed dimensions when
// set, intrinsic otherwise, raised to any fixed minimum, plus margin.
func outerSize(child *Element) (width, height int) {
	width, height = child.IntrinsicSize()
	style := child.style
	if style.Width.Unit == UnitFixed {
		width = int(style.Width.Amount)
	}
	if style.Height.Unit == UnitFixed {
		height = int(style.Height.Amount)
	}
	if style.MinWidth.Unit == UnitFixed {
		width = max(width, int(style.MinWidth.Amount))
	}
	if style.MinHeight.Unit == UnitFixed {
		height = max(height, int(style.MinHeight.Amount))
	}
	return width + style.Margin.Horizontal(), height + style.Margin.Vertical()
}

// Calculate computes layout for this Element and all descendants.
func (e *Element) Calculate(availableWidth, availableHeight int) {
	Calculate(e, availableWidth, availableHeight)
}
