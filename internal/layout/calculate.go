package layout

import "math"

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout populated.
// Clean nodes whose allocated space is unchanged are skipped.
//
// availableWidth and availableHeight specify the root constraint
// (typically the terminal size).
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	// The root resolves its own width/height against the available space.
	// Children receive their size from the parent's arrangement instead.
	style := root.LayoutStyle()
	width := style.Width.Resolve(availableWidth, availableWidth)
	height := style.Height.Resolve(availableHeight, availableHeight)

	calculateNode(root, NewRect(0, 0, width, height))
}

// calculateNode computes the layout for a single node within the available space.
// The available rect is the border box space allocated by the parent
// (after the parent has already applied this node's margin).
func calculateNode(node Layoutable, available Rect) {
	style := node.LayoutStyle()
	borderBox := computeBorderBox(node, style, available)

	if !node.IsDirty() && node.GetLayout().Rect == borderBox {
		return
	}

	contentRect := borderBox.Inset(style.Padding)

	if len(node.LayoutChildren()) > 0 {
		switch style.Arrange {
		case ArrangeLayer:
			layoutLayer(node, style, contentRect)
		default:
			layoutFlex(node, style, contentRect)
		}
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
	node.SetDirty(false)
}

// computeBorderBox calculates the border box for a node from the slot its
// parent allocated. Width/Height were already used by the parent to size the
// slot, so only fit, min/max and aspect-ratio constraints apply here.
func computeBorderBox(node Layoutable, style Style, available Rect) Rect {
	width := available.Width
	height := available.Height

	if style.Fit != FitNone {
		iw, ih := node.IntrinsicSize()
		if style.Fit.Has(FitWidth) {
			width = min(width, iw)
		}
		if style.Fit.Has(FitHeight) {
			height = min(height, ih)
		}
	}

	minWidth := style.MinWidth.Resolve(available.Width, 0)
	maxWidth := style.MaxWidth.Resolve(available.Width, available.Width)
	width = clamp(width, minWidth, maxWidth)

	minHeight := style.MinHeight.Resolve(available.Height, 0)
	maxHeight := style.MaxHeight.Resolve(available.Height, available.Height)
	height = clamp(height, minHeight, maxHeight)

	if ratio := style.AspectRatio; ratio > 0 && width > 0 {
		h := int(math.Round(float64(width) * ratio))
		if h > available.Height {
			h = available.Height
			width = int(math.Round(float64(h) / ratio))
		}
		height = h
	}

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(width, 0),
		Height: max(height, 0),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
