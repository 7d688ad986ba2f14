package layout

// layoutLayer gives every child the full content rect and positions it on
// each axis with the container's Placement. Children keep declaration order,
// which is also back-to-front paint order.
func layoutLayer(node Layoutable, style Style, contentRect Rect) {
	for _, child := range node.LayoutChildren() {
		cs := child.LayoutStyle()
		iw, ih := child.IntrinsicSize()

		slotW := contentRect.Width - cs.Margin.Horizontal()
		slotH := contentRect.Height - cs.Margin.Vertical()

		w := layerSize(cs.Width, style.Place.X, slotW, iw)
		h := layerSize(cs.Height, style.Place.Y, slotH, ih)

		x := contentRect.X + cs.Margin.Left + calculateAlignOffset(style.Place.X, slotW, w)
		y := contentRect.Y + cs.Margin.Top + calculateAlignOffset(style.Place.Y, slotH, h)

		calculateNode(child, Rect{X: x, Y: y, Width: w, Height: h})
	}
}

// layerSize resolves one axis of a layered child. Auto sizes stretch when
// the placement stretches and shrink to the intrinsic size otherwise.
func layerSize(v Value, place Align, slot, intrinsic int) int {
	switch {
	case !v.IsAuto():
		return v.Resolve(slot, slot)
	case place == AlignStretch:
		return max(slot, 0)
	default:
		return max(min(intrinsic, slot), 0)
	}
}
