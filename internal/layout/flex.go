package layout

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node      Layoutable
	style     Style
	baseSize  int
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
}

// layoutFlex arranges the children of a node along its main axis.
// This implements the core flexbox algorithm.
func layoutFlex(node Layoutable, style Style, contentRect Rect) {
	children := node.LayoutChildren()
	isRow := style.Direction == Row

	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes and flex factors.
	// Margin is part of the child's outer size in the flex calculation.
	items := make([]flexItem, len(children))
	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0

	for i, child := range children {
		item := &items[i]
		item.node = child
		item.style = child.LayoutStyle()

		iw, ih := child.IntrinsicSize()
		if isRow {
			item.baseSize = item.style.Width.Resolve(mainSize, iw) + item.style.Margin.Horizontal()
		} else {
			item.baseSize = item.style.Height.Resolve(mainSize, ih) + item.style.Margin.Vertical()
		}

		totalBase += item.baseSize
		totalGrow += item.style.FlexGrow
		totalShrink += item.style.FlexShrink
	}

	totalGap := style.Gap * max(0, len(children)-1)
	freeSpace := mainSize - totalBase - totalGap

	// Phase 2: distribute free space
	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i := range items {
			extra := int(float64(freeSpace) * items[i].style.FlexGrow / totalGrow)
			items[i].mainSize = items[i].baseSize + extra
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := range items {
			reduction := int(float64(deficit) * items[i].style.FlexShrink / totalShrink)
			items[i].mainSize = max(0, items[i].baseSize-reduction)
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Phase 3: min/max constraints
	totalUsed := 0
	for i := range items {
		minMain := resolveMinMain(items[i].style, isRow, mainSize)
		maxMain := resolveMaxMain(items[i].style, isRow, mainSize)
		items[i].mainSize = clamp(items[i].mainSize, minMain, maxMain)
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: main axis positions (justify)
	offset := calculateJustifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, freeSpace, len(items))
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}

	// Phase 5: cross-axis sizing and alignment
	for i := range items {
		item := &items[i]
		align := style.AlignItems
		if item.style.AlignSelf != nil {
			align = *item.style.AlignSelf
		}

		iw, ih := item.node.IntrinsicSize()
		crossValue, crossMargin, intrinsicCross := item.style.Height, item.style.Margin.Vertical(), ih
		if !isRow {
			crossValue, crossMargin, intrinsicCross = item.style.Width, item.style.Margin.Horizontal(), iw
		}
		availableCross := crossSize - crossMargin

		var contentCross int
		switch {
		case !crossValue.IsAuto():
			contentCross = crossValue.Resolve(availableCross, availableCross)
		case align == AlignStretch:
			contentCross = availableCross
		default:
			contentCross = min(intrinsicCross, availableCross)
		}

		// Slot size includes content + margin
		item.crossSize = contentCross + crossMargin
		item.crossPos = calculateAlignOffset(align, crossSize, item.crossSize)
	}

	// Phase 6: convert to rects and recurse
	for i := range items {
		item := &items[i]
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + item.mainPos,
				Y:      contentRect.Y + item.crossPos,
				Width:  item.mainSize,
				Height: item.crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + item.crossPos,
				Y:      contentRect.Y + item.mainPos,
				Width:  item.crossSize,
				Height: item.mainSize,
			}
		}

		// The child receives its slot minus margin and does not re-apply margin.
		calculateNode(item.node, slot.Inset(item.style.Margin))
	}
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// resolveMinMain resolves the minimum size constraint for the main axis.
func resolveMinMain(style Style, isRow bool, available int) int {
	if isRow {
		return style.MinWidth.Resolve(available, 0)
	}
	return style.MinHeight.Resolve(available, 0)
}

// resolveMaxMain resolves the maximum size constraint for the main axis.
// Unset maximums fall back to the available space.
func resolveMaxMain(style Style, isRow bool, available int) int {
	if isRow {
		return style.MaxWidth.Resolve(available, available)
	}
	return style.MaxHeight.Resolve(available, available)
}
