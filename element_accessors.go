package flexkit

// Kind returns the engine category of the element.
func (e *Element) Kind() Kind {
	return e.kind
}

// Name returns the element's label, if any.
func (e *Element) Name() string {
	return e.name
}

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}

// Style returns the current layout style.
func (e *Element) Style() LayoutStyle {
	return e.style
}

// SetStyle updates the layout style and marks the element dirty.
func (e *Element) SetStyle(style LayoutStyle) {
	e.style = style
	e.MarkDirty()
}

// Border returns the border style.
func (e *Element) Border() BorderStyle {
	return e.border
}

// Rect returns the computed border box.
func (e *Element) Rect() Rect {
	return e.layout.Rect
}

// ContentRect returns the computed content area.
func (e *Element) ContentRect() Rect {
	return e.layout.ContentRect
}

// Primary returns the content child of an overlay or background element,
// or the first child of any other element.
func (e *Element) Primary() *Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// Secondary returns the overlay or background child of a dual element.
// It returns nil for every other kind.
func (e *Element) Secondary() *Element {
	if (e.kind != KindOverlay && e.kind != KindBackground) || len(e.children) < 2 {
		return nil
	}
	return e.children[1]
}

// paintOrder returns children back to front.
func (e *Element) paintOrder() []*Element {
	if e.kind == KindBackground && len(e.children) == 2 {
		return []*Element{e.children[1], e.children[0]}
	}
	return e.children
}
