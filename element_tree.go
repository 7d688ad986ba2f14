package flexkit

// addChild appends children to this Element. Builder adapters are the only
// callers: a produced tree is assembled once and not edited afterwards.
func (e *Element) addChild(children ...*Element) {
	for _, child := range children {
		child.parent = e
		e.children = append(e.children, child)
	}
	e.MarkDirty()
}

// Children returns the element's children in declaration order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the containing element, or nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// MarkDirty marks this Element and ancestors as needing recalculation.
func (e *Element) MarkDirty() {
	for elem := e; elem != nil && !elem.dirty; elem = elem.parent {
		elem.dirty = true
	}
}

// Walk visits e and its descendants depth first, parents before children.
// Returning false from fn skips the visited element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Walk(fn)
	}
}

// Find returns the first element in the subtree with the given name.
func (e *Element) Find(name string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if el.name == name {
			found = el
			return false
		}
		return true
	})
	return found
}

// Clone returns a detached deep copy of the subtree with opts applied to
// the copy of e. The copy has no computed layout and is dirty.
func (e *Element) Clone(opts ...Option) *Element {
	c := &Element{
		kind:   e.kind,
		name:   e.name,
		style:  e.style,
		border: e.border,
		text:   e.text,
		dirty:  true,
	}
	if e.style.AlignSelf != nil {
		a := *e.style.AlignSelf
		c.style.AlignSelf = &a
	}
	for _, child := range e.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
