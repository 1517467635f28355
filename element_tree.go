package weft

// --- Element tree API ---
//
// A parent owns its children exclusively; the parent link is a non-owning
// back-reference used only for invalidation bubbling. Children keep
// insertion order, which is significant to every container (stacking order,
// dock peeling order, grid auto-placement priority).

// AddChild appends children to this element in order.
// A child already attached elsewhere is detached from its old parent first.
func (e *Element) AddChild(children ...Widget) {
	for _, child := range children {
		c := mustElement(child, "AddChild")
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
		c.parent = e
		e.children = append(e.children, c)
	}
	e.InvalidateMeasure()
}

// RemoveChild removes a child from this element, dropping any attached
// layout metadata (Dock, Row, Column, spans) associated with it.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child Widget) bool {
	c := mustElement(child, "RemoveChild")
	for i, existing := range e.children {
		if existing == c {
			// Splice rather than swap-remove: sibling order is layout state.
			e.children = append(e.children[:i], e.children[i+1:]...)
			c.parent = nil
			detachMetadata(c)
			e.InvalidateMeasure()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes every child, dropping their attached metadata.
func (e *Element) RemoveAllChildren() {
	for _, c := range e.children {
		c.parent = nil
		detachMetadata(c)
	}
	e.children = nil
	e.InvalidateMeasure()
}

// Children returns the child elements in insertion order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// mustElement resolves a Widget to its Element, failing fast on nil.
// Nil arguments to public configuration APIs are the one error class that
// propagates out of the layout layer.
func mustElement(w Widget, op string) *Element {
	if w == nil {
		panic("weft: " + op + " called with nil element")
	}
	e := w.AsElement()
	if e == nil {
		panic("weft: " + op + " called with nil element")
	}
	return e
}
