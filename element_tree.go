package winforms

// AddChild appends children to this Element, on top of the existing
// z-order. A child attached elsewhere is removed from its old parent
// first. Triggers a layout pass on this container.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child == e {
			panic("winforms: element cannot be its own child")
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = e
		child.captured = nil
		e.children = append(e.children, child)
	}
	e.PerformLayout()
}

// RemoveChild removes a child from this Element.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			child.captured = nil
			e.PerformLayout()
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child.
func (e *Element) RemoveAllChildren() {
	for _, child := range e.children {
		child.parent = nil
		child.captured = nil
	}
	e.children = nil
	e.PerformLayout()
}

// Children returns the child elements in z-order (last is frontmost).
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Root walks up to the tree's root element.
func (e *Element) Root() *Element {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Contains returns true if other is this element or a descendant of it.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// BringToFront moves the element to the top of its parent's z-order.
// Z-order doubles as dock order, so this re-lays-out the parent: the
// frontmost docked child carves its strip first.
func (e *Element) BringToFront() {
	if e.parent != nil {
		e.parent.reorderChild(e, len(e.parent.children)-1)
	}
}

// SendToBack moves the element to the bottom of its parent's z-order.
func (e *Element) SendToBack() {
	if e.parent != nil {
		e.parent.reorderChild(e, 0)
	}
}

// reorderChild moves child to the given z-order index and re-lays-out.
func (e *Element) reorderChild(child *Element, to int) {
	from := -1
	for i, c := range e.children {
		if c == child {
			from = i
			break
		}
	}
	if from == -1 || from == to {
		return
	}

	e.children = append(e.children[:from], e.children[from+1:]...)
	if to > len(e.children) {
		to = len(e.children)
	}
	e.children = append(e.children[:to], append([]*Element{child}, e.children[to:]...)...)
	e.PerformLayout()
}
