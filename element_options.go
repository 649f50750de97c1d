package winforms

// Option configures an Element.
type Option func(*Element)

// WithName sets the element's name.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// WithBounds sets the element's position and size.
func WithBounds(x, y, width, height int) Option {
	return func(e *Element) {
		e.bounds = NewRect(x, y, width, height)
	}
}

// WithSize sets the element's size, keeping its position.
func WithSize(width, height int) Option {
	return func(e *Element) {
		e.bounds.Width = width
		e.bounds.Height = height
	}
}

// WithLocation sets the element's top-left corner, keeping its size.
func WithLocation(x, y int) Option {
	return func(e *Element) {
		e.bounds.X = x
		e.bounds.Y = y
	}
}

// WithAnchors sets the declared anchor intent.
func WithAnchors(a AnchorStyles) Option {
	return func(e *Element) {
		e.anchors = a
	}
}

// WithDock sets the dock style.
func WithDock(d DockStyle) Option {
	return func(e *Element) {
		e.dock = d
	}
}

// WithAutoSize enables auto-sizing.
func WithAutoSize() Option {
	return func(e *Element) {
		e.autoSize = true
	}
}

// WithAutoSizeMode enables auto-sizing with the given mode.
func WithAutoSizeMode(m AutoSizeMode) Option {
	return func(e *Element) {
		e.autoSize = true
		e.autoSizeMode = m
	}
}

// WithMargin sets the margin in CSS order: Top, Right, Bottom, Left.
func WithMargin(t, r, b, l int) Option {
	return func(e *Element) {
		e.margin = EdgeTRBL(t, r, b, l)
	}
}

// WithPadding sets the padding in CSS order: Top, Right, Bottom, Left.
func WithPadding(t, r, b, l int) Option {
	return func(e *Element) {
		e.padding = EdgeTRBL(t, r, b, l)
	}
}

// WithMinSize sets the minimum size SetBounds will accept.
func WithMinSize(width, height int) Option {
	return func(e *Element) {
		e.minSize = NewSize(width, height)
	}
}

// WithMaxSize sets the maximum size SetBounds will accept.
// A zero component means no maximum on that axis.
func WithMaxSize(width, height int) Option {
	return func(e *Element) {
		e.maxSize = NewSize(width, height)
	}
}

// WithVisible sets initial visibility.
func WithVisible(v bool) Option {
	return func(e *Element) {
		e.visible = v
	}
}

// WithPreferredSize makes the element report a fixed preferred size,
// regardless of the proposed constraint.
func WithPreferredSize(width, height int) Option {
	return func(e *Element) {
		e.preferred = func(Size) Size {
			return NewSize(width, height)
		}
	}
}

// WithPreferredSizeFunc makes the element answer preferred-size queries
// through fn. The proposed constraint uses Unbounded for axes the
// caller does not constrain.
func WithPreferredSizeFunc(fn func(proposed Size) Size) Option {
	return func(e *Element) {
		e.preferred = fn
	}
}

// WithDocumentHost marks the element as the container's document host:
// a Fill-docked child whose rectangle is assigned last, after all other
// docked children have carved their strips.
func WithDocumentHost() Option {
	return func(e *Element) {
		e.documentHost = true
	}
}

// WithChildren adds initial children in z-order (last is frontmost).
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		for _, child := range children {
			child.parent = e
			e.children = append(e.children, child)
		}
	}
}
