package winforms

import "github.com/N1K0232/winforms/internal/layout"

// Element is a layoutable node in a retained tree. It owns its children
// directly and implements the engine's Arranged surface plus every
// optional layout capability.
type Element struct {
	// Tree structure (single source of truth)
	name     string
	parent   *Element
	children []*Element

	// Geometry. Bounds are in the parent's client coordinate space.
	bounds  Rect
	minSize Size
	maxSize Size // zero component = no maximum

	// Layout intent
	anchors      AnchorStyles
	dock         DockStyle
	autoSize     bool
	autoSizeMode AutoSizeMode
	margin       Edges
	padding      Edges
	documentHost bool
	visible      bool

	// preferred answers PreferredSize queries for leaf content; nil
	// falls back to measuring children, or the current size.
	preferred func(proposed Size) Size

	// captured anchor distances, replaced wholesale by the engine and
	// invalidated by explicit geometry changes
	captured *AnchorSpec

	// Layout triggering
	suspendCount  int
	layoutPending bool

	// Callbacks
	onLayout        func()
	onBoundsChanged func(old, now Rect)
}

// Compile-time check that Element implements the engine surface.
var (
	_ Arranged            = (*Element)(nil)
	_ layout.Anchorer     = (*Element)(nil)
	_ layout.Docker       = (*Element)(nil)
	_ layout.AutoSizer    = (*Element)(nil)
	_ layout.Spacer       = (*Element)(nil)
	_ layout.AnchorStore  = (*Element)(nil)
	_ layout.DocumentHost = (*Element)(nil)
	_ layout.Participant  = (*Element)(nil)
)

// New creates a new Element with the given options.
// By default an Element is visible, anchored top-left, and not docked.
func New(opts ...Option) *Element {
	e := &Element{
		anchors: AnchorTopLeft,
		visible: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the element's name.
func (e *Element) Name() string {
	return e.name
}

// SetName sets the element's name.
func (e *Element) SetName(name string) {
	e.name = name
}

// Bounds returns the element's committed bounds in the parent's client
// coordinate space.
func (e *Element) Bounds() Rect {
	return e.bounds
}

// Location returns the element's top-left corner.
func (e *Element) Location() Point {
	return Point{X: e.bounds.X, Y: e.bounds.Y}
}

// Size returns the element's current size.
func (e *Element) Size() Size {
	return e.bounds.Size()
}

// SetBounds assigns new bounds. The size is clamped to the element's
// min/max constraints, so callers (the engine included) must re-read
// Bounds rather than trust the proposal. An explicit mask invalidates
// the captured anchor distances and notifies the parent container; the
// engine's layout-driven writes (BoundsNone) do neither.
func (e *Element) SetBounds(r Rect, mask BoundsMask) {
	clamped := e.clampSize(r.Size())
	r.Width, r.Height = clamped.Width, clamped.Height
	if r == e.bounds {
		return
	}

	old := e.bounds
	e.bounds = r

	if mask != BoundsNone {
		e.captured = nil
	}
	if e.onBoundsChanged != nil {
		e.onBoundsChanged(old, r)
	}

	// A size change re-lays-out this element's own children. Engine
	// writes stop there; explicit writes also re-run the parent's
	// layout, since the parent's anchor/dock geometry now stales.
	if old.Size() != r.Size() {
		e.performLayout(mask != BoundsNone)
	}
	if mask != BoundsNone && e.parent != nil {
		e.parent.PerformLayout()
	}
}

// clampSize applies min/max size constraints. Committed sizes are never
// negative; a zero max component means unconstrained.
func (e *Element) clampSize(s Size) Size {
	s.Width = max(s.Width, e.minSize.Width, 0)
	s.Height = max(s.Height, e.minSize.Height, 0)
	if e.maxSize.Width > 0 {
		s.Width = min(s.Width, e.maxSize.Width)
	}
	if e.maxSize.Height > 0 {
		s.Height = min(s.Height, e.maxSize.Height)
	}
	return s
}

// ArrangedChildren returns the children as engine nodes, in z-order.
func (e *Element) ArrangedChildren() []Arranged {
	out := make([]Arranged, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// Container returns the parent as an engine node, or nil for a root.
func (e *Element) Container() Arranged {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// DisplayRect returns the content area children are placed in: the
// element's own extent at the origin, inset by padding.
func (e *Element) DisplayRect() Rect {
	return NewRect(0, 0, e.bounds.Width, e.bounds.Height).Inset(e.padding)
}

// PreferredSize returns the size the element wants to be under the
// given constraint. Leaf content answers through the preferred-size
// callback; containers measure their children; everything else keeps
// its current size. The result honors min/max constraints.
func (e *Element) PreferredSize(proposed Size) Size {
	var pref Size
	switch {
	case e.preferred != nil:
		pref = e.preferred(proposed)
	case len(e.children) > 0:
		pref = Measure(e, proposed).Add(e.padding.Size())
	default:
		pref = e.bounds.Size()
	}
	return e.clampSize(pref)
}

// Anchors returns the declared anchor intent.
func (e *Element) Anchors() AnchorStyles {
	return e.anchors
}

// SetAnchors replaces the anchor intent. Captured distances are
// invalidated and recomputed on the next pass.
func (e *Element) SetAnchors(a AnchorStyles) {
	if e.anchors == a {
		return
	}
	e.anchors = a
	e.captured = nil
	if e.parent != nil {
		e.parent.PerformLayout()
	}
}

// Dock returns the dock style.
func (e *Element) Dock() DockStyle {
	return e.dock
}

// SetDock changes the dock style and re-lays-out the parent.
func (e *Element) SetDock(d DockStyle) {
	if e.dock == d {
		return
	}
	e.dock = d
	e.captured = nil
	if e.parent != nil {
		e.parent.PerformLayout()
	}
}

// AutoSize returns whether the element sizes itself to content.
func (e *Element) AutoSize() bool {
	return e.autoSize
}

// SetAutoSize toggles auto-sizing.
func (e *Element) SetAutoSize(on bool) {
	if e.autoSize == on {
		return
	}
	e.autoSize = on
	if e.parent != nil {
		e.parent.PerformLayout()
	}
}

// AutoSizeMode returns the auto-size mode.
func (e *Element) AutoSizeMode() AutoSizeMode {
	return e.autoSizeMode
}

// SetAutoSizeMode changes the auto-size mode.
func (e *Element) SetAutoSizeMode(m AutoSizeMode) {
	if e.autoSizeMode == m {
		return
	}
	e.autoSizeMode = m
	if e.parent != nil {
		e.parent.PerformLayout()
	}
}

// Margin returns the space requested around the element.
func (e *Element) Margin() Edges {
	return e.margin
}

// Padding returns the space inset from the element's edges for children.
func (e *Element) Padding() Edges {
	return e.padding
}

// SetPadding changes the padding and re-lays-out this element.
func (e *Element) SetPadding(p Edges) {
	if e.padding == p {
		return
	}
	e.padding = p
	e.PerformLayout()
}

// CapturedAnchors returns the stored anchor distances, or nil.
func (e *Element) CapturedAnchors() *AnchorSpec {
	return e.captured
}

// SetCapturedAnchors replaces the stored anchor distances wholesale.
func (e *Element) SetCapturedAnchors(s *AnchorSpec) {
	e.captured = s
}

// DocumentHost returns whether this element is the deferred Fill child.
func (e *Element) DocumentHost() bool {
	return e.documentHost
}

// Visible returns whether the element participates in layout and drawing.
func (e *Element) Visible() bool {
	return e.visible
}

// SetVisible shows or hides the element. Hidden elements keep their
// bounds but are skipped by layout.
func (e *Element) SetVisible(v bool) {
	if e.visible == v {
		return
	}
	e.visible = v
	if e.parent != nil {
		e.parent.PerformLayout()
	}
}

// ParticipatesInLayout reports visibility to the engine.
func (e *Element) ParticipatesInLayout() bool {
	return e.visible
}

// SetOnLayout sets a callback invoked before each layout pass this
// element performs.
func (e *Element) SetOnLayout(fn func()) {
	e.onLayout = fn
}

// SetOnBoundsChanged sets a callback invoked after the element's bounds
// change, with the old and new rectangles.
func (e *Element) SetOnBoundsChanged(fn func(old, now Rect)) {
	e.onBoundsChanged = fn
}
