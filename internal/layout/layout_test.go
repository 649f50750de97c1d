package layout

// testElement is a minimal Arranged implementation for engine tests.
// It implements every optional capability; bare covers the none case.
type testElement struct {
	bounds   Rect
	parent   *testElement
	children []*testElement

	anchors  AnchorStyles
	dock     DockStyle
	autoSize bool
	mode     AutoSizeMode
	margin   Edges
	padding  Edges
	captured *AnchorSpec
	host     bool
	hidden   bool

	// preferred answers PreferredSize; nil falls back to current size.
	preferred func(proposed Size) Size

	// onSetBounds may adjust the proposal, simulating a collaborator
	// whose bounds-setting logic clamps or overrides. nil accepts as-is.
	onSetBounds func(r Rect) Rect

	setBoundsCalls int
}

func newTestElement(bounds Rect) *testElement {
	return &testElement{bounds: bounds, anchors: AnchorTopLeft}
}

func (e *testElement) add(children ...*testElement) *testElement {
	for _, c := range children {
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

func (e *testElement) Bounds() Rect { return e.bounds }

func (e *testElement) SetBounds(r Rect, _ BoundsMask) {
	e.setBoundsCalls++
	if e.onSetBounds != nil {
		r = e.onSetBounds(r)
	}
	e.bounds = r
}

func (e *testElement) ArrangedChildren() []Arranged {
	out := make([]Arranged, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *testElement) Container() Arranged {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *testElement) DisplayRect() Rect {
	return NewRect(0, 0, e.bounds.Width, e.bounds.Height).Inset(e.padding)
}

func (e *testElement) PreferredSize(proposed Size) Size {
	if e.preferred != nil {
		return e.preferred(proposed)
	}
	return e.bounds.Size()
}

func (e *testElement) Anchors() AnchorStyles         { return e.anchors }
func (e *testElement) Dock() DockStyle               { return e.dock }
func (e *testElement) AutoSize() bool                { return e.autoSize }
func (e *testElement) AutoSizeMode() AutoSizeMode    { return e.mode }
func (e *testElement) Margin() Edges                 { return e.margin }
func (e *testElement) Padding() Edges                { return e.padding }
func (e *testElement) CapturedAnchors() *AnchorSpec  { return e.captured }
func (e *testElement) SetCapturedAnchors(s *AnchorSpec) { e.captured = s }
func (e *testElement) DocumentHost() bool            { return e.host }
func (e *testElement) ParticipatesInLayout() bool    { return !e.hidden }

// fixedPreferred returns a preferred-size callback that ignores the
// proposed constraint and always reports the same size.
func fixedPreferred(w, h int) func(Size) Size {
	return func(Size) Size { return Size{Width: w, Height: h} }
}

// bare is an Arranged with no optional capabilities at all, for testing
// the engine's defaults.
type bare struct {
	bounds   Rect
	children []Arranged
}

func (b *bare) Bounds() Rect                   { return b.bounds }
func (b *bare) SetBounds(r Rect, _ BoundsMask) { b.bounds = r }
func (b *bare) ArrangedChildren() []Arranged   { return b.children }
func (b *bare) Container() Arranged            { return nil }
func (b *bare) DisplayRect() Rect {
	return NewRect(0, 0, b.bounds.Width, b.bounds.Height)
}
func (b *bare) PreferredSize(Size) Size { return b.bounds.Size() }
