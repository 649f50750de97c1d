package layout

// Arranged is the interface for anything that can participate in layout.
// The engine works entirely with this interface, enabling custom
// implementations. Bounds are expressed in the container's client
// coordinate space.
type Arranged interface {
	// Bounds returns the element's current committed bounds.
	Bounds() Rect

	// SetBounds assigns new bounds. The mask records which fields the
	// caller specified explicitly; the engine always passes BoundsNone.
	// Implementations may clamp or otherwise adjust the proposal, so
	// callers must re-read Bounds afterwards rather than trusting it.
	SetBounds(r Rect, mask BoundsMask)

	// ArrangedChildren returns the children in z-order (last is frontmost).
	ArrangedChildren() []Arranged

	// Container returns the parent element, or nil for a root.
	Container() Arranged

	// DisplayRect returns the content area children are placed in,
	// accounting for padding, borders, and similar chrome.
	DisplayRect() Rect

	// PreferredSize returns the element's preferred size under the given
	// constraint. A constraint component of Unbounded (or larger) means
	// "don't constrain this axis".
	PreferredSize(proposed Size) Size
}

// Optional capabilities, queried by type assertion. The engine is
// polymorphic purely over capability presence; an element that does not
// implement a capability gets that capability's default.

// Anchorer exposes a declared anchor intent.
type Anchorer interface {
	Anchors() AnchorStyles
}

// Docker exposes a declared dock style.
type Docker interface {
	Dock() DockStyle
}

// AutoSizer exposes auto-sizing intent and mode.
type AutoSizer interface {
	AutoSize() bool
	AutoSizeMode() AutoSizeMode
}

// Spacer exposes margin and padding.
type Spacer interface {
	Margin() Edges
	Padding() Edges
}

// AnchorStore lets the engine cache captured anchor distances on the
// element. Elements without this capability get their anchors recaptured
// every pass.
type AnchorStore interface {
	CapturedAnchors() *AnchorSpec
	SetCapturedAnchors(*AnchorSpec)
}

// DocumentHost marks the at-most-one Fill-docked child whose destination
// is deferred until every other docked child has been placed.
type DocumentHost interface {
	DocumentHost() bool
}

// Participant lets an element opt out of layout (hidden elements).
// Absence means the element participates.
type Participant interface {
	ParticipatesInLayout() bool
}

// anchorsOf returns the element's anchor intent, defaulting to top-left.
func anchorsOf(el Arranged) AnchorStyles {
	if a, ok := el.(Anchorer); ok {
		return a.Anchors()
	}
	return AnchorTopLeft
}

// dockOf returns the element's dock style, defaulting to none.
func dockOf(el Arranged) DockStyle {
	if d, ok := el.(Docker); ok {
		return d.Dock()
	}
	return DockNone
}

// autoSizeOf returns whether the element auto-sizes.
func autoSizeOf(el Arranged) bool {
	if a, ok := el.(AutoSizer); ok {
		return a.AutoSize()
	}
	return false
}

// autoSizeModeOf returns the element's auto-size mode, defaulting to GrowOnly.
func autoSizeModeOf(el Arranged) AutoSizeMode {
	if a, ok := el.(AutoSizer); ok {
		return a.AutoSizeMode()
	}
	return GrowOnly
}

// marginOf returns the element's margin, defaulting to zero.
func marginOf(el Arranged) Edges {
	if s, ok := el.(Spacer); ok {
		return s.Margin()
	}
	return Edges{}
}

// paddingOf returns the element's padding, defaulting to zero.
func paddingOf(el Arranged) Edges {
	if s, ok := el.(Spacer); ok {
		return s.Padding()
	}
	return Edges{}
}

// isDocumentHost returns whether the element is the deferred Fill child.
func isDocumentHost(el Arranged) bool {
	if d, ok := el.(DocumentHost); ok {
		return d.DocumentHost()
	}
	return false
}

// participates returns whether the element takes part in layout at all.
func participates(el Arranged) bool {
	if p, ok := el.(Participant); ok {
		return p.ParticipatesInLayout()
	}
	return true
}

// needsDockLayout returns true if the element is placed by the dock resolver.
func needsDockLayout(el Arranged) bool {
	return participates(el) && dockOf(el) != DockNone
}

// needsAnchorLayout returns true if the element is placed by the anchor
// resolver. Every participating non-docked element is anchor-laid-out;
// the default top-left anchoring keeps it where it is.
func needsAnchorLayout(el Arranged) bool {
	return participates(el) && dockOf(el) == DockNone
}

// isAutoSizedAndAnchored returns true if the auto-size resolver owns the
// element's final size.
func isAutoSizedAndAnchored(el Arranged) bool {
	return autoSizeOf(el) && needsAnchorLayout(el)
}

// anchorSpecFor returns the element's captured anchor distances,
// capturing them lazily against the given display rectangle when no spec
// is stored. Elements with an AnchorStore keep the capture until it is
// invalidated; others are recaptured on every call.
func anchorSpecFor(el Arranged, display Rect) *AnchorSpec {
	store, ok := el.(AnchorStore)
	if ok {
		if spec := store.CapturedAnchors(); spec != nil {
			return spec
		}
	}
	spec := CaptureAnchors(el.Bounds(), display)
	if ok {
		store.SetCapturedAnchors(spec)
	}
	return spec
}
