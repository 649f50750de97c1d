package layout

// resolveAnchored stages a destination rectangle for every anchored
// child. Each destination is a pure function of the container's display
// rectangle and the child's captured anchor distances, so the result is
// independent of iteration order; everything is computed against the
// same unmutated display rectangle and written to the overlay, never
// applied mid-loop.
func resolveAnchored(container Arranged, ov *overlay) {
	display := container.DisplayRect()

	// An auto-sizing container with a degenerate display rectangle has
	// not been given a real size yet; anchoring against it would collapse
	// every child to zero. Skip the pass and keep committed bounds.
	if autoSizeOf(container) && (display.Width == 0 || display.Height == 0) {
		return
	}

	for _, el := range container.ArrangedChildren() {
		if !needsAnchorLayout(el) {
			continue
		}
		spec := anchorSpecFor(el, display)
		ov.set(el, anchorDestination(ov.get(el), anchorsOf(el), spec, display))
	}
}

// anchorDestination computes where an element's bounds land when its
// captured edge distances are replayed against the given display
// rectangle. Per axis there are three cases: both opposing edges
// anchored (size is recomputed), only the trailing edge anchored
// (position tracks the far edge), or anything else (position is
// interpolated proportionally to the captured distances). Size is only
// recomputed when both opposing edges are anchored.
func anchorDestination(bounds Rect, anchors AnchorStyles, spec *AnchorSpec, display Rect) Rect {
	left := spec.Left.Or(0)
	top := spec.Top.Or(0)
	right := spec.Right.Or(0)
	bottom := spec.Bottom.Or(0)

	x, width := anchorAxis(bounds.Width, display.Width,
		left, right, anchors.Has(AnchorLeft), anchors.Has(AnchorRight))
	y, height := anchorAxis(bounds.Height, display.Height,
		top, bottom, anchors.Has(AnchorTop), anchors.Has(AnchorBottom))

	return Rect{
		X:      display.X + x,
		Y:      display.Y + y,
		Width:  width,
		Height: height,
	}
}

// anchorAxis resolves one axis of an anchor destination. Positions are
// relative to the display rectangle; the caller adds its origin back.
func anchorAxis(size, displayExtent, leading, trailing int, leadingAnchored, trailingAnchored bool) (pos, extent int) {
	switch {
	case leadingAnchored && trailingAnchored:
		// Both edges pinned: the element stretches with the container.
		return leading, displayExtent - (trailing + leading)

	case trailingAnchored:
		// Only the far edge pinned: slide to keep its distance.
		return displayExtent - size - trailing, size

	default:
		// Leading-only or unanchored: distribute the slack in proportion
		// to the captured distances. A zero denominator (both distances
		// zero) falls back to leading-edge semantics.
		denom := leading + trailing
		if denom == 0 {
			return max(leading, 0), size
		}
		pos = leading * (displayExtent - size) / denom
		return max(pos, 0), size
	}
}
