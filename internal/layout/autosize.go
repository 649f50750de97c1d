package layout

// resolveAutoSized sizes every auto-sized anchored child to its
// preferred size, overriding whatever the anchor resolver staged. Runs
// strictly after anchor staging so it reads each child's staged
// destination, not a stale committed rectangle.
func resolveAutoSized(container Arranged, ov *overlay) {
	for _, el := range container.ArrangedChildren() {
		if !isAutoSizedAndAnchored(el) {
			continue
		}

		bounds := ov.get(el)
		anchors := anchorsOf(el)

		// An axis pinned on both edges is owned by the anchors; the
		// preferred-size query must not propose growth there.
		proposed := Size{Width: Unbounded, Height: Unbounded}
		if anchors.Has(AnchorLeft | AnchorRight) {
			proposed.Width = bounds.Width
		}
		if anchors.Has(AnchorTop | AnchorBottom) {
			proposed.Height = bounds.Height
		}

		pref := el.PreferredSize(proposed)

		switch autoSizeModeOf(el) {
		case GrowAndShrink:
			ov.set(el, growthBounds(bounds, anchors, pref))
		case GrowOnly:
			if pref.Width > bounds.Width || pref.Height > bounds.Height {
				grown := bounds.Size().Union(pref)
				ov.set(el, growthBounds(bounds, anchors, grown))
			}
		default:
			panic("layout: unsupported AutoSizeMode in auto-size resolver")
		}
	}
}

// growthDirection derives which edges move when an element's size
// changes. An element anchored only to its trailing edge grows toward
// the leading one, keeping the anchored edge fixed; everything else
// grows rightward/downward. At most one horizontal and one vertical
// direction is ever set.
func growthDirection(anchors AnchorStyles) GrowthDirection {
	g := GrowNone
	if anchors.Has(AnchorRight) && !anchors.Has(AnchorLeft) {
		g |= GrowLeft
	} else {
		g |= GrowRight
	}
	if anchors.Has(AnchorBottom) && !anchors.Has(AnchorTop) {
		g |= GrowUpward
	} else {
		g |= GrowDownward
	}
	return g
}

// growthBounds returns the element's rectangle resized to newSize, with
// position adjusted so the anchored edges stay put. For GrowOnly
// callers newSize never shrinks either axis, so the old rectangle is
// always contained in the result.
func growthBounds(bounds Rect, anchors AnchorStyles, newSize Size) Rect {
	dir := growthDirection(anchors)
	r := Rect{X: bounds.X, Y: bounds.Y, Width: newSize.Width, Height: newSize.Height}
	if dir.Has(GrowLeft) {
		r.X -= newSize.Width - bounds.Width
	}
	if dir.Has(GrowUpward) {
		r.Y -= newSize.Height - bounds.Height
	}
	return r
}
