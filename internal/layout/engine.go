package layout

import (
	"context"
	"log/slog"
)

// inFlight tracks containers with an active pass. The engine is
// single-threaded and re-entrant-unsafe by contract: a pass must commit
// or discard before another pass on the same container may start.
// Nested passes on different containers (a child's callback laying out
// its own children) are fine.
var inFlight = make(map[Arranged]struct{})

// Apply runs an apply-mode layout pass on the container, computing and
// committing bounds for all of its children. It returns whether the
// container itself wants to auto-size, in which case the caller should
// lay out the container's own parent as well.
func Apply(container Arranged) bool {
	handled, _ := runPass(container, false)
	return handled
}

// Measure computes the size the container would want to be, without
// mutating any element's committed bounds. The proposed constraint is
// advisory; the anchor/dock math derives the preferred size from
// captured distances and child preferred sizes alone.
func Measure(container Arranged, proposed Size) Size {
	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("measure requested",
			"proposedWidth", proposed.Width, "proposedHeight", proposed.Height)
	}
	_, preferred := runPass(container, true)
	return preferred
}

// classification records which resolvers a pass needs, from a single
// scan over the container's children.
type classification struct {
	dock     bool
	anchor   bool
	autoSize bool
}

func classify(container Arranged) classification {
	var c classification
	for _, el := range container.ArrangedChildren() {
		if !participates(el) {
			continue
		}
		if dockOf(el) != DockNone {
			c.dock = true
			continue
		}
		c.anchor = true
		if autoSizeOf(el) {
			c.autoSize = true
		}
	}
	return c
}

// runPass is the single orchestration point for both modes. Steps, in
// order: classify, dock, anchor (apply only), auto-size, then either
// commit the overlay (apply) or derive the anchor-driven preferred
// size, union it with the dock-driven one, and discard (measure).
func runPass(container Arranged, measureOnly bool) (handled bool, preferred Size) {
	if _, active := inFlight[container]; active {
		panic("layout: reentrant pass on a container with an active overlay")
	}
	inFlight[container] = struct{}{}
	defer delete(inFlight, container)

	log := Logger()
	trace := log.Enabled(context.Background(), slog.LevelDebug)

	c := classify(container)
	ov := newOverlay()

	if trace {
		log.Debug("layout pass start",
			"measure", measureOnly,
			"dock", c.dock, "anchor", c.anchor, "autosize", c.autoSize)
	}

	if c.dock {
		preferred = resolveDocked(container, ov, measureOnly)
	}
	if c.anchor && !measureOnly {
		resolveAnchored(container, ov)
	}
	if c.autoSize {
		resolveAutoSized(container, ov)
	}

	if measureOnly {
		preferred = preferred.Union(anchorPreferredSize(container, ov))
		ov.discard()
	} else {
		staged := ov.len()
		ov.commit()
		if trace {
			log.Debug("layout pass committed", "staged", staged)
		}
	}

	return autoSizeOf(container), preferred
}

// anchorPreferredSize accumulates the container size implied by its
// non-docked children (docked children already contributed through the
// dock resolver's measure mode). The result is the component-wise
// maximum over children, with the container's leading padding backed
// out so the caller can re-add full padding without double counting.
func anchorPreferredSize(container Arranged, ov *overlay) Size {
	display := container.DisplayRect()
	var pref Size

	for _, el := range container.ArrangedChildren() {
		if !participates(el) || dockOf(el) != DockNone {
			continue
		}
		bounds := ov.get(el)
		margin := marginOf(el)
		anchors := anchorsOf(el)

		if anchors.Has(AnchorRight) {
			// Replay the captured distances against an empty display
			// rectangle; the distance-preserving destination tells us how
			// much width the element demands of its container.
			dest := anchorDestination(bounds, anchors, anchorSpecFor(el, display), Rect{})
			if dest.Width < 0 {
				pref.Width = max(pref.Width, bounds.Right()+dest.Width)
			} else {
				pref.Width = max(pref.Width, dest.Right())
			}
		} else if anchors.Has(AnchorLeft) {
			pref.Width = max(pref.Width, bounds.Right()+margin.Right)
		}

		if anchors.Has(AnchorBottom) {
			dest := anchorDestination(bounds, anchors, anchorSpecFor(el, display), Rect{})
			if dest.Height < 0 {
				pref.Height = max(pref.Height, bounds.Bottom()+dest.Height)
			} else {
				pref.Height = max(pref.Height, dest.Bottom())
			}
		} else {
			// Covers the no-anchors default, which behaves as top-left.
			pref.Height = max(pref.Height, bounds.Bottom()+margin.Bottom)
		}
	}

	padding := paddingOf(container)
	pref.Width -= padding.Left
	pref.Height -= padding.Top
	return pref
}
