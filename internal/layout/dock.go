package layout

// resolveDocked places every docked child by sequentially carving the
// container's display rectangle in reverse z-order (last-added child
// first). Dock order equals z-order; that ordering is part of the
// engine's contract, not an implementation detail.
//
// In apply mode each child's bounds are set immediately and the carve is
// taken from the bounds read back afterwards, since the child's own
// bounds-setting logic may clamp the proposal; trusting the request
// would double-account the clamped-away space. In measure mode nothing
// is mutated: the remaining rectangle starts empty and is grown by what
// each child needs beyond the space already accounted for, with the
// axis the dock side does not consume zeroed out. The carve then runs
// in both modes, against whatever the child's bounds currently are.
func resolveDocked(container Arranged, ov *overlay, measureOnly bool) Size {
	var remaining Rect
	if !measureOnly {
		remaining = container.DisplayRect()
	}
	var preferred Size

	// At most one Fill child may be the document host; its assignment is
	// deferred so it receives whatever is left after everyone else.
	var host Arranged

	children := container.ArrangedChildren()
	for i := len(children) - 1; i >= 0; i-- {
		el := children[i]
		if !needsDockLayout(el) {
			continue
		}

		dock := dockOf(el)
		if dock == DockFill && isDocumentHost(el) && host == nil {
			host = el
			continue
		}

		switch dock {
		case DockTop:
			size := verticalDockedSize(el, remaining.Size(), measureOnly)
			rect := NewRect(remaining.X, remaining.Y, size.Width, size.Height)
			preferred, remaining = placeOrAccumulate(el, dock, rect, remaining, preferred, ov, measureOnly)
			carve := carveAmount(el.Bounds().Height, remaining.Height)
			remaining.Y += carve
			remaining.Height -= carve

		case DockBottom:
			size := verticalDockedSize(el, remaining.Size(), measureOnly)
			rect := NewRect(remaining.X, remaining.Bottom()-size.Height, size.Width, size.Height)
			preferred, remaining = placeOrAccumulate(el, dock, rect, remaining, preferred, ov, measureOnly)
			carve := carveAmount(el.Bounds().Height, remaining.Height)
			remaining.Height -= carve

		case DockLeft:
			size := horizontalDockedSize(el, remaining.Size(), measureOnly)
			rect := NewRect(remaining.X, remaining.Y, size.Width, size.Height)
			preferred, remaining = placeOrAccumulate(el, dock, rect, remaining, preferred, ov, measureOnly)
			carve := carveAmount(el.Bounds().Width, remaining.Width)
			remaining.X += carve
			remaining.Width -= carve

		case DockRight:
			size := horizontalDockedSize(el, remaining.Size(), measureOnly)
			rect := NewRect(remaining.Right()-size.Width, remaining.Y, size.Width, size.Height)
			preferred, remaining = placeOrAccumulate(el, dock, rect, remaining, preferred, ov, measureOnly)
			carve := carveAmount(el.Bounds().Width, remaining.Width)
			remaining.Width -= carve

		case DockFill:
			// Every Fill child receives the entire current remaining
			// rectangle, with no carve; with several Fill children the
			// frontmost wins the final committed bounds, which is exactly
			// the z-order stacking contract.
			if measureOnly {
				preferred, remaining = accumulateFill(el, remaining, preferred)
				break
			}
			placeDocked(el, remaining, ov)

		default:
			panic("layout: unsupported DockStyle in dock resolver")
		}
	}

	if host != nil {
		if measureOnly {
			preferred, remaining = accumulateFill(host, remaining, preferred)
		} else {
			// Deferred through the overlay: the host's rectangle is only
			// final once every other docked sibling has carved its strip.
			ov.set(host, remaining)
		}
	}

	return preferred
}

// placeOrAccumulate either applies the proposed strip (apply mode) or
// folds its space demand into the measured preferred size and grows the
// remaining rectangle accordingly (measure mode).
func placeOrAccumulate(el Arranged, dock DockStyle, rect, remaining Rect, preferred Size, ov *overlay, measureOnly bool) (Size, Rect) {
	if measureOnly {
		return accumulateDocked(dock, rect, remaining, preferred)
	}
	placeDocked(el, rect, ov)
	return preferred, remaining
}

// placeDocked applies the proposed rectangle, stages the bounds that
// actually resulted, and returns them.
func placeDocked(el Arranged, rect Rect, ov *overlay) Rect {
	el.SetBounds(rect, BoundsNone)
	actual := el.Bounds()
	ov.set(el, actual)
	return actual
}

// carveAmount clamps a consumed extent so the remaining rectangle never
// goes negative, even when an individual child is oversized.
func carveAmount(consumed, available int) int {
	return min(max(consumed, 0), max(available, 0))
}

// verticalDockedSize computes the size of a Top/Bottom docked element.
// Width tracks the remaining width; height comes from the element's
// preferred size when auto-sized, else its current size.
func verticalDockedSize(el Arranged, remaining Size, measureOnly bool) Size {
	size := dockedSize(el, Size{Width: remaining.Width, Height: 0})
	if measureOnly {
		size.Width = max(size.Width, remaining.Width)
	} else {
		size.Width = remaining.Width
	}
	return size
}

// horizontalDockedSize is the Left/Right symmetric counterpart.
func horizontalDockedSize(el Arranged, remaining Size, measureOnly bool) Size {
	size := dockedSize(el, Size{Width: 0, Height: remaining.Height})
	if measureOnly {
		size.Height = max(size.Height, remaining.Height)
	} else {
		size.Height = remaining.Height
	}
	return size
}

// dockedSize asks an auto-sized element for its preferred size under the
// given constraint; a non-auto-sized element keeps its current size.
// Constraint components of zero mean "unconstrained".
func dockedSize(el Arranged, constraint Size) Size {
	if autoSizeOf(el) {
		return el.PreferredSize(Size{
			Width:  axisConstraint(constraint.Width),
			Height: axisConstraint(constraint.Height),
		})
	}
	return el.Bounds().Size()
}

// axisConstraint maps a zero-or-negative extent to Unbounded.
func axisConstraint(v int) int {
	if v <= 0 {
		return Unbounded
	}
	return v
}

// accumulateDocked grows the measured preferred size by what the element
// needs beyond the space already accounted for. The axis the dock side
// does not consume is zeroed: Top/Bottom children contribute only
// height, Left/Right only width.
func accumulateDocked(dock DockStyle, rect, remaining Rect, preferred Size) (Size, Rect) {
	needed := Size{
		Width:  max(0, rect.Width-remaining.Width),
		Height: max(0, rect.Height-remaining.Height),
	}
	switch dock {
	case DockTop, DockBottom:
		needed.Width = 0
	case DockLeft, DockRight:
		needed.Height = 0
	}
	remaining.Width += needed.Width
	remaining.Height += needed.Height
	return preferred.Add(needed), remaining
}

// accumulateFill folds a Fill child into the measured preferred size.
// A Fill child imposes a size of its own only when it auto-sizes;
// otherwise it just takes whatever is left and contributes nothing.
func accumulateFill(el Arranged, remaining Rect, preferred Size) (Size, Rect) {
	if !autoSizeOf(el) {
		return preferred, remaining
	}
	pref := el.PreferredSize(Size{
		Width:  axisConstraint(remaining.Width),
		Height: axisConstraint(remaining.Height),
	})
	needed := Size{
		Width:  max(0, pref.Width-remaining.Width),
		Height: max(0, pref.Height-remaining.Height),
	}
	remaining.Width += needed.Width
	remaining.Height += needed.Height
	return preferred.Add(needed), remaining
}
