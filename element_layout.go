package winforms

import "github.com/N1K0232/winforms/internal/layout"

// PerformLayout runs a layout pass over this element's children, unless
// layout is suspended, in which case the pass is recorded as pending
// and runs on resume. If this element auto-sizes, the pass propagates
// to the parent container (or grows the element itself for a root).
func (e *Element) PerformLayout() {
	e.performLayout(true)
}

// performLayout is the internal entry. Engine-driven bounds writes pass
// propagate=false: the engine's own pass on the parent already accounts
// for this element, and propagating back up would reenter it.
func (e *Element) performLayout(propagate bool) {
	if e.suspendCount > 0 {
		e.layoutPending = true
		return
	}
	e.layoutPending = false

	if e.onLayout != nil {
		e.onLayout()
	}

	wantsAutoSize := layout.Apply(e)
	if !propagate || !wantsAutoSize {
		return
	}
	if e.parent != nil {
		e.parent.PerformLayout()
		return
	}
	e.growToPreferredSize()
}

// growToPreferredSize resizes a parentless auto-sizing element toward
// its preferred size, honoring GrowOnly semantics.
func (e *Element) growToPreferredSize() {
	pref := e.PreferredSize(NewSize(Unbounded, Unbounded))
	if e.autoSizeMode == GrowOnly {
		pref = pref.Union(e.bounds.Size())
	}
	if pref == e.bounds.Size() {
		return
	}
	e.SetBounds(NewRect(e.bounds.X, e.bounds.Y, pref.Width, pref.Height), BoundsWidth|BoundsHeight)
}

// SuspendLayout pauses layout passes on this element. Calls nest; each
// must be paired with ResumeLayout.
func (e *Element) SuspendLayout() {
	e.suspendCount++
}

// ResumeLayout re-enables layout. With perform true, a pass that was
// requested while suspended runs immediately.
func (e *Element) ResumeLayout(perform bool) {
	if e.suspendCount == 0 {
		panic("winforms: ResumeLayout without matching SuspendLayout")
	}
	e.suspendCount--
	if e.suspendCount > 0 {
		return
	}
	if perform && e.layoutPending {
		e.PerformLayout()
	}
}

// LayoutSuspended returns whether layout passes are currently paused.
func (e *Element) LayoutSuspended() bool {
	return e.suspendCount > 0
}
