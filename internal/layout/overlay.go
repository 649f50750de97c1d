package layout

// overlay is the per-pass staging area for candidate rectangles. Dock,
// anchor, and auto-size computations read and write it instead of the
// elements' committed bounds, so no resolver observes a sibling
// resolver's already-applied result mid-pass. An overlay lives for
// exactly one pass: it is committed (apply) or discarded (measure)
// before the pass returns.
type overlay struct {
	staged map[Arranged]Rect
}

func newOverlay() *overlay {
	return &overlay{staged: make(map[Arranged]Rect)}
}

// get returns the staged rectangle for el, falling back to the element's
// committed bounds when nothing is staged.
func (o *overlay) get(el Arranged) Rect {
	if r, ok := o.staged[el]; ok {
		return r
	}
	return el.Bounds()
}

// set stages a candidate rectangle for el, replacing any earlier one.
func (o *overlay) set(el Arranged, r Rect) {
	o.staged[el] = r
}

// has returns true if a rectangle is staged for el.
func (o *overlay) has(el Arranged) bool {
	_, ok := o.staged[el]
	return ok
}

// commit assigns every staged rectangle to its element and drains the
// overlay. Entries are snapshotted first: an element's SetBounds may run
// callbacks that mutate bounds (or stage nothing new, since the overlay
// is already drained), so iteration never walks a map being written to.
func (o *overlay) commit() {
	type entry struct {
		el Arranged
		r  Rect
	}
	entries := make([]entry, 0, len(o.staged))
	for el, r := range o.staged {
		entries = append(entries, entry{el, r})
	}
	o.staged = make(map[Arranged]Rect)

	for _, e := range entries {
		e.el.SetBounds(e.r, BoundsNone)
	}
}

// discard drops every staged rectangle without applying it.
func (o *overlay) discard() {
	o.staged = make(map[Arranged]Rect)
}

func (o *overlay) len() int {
	return len(o.staged)
}
