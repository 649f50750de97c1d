package layout

// Offset is the captured distance from one container edge.
// The zero value is Unset; Fixed builds a set offset. Making the
// set/unset distinction explicit keeps the per-axis destination branches
// exhaustive instead of hiding a nil check behind an integer.
type Offset struct {
	d   int
	set bool
}

// Fixed returns a set Offset with the given distance.
func Fixed(d int) Offset {
	return Offset{d: d, set: true}
}

// Unset returns the unset Offset.
func Unset() Offset {
	return Offset{}
}

// IsSet returns true if the offset holds a captured distance.
func (o Offset) IsSet() bool {
	return o.set
}

// Get returns the captured distance and whether it is set.
func (o Offset) Get() (int, bool) {
	return o.d, o.set
}

// Or returns the captured distance, or def if the offset is unset.
func (o Offset) Or(def int) int {
	if o.set {
		return o.d
	}
	return def
}

// AnchorSpec holds the pixel distances from an element's edges to the
// corresponding edges of its container's display rectangle, captured at
// the moment anchors were last computed. A spec is always replaced
// wholesale, never partially patched.
type AnchorSpec struct {
	Left, Top, Right, Bottom Offset
}

// CaptureAnchors records all four edge distances for an element's
// current bounds against the given display rectangle. Distances are
// relative to the display rectangle's coordinate space.
func CaptureAnchors(bounds, display Rect) *AnchorSpec {
	relX := bounds.X - display.X
	relY := bounds.Y - display.Y
	return &AnchorSpec{
		Left:   Fixed(relX),
		Top:    Fixed(relY),
		Right:  Fixed(display.Width - relX - bounds.Width),
		Bottom: Fixed(display.Height - relY - bounds.Height),
	}
}
