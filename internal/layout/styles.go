package layout

// AnchorStyles is a bitset of container edges an element is anchored to.
// The zero value means no anchors; the conventional default for elements
// is AnchorTop | AnchorLeft, which keeps the element where it is.
type AnchorStyles uint8

const (
	AnchorNone   AnchorStyles = 0
	AnchorLeft   AnchorStyles = 1 << iota // Fixed distance to the container's left edge
	AnchorTop                             // Fixed distance to the container's top edge
	AnchorRight                           // Fixed distance to the container's right edge
	AnchorBottom                          // Fixed distance to the container's bottom edge
)

// AnchorTopLeft is the default anchoring for new elements.
const AnchorTopLeft = AnchorTop | AnchorLeft

// Has returns true if all edges in mask are set.
func (a AnchorStyles) Has(mask AnchorStyles) bool {
	return a&mask == mask
}

// String returns a "+"-joined list of the set edges, or "none".
func (a AnchorStyles) String() string {
	if a == AnchorNone {
		return "none"
	}
	s := ""
	for _, e := range [...]struct {
		bit  AnchorStyles
		name string
	}{
		{AnchorLeft, "left"},
		{AnchorTop, "top"},
		{AnchorRight, "right"},
		{AnchorBottom, "bottom"},
	} {
		if a.Has(e.bit) {
			if s != "" {
				s += "+"
			}
			s += e.name
		}
	}
	return s
}

// DockStyle specifies which container edge an element fills.
// Dock styles are mutually exclusive per element.
type DockStyle uint8

const (
	DockNone   DockStyle = iota // Not docked; positioned by anchors
	DockTop                     // Fill a strip along the top edge
	DockBottom                  // Fill a strip along the bottom edge
	DockLeft                    // Fill a strip along the left edge
	DockRight                   // Fill a strip along the right edge
	DockFill                    // Consume all remaining space
)

// String returns the lowercase name of the dock style.
func (d DockStyle) String() string {
	switch d {
	case DockNone:
		return "none"
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockFill:
		return "fill"
	default:
		panic("layout: unknown DockStyle")
	}
}

// AutoSizeMode governs whether auto-sizing may shrink an element below
// its current size.
type AutoSizeMode uint8

const (
	GrowOnly      AutoSizeMode = iota // Grow to preferred size, never shrink
	GrowAndShrink                     // Track preferred size exactly
)

// String returns the lowercase name of the auto-size mode.
func (m AutoSizeMode) String() string {
	switch m {
	case GrowOnly:
		return "grow-only"
	case GrowAndShrink:
		return "grow-and-shrink"
	default:
		panic("layout: unknown AutoSizeMode")
	}
}

// GrowthDirection is the derived set of edges that move when an
// auto-sized element changes size. At most one of {GrowLeft, GrowRight}
// and one of {GrowUpward, GrowDownward} may be set. It is computed from
// anchor intent and never stored.
type GrowthDirection uint8

const (
	GrowNone     GrowthDirection = 0
	GrowLeft     GrowthDirection = 1 << iota // Right edge fixed, left edge moves
	GrowRight                                // Left edge fixed, right edge moves
	GrowUpward                               // Bottom edge fixed, top edge moves
	GrowDownward                             // Top edge fixed, bottom edge moves
)

// Has returns true if all directions in mask are set.
func (g GrowthDirection) Has(mask GrowthDirection) bool {
	return g&mask == mask
}

// BoundsMask records which bounds fields an explicit SetBounds call
// changed. The engine always writes with BoundsNone (layout-driven);
// user code writes with explicit masks, which invalidates captured
// anchors so they are recomputed on the next pass.
type BoundsMask uint8

const (
	BoundsNone   BoundsMask = 0
	BoundsX      BoundsMask = 1 << iota // X was specified by the caller
	BoundsY                             // Y was specified by the caller
	BoundsWidth                         // Width was specified by the caller
	BoundsHeight                        // Height was specified by the caller

	BoundsAll = BoundsX | BoundsY | BoundsWidth | BoundsHeight
)
