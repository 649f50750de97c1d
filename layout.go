// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package winforms

import (
	"log/slog"

	"github.com/N1K0232/winforms/internal/layout"
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// AnchorStyles is a bitset of container edges an element is anchored to.
type AnchorStyles = layout.AnchorStyles

const (
	AnchorNone    = layout.AnchorNone
	AnchorLeft    = layout.AnchorLeft
	AnchorTop     = layout.AnchorTop
	AnchorRight   = layout.AnchorRight
	AnchorBottom  = layout.AnchorBottom
	AnchorTopLeft = layout.AnchorTopLeft
)

// DockStyle specifies which container edge an element fills.
type DockStyle = layout.DockStyle

const (
	DockNone   = layout.DockNone
	DockTop    = layout.DockTop
	DockBottom = layout.DockBottom
	DockLeft   = layout.DockLeft
	DockRight  = layout.DockRight
	DockFill   = layout.DockFill
)

// AutoSizeMode governs whether auto-sizing may shrink an element.
type AutoSizeMode = layout.AutoSizeMode

const (
	GrowOnly      = layout.GrowOnly
	GrowAndShrink = layout.GrowAndShrink
)

// GrowthDirection is the derived set of edges that move when an
// auto-sized element changes size.
type GrowthDirection = layout.GrowthDirection

const (
	GrowNone     = layout.GrowNone
	GrowLeft     = layout.GrowLeft
	GrowRight    = layout.GrowRight
	GrowUpward   = layout.GrowUpward
	GrowDownward = layout.GrowDownward
)

// BoundsMask records which bounds fields an explicit SetBounds call changed.
type BoundsMask = layout.BoundsMask

const (
	BoundsNone   = layout.BoundsNone
	BoundsX      = layout.BoundsX
	BoundsY      = layout.BoundsY
	BoundsWidth  = layout.BoundsWidth
	BoundsHeight = layout.BoundsHeight
	BoundsAll    = layout.BoundsAll
)

// Unbounded is the "don't constrain this axis" component for
// preferred-size constraints.
const Unbounded = layout.Unbounded

// Arranged is the interface the layout engine operates on. *Element
// implements it; custom implementations may participate too.
type Arranged = layout.Arranged

// AnchorSpec holds captured edge distances for an anchored element.
type AnchorSpec = layout.AnchorSpec

// Offset is a captured edge distance that is either fixed or unset.
type Offset = layout.Offset

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewSize creates a new Size with the given dimensions.
func NewSize(width, height int) Size {
	return layout.NewSize(width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Apply runs an apply-mode layout pass on the container. It returns
// whether the container itself wants to auto-size. Most callers should
// use [Element.PerformLayout], which handles suspension and auto-size
// propagation on top of this.
func Apply(container Arranged) bool {
	return layout.Apply(container)
}

// Measure computes the size the container would want to be, without
// mutating any element's committed bounds.
func Measure(container Arranged, proposed Size) Size {
	return layout.Measure(container, proposed)
}

// SetLogger configures the layout engine's logger. By default the
// engine produces no output; pass nil to restore that.
func SetLogger(l *slog.Logger) {
	layout.SetLogger(l)
}

// Logger returns the engine's current logger.
func Logger() *slog.Logger {
	return layout.Logger()
}
