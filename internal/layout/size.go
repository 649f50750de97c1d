package layout

// Unbounded is the "don't constrain this axis" component for preferred-size
// constraints. It is large enough to dominate any real dimension but small
// enough that adding margins or padding to it cannot overflow.
const Unbounded = 1 << 24

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// NewSize creates a new Size with the given dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Add returns the component-wise sum of the two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Union returns the component-wise maximum of the two sizes.
func (s Size) Union(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Clamped returns the size with negative components raised to zero.
func (s Size) Clamped() Size {
	return Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
}

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}
