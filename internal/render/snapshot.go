// Package render draws element trees as ASCII art, mainly for tests
// and the CLI. Each element becomes a box with its name in the top
// border; children draw on top of their parents in z-order.
package render

import (
	"strings"

	"github.com/N1K0232/winforms"
)

type canvas struct {
	cells  [][]rune
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &canvas{cells: cells, width: width, height: height}
}

func (c *canvas) put(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(row), " "))
	}
	return b.String()
}

// Snapshot renders the element tree rooted at root into a fixed-width
// text grid the size of root's bounds. One terminal cell is one layout
// unit, so scenes meant for snapshots should use small coordinates.
func Snapshot(root *winforms.Element) string {
	bounds := root.Bounds()
	c := newCanvas(bounds.Width, bounds.Height)
	draw(c, root, 0, 0)
	return c.String()
}

// draw paints the element's box at its absolute position, then recurses
// into children. Children's bounds are relative to the parent, so the
// parent's absolute corner carries down as the offset.
func draw(c *canvas, el *winforms.Element, offsetX, offsetY int) {
	if !el.Visible() {
		return
	}

	b := el.Bounds()
	x, y := offsetX+b.X, offsetY+b.Y
	box(c, x, y, b.Width, b.Height)
	label(c, x, y, b.Width, el.Name())

	for _, child := range el.Children() {
		draw(c, child, x, y)
	}
}

func box(c *canvas, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	right, bottom := x+width-1, y+height-1

	for i := x; i <= right; i++ {
		c.put(i, y, '-')
		c.put(i, bottom, '-')
	}
	for i := y; i <= bottom; i++ {
		c.put(x, i, '|')
		c.put(right, i, '|')
	}
	c.put(x, y, '+')
	c.put(right, y, '+')
	c.put(x, bottom, '+')
	c.put(right, bottom, '+')
}

// label writes the element's name into the top border, truncated to fit
// between the corners.
func label(c *canvas, x, y, width int, name string) {
	if name == "" || width < 4 {
		return
	}
	room := width - 2
	if len(name) > room {
		name = name[:room]
	}
	for i, r := range name {
		c.put(x+1+i, y, r)
	}
}
