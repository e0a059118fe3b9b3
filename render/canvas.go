package render

import (
	"math"

	"github.com/lixenwraith/trajectory/vmath"
)

// Canvas maps a fixed virtual pixel surface onto the terminal cell grid
// Every cell covers an equal rectangle of canvas pixels; the aspect ratio is not preserved
type Canvas struct {
	width, height float64
	cols, rows    int
}

// NewCanvas creates a canvas of width x height pixels over a cols x rows terminal
func NewCanvas(width, height float64, cols, rows int) *Canvas {
	c := &Canvas{width: width, height: height, cols: 1, rows: 1}
	c.Resize(cols, rows)
	return c
}

// Resize updates the terminal grid; non-positive sizes are ignored
func (c *Canvas) Resize(cols, rows int) {
	if cols > 0 {
		c.cols = cols
	}
	if rows > 0 {
		c.rows = rows
	}
}

// Size returns the terminal grid
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Extent returns the canvas size in pixels
func (c *Canvas) Extent() vmath.Vec2 {
	return vmath.V2(c.width, c.height)
}

func (c *Canvas) cellSize() (w, h float64) {
	return c.width / float64(c.cols), c.height / float64(c.rows)
}

// CellToCanvas returns the canvas point at the center of cell (x, y)
func (c *Canvas) CellToCanvas(x, y int) vmath.Vec2 {
	w, h := c.cellSize()
	return vmath.V2((float64(x)+0.5)*w, (float64(y)+0.5)*h)
}

// CanvasToCell returns the cell containing canvas point p; the result may lie off-grid
func (c *Canvas) CanvasToCell(p vmath.Vec2) (x, y int) {
	w, h := c.cellSize()
	return int(math.Floor(p[0] / w)), int(math.Floor(p[1] / h))
}

// InGrid reports whether cell (x, y) is on screen
func (c *Canvas) InGrid(x, y int) bool {
	return x >= 0 && x < c.cols && y >= 0 && y < c.rows
}
