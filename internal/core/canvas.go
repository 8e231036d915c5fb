package core

import (
	"errors"
	"fmt"
)

// MaxCanvasSize is the largest allowed width or height.
const MaxCanvasSize = 128

// ErrInvalidDimensions is returned when a canvas width or height is outside 1..MaxCanvasSize.
var ErrInvalidDimensions = errors.New("invalid canvas dimensions")

// ValidateDimensions checks that w and h are both within 1..MaxCanvasSize.
func ValidateDimensions(w, h int) error {
	if w <= 0 || h <= 0 || w > MaxCanvasSize || h > MaxCanvasSize {
		return fmt.Errorf("%w: %dx%d (each side must be 1..%d)", ErrInvalidDimensions, w, h, MaxCanvasSize)
	}
	return nil
}

// Canvas is the indexed-colour grid being edited.
// Cells are stored in row-major order: index = y*width + x.
type Canvas struct {
	width  int
	height int
	cells  []ColorIndex
}

// NewCanvas allocates a width x height canvas filled with ColorBackground.
func NewCanvas(width, height int) (*Canvas, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]ColorIndex, width*height),
	}
	c.Fill(ColorBackground)
	return c, nil
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// InBounds returns true if (x, y) addresses a cell.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set overwrites the cell at (x, y).
// Out-of-bounds coordinates and invalid indexes are silently ignored.
func (c *Canvas) Set(x, y int, idx ColorIndex) {
	if !c.InBounds(x, y) || !idx.Valid() {
		return
	}
	c.cells[y*c.width+x] = idx
}

// Get returns the cell at (x, y), or ColorNone for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) ColorIndex {
	if !c.InBounds(x, y) {
		return ColorNone
	}
	return c.cells[y*c.width+x]
}

// Fill sets every cell to idx.
func (c *Canvas) Fill(idx ColorIndex) {
	if !idx.Valid() {
		return
	}
	for i := range c.cells {
		c.cells[i] = idx
	}
}

// Row returns a copy of row y, or nil if y is out of range.
func (c *Canvas) Row(y int) []ColorIndex {
	if y < 0 || y >= c.height {
		return nil
	}
	row := make([]ColorIndex, c.width)
	copy(row, c.cells[y*c.width:(y+1)*c.width])
	return row
}

// Count returns how many cells hold idx.
func (c *Canvas) Count(idx ColorIndex) int {
	n := 0
	for _, cell := range c.cells {
		if cell == idx {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	cells := make([]ColorIndex, len(c.cells))
	copy(cells, c.cells)
	return &Canvas{
		width:  c.width,
		height: c.height,
		cells:  cells,
	}
}

// Equal returns true if both canvases have the same size and contents.
func (c *Canvas) Equal(other *Canvas) bool {
	if other == nil || c.width != other.width || c.height != other.height {
		return false
	}
	for i, cell := range c.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
