package core

import (
	"strings"
)

// Screen is a 2D buffer of palette cells that frontends draw into.
// It decouples canvas rendering from the terminal: RenderCanvas paints the
// scaled canvas here and the platform layer turns cells into styled text.
// ColorNone marks cells left to the terminal's default background.
type Screen struct {
	width  int
	height int
	cells  [][]ColorIndex
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]ColorIndex, s.height)
	for y := range s.cells {
		s.cells[y] = make([]ColorIndex, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
}

// Clear resets every cell to ColorNone.
func (s *Screen) Clear() {
	s.Fill(ColorNone)
}

// Fill fills the entire screen with c.
func (s *Screen) Fill(c ColorIndex) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set colours the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c ColorIndex) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position, ColorNone when out of bounds.
func (s *Screen) Get(x, y int) ColorIndex {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorNone
	}
	return s.cells[y][x]
}

// FillRect fills a rectangular area, clipped to the screen.
func (s *Screen) FillRect(r Rect, c ColorIndex) {
	for y := Max(r.Y, 0); y < Min(r.Bottom(), s.height); y++ {
		for x := Max(r.X, 0); x < Min(r.Right(), s.width); x++ {
			s.cells[y][x] = c
		}
	}
}

// DrawFrame draws a one-cell outline of r.
func (s *Screen) DrawFrame(r Rect, c ColorIndex) {
	for x := r.X; x < r.Right(); x++ {
		s.Set(x, r.Y, c)
		s.Set(x, r.Bottom()-1, c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, c)
		s.Set(r.Right()-1, y, c)
	}
}

// Row returns a copy of row y, or nil when out of range.
func (s *Screen) Row(y int) []ColorIndex {
	if y < 0 || y >= s.height {
		return nil
	}
	row := make([]ColorIndex, s.width)
	copy(row, s.cells[y])
	return row
}

// String renders the buffer as digits ('.' for ColorNone), one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.width; x++ {
			c := s.cells[y][x]
			if c == ColorNone {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(c.Char())
		}
	}
	return sb.String()
}

// RenderCanvas draws canvas into dst through view: a one-cell frame in the
// brush colour around the scaled canvas, then every cell as a zoom x zoom block.
func RenderCanvas(dst *Screen, canvas *Canvas, view ViewTransform, brush ColorIndex) {
	dst.Clear()

	if brush.Valid() {
		dst.DrawFrame(view.Bounds().Grow(1), brush)
	}

	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			dst.FillRect(view.CellRect(x, y), canvas.Get(x, y))
		}
	}
}
