package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/cgapaint/internal/core"
)

// cellWidth is the number of terminal columns per canvas pixel, so cells look square.
const cellWidth = 2

// Painter turns a core.Screen into styled terminal text.
// Palette slots become true-colour backgrounds. On renderers without colour
// support each pixel is drawn with its digit instead.
type Painter struct {
	styles [core.PaletteSize + 1]lipgloss.Style
	glyphs bool
}

// NewPainter builds the per-colour styles for renderer r.
func NewPainter(r *lipgloss.Renderer, p core.Palette) *Painter {
	pt := &Painter{glyphs: r.ColorProfile() == termenv.Ascii}
	pt.styles[core.ColorNone] = r.NewStyle()

	for _, c := range core.AllColors() {
		rgb, _ := p.Lookup(c)
		pt.styles[c] = r.NewStyle().Background(lipgloss.Color(rgb.Hex()))
	}
	return pt
}

// style returns the style for c, the plain style for anything outside the palette.
func (p *Painter) style(c core.ColorIndex) lipgloss.Style {
	if !c.Valid() {
		return p.styles[core.ColorNone]
	}
	return p.styles[c]
}

// pixel returns the text for one canvas pixel.
func (p *Painter) pixel(c core.ColorIndex) string {
	if p.glyphs && c.Valid() {
		return strings.Repeat(string(c.Char()), cellWidth)
	}
	return strings.Repeat(" ", cellWidth)
}

// Swatch renders a single pixel of colour c.
func (p *Painter) Swatch(c core.ColorIndex) string {
	return p.style(c).Render(p.pixel(c))
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colour to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*cellWidth*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colour for efficiency
		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			var run strings.Builder
			for x < s.Width() && s.Get(x, y) == start {
				run.WriteString(p.pixel(start))
				x++
			}

			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderCanvas draws every cell of c at one pixel per cell, without frame.
func (p *Painter) RenderCanvas(c *core.Canvas) string {
	screen := core.NewScreen(c.Width(), c.Height())
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			screen.Set(x, y, c.Get(x, y))
		}
	}
	return p.Render(screen)
}
