package core

import "fmt"

// ColorIndex is a palette slot. Valid indexes are 1..8; 0 means "no colour"
// and is never stored in a Canvas.
type ColorIndex uint8

// Palette slots, in file order.
const (
	ColorNone ColorIndex = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
)

const (
	// PaletteSize is the number of usable colours.
	PaletteSize = 8

	// ColorBackground is the value of erased and freshly created cells.
	ColorBackground = ColorWhite

	// DefaultBrush is the brush selected at startup.
	DefaultBrush = ColorBlack
)

// Valid reports whether c is one of the eight palette slots.
func (c ColorIndex) Valid() bool {
	return c >= ColorBlack && c <= ColorWhite
}

// String returns the colour name.
func (c ColorIndex) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "none"
	}
}

// Char returns the ASCII digit used for c in the pixel format.
func (c ColorIndex) Char() byte {
	return '0' + byte(c)
}

// ParseColorChar converts a pixel-format digit back to a ColorIndex.
func ParseColorChar(b byte) (ColorIndex, bool) {
	if b < '1' || b > '8' {
		return ColorNone, false
	}
	return ColorIndex(b - '0'), true
}

// ColorFromKey maps a digit key ('1'..'8') to its palette slot.
func ColorFromKey(r rune) (ColorIndex, bool) {
	if r < '1' || r > '8' {
		return ColorNone, false
	}
	return ColorIndex(r - '0'), true
}

// AllColors returns the palette slots in order.
func AllColors() []ColorIndex {
	return []ColorIndex{
		ColorBlack, ColorRed, ColorGreen, ColorBlue,
		ColorYellow, ColorMagenta, ColorCyan, ColorWhite,
	}
}

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Palette maps the eight colour slots to RGB values. Slot i is stored at i-1.
// It is a value type; renderers receive their own copy.
type Palette [PaletteSize]RGB

// DefaultPalette returns the fixed 3-bit palette.
func DefaultPalette() Palette {
	return Palette{
		{0, 0, 0},       // 1 black
		{255, 0, 0},     // 2 red
		{0, 255, 0},     // 3 green
		{0, 0, 255},     // 4 blue
		{255, 255, 0},   // 5 yellow
		{255, 0, 255},   // 6 magenta
		{0, 255, 255},   // 7 cyan
		{255, 255, 255}, // 8 white
	}
}

// Lookup returns the RGB value of c. ok is false for invalid indexes.
func (p Palette) Lookup(c ColorIndex) (rgb RGB, ok bool) {
	if !c.Valid() {
		return RGB{}, false
	}
	return p[c-1], true
}
