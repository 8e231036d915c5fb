package core

import "testing"

func TestColorChars(t *testing.T) {
	for _, c := range AllColors() {
		ch := c.Char()
		parsed, ok := ParseColorChar(ch)
		if !ok || parsed != c {
			t.Errorf("ParseColorChar(%q) = %v, %v; expected %v", ch, parsed, ok, c)
		}
	}

	for _, b := range []byte{'0', '9', ';', 'a', ' '} {
		if _, ok := ParseColorChar(b); ok {
			t.Errorf("ParseColorChar(%q) should fail", b)
		}
	}
}

func TestColorFromKey(t *testing.T) {
	c, ok := ColorFromKey('2')
	if !ok || c != ColorRed {
		t.Errorf("ColorFromKey('2') = %v, %v; expected red", c, ok)
	}
	for _, r := range []rune{'0', '9', 'x'} {
		if _, ok := ColorFromKey(r); ok {
			t.Errorf("ColorFromKey(%q) should fail", r)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		c   ColorIndex
		hex string
	}{
		{ColorBlack, "#000000"},
		{ColorRed, "#FF0000"},
		{ColorGreen, "#00FF00"},
		{ColorBlue, "#0000FF"},
		{ColorYellow, "#FFFF00"},
		{ColorMagenta, "#FF00FF"},
		{ColorCyan, "#00FFFF"},
		{ColorWhite, "#FFFFFF"},
	}

	for _, tc := range tests {
		rgb, ok := p.Lookup(tc.c)
		if !ok {
			t.Fatalf("Lookup(%v) failed", tc.c)
		}
		if rgb.Hex() != tc.hex {
			t.Errorf("Lookup(%v) = %s, expected %s", tc.c, rgb.Hex(), tc.hex)
		}
	}

	if _, ok := p.Lookup(ColorNone); ok {
		t.Error("Lookup(ColorNone) should fail")
	}
}

func TestDefaultPaletteIsACopy(t *testing.T) {
	p := DefaultPalette()
	p[0] = RGB{1, 2, 3}

	if DefaultPalette()[0] != (RGB{}) {
		t.Error("modifying a returned palette must not affect DefaultPalette()")
	}
}
