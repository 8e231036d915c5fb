package core

import "testing"

func TestNewViewTransform(t *testing.T) {
	tests := []struct {
		name             string
		cw, ch, vw, vh   int
		zoom, offX, offY int
	}{
		{"4x2 in 800x600", 4, 2, 800, 600, 200, 0, 100},
		{"128x128 in 800x600", 128, 128, 800, 600, 4, 144, 44},
		{"1x1 in 800x600", 1, 1, 800, 600, 600, 100, 0},
		{"square fit", 10, 10, 30, 20, 2, 5, 0},
		{"canvas larger than viewport", 128, 128, 40, 20, 1, -44, -54},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewTransform(tc.cw, tc.ch, tc.vw, tc.vh)
			if v.Zoom() != tc.zoom {
				t.Errorf("Zoom() = %d, expected %d", v.Zoom(), tc.zoom)
			}
			ox, oy := v.Offset()
			if ox != tc.offX || oy != tc.offY {
				t.Errorf("Offset() = (%d, %d), expected (%d, %d)", ox, oy, tc.offX, tc.offY)
			}
		})
	}
}

func TestScreenToCellEdges(t *testing.T) {
	// zoom 200, offset (0, 100), canvas spans y in [100, 500)
	v := NewViewTransform(4, 2, 800, 600)

	tests := []struct {
		name   string
		px, py int
		cx, cy int
		hit    bool
	}{
		{"top-left pixel", 0, 100, 0, 0, true},
		{"bottom-right pixel", 799, 499, 3, 1, true},
		{"second column", 200, 100, 1, 0, true},
		{"last pixel of first cell", 199, 299, 0, 0, true},
		{"above canvas", 0, 99, 0, 0, false},
		{"below canvas", 0, 500, 0, 0, false},
		{"right of canvas", 800, 100, 0, 0, false},
		{"left of canvas", -1, 100, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy, ok := v.ScreenToCell(tc.px, tc.py)
			if ok != tc.hit {
				t.Fatalf("ScreenToCell(%d, %d) hit = %v, expected %v", tc.px, tc.py, ok, tc.hit)
			}
			if ok && (cx != tc.cx || cy != tc.cy) {
				t.Errorf("ScreenToCell(%d, %d) = (%d, %d), expected (%d, %d)", tc.px, tc.py, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestScreenToCellPartitionsBounds(t *testing.T) {
	// zoom 3, offset (0, 1): odd sizes so centring rounds
	v := NewViewTransform(3, 2, 10, 9)
	bounds := v.Bounds()

	for py := -5; py < 15; py++ {
		for px := -5; px < 15; px++ {
			cx, cy, ok := v.ScreenToCell(px, py)
			inside := bounds.Contains(px, py)
			if ok != inside {
				t.Fatalf("ScreenToCell(%d, %d) hit = %v, but Bounds().Contains = %v", px, py, ok, inside)
			}
			if ok && !v.CellRect(cx, cy).Contains(px, py) {
				t.Errorf("(%d, %d) mapped to cell (%d, %d) whose rect %+v does not contain it",
					px, py, cx, cy, v.CellRect(cx, cy))
			}
		}
	}
}

func TestScreenToCellLargeCanvas(t *testing.T) {
	v := NewViewTransform(128, 128, 40, 20)

	cx, cy, ok := v.ScreenToCell(0, 0)
	if !ok || cx != 44 || cy != 54 {
		t.Errorf("ScreenToCell(0, 0) = (%d, %d, %v), expected (44, 54, true)", cx, cy, ok)
	}
}

func TestViewTransformDegenerateCanvas(t *testing.T) {
	// Must not divide by zero
	v := NewViewTransform(0, 0, 10, 10)
	if v.Zoom() < 1 {
		t.Errorf("Zoom() = %d, expected at least 1", v.Zoom())
	}
}
