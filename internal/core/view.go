package core

// ViewTransform maps between viewport coordinates and canvas cells.
// The scaled canvas is centred in the viewport using an integer zoom factor.
// Values are computed once by NewViewTransform and never change.
type ViewTransform struct {
	canvasW   int
	canvasH   int
	viewportW int
	viewportH int
	zoom      int
	offsetX   int
	offsetY   int
}

// NewViewTransform computes the zoom and centring offsets for a canvas of
// canvasW x canvasH cells shown in a viewportW x viewportH viewport.
// Zoom is never below 1; a canvas larger than its viewport gets negative offsets.
func NewViewTransform(canvasW, canvasH, viewportW, viewportH int) ViewTransform {
	canvasW = Max(canvasW, 1)
	canvasH = Max(canvasH, 1)

	zoom := Min(viewportW/canvasW, viewportH/canvasH)
	if zoom < 1 {
		zoom = 1
	}

	return ViewTransform{
		canvasW:   canvasW,
		canvasH:   canvasH,
		viewportW: viewportW,
		viewportH: viewportH,
		zoom:      zoom,
		offsetX:   (viewportW - canvasW*zoom) / 2,
		offsetY:   (viewportH - canvasH*zoom) / 2,
	}
}

// Zoom returns the number of viewport units per cell side.
func (v ViewTransform) Zoom() int {
	return v.zoom
}

// Offset returns the viewport position of the canvas' top-left corner.
func (v ViewTransform) Offset() (int, int) {
	return v.offsetX, v.offsetY
}

// Viewport returns the viewport size the transform was built for.
func (v ViewTransform) Viewport() (int, int) {
	return v.viewportW, v.viewportH
}

// Bounds returns the viewport rectangle covered by the scaled canvas.
func (v ViewTransform) Bounds() Rect {
	return NewRect(v.offsetX, v.offsetY, v.canvasW*v.zoom, v.canvasH*v.zoom)
}

// ScreenToCell converts a pointer position to a canvas cell.
// ok is false when the pointer is outside the scaled canvas.
func (v ViewTransform) ScreenToCell(px, py int) (cx, cy int, ok bool) {
	cx = FloorDiv(px-v.offsetX, v.zoom)
	cy = FloorDiv(py-v.offsetY, v.zoom)
	if cx < 0 || cx >= v.canvasW || cy < 0 || cy >= v.canvasH {
		return 0, 0, false
	}
	return cx, cy, true
}

// CellRect returns the viewport rectangle covered by cell (x, y).
func (v ViewTransform) CellRect(x, y int) Rect {
	return NewRect(v.offsetX+x*v.zoom, v.offsetY+y*v.zoom, v.zoom, v.zoom)
}
