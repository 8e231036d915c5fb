// Package window runs the editor in a native window using raylib.
package window

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/editor"
	"github.com/vovakirdan/cgapaint/internal/registry"
)

// FrontendID is the registry ID of the window frontend.
const FrontendID = "window"

// borderWidth is the thickness of the brush-coloured frame around the canvas.
const borderWidth = 1

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend opens a fixed-size window and paints with the mouse.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return FrontendID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Window (raylib)" }

// Run implements registry.Frontend. It blocks until the window is closed.
func (Frontend) Run(sess *editor.Session, cfg core.RuntimeConfig) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowW), int32(cfg.WindowH), cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	sess.SetViewport(cfg.WindowW, cfg.WindowH)
	colors := paletteColors(cfg.Palette)

	var poller core.Poller
	for !rl.WindowShouldClose() && !sess.Done() {
		sess.ApplyAll(poller.Poll(frameInput{}))
		draw(sess, colors)
	}
	return nil
}

// paletteColors converts the palette once so drawing does no lookups.
func paletteColors(p core.Palette) [core.PaletteSize + 1]color.RGBA {
	var out [core.PaletteSize + 1]color.RGBA
	for _, c := range core.AllColors() {
		rgb, _ := p.Lookup(c)
		out[c] = rl.NewColor(rgb.R, rgb.G, rgb.B, 255)
	}
	return out
}

// draw renders one frame: background, brush frame, then every cell.
func draw(sess *editor.Session, colors [core.PaletteSize + 1]color.RGBA) {
	view := sess.View()
	canvas := sess.Canvas()

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(colors[core.ColorBackground])

	frame := view.Bounds().Grow(borderWidth)
	rl.DrawRectangleLinesEx(rl.NewRectangle(
		float32(frame.X), float32(frame.Y), float32(frame.W), float32(frame.H),
	), borderWidth, colors[sess.Brush()])

	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			r := view.CellRect(x, y)
			rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), colors[canvas.Get(x, y)])
		}
	}
}

// frameInput reads the current raylib input state.
type frameInput struct{}

func (frameInput) DigitPressed(d int) bool {
	return rl.IsKeyPressed(rl.KeyOne + int32(d-1))
}

func (frameInput) Pointer() (int, int) {
	return int(rl.GetMouseX()), int(rl.GetMouseY())
}

func (frameInput) Pressed(b core.Button) bool {
	mb, ok := mouseButton(b)
	return ok && rl.IsMouseButtonPressed(mb)
}

func (frameInput) Released(b core.Button) bool {
	mb, ok := mouseButton(b)
	return ok && rl.IsMouseButtonReleased(mb)
}

func mouseButton(b core.Button) (rl.MouseButton, bool) {
	switch b {
	case core.ButtonLeft:
		return rl.MouseButtonLeft, true
	case core.ButtonRight:
		return rl.MouseButtonRight, true
	}
	return 0, false
}
