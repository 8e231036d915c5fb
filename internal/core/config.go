package core

// RuntimeConfig contains configuration passed to frontends when a session starts.
type RuntimeConfig struct {
	ScreenW  int     // Terminal width in characters
	ScreenH  int     // Terminal height in characters
	WindowW  int     // Window width in pixels (window frontend)
	WindowH  int     // Window height in pixels (window frontend)
	FPS      int     // Frame rate cap (default 60)
	Title    string  // Window title
	Palette  Palette // Colour table used for drawing
	ShowHelp bool    // Show the key help line under the canvas
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		WindowW:  800,
		WindowH:  600,
		FPS:      60,
		Title:    "Computer Graphics Array Painter",
		Palette:  DefaultPalette(),
		ShowHelp: true,
	}
}
