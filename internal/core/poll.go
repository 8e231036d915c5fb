package core

// FrameInput is the input state an immediate-mode frontend can query once per frame.
type FrameInput interface {
	// DigitPressed reports whether digit key d (1..8) went down this frame.
	DigitPressed(d int) bool
	// Pointer returns the pointer position in viewport units.
	Pointer() (x, y int)
	// Pressed and Released report button transitions during this frame.
	Pressed(b Button) bool
	Released(b Button) bool
}

// Poller turns per-frame input state into events.
// Events come out in a fixed order: digit keys, motion, presses, releases.
// Motion is only reported when the pointer moved since the previous frame.
type Poller struct {
	lastX, lastY int
	seen         bool
}

// Poll returns the events of one frame.
func (p *Poller) Poll(in FrameInput) []Event {
	var events []Event

	for d := 1; d <= PaletteSize; d++ {
		if in.DigitPressed(d) {
			events = append(events, KeyEvent(rune('0'+d)))
		}
	}

	x, y := in.Pointer()
	if !p.seen || x != p.lastX || y != p.lastY {
		events = append(events, MotionEvent(x, y))
		p.lastX, p.lastY, p.seen = x, y, true
	}

	for _, b := range []Button{ButtonLeft, ButtonRight} {
		if in.Pressed(b) {
			events = append(events, ButtonDownEvent(b, x, y))
		}
	}
	for _, b := range []Button{ButtonLeft, ButtonRight} {
		if in.Released(b) {
			events = append(events, ButtonUpEvent(b, x, y))
		}
	}

	return events
}
