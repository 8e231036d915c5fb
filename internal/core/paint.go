package core

// PaintState is the whole state of the paint state machine.
// "Painting" versus "idle" is not a separate mode; it is inferred from the
// button flags on each positioned event.
type PaintState struct {
	Brush     ColorIndex
	LeftDown  bool
	RightDown bool
	Quit      bool
}

// NewPaintState returns the startup state: brush 1, no buttons held.
func NewPaintState() PaintState {
	return PaintState{Brush: DefaultBrush}
}

// Painting reports whether a positioned event would mutate the canvas.
func (s PaintState) Painting() bool {
	return s.LeftDown || s.RightDown
}

// Mutation is a single cell write produced by the reducer.
type Mutation struct {
	X, Y  int
	Color ColorIndex
}

// Reduce applies one event to the state.
// When the event lands on a canvas cell while a button is held, the returned
// Mutation describes the write and ok is true. Left takes priority over right.
func Reduce(s PaintState, ev Event, view ViewTransform) (next PaintState, m Mutation, ok bool) {
	next = s

	switch ev.Kind {
	case EventKey:
		if c, valid := ColorFromKey(ev.Key); valid {
			next.Brush = c
		}
		return next, Mutation{}, false

	case EventButtonDown:
		switch ev.Button {
		case ButtonLeft:
			next.LeftDown = true
		case ButtonRight:
			next.RightDown = true
		}

	case EventButtonUp:
		switch ev.Button {
		case ButtonLeft:
			next.LeftDown = false
		case ButtonRight:
			next.RightDown = false
		}
		return next, Mutation{}, false

	case EventQuit:
		next.Quit = true
		return next, Mutation{}, false
	}

	if !ev.HasPosition() || !next.Painting() {
		return next, Mutation{}, false
	}

	cx, cy, hit := view.ScreenToCell(ev.X, ev.Y)
	if !hit {
		return next, Mutation{}, false
	}

	if next.LeftDown {
		return next, Mutation{X: cx, Y: cy, Color: next.Brush}, true
	}
	return next, Mutation{X: cx, Y: cy, Color: ColorBackground}, true
}
