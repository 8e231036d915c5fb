package core

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	default:
		return "None"
	}
}

// EventKind classifies an input event.
type EventKind int

const (
	EventNone       EventKind = iota
	EventKey                  // Key pressed; Key holds the rune
	EventButtonDown           // Pointer button pressed at (X, Y)
	EventButtonUp             // Pointer button released
	EventMotion               // Pointer moved to (X, Y)
	EventQuit                 // Window closed or quit key
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "Key"
	case EventButtonDown:
		return "ButtonDown"
	case EventButtonUp:
		return "ButtonUp"
	case EventMotion:
		return "Motion"
	case EventQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Event is a frontend-neutral input event.
// Frontends translate their native events (Bubble Tea messages, raylib polling)
// into Events; positions are in viewport units.
type Event struct {
	Kind   EventKind
	Key    rune
	Button Button
	X, Y   int
}

// KeyEvent creates a key press event.
func KeyEvent(r rune) Event {
	return Event{Kind: EventKey, Key: r}
}

// ButtonDownEvent creates a button press at (x, y).
func ButtonDownEvent(b Button, x, y int) Event {
	return Event{Kind: EventButtonDown, Button: b, X: x, Y: y}
}

// ButtonUpEvent creates a button release at (x, y).
func ButtonUpEvent(b Button, x, y int) Event {
	return Event{Kind: EventButtonUp, Button: b, X: x, Y: y}
}

// MotionEvent creates a pointer motion event.
func MotionEvent(x, y int) Event {
	return Event{Kind: EventMotion, X: x, Y: y}
}

// QuitEvent creates a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// HasPosition reports whether the event carries a pointer position that may paint.
func (e Event) HasPosition() bool {
	return e.Kind == EventMotion || e.Kind == EventButtonDown
}
