package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cgapaint/internal/core"
)

// KeyMap holds the editor key bindings.
type KeyMap struct {
	Brush key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Brush: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "brush"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Brush, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Brush},
		{k.Help, k.Quit},
	}
}

// KeyMapper translates Bubble Tea messages to editor events.
// Mouse positions are converted to viewport units: one canvas pixel is
// cellWidth terminal columns wide.
type KeyMapper struct {
	keys      KeyMap
	cellWidth int
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys, cellWidth: cellWidth}
}

// MapKey translates a key message.
// Returns ok=false for keys the editor does not handle.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.QuitEvent(), true
	case key.Matches(msg, km.keys.Brush):
		return core.KeyEvent(msg.Runes[0]), true
	}
	return core.Event{}, false
}

// Position converts a terminal cell position to viewport units.
func (km *KeyMapper) Position(x, y int) (int, int) {
	return core.FloorDiv(x, km.cellWidth), y
}

// MapMouse translates a mouse message into zero or more events.
// A release without a button (X10 terminals) releases both buttons.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) []core.Event {
	px, py := km.Position(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if b, ok := mapButton(msg.Button); ok {
			return []core.Event{core.ButtonDownEvent(b, px, py)}
		}
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonNone {
			return []core.Event{
				core.ButtonUpEvent(core.ButtonLeft, px, py),
				core.ButtonUpEvent(core.ButtonRight, px, py),
			}
		}
		if b, ok := mapButton(msg.Button); ok {
			return []core.Event{core.ButtonUpEvent(b, px, py)}
		}
	case tea.MouseActionMotion:
		return []core.Event{core.MotionEvent(px, py)}
	}
	return nil
}

func mapButton(b tea.MouseButton) (core.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonLeft, true
	case tea.MouseButtonRight:
		return core.ButtonRight, true
	}
	return core.ButtonNone, false
}
