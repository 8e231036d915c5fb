package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cgapaint/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
		ok   bool
	}{
		{"digit 1", runeKey('1'), core.KeyEvent('1'), true},
		{"digit 8", runeKey('8'), core.KeyEvent('8'), true},
		{"digit 9 ignored", runeKey('9'), core.Event{}, false},
		{"digit 0 ignored", runeKey('0'), core.Event{}, false},
		{"letter ignored", runeKey('x'), core.Event{}, false},
		{"q quits", runeKey('q'), core.QuitEvent(), true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.QuitEvent(), true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.QuitEvent(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MapKey(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MapKey(%q) = %+v, %v; expected %+v, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	mouse := func(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
	}

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want []core.Event
	}{
		{
			"left press halves x",
			mouse(tea.MouseActionPress, tea.MouseButtonLeft, 7, 3),
			[]core.Event{core.ButtonDownEvent(core.ButtonLeft, 3, 3)},
		},
		{
			"right press",
			mouse(tea.MouseActionPress, tea.MouseButtonRight, 4, 1),
			[]core.Event{core.ButtonDownEvent(core.ButtonRight, 2, 1)},
		},
		{
			"middle press ignored",
			mouse(tea.MouseActionPress, tea.MouseButtonMiddle, 4, 1),
			nil,
		},
		{
			"wheel ignored",
			mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, 4, 1),
			nil,
		},
		{
			"left release",
			mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 2, 2),
			[]core.Event{core.ButtonUpEvent(core.ButtonLeft, 1, 2)},
		},
		{
			"release without button releases both",
			mouse(tea.MouseActionRelease, tea.MouseButtonNone, 2, 2),
			[]core.Event{
				core.ButtonUpEvent(core.ButtonLeft, 1, 2),
				core.ButtonUpEvent(core.ButtonRight, 1, 2),
			},
		},
		{
			"motion",
			mouse(tea.MouseActionMotion, tea.MouseButtonNone, 9, 5),
			[]core.Event{core.MotionEvent(4, 5)},
		},
		{
			"drag",
			mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 10, 0),
			[]core.Event{core.MotionEvent(5, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.MapMouse(tt.msg)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MapMouse() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}
