package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(t *testing.T, m PromptModel, s string) PromptModel {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(runeKey(r))
		m = next.(PromptModel)
	}
	return m
}

func press(t *testing.T, m PromptModel, k tea.KeyType) (PromptModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(PromptModel), cmd
}

func TestPromptCollectsAllFields(t *testing.T) {
	m := NewPromptModel(PromptValues{}, PromptValues{Name: "untitled"})

	m = typeText(t, m, "16")
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "8")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "cat")
	m, cmd := press(t, m, tea.KeyEnter)

	if !m.Done() || cmd == nil {
		t.Fatal("enter on the last field should finish the prompt")
	}
	want := PromptValues{Width: 16, Height: 8, Name: "cat"}
	if m.Values() != want {
		t.Errorf("Values() = %+v, expected %+v", m.Values(), want)
	}
}

func TestPromptSkipsKnownValues(t *testing.T) {
	m := NewPromptModel(PromptValues{Width: 4, Name: "art"}, PromptValues{})
	if len(m.inputs) != 1 || m.fields[0] != fieldHeight {
		t.Fatalf("prompt should only ask for the height, fields = %v", m.fields)
	}

	m = typeText(t, m, "2")
	m, _ = press(t, m, tea.KeyEnter)

	want := PromptValues{Width: 4, Height: 2, Name: "art"}
	if !m.Done() || m.Values() != want {
		t.Errorf("Values() = %+v (done=%v), expected %+v", m.Values(), m.Done(), want)
	}
}

func TestPromptNothingMissing(t *testing.T) {
	m := NewPromptModel(PromptValues{Width: 1, Height: 1, Name: "x"}, PromptValues{})
	if !m.Done() {
		t.Error("prompt with every value known should be done immediately")
	}
}

func TestPromptRejectsNonInteger(t *testing.T) {
	m := NewPromptModel(PromptValues{}, PromptValues{Name: "untitled"})

	m = typeText(t, m, "abc")
	m, _ = press(t, m, tea.KeyTab)

	if m.focus != 0 {
		t.Error("focus should stay on the invalid field")
	}
	if m.errs[0] == "" {
		t.Error("an inline error should be shown")
	}

	// Out-of-range numbers pass; the caller reports them
	m = NewPromptModel(PromptValues{Height: 4, Name: "x"}, PromptValues{})
	m = typeText(t, m, "500")
	m, _ = press(t, m, tea.KeyEnter)
	if !m.Done() || m.Values().Width != 500 {
		t.Errorf("Values() = %+v, expected width 500 to be accepted by the prompt", m.Values())
	}
}

func TestPromptPlaceholderDefaults(t *testing.T) {
	m := NewPromptModel(PromptValues{}, PromptValues{Width: 32, Height: 16, Name: "untitled"})

	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyEnter)

	want := PromptValues{Width: 32, Height: 16, Name: "untitled"}
	if !m.Done() || m.Values() != want {
		t.Errorf("Values() = %+v, expected suggested values %+v", m.Values(), want)
	}
}

func TestPromptCancel(t *testing.T) {
	m := NewPromptModel(PromptValues{}, PromptValues{})
	m, cmd := press(t, m, tea.KeyEsc)
	if !m.Cancelled() || cmd == nil {
		t.Error("esc should cancel the prompt")
	}
	if m.View() != "" {
		t.Error("cancelled prompt should render nothing")
	}
}
