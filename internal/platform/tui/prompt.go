package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrPromptCancelled is returned by RunPrompt when the user presses Esc.
var ErrPromptCancelled = errors.New("tui: prompt cancelled")

// PromptValues are the answers collected before a new drawing is created.
// Zero values mean "not given".
type PromptValues struct {
	Width  int
	Height int
	Name   string
}

type promptField int

const (
	fieldWidth promptField = iota
	fieldHeight
	fieldName
)

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	promptLabelStyle = lipgloss.NewStyle().Width(8)
	promptErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1)
)

// PromptModel asks for the values missing from the command line.
type PromptModel struct {
	fields    []promptField
	inputs    []textinput.Model
	errs      []string
	focus     int
	values    PromptValues
	done      bool
	cancelled bool
}

// NewPromptModel creates a prompt for every zero field of known.
// suggest provides placeholders; a blank name falls back to its Name.
func NewPromptModel(known, suggest PromptValues) PromptModel {
	m := PromptModel{values: known}

	add := func(f promptField, placeholder string, limit int) {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 24
		m.fields = append(m.fields, f)
		m.inputs = append(m.inputs, in)
		m.errs = append(m.errs, "")
	}

	if known.Width == 0 {
		add(fieldWidth, suggestInt(suggest.Width, "1-128"), 4)
	}
	if known.Height == 0 {
		add(fieldHeight, suggestInt(suggest.Height, "1-128"), 4)
	}
	if known.Name == "" {
		add(fieldName, suggest.Name, 255)
	}

	if m.values.Name == "" {
		m.values.Name = suggest.Name
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	} else {
		m.done = true
	}
	return m
}

func suggestInt(v int, fallback string) string {
	if v > 0 {
		return strconv.Itoa(v)
	}
	return fallback
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "tab", "down", "enter":
			if !m.commit(m.focus) {
				return m, nil
			}
			if m.focus == len(m.inputs)-1 {
				if msg.String() != "enter" {
					return m, nil
				}
				m.done = true
				return m, tea.Quit
			}
			return m, m.setFocus(m.focus + 1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// commit validates field i and stores its value.
// Width and height must be whole numbers; range checks happen after the prompt.
func (m *PromptModel) commit(i int) bool {
	raw := strings.TrimSpace(m.inputs[i].Value())

	switch m.fields[i] {
	case fieldWidth, fieldHeight:
		if raw == "" {
			raw = m.inputs[i].Placeholder
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.errs[i] = "enter a whole number"
			return false
		}
		if m.fields[i] == fieldWidth {
			m.values.Width = n
		} else {
			m.values.Height = n
		}
	case fieldName:
		if raw != "" {
			m.values.Name = raw
		}
		if m.values.Name == "" {
			m.errs[i] = "enter a file name"
			return false
		}
	}

	m.errs[i] = ""
	return true
}

func (m *PromptModel) setFocus(i int) tea.Cmd {
	if i < 0 || i >= len(m.inputs) {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// View renders the form.
func (m PromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	labels := map[promptField]string{
		fieldWidth:  "Width",
		fieldHeight: "Height",
		fieldName:   "File",
	}

	rows := []string{promptTitleStyle.Render("New drawing")}
	for i, f := range m.fields {
		row := promptLabelStyle.Render(labels[f]) + m.inputs[i].View()
		if m.errs[i] != "" {
			row += "  " + promptErrStyle.Render(m.errs[i])
		}
		rows = append(rows, row)
	}
	rows = append(rows, promptHintStyle.Render("tab next • enter confirm • esc cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Values returns the collected answers.
func (m PromptModel) Values() PromptValues {
	return m.values
}

// Done reports whether every field was confirmed.
func (m PromptModel) Done() bool {
	return m.done
}

// Cancelled reports whether the user pressed Esc.
func (m PromptModel) Cancelled() bool {
	return m.cancelled
}

// RunPrompt asks for the missing values. It does not start a program when
// nothing is missing.
func RunPrompt(known, suggest PromptValues) (PromptValues, error) {
	m := NewPromptModel(known, suggest)
	if m.Done() {
		return m.Values(), nil
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return PromptValues{}, err
	}

	pm, ok := final.(PromptModel)
	if !ok || pm.Cancelled() || !pm.Done() {
		return PromptValues{}, ErrPromptCancelled
	}
	return pm.Values(), nil
}
