package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cgapaint/internal/cga"
	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/storage"
)

// MenuItem represents a selectable drawing in the menu.
type MenuItem struct {
	Path   string
	Width  int
	Height int
	Edits  int
}

// menuKeyMap holds the picker bindings.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true)
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for picking a recent drawing.
// The highlighted drawing is previewed next to the list.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     menuKeyMap
	painter  *Painter
	previews map[string]string
	quitting bool
	selected *MenuItem // Set when user selects a drawing
}

// NewMenuModel creates a new menu model listing drawings.
func NewMenuModel(drawings []storage.Drawing, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(drawings))
	for _, d := range drawings {
		items = append(items, MenuItem{
			Path:   d.Path,
			Width:  d.Width,
			Height: d.Height,
			Edits:  d.Edits,
		})
	}

	return MenuModel{
		items:    items,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		keys:     defaultMenuKeyMap(),
		painter:  NewPainter(lipgloss.DefaultRenderer(), cfg.Palette),
		previews: make(map[string]string),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// preview renders the drawing at path, caching the result.
// Drawings too large for the terminal are not previewed.
func (m MenuModel) preview(item MenuItem) string {
	if v, ok := m.previews[item.Path]; ok {
		return v
	}

	v := menuDimStyle.Render("(no preview)")
	if item.Width*cellWidth <= m.width/2 && item.Height <= m.height-4 {
		if c, err := cga.Load(item.Path); err == nil {
			v = m.painter.RenderCanvas(c)
		} else {
			v = menuDimStyle.Render("(unreadable)")
		}
	}
	m.previews[item.Path] = v
	return v
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("Open a recent drawing"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("No drawings recorded yet.\n")
		return b.String()
	}

	var list strings.Builder
	for i, item := range m.items {
		line := fmt.Sprintf("%-24s %4dx%-4d %6d edits", filepath.Base(item.Path), item.Width, item.Height, item.Edits)
		if i == m.cursor {
			list.WriteString(menuCursorStyle.Render("> " + line))
		} else {
			list.WriteString("  " + line)
		}
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		list.String(), "   ", m.preview(m.items[m.cursor])))
	b.WriteString("\n\n")
	b.WriteString(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Open  |  Q: Quit"))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu shows the picker and returns the chosen path, "" when the user quit.
func RunMenu(drawings []storage.Drawing, cfg core.RuntimeConfig) (string, error) {
	model := NewMenuModel(drawings, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().Path, nil
}
