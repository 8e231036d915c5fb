package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/editor"
)

// hudStyles holds the styles of the status and help lines.
type hudStyles struct {
	status lipgloss.Style
	dim    lipgloss.Style
	err    lipgloss.Style
}

func newHUDStyles(r *lipgloss.Renderer) hudStyles {
	return hudStyles{
		status: r.NewStyle().Bold(true),
		dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
		err:    r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// EditorModel is the Bubble Tea model for painting in the terminal.
// The canvas fills the terminal above a status line and a help line.
type EditorModel struct {
	sess     *editor.Session
	screen   *core.Screen
	painter  *Painter
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	styles   hudStyles
	config   core.RuntimeConfig
	width    int
	height   int
	hoverX   int
	hoverY   int
	hovering bool
	quitting bool
}

// NewEditorModel creates the editor model for sess, rendering with r.
func NewEditorModel(sess *editor.Session, cfg core.RuntimeConfig, r *lipgloss.Renderer) EditorModel {
	keys := DefaultKeyMap()

	h := help.New()
	h.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color("250"))
	h.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.ShortSeparator = r.NewStyle().Foreground(lipgloss.Color("240"))
	h.Styles.FullSeparator = h.Styles.ShortSeparator

	m := EditorModel{
		sess:    sess,
		screen:  core.NewScreen(0, 0),
		painter: NewPainter(r, cfg.Palette),
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    h,
		styles:  newHUDStyles(r),
		config:  cfg,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	ev, ok := m.mapper.MapKey(msg)
	if !ok {
		return m, nil
	}

	m.sess.Apply(ev)
	if m.sess.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse processes pointer input and tracks the hovered cell.
func (m EditorModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	px, py := m.mapper.Position(msg.X, msg.Y)
	m.hoverX, m.hoverY, m.hovering = m.sess.View().ScreenToCell(px, py)

	m.sess.ApplyAll(m.mapper.MapMouse(msg))
	return m, nil
}

// resize recomputes the canvas viewport for a terminal of w x h cells.
// The session gets a fresh view transform; the old one is discarded.
func (m *EditorModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w

	vw := w / cellWidth
	vh := h - m.hudHeight()
	m.screen.Resize(vw, vh)
	m.sess.SetViewport(vw, vh)
}

// hudHeight returns the number of lines below the canvas.
func (m EditorModel) hudHeight() int {
	if !m.config.ShowHelp {
		return 1
	}
	return 1 + lipgloss.Height(m.helpView())
}

func (m EditorModel) helpView() string {
	v := m.help.View(m.keys)
	if m.help.ShowAll {
		v = lipgloss.JoinVertical(lipgloss.Left, v,
			m.styles.dim.Render("left click paint • right click erase to white"))
	}
	return v
}

// statusLine renders the brush swatch, hovered cell, file and save state.
func (m EditorModel) statusLine() string {
	brush := m.sess.Brush()
	parts := []string{
		m.painter.Swatch(brush) + " " + m.styles.status.Render(fmt.Sprintf("%c %s", brush.Char(), brush)),
	}

	cell := "-"
	if m.hovering {
		cell = fmt.Sprintf("%d,%d", m.hoverX, m.hoverY)
	}
	c := m.sess.Canvas()
	parts = append(parts,
		m.styles.dim.Render(fmt.Sprintf("cell %s", cell)),
		m.styles.dim.Render(fmt.Sprintf("%s %dx%d", filepath.Base(m.sess.Path()), c.Width(), c.Height())),
		m.styles.dim.Render(fmt.Sprintf("edits %d", m.sess.Edits())),
	)
	if err := m.sess.SaveErr(); err != nil {
		parts = append(parts, m.styles.err.Render("save failed: "+err.Error()))
	}

	line := parts[0]
	for _, p := range parts[1:] {
		line += m.styles.dim.Render("  ") + p
	}
	return line
}

// View renders the current state to a string for display.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	core.RenderCanvas(m.screen, m.sess.Canvas(), m.sess.View(), m.sess.Brush())

	rows := []string{m.painter.Render(m.screen), m.statusLine()}
	if m.config.ShowHelp {
		rows = append(rows, m.helpView())
	}
	return strings.Join(rows, "\n")
}

// Session returns the session the model edits.
func (m EditorModel) Session() *editor.Session {
	return m.sess
}

// IsQuitting returns true once the user asked to quit.
func (m EditorModel) IsQuitting() bool {
	return m.quitting
}
