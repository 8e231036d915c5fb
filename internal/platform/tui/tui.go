// Package tui provides the Bubble Tea integration for cgapaint.
// It handles the terminal editor, the startup prompt and the SSH server.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/editor"
	"github.com/vovakirdan/cgapaint/internal/registry"
)

// FrontendID is the registry ID of the terminal frontend.
const FrontendID = "terminal"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the editor in the current terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return FrontendID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (Bubble Tea, mouse)" }

// Run implements registry.Frontend.
func (Frontend) Run(sess *editor.Session, cfg core.RuntimeConfig) error {
	return Run(sess, cfg)
}

// Run starts the Bubble Tea program for sess and blocks until the user quits.
func Run(sess *editor.Session, cfg core.RuntimeConfig) error {
	model := NewEditorModel(sess, cfg, lipgloss.DefaultRenderer())

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover and drag without a button
	}
	if cfg.FPS > 0 {
		opts = append(opts, tea.WithFPS(cfg.FPS))
	}

	_, err := tea.NewProgram(model, opts...).Run()
	return err
}
