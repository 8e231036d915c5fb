// Package editor runs the paint state machine for one open drawing.
// A Session owns the canvas, applies input events through core.Reduce and
// writes the whole file after every cell change.
package editor

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cgapaint/internal/cga"
	"github.com/vovakirdan/cgapaint/internal/core"
)

// Saver persists a canvas to path.
type Saver func(path string, c *core.Canvas) error

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for save failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSaver replaces cga.Save, mainly for tests.
func WithSaver(fn Saver) Option {
	return func(s *Session) {
		if fn != nil {
			s.save = fn
		}
	}
}

// Session is the editing state of one drawing.
// It is not safe for concurrent use; a frontend drives it from its event loop.
type Session struct {
	canvas  *core.Canvas
	view    core.ViewTransform
	state   core.PaintState
	path    string
	save    Saver
	logger  *log.Logger
	edits   int
	saveErr error
}

// NewSession creates a session editing canvas, saved to path.
// Until SetViewport is called the view maps one viewport unit to one cell.
func NewSession(canvas *core.Canvas, path string, opts ...Option) *Session {
	s := &Session{
		canvas: canvas,
		view:   core.NewViewTransform(canvas.Width(), canvas.Height(), canvas.Width(), canvas.Height()),
		state:  core.NewPaintState(),
		path:   path,
		save:   cga.Save,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetViewport rebuilds the view transform for a viewport of w x h units.
func (s *Session) SetViewport(w, h int) {
	s.view = core.NewViewTransform(s.canvas.Width(), s.canvas.Height(), w, h)
}

// Apply feeds one event through the state machine.
// It returns true when the event changed a cell; the file has then already
// been rewritten. Save failures do not stop the session; see SaveErr.
func (s *Session) Apply(ev core.Event) bool {
	next, m, ok := core.Reduce(s.state, ev, s.view)
	s.state = next
	if !ok {
		return false
	}

	s.canvas.Set(m.X, m.Y, m.Color)
	s.edits++
	s.persist()
	return true
}

// ApplyAll applies a batch of polled events in order and returns how many changed a cell.
func (s *Session) ApplyAll(events []core.Event) int {
	n := 0
	for _, ev := range events {
		if s.Apply(ev) {
			n++
		}
	}
	return n
}

// Save writes the canvas now and returns the result.
func (s *Session) Save() error {
	err := s.save(s.path, s.canvas)
	s.saveErr = err
	return err
}

// persist saves after a mutation. Errors are recorded and logged, never returned.
func (s *Session) persist() {
	prev := s.saveErr
	if err := s.Save(); err != nil {
		if prev == nil {
			s.logger.Warn("save failed", "path", s.path, "error", err)
		}
		return
	}
	if prev != nil {
		s.logger.Info("save recovered", "path", s.path)
	}
}

// Canvas returns the canvas being edited.
func (s *Session) Canvas() *core.Canvas {
	return s.canvas
}

// View returns the current view transform.
func (s *Session) View() core.ViewTransform {
	return s.view
}

// State returns the paint state.
func (s *Session) State() core.PaintState {
	return s.state
}

// Brush returns the active colour.
func (s *Session) Brush() core.ColorIndex {
	return s.state.Brush
}

// Path returns the file the session saves to.
func (s *Session) Path() string {
	return s.path
}

// Edits returns how many cell writes were applied.
func (s *Session) Edits() int {
	return s.edits
}

// SaveErr returns the error of the most recent save, nil if it succeeded.
func (s *Session) SaveErr() error {
	return s.saveErr
}

// Done reports whether a quit event was received.
func (s *Session) Done() bool {
	return s.state.Quit
}
