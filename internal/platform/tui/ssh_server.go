package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/cgapaint/internal/cga"
	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/editor"
	"github.com/vovakirdan/cgapaint/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2323").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.cgapaint/host_key.
	HostKeyPath string

	// Dir holds one drawing per user, named <user>.cga.
	Dir string

	// DBPath is the path to the history database. Empty disables history.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Width and Height size drawings created for new users.
	Width  int
	Height int

	// Runtime is passed to every editor (palette, frame rate, help line).
	Runtime core.RuntimeConfig

	// LogLevel filters the server log.
	LogLevel log.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":2323",
		Dir:         "drawings",
		DBPath:      "~/.cgapaint/history.db",
		IdleTimeout: 30 * time.Minute,
		Width:       32,
		Height:      16,
		Runtime:     core.DefaultConfig(),
		LogLevel:    log.InfoLevel,
	}
}

// connection is the editing state of one SSH session.
type connection struct {
	user string
	sess *editor.Session
}

// SSHServer wraps a Wish SSH server that lets every user paint their own drawing.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu     sync.Mutex
	conns  map[string]*connection // by SSH session ID
	owners map[string]string      // user -> SSH session ID
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cgapaint-ssh",
		Level:           cfg.LogLevel,
	})

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create drawings directory: %w", err)
	}

	// Open storage
	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
			// Continue without storage
			store = nil
		}
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
		conns:  make(map[string]*connection),
		owners: make(map[string]string),
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".cgapaint", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.MiddlewareWithColorProfile(srv.teaHandler, termenv.ANSI),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// DrawingPath returns the file a user edits. Characters outside
// [A-Za-z0-9._-] are replaced so user names cannot escape dir.
func DrawingPath(dir, user string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, user)
	clean = strings.TrimLeft(clean, ".")
	if clean == "" {
		clean = "anonymous"
	}
	return filepath.Join(dir, cga.EnsureExt(clean))
}

// claim registers id as the only open session for user.
// The drawing is attached once it has been opened.
func (s *SSHServer) claim(id, user string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.owners[user]; busy {
		return false
	}
	s.owners[user] = id
	s.conns[id] = &connection{user: user}
	return true
}

// attach binds the editing session to a claimed connection.
func (s *SSHServer) attach(id string, sess *editor.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.conns[id]; ok {
		c.sess = sess
	}
}

// release drops the session and returns its state, nil if it never claimed a drawing.
func (s *SSHServer) release(id string) *connection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conns[id]
	if !ok {
		return nil
	}
	delete(s.conns, id)
	delete(s.owners, c.user)
	return c
}

// teaHandler creates an editor for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	user := sshSession.User()

	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", user)
		return nil, nil
	}

	// Claim first: a second login must not read a drawing being rewritten.
	id := sshSession.Context().SessionID()
	if !s.claim(id, user) {
		wish.Println(sshSession, "your drawing is already open in another session")
		return nil, nil
	}

	path := DrawingPath(s.config.Dir, user)
	canvas, created, err := editor.OpenOrCreate(path, s.config.Width, s.config.Height)
	if err != nil {
		s.release(id)
		s.logger.Error("cannot open drawing", "user", user, "path", path, "error", err)
		wish.Println(sshSession, "cannot open your drawing:", err)
		return nil, nil
	}

	sess := editor.NewSession(canvas, path, editor.WithLogger(s.logger.With("user", user)))
	s.attach(id, sess)

	if s.store != nil {
		if err := s.store.Touch(path, canvas.Width(), canvas.Height()); err != nil {
			s.logger.Warn("could not record drawing", "path", path, "error", err)
		}
	}
	s.logger.Info("drawing opened", "user", user, "path", path, "created", created)

	// Create runtime config from PTY size
	cfg := s.config.Runtime
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height

	model := NewEditorModel(sess, cfg, bubbletea.MakeRenderer(sshSession))

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
	if cfg.FPS > 0 {
		opts = append(opts, tea.WithFPS(cfg.FPS))
	}
	return model, opts
}

// loggingMiddleware logs SSH session events and records edits once the editor exits.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		edits := 0
		if c := s.release(sshSession.Context().SessionID()); c != nil && c.sess != nil {
			edits = c.sess.Edits()
			s.recordEdits(c)
		}
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"edits", edits,
		)
	}
}

func (s *SSHServer) recordEdits(c *connection) {
	if s.store == nil {
		return
	}
	if err := s.store.AddEdits(c.sess.Path(), c.sess.Edits()); err != nil {
		s.logger.Warn("could not record edits", "user", c.user, "error", err)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "dir", s.config.Dir)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)

	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
