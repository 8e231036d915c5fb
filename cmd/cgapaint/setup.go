package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/cgapaint/internal/config"
	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/editor"
	"github.com/vovakirdan/cgapaint/internal/platform/tui"
	"github.com/vovakirdan/cgapaint/internal/registry"
	"github.com/vovakirdan/cgapaint/internal/storage"
)

// loadConfig loads the config file and applies the global flag overrides.
// Errors are fatal.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.History.DB = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the application logger. The terminal belongs to the
// editor, so logs go to the configured file or nowhere.
func newLogger(cfg config.LogConfig) (*log.Logger, io.Closer) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if cfg.File != "" {
		path := config.ExpandHome(cfg.File)
		//nolint:errcheck // Best-effort directory creation, OpenFile reports the real error
		os.MkdirAll(filepath.Dir(path), 0o755)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cgapaint",
		Level:           level,
	})
	return logger, closer
}

// terminalSize returns the size of stdout, 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openHistory opens the history database, or returns nil when it is
// disabled or cannot be opened. Painting works without it.
func openHistory(cfg config.HistoryConfig, logger *log.Logger) *storage.Store {
	if !cfg.Active() {
		return nil
	}

	store, err := storage.Open(cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history disabled", "error", err)
		return nil
	}
	return store
}

// frontendID picks the frontend: flag first, then config.
func frontendID(flag string, cfg config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Terminal.Frontend
}

// runEditor opens a frontend on canvas and records the session in the history.
// It exits the process on frontend errors.
func runEditor(cfg config.Config, canvas *core.Canvas, path, frontend string) {
	if !registry.Exists(frontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", frontend)
		fmt.Fprintln(os.Stderr, "Run 'cgapaint frontends' to see available frontends.")
		os.Exit(1)
	}
	fe, err := registry.Create(frontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating frontend: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := newLogger(cfg.Log)
	defer logCloser.Close()

	store := openHistory(cfg.History, logger)
	if store != nil {
		defer store.Close()
		if err := store.Touch(path, canvas.Width(), canvas.Height()); err != nil {
			logger.Warn("could not record drawing", "path", path, "error", err)
		}
	}

	rc := cfg.Runtime()
	if frontend != tui.FrontendID {
		rc = cfg.WindowRuntime()
	}
	rc.ScreenW, rc.ScreenH = terminalSize()

	sess := editor.NewSession(canvas, path, editor.WithLogger(logger))
	logger.Info("editing", "path", path, "size", fmt.Sprintf("%dx%d", canvas.Width(), canvas.Height()), "frontend", frontend)

	runErr := fe.Run(sess, rc)

	logger.Info("session ended", "path", path, "edits", sess.Edits())
	if store != nil {
		if err := store.AddEdits(path, sess.Edits()); err != nil {
			logger.Warn("could not record edits", "path", path, "error", err)
		}
	}
	if err := sess.SaveErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: last save failed: %v\n", err)
	}

	if runErr != nil {
		// Deferred closes do not run after os.Exit
		if store != nil {
			store.Close()
		}
		logCloser.Close()
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}
