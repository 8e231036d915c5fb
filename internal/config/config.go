// Package config provides YAML-based configuration loading for cgapaint.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cgapaint/internal/core"
)

// Config is the full cgapaint configuration.
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	History  HistoryConfig  `yaml:"history"`
	SSH      SSHConfig      `yaml:"ssh"`
	Log      LogConfig      `yaml:"log"`
}

// CanvasConfig holds defaults offered by the startup prompt.
type CanvasConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Name   string `yaml:"name"`
}

// TerminalConfig configures the Bubble Tea editor.
type TerminalConfig struct {
	FPS      int    `yaml:"fps"`
	Frontend string `yaml:"frontend"` // default frontend ID
	ShowHelp bool   `yaml:"show_help"`
}

// WindowConfig configures the raylib window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// HistoryConfig configures the drawing history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DB      string `yaml:"db"`
}

// Active reports whether the history database should be opened.
func (h HistoryConfig) Active() bool {
	return h.Enabled && h.DB != ""
}

// SSHConfig configures `cgapaint serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	Dir         string        `yaml:"dir"` // where per-user drawings live
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty discards output
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error

	if c.Canvas.Width != 0 || c.Canvas.Height != 0 {
		if err := core.ValidateDimensions(c.Canvas.Width, c.Canvas.Height); err != nil {
			errs = append(errs, fmt.Errorf("canvas: %w", err))
		}
	}
	if err := core.ValidateDimensions(c.SSH.Width, c.SSH.Height); err != nil {
		errs = append(errs, fmt.Errorf("ssh: %w", err))
	}
	if c.Terminal.FPS < 1 || c.Terminal.FPS > 240 {
		errs = append(errs, fmt.Errorf("terminal: fps %d out of range 1..240", c.Terminal.FPS))
	}
	if c.Window.FPS < 1 || c.Window.FPS > 240 {
		errs = append(errs, fmt.Errorf("window: fps %d out of range 1..240", c.Window.FPS))
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Terminal.Frontend == "" {
		errs = append(errs, errors.New("terminal: frontend must not be empty"))
	}
	if c.SSH.Address == "" {
		errs = append(errs, errors.New("ssh: address must not be empty"))
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh: negative idle_timeout %s", c.SSH.IdleTimeout))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Runtime converts the config into the values handed to a frontend.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.WindowW = c.Window.Width
	rc.WindowH = c.Window.Height
	rc.FPS = c.Terminal.FPS
	rc.ShowHelp = c.Terminal.ShowHelp
	if c.Window.Title != "" {
		rc.Title = c.Window.Title
	}
	return rc
}

// WindowRuntime is Runtime with the window frame rate.
func (c Config) WindowRuntime() core.RuntimeConfig {
	rc := c.Runtime()
	rc.FPS = c.Window.FPS
	return rc
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
