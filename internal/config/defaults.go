package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/cgapaint.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/cgapaint.yaml and is used when the embedded file fails to parse.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Name: "untitled",
		},
		Terminal: TerminalConfig{
			FPS:      60,
			Frontend: "terminal",
			ShowHelp: true,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
			Title:  "Computer Graphics Array Painter",
		},
		History: HistoryConfig{
			Enabled: true,
			DB:      "~/.cgapaint/history.db",
		},
		SSH: SSHConfig{
			Address:     ":2323",
			HostKey:     ".ssh/cgapaint_ed25519",
			Dir:         "drawings",
			IdleTimeout: 30 * time.Minute,
			Width:       32,
			Height:      16,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
