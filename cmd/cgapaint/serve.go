package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cgapaint/internal/config"
	"github.com/vovakirdan/cgapaint/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagDrawingsDir string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cgapaint SSH server",
	Long: `Start an SSH server that lets users connect and paint in their terminal.

Each user edits their own drawing, <dir>/<user>.cga. It is created at the
configured size on first connection and reopened afterwards. A user can
have one open session at a time.

Host key handling:
  - If --host-key (or ssh.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.cgapaint/host_key

Examples:
  cgapaint serve                       # Listen on the configured address
  cgapaint serve --address :2222       # Listen on port 2222
  cgapaint serve --dir /srv/drawings   # Store drawings elsewhere

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "address", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().StringVar(&flagDrawingsDir, "dir", "", "Directory for user drawings (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg := loadConfig()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = appCfg.SSH.Address
	cfg.HostKeyPath = config.ExpandHome(appCfg.SSH.HostKey)
	cfg.Dir = config.ExpandHome(appCfg.SSH.Dir)
	cfg.IdleTimeout = appCfg.SSH.IdleTimeout
	cfg.Width = appCfg.SSH.Width
	cfg.Height = appCfg.SSH.Height
	cfg.Runtime = appCfg.Runtime()
	cfg.DBPath = ""
	if appCfg.History.Enabled {
		cfg.DBPath = appCfg.History.DB
	}
	if level, err := log.ParseLevel(appCfg.Log.Level); err == nil {
		cfg.LogLevel = level
	}

	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagDrawingsDir != "" {
		cfg.Dir = flagDrawingsDir
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting cgapaint SSH server on %s\n", server.Addr())
	fmt.Printf("Drawings are stored in %s\n", cfg.Dir)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
