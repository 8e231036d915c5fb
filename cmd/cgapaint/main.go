// cgapaint is a tiny raster painter for 8-colour CGA-style drawings.
//
// Usage:
//
//	cgapaint new [name]        - Create a drawing and start painting
//	cgapaint open <file>       - Continue painting an existing drawing
//	cgapaint show <file>       - Print a drawing to the terminal
//	cgapaint recent            - List recently edited drawings
//	cgapaint serve             - Start SSH server for remote painting
//	cgapaint frontends         - List available editor frontends
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--db <path>         - Set history database path (default: ~/.cgapaint/history.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/cgapaint/internal/platform/tui"
	_ "github.com/vovakirdan/cgapaint/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cgapaint",
	Short: "CGA Painter - paint 8-colour pixel drawings",
	Long: `CGA Painter edits small raster drawings in an 8-colour palette.
Every stroke is written straight to a plain-text .cga file.

Available commands:
  new        - Create a drawing and start painting
  open       - Continue an existing drawing
  show       - Print a drawing
  recent     - List recently edited drawings
  serve      - Start SSH server for remote painting
  frontends  - List editor frontends

Examples:
  cgapaint new cat --width 16 --height 16
  cgapaint new
  cgapaint open cat.cga --frontend window
  cgapaint show cat.cga
  cgapaint serve --address :2323`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(frontendsCmd)
}
