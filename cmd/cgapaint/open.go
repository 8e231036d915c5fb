package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cgapaint/internal/cga"
	"github.com/vovakirdan/cgapaint/internal/config"
	"github.com/vovakirdan/cgapaint/internal/platform/tui"
)

var flagOpenFrontend string

var openCmd = &cobra.Command{
	Use:   "open [file]",
	Short: "Continue painting an existing drawing",
	Long: `Load a .cga drawing and open it in the editor. Every stroke is saved
back to the same file.

Without a file, pick one of the recently opened drawings.

Examples:
  cgapaint open cat.cga
  cgapaint open cat --frontend window
  cgapaint open`,
	Args: cobra.MaximumNArgs(1),
	Run:  runOpen,
}

func init() {
	openCmd.Flags().StringVar(&flagOpenFrontend, "frontend", "", "Editor frontend (see 'cgapaint frontends')")
}

func runOpen(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	var path string
	if len(args) == 1 {
		path = args[0]
		if _, err := os.Stat(path); err != nil {
			path = cga.EnsureExt(path)
		}
	} else {
		path = pickRecent(cfg)
		if path == "" {
			return
		}
	}

	canvas, err := cga.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runEditor(cfg, canvas, path, frontendID(flagOpenFrontend, cfg))
}

// pickRecent lets the user choose from the history. Missing files are pruned first.
func pickRecent(cfg config.Config) string {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: no file given and stdin is not a terminal")
		os.Exit(1)
	}

	store := openHistory(cfg.History, log.New(os.Stderr))
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: no file given and history is disabled")
		os.Exit(1)
	}
	defer store.Close()

	//nolint:errcheck // Stale entries only clutter the list
	store.Prune()

	drawings, err := store.Recent(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}
	if len(drawings) == 0 {
		fmt.Println("No drawings recorded yet. Start one with 'cgapaint new'.")
		return ""
	}

	rc := cfg.Runtime()
	rc.ScreenW, rc.ScreenH = terminalSize()

	path, err := tui.RunMenu(drawings, rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
	return path
}
