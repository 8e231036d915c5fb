package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cgapaint/internal/cga"
	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/editor"
	"github.com/vovakirdan/cgapaint/internal/platform/tui"
)

var (
	flagWidth    int
	flagHeight   int
	flagFrontend string
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a drawing and start painting",
	Long: `Create a blank drawing filled with white and open it in the editor.
Values not given on the command line are asked for interactively.
".cga" is appended to the name if missing. Width and height must be
between 1 and 128.

Controls:
  1-8         - Select brush colour
  Left mouse  - Paint with the brush
  Right mouse - Erase to white
  Q/Esc       - Quit (terminal frontend)

Examples:
  cgapaint new
  cgapaint new cat --width 16 --height 16
  cgapaint new cat -W 32 -H 8 --frontend window`,
	Args: cobra.MaximumNArgs(1),
	Run:  runNew,
}

func init() {
	newCmd.Flags().IntVarP(&flagWidth, "width", "W", 0, "Canvas width in pixels (1-128)")
	newCmd.Flags().IntVarP(&flagHeight, "height", "H", 0, "Canvas height in pixels (1-128)")
	newCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Editor frontend (see 'cgapaint frontends')")
}

func runNew(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	known := tui.PromptValues{
		Width:  flagWidth,
		Height: flagHeight,
	}
	if len(args) == 1 {
		known.Name = args[0]
	}
	// An explicit 0 or negative size is invalid, not missing
	if (cmd.Flags().Changed("width") && flagWidth <= 0) || (cmd.Flags().Changed("height") && flagHeight <= 0) {
		fmt.Fprintln(os.Stderr, "Invalid size.")
		os.Exit(1)
	}

	values := known
	if known.Width == 0 || known.Height == 0 || known.Name == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: name, --width and --height are required when stdin is not a terminal")
			os.Exit(1)
		}

		suggest := tui.PromptValues{
			Width:  cfg.Canvas.Width,
			Height: cfg.Canvas.Height,
			Name:   cfg.Canvas.Name,
		}
		var err error
		values, err = tui.RunPrompt(known, suggest)
		if errors.Is(err, tui.ErrPromptCancelled) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := core.ValidateDimensions(values.Width, values.Height); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid size.")
		os.Exit(1)
	}

	path := cga.EnsureExt(values.Name)
	canvas, err := editor.Create(path, values.Width, values.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runEditor(cfg, canvas, path, frontendID(flagFrontend, cfg))
}
