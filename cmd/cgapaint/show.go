package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cgapaint/internal/cga"
	"github.com/vovakirdan/cgapaint/internal/core"
	"github.com/vovakirdan/cgapaint/internal/platform/tui"
)

var flagPlain bool

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a drawing to the terminal",
	Long: `Decode a .cga drawing and print it in colour, followed by its size
and how many pixels use each colour. --plain prints the file contents
exactly as stored.

Examples:
  cgapaint show cat.cga
  cgapaint show cat.cga --plain > copy.cga`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the raw encoding")
}

func runShow(_ *cobra.Command, args []string) {
	path := args[0]
	canvas, err := cga.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagPlain {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(cga.Marshal(canvas))
		return
	}

	r := lipgloss.DefaultRenderer()
	painter := tui.NewPainter(r, core.DefaultPalette())
	dim := r.NewStyle().Foreground(lipgloss.Color("245"))

	fmt.Println(painter.RenderCanvas(canvas))
	fmt.Println()
	fmt.Printf("%s  %dx%d\n", filepath.Base(path), canvas.Width(), canvas.Height())
	fmt.Println()

	total := canvas.Width() * canvas.Height()
	for _, c := range core.AllColors() {
		n := canvas.Count(c)
		if n == 0 {
			continue
		}
		fmt.Printf("  %s %c %-8s %5d  %s\n",
			painter.Swatch(c), c.Char(), c, n,
			dim.Render(fmt.Sprintf("%5.1f%%", float64(n)*100/float64(total))))
	}
}
