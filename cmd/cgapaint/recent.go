package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagRecentLimit int
	flagPrune       bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently edited drawings",
	Long: `Display the drawings most recently created or opened, with their size
and the number of pixel edits made to them.

--prune first removes entries whose file no longer exists.

Examples:
  cgapaint recent
  cgapaint recent --limit 20
  cgapaint recent --prune`,
	Args: cobra.NoArgs,
	Run:  runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&flagRecentLimit, "limit", "n", 10, "Number of drawings to show")
	recentCmd.Flags().BoolVar(&flagPrune, "prune", false, "Forget drawings whose file is gone")
}

func runRecent(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if !cfg.History.Active() {
		fmt.Println("History is disabled.")
		return
	}

	store := openHistory(cfg.History, log.New(os.Stderr))
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagPrune {
		removed, err := store.Prune()
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error pruning history: %v\n", err)
			os.Exit(1)
		}
		for _, p := range removed {
			fmt.Printf("Forgot %s\n", p)
		}
		if len(removed) > 0 {
			fmt.Println()
		}
	}

	drawings, err := store.Recent(flagRecentLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent drawings")
	fmt.Println()

	if len(drawings) == 0 {
		fmt.Println("No drawings recorded yet.")
		fmt.Println()
		fmt.Println("Run 'cgapaint new' to start one!")
		return
	}

	// Print header
	fmt.Printf("  %-9s  %-7s  %-16s  %s\n", "Size", "Edits", "Opened", "Path")
	fmt.Printf("  %-9s  %-7s  %-16s  %s\n", "----", "-----", "------", "----")

	for _, d := range drawings {
		size := fmt.Sprintf("%dx%d", d.Width, d.Height)
		fmt.Printf("  %-9s  %-7d  %-16s  %s\n", size, d.Edits, d.OpenedAt.Format("2006-01-02 15:04"), d.Path)
	}

	// Show totals
	if stats, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("%d drawings, %d edits in total\n", stats.Drawings, stats.TotalEdits)
	}
}
