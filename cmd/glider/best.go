package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-glider/internal/glider"
	"github.com/vovakirdan/tui-glider/internal/platform/tui"
	"github.com/vovakirdan/tui-glider/internal/storage"
)

var flagPlain bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the high score",
	Long: `Display the stored high score.

By default opens a full-screen view; use --plain for plain stdout output
(useful in scripts or when no TTY is available).

Examples:
  glider best
  glider best --plain`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print to stdout instead of the full-screen view")
}

func runBest(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagPlain || termErr != nil {
		printBest(store)
		return
	}

	if err := tui.RunBest(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing high score: %v\n", err)
		os.Exit(1)
	}
}

func printBest(store *storage.Store) {
	best, err := store.BestFor(glider.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving high score: %v\n", err)
		os.Exit(1)
	}

	if best == nil {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'glider play' to set the first one!")
		return
	}

	fmt.Printf("Best: %d (set on %s)\n", best.Score, best.UpdatedAt.Format("2006-01-02 15:04"))
}
