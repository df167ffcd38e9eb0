package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiehuis/tetrs/internal/platform/tui"
	"github.com/tiehuis/tetrs/internal/storage"
)

var flagBrowse bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show stored results",
	Long: `Display the top results by lines cleared.

Examples:
  tetrs scores
  tetrs scores --browse`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse results interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top results")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetrs play' to record the first result!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-7s  %-7s  %s\n", "Rank", "Variant", "Lines", "Pieces", "Date")
	fmt.Printf("  %-4s  %-14s  %-7s  %-7s  %s\n", "----", "-------", "-----", "------", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-7d  %-7d  %s\n", i+1, r.Variant, r.Lines, r.Pieces, dateStr)
	}

	fmt.Println()
	if totals, err := store.Totals(); err == nil {
		fmt.Printf("Total: %d games, %d lines, %d pieces\n",
			totals.Games, totals.Lines, totals.Pieces)
	}
}
