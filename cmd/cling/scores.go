package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astelice/cling/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the best runs",
	Long: `Print the best recorded runs to stdout, longest first.

Examples:
  cling scores
  cling scores --limit 3`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Times")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cling play' to set the first time!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-40s  %s\n", "Rank", "Lasted", "Ended because", "Date")
	fmt.Printf("  %-4s  %-8s  %-40s  %s\n", "----", "------", "-------------", "----")

	for i, entry := range runs {
		lasted := fmt.Sprintf("%d:%02d", entry.Survival/60, entry.Survival%60)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-40s  %s\n", i+1, lasted, entry.EndReason, dateStr)
	}

	stats, err := store.Stats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d   Best: %d:%02d   Average: %.1fs\n",
			stats.RunsCount, stats.BestSurvival/60, stats.BestSurvival%60, stats.AvgSurvival)
	}
}
