// cling is a terminal pet game: a roster of needy companions drifts around
// your screen, and you keep them happy by petting them, answering their
// messages in time, and winning the minigames they spring on you.
//
// Usage:
//
//	cling play               - Start a game in the current terminal
//	cling scores             - Print the best runs
//	cling top                - Browse the run history interactively
//	cling serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.cling/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cling",
	Short: "cling - a needy terminal pet that won't leave you alone",
	Long: `cling fills your terminal with companions that demand constant
attention. Happiness drains every second; pet them with clicks, answer
their timed messages, and survive their minigames for as long as you can.

Available commands:
  play     - Start a game
  scores   - Print the best runs
  top      - Browse run history interactively
  serve    - Start SSH server for remote play

Examples:
  cling play
  cling play --seed 42 --fps 30
  cling top
  cling serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cling/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(serveCmd)
}
