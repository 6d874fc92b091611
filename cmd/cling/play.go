package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/astelice/cling/internal/config"
	"github.com/astelice/cling/internal/content"
	"github.com/astelice/cling/internal/core"
	"github.com/astelice/cling/internal/platform/tui"
	"github.com/astelice/cling/internal/storage"
)

var (
	flagConfig  string
	flagContent string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game in the current terminal.

Controls:
  Mouse      - Pet a companion, answer messages, play minigames
  1/2/...    - Answer messages and pick minigame items by number
  Space      - Press the minigame button
  Enter      - Skip the intro
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  cling play
  cling play --seed 42
  cling play --config ./my-tuning.yaml --content ./my-cast.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagContent, "content", "", "Path to custom content YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	lib, err := content.Load(flagContent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(&cfg, lib, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
