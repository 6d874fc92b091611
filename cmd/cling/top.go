package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/astelice/cling/internal/platform/tui"
	"github.com/astelice/cling/internal/storage"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Browse run history interactively",
	Long: `Open an interactive table of every recorded run: how long you
lasted, what ended it, and when.

Examples:
  cling top
  cling top --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runTop,
}

func runTop(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}
