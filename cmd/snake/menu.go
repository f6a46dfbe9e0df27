package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board and speed interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board, then pick a
speed. Esc on the board returns to the menu; Tab opens the run history.

Examples:
  snake menu
  snake menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := fileLogger("snake")
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:  store,
		Logger: logger,
		Tick:   appConfig.Tick,
		Seed:   appConfig.Seed,
	}

	if err := tui.RunApp(opts, terminalConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
