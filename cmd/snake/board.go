package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Board selection flags shared by play and sim.
var (
	flagWidth  int
	flagHeight int
)

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width (overrides the preset)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height (overrides the preset)")
}

// resolveBoard picks the board from, in order: --width/--height, the
// preset argument, the configured size, the configured preset.
func resolveBoard(presetArg string) (registry.Preset, error) {
	custom := func(w, h int) (registry.Preset, error) {
		if w < snake.MinWidth || h < snake.MinHeight {
			return registry.Preset{}, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
				snake.ErrInvalidDimensions, w, h, snake.MinWidth, snake.MinHeight)
		}
		return registry.Preset{ID: session.CustomPreset, Title: "Custom", Width: w, Height: h}, nil
	}

	switch {
	case flagWidth != 0 || flagHeight != 0:
		return custom(flagWidth, flagHeight)
	case presetArg != "":
		return registry.Get(presetArg)
	case appConfig.Board.HasCustomSize():
		return custom(appConfig.Board.Width, appConfig.Board.Height)
	default:
		return registry.Get(appConfig.Board.Preset)
	}
}

// terminalConfig returns a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = appConfig.Seed
	return cfg
}

// openStore opens the run history. Failure is reported and play continues
// without recording.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	return store
}
