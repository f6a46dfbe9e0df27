package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagDifficulty string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play on a board",
	Long: `Start playing on the given board preset, a custom size, or the
configured default board.

Controls:
  Arrows/WASD/hjkl  - Steer
  Space/R           - Restart (after game over)
  P                 - Pause
  ` + "`" + `/F3              - Toggle debug overlay
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options (tick speed):
  easy    - 150ms per step
  normal  - 100ms per step
  hard    - 70ms per step
  insane  - 45ms per step

Examples:
  snake play
  snake play wide --difficulty hard
  snake play --width 12 --height 8
  snake play classic --seed 42 --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addBoardFlags(playCmd)
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Speed preset: easy, normal, hard, insane")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay on")
}

func runPlay(_ *cobra.Command, args []string) error {
	presetArg := ""
	if len(args) > 0 {
		presetArg = args[0]
	}

	preset, err := resolveBoard(presetArg)
	if err != nil {
		return fmt.Errorf("%w\nRun 'snake list' to see available boards", err)
	}

	tick := appConfig.Tick
	if flagDifficulty != "" {
		d := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(d) {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		tick.Difficulty = d
		tick.IntervalMS = 0
	}

	logger, closeLog := fileLogger("snake")
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:  store,
		Logger: logger,
		Tick:   tick,
		Seed:   appConfig.Seed,
		Debug:  flagDebug,
	}

	if err := tui.Run(preset, opts, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
