package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/prng"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// maxSimSteps bounds --until-over so a scripted loop cannot run forever.
const maxSimSteps = 1_000_000

var (
	flagMoves     string
	flagPreset    string
	flagUntilOver bool
	flagSave      bool
	flagSeedHex   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a game headlessly",
	Long: `Apply a command string to a fresh game and print the final board.

Commands are one character each:
  U D L R  - Steer
  .        - Step once
  X        - Restart

Whitespace is ignored. With --until-over the game keeps stepping in its
last direction until the run ends.

Examples:
  snake sim --preset tiny --moves "...."
  snake sim --width 8 --height 6 --moves "..U..R" --until-over --seed 7
  snake sim --seed-hex 1234:abcd --moves "....." --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addBoardFlags(simCmd)
	simCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset")
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Command string to apply")
	simCmd.Flags().BoolVar(&flagUntilOver, "until-over", false, "Keep stepping until the run ends")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the history database")
	simCmd.Flags().StringVar(&flagSeedHex, "seed-hex", "", "Seed as hhhh:llll (overrides --seed)")
}

func runSim(_ *cobra.Command, _ []string) error {
	preset, err := resolveBoard(flagPreset)
	if err != nil {
		return err
	}

	cmds, err := core.ParseCommands(flagMoves)
	if err != nil {
		return err
	}

	seed, err := simSeed()
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, "sim")
	sess, err := session.New(preset, seed, snake.WithLogger(logger))
	if err != nil {
		return err
	}

	var last *session.Run
	sess.OnGameOver(func(r session.Run) { last = &r })

	sess.ApplyAll(cmds)
	if flagUntilOver {
		for i := 0; i < maxSimSteps && sess.Game().Running(); i++ {
			sess.Apply(core.CommandStep)
		}
	}

	g := sess.Game()
	fmt.Print(g.DebugState())
	fmt.Println()
	fmt.Printf("Board:  %s %s\n", preset.ID, preset.Size())
	fmt.Printf("Seed:   %s\n", g.Seed())
	fmt.Printf("Score:  %d (high %d)\n", g.Score(), g.HighScore())
	if g.GameOver() {
		fmt.Printf("Reason: %s\n", g.Reason())
	} else {
		fmt.Println("Reason: still running")
	}

	if flagSave {
		if last == nil {
			return fmt.Errorf("--save needs a finished run")
		}
		store, err := storage.Open(appConfig.Storage.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.SaveRun(last.Record())
		if err != nil {
			return err
		}
		fmt.Printf("Saved:  run %d\n", id)
	}
	return nil
}

// simSeed resolves the seed: --seed-hex, then --seed/config, then host
// entropy.
func simSeed() (prng.Seed, error) {
	if flagSeedHex != "" {
		return prng.ParseSeed(flagSeedHex)
	}
	if appConfig.Seed != 0 {
		return prng.SeedFromInt64(appConfig.Seed), nil
	}
	return prng.SeedFromEntropy(), nil
}
