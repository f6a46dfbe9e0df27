package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run",
	Long: `Rebuild a run from its seed and command log and check that it ends with
the recorded score and reason.

Run IDs are shown by 'snake scores'.

Examples:
  snake replay 17`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.RunByID(id)
	if err != nil {
		return err
	}
	run, err := session.RunFromRecord(rec)
	if err != nil {
		return err
	}

	g, err := session.Replay(run, snake.WithLogger(newLogger(io.Discard, "replay")))
	if g != nil {
		fmt.Print(g.DebugState())
		fmt.Println()
	}
	fmt.Printf("Run %d on %s (%dx%d), seed %s, %d commands\n",
		rec.ID, rec.Preset, rec.Width, rec.Height, rec.Seed, len(run.Commands))
	fmt.Printf("Recorded: score %d, %s\n", rec.Score, rec.Reason)

	if errors.Is(err, session.ErrReplayMismatch) {
		fmt.Printf("Replayed: score %d, %s\n", g.Score(), g.Reason())
		return err
	}
	if err != nil {
		return err
	}
	fmt.Println("Replay reproduces the run.")
	return nil
}
