package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show run history",
	Long: `Display the best runs for a board, or a summary of every board.

Examples:
  snake scores classic
  snake scores --all
  snake scores --tui
  snake scores tiny --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every board")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history of the board")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse history interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := terminalConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}
	if flagScoresAll {
		return printAllStats(store)
	}

	presetID := appConfig.Board.Preset
	if len(args) > 0 {
		presetID = args[0]
	}
	title := presetID
	if presetID != session.CustomPreset {
		p, err := registry.Get(presetID)
		if err != nil {
			return fmt.Errorf("%w\nRun 'snake list' to see available boards", err)
		}
		title = fmt.Sprintf("%s %s", p.Title, p.Size())
	}

	if flagScoresClear {
		if err := store.ClearRuns(presetID); err != nil {
			return err
		}
		fmt.Printf("Cleared run history for %s.\n", title)
		return nil
	}

	runs, err := store.TopRuns(presetID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", presetID)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-16s  %s\n", "Rank", "Score", "Ticks", "Run", "Date", "Reason")
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-16s  %s\n", "----", "-----", "-----", "---", "----", "------")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-6d  %-6d  %-16s  %s\n",
			i+1, r.Score, r.Ticks, r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Reason)
	}

	st, err := store.Stats(presetID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Avg: %.1f\n", st.Best, st.Runs, st.AvgScore)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-5s  %-5s  %-6s  %s\n", "Board", "Runs", "Best", "Avg", "Ticks")
	fmt.Printf("  %-10s  %-5s  %-5s  %-6s  %s\n", "-----", "----", "----", "---", "-----")
	for _, st := range all {
		fmt.Printf("  %-10s  %-5d  %-5d  %-6.1f  %d\n", st.Preset, st.Runs, st.Best, st.AvgScore, st.TotalTicks)
	}
	return nil
}
