// snake is a deterministic terminal snake game.
//
// Usage:
//
//	snake list               - List board presets
//	snake play [preset]      - Play on a board
//	snake menu               - Pick boards and speeds interactively
//	snake sim                - Run a game headlessly from a command string
//	snake replay <run-id>    - Re-simulate a recorded run
//	snake scores [preset]    - Show run history
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Seed for reproducible food placement
//	--db <path>         - Run history database (default: ~/.snake/runs.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	// Import the engine to register its board presets
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// appConfig is loaded once before any subcommand runs.
	appConfig config.SnakeConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a deterministic snake game for your terminal",
	Long: `Snake is a grid snake game. Eating food leaves a hazard behind where the
tail was, so the board slowly fills with leftovers.

Available commands:
  list     - Show board presets
  play     - Play on a board directly
  menu     - Interactive board and speed picker
  sim      - Run a game headlessly
  replay   - Re-simulate a recorded run
  scores   - View run history
  serve    - Start SSH server for remote play

Examples:
  snake play classic
  snake play --width 12 --height 8 --difficulty hard
  snake sim --preset tiny --moves "..U..L" --seed 42
  snake replay 17
  snake serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Food placement seed (0 = from host entropy)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and environment, then applies any global
// flags that were set explicitly.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	appConfig = cfg
	return nil
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(appConfig.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// fileLogger returns a logger for TUI mode, where the alternate screen owns
// stdout. The returned close function is never nil.
func fileLogger(prefix string) (*log.Logger, func()) {
	path, err := config.ExpandHome(appConfig.Log.File)
	if err != nil || path == "" {
		return newLogger(io.Discard, prefix), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}
