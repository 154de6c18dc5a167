// match3 is a terminal match-3 puzzle game.
//
// Usage:
//
//	match3 levels            - List the level catalogue
//	match3 play [level]      - Play a level (id or number)
//	match3 menu              - Level picker with scoreboard
//	match3 scores [level]    - Show top scores
//	match3 sim <level>       - Let an autoplayer play a level
//	match3 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible boards
//	--db <path>           - Database path (default: ~/.match3/scores.db)
//	--config <path>       - Custom config YAML
//	--levels <dir>        - Directory of level YAML files
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagSeed       uint64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap gems in your terminal",
	Long: `Match-3 is a terminal puzzle game. Swap neighbouring pieces to line up
three or more of a kind, chain cascades and reach the level target before
running out of moves.

Available commands:
  levels   - Show the level catalogue
  play     - Play a level directly
  menu     - Interactive level picker
  scores   - View high scores
  sim      - Watch an autoplayer play headless
  serve    - Start SSH server for remote play

Examples:
  match3 levels
  match3 play meadow
  match3 play 3 --difficulty easy
  match3 menu
  match3 sim summit --strategy greedy --runs 20
  match3 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level YAML files (default: built-in catalogue)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads config and levels and builds the logger writing to out.
func setup(out io.Writer) (tui.Deps, error) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return tui.Deps{}, err
	}

	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return tui.Deps{}, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	})

	presetName := cfg.Difficulty.Preset
	if flagDifficulty != "" {
		presetName = flagDifficulty
	}
	preset, err := config.ParseDifficultyPreset(presetName)
	if err != nil {
		return tui.Deps{}, err
	}

	catalogue, err := levels.Load(flagLevels)
	if err != nil {
		return tui.Deps{}, err
	}
	logger.Debug("catalogue loaded", "levels", catalogue.Len(), "dir", flagLevels)

	return tui.Deps{
		Catalogue: catalogue,
		Config:    cfg,
		Preset:    preset,
		Logger:    logger,
	}, nil
}

// openStore opens the score database, warning instead of failing.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// logFile returns the log destination for full-screen commands, which
// cannot share the terminal with log output.
func logFile() io.Writer {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard
	}
	dir := filepath.Join(home, ".match3")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(filepath.Join(dir, "match3.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard
	}
	return f
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
