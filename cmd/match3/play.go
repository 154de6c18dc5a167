package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start a level by id or catalogue number. Without an argument the
first level is played.

Controls:
  Arrow keys / WASD   - Move cursor
  Space / Enter       - Pick a piece, pick a neighbour to swap
  Shift+Arrows        - Swipe the piece under the cursor
  H / ?               - Show a hint
  E                   - Buy extra moves after running out
  R                   - Restart level
  N                   - Next level after a win
  Q / Ctrl+C          - Quit

Examples:
  match3 play
  match3 play brook
  match3 play 4 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	deps, err := setup(logFile())
	if err != nil {
		fail("%v", err)
	}

	ref := "1"
	if len(args) == 1 {
		ref = args[0]
	}
	level, err := deps.Catalogue.Resolve(ref)
	if err != nil {
		fail("%v\nRun 'match3 levels' to see available levels.", err)
	}

	deps.Store = openStore(deps.Logger)
	if deps.Store != nil {
		defer deps.Store.Close()
	}

	if err := tui.Run(deps, level, runtimeConfig(deps)); err != nil {
		fail("%v", err)
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig(deps tui.Deps) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if deps.Config.Pacing.TickRate > 0 {
		cfg.TickRate = deps.Config.Pacing.TickRate
	}
	cfg.Seed = flagSeed
	return cfg
}
