package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive level picker",
	Long: `Opens the level menu. Pick a level with Enter, press Tab for the
scoreboard and Esc in a level to come back.`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	deps, err := setup(logFile())
	if err != nil {
		fail("%v", err)
	}
	deps.Store = openStore(deps.Logger)
	if deps.Store != nil {
		defer deps.Store.Close()
	}

	if err := tui.RunSession(deps, runtimeConfig(deps)); err != nil {
		fail("%v", err)
	}
}
