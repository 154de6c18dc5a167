package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalogue",
	Long: `Shows every level in play order, with its move budget, score target
and obstacles. Use --levels to list a custom directory.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	deps, err := setup(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	store := openStore(deps.Logger)
	if store != nil {
		defer store.Close()
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-10s  %-12s  %5s  %6s  %5s  %-14s  %s\n", "#", "ID", "Name", "Moves", "Target", "Kinds", "Obstacles", "Best")
	fmt.Printf("  %-3s  %-10s  %-12s  %5s  %6s  %5s  %-14s  %s\n", "-", "--", "----", "-----", "------", "-----", "---------", "----")

	for _, lvl := range deps.Catalogue.Levels() {
		best := "-"
		if store != nil {
			if b, err := store.BestScore(lvl.ID); err == nil && b > 0 {
				best = fmt.Sprint(b)
			}
		}
		fmt.Printf("  %-3d  %-10s  %-12s  %5d  %6d  %5d  %-14s  %s\n",
			lvl.Order, lvl.ID, lvl.Name, lvl.Moves, lvl.TargetProgress,
			lvl.KindCount(deps.Config.EngineRules()), obstacles(lvl.Layout), best)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to play a level.")
}

func obstacles(layout match3.Layout) string {
	rocks, locks := 0, 0
	for _, o := range layout {
		switch o {
		case match3.OverrideRock:
			rocks++
		case match3.OverrideLock:
			locks++
		}
	}
	var parts []string
	if rocks > 0 {
		parts = append(parts, fmt.Sprintf("%d rock", rocks))
	}
	if locks > 0 {
		parts = append(parts, fmt.Sprintf("%d lock", locks))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
