package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top scores for a level, or across all levels when no
level is given.

Examples:
  match3 scores meadow
  match3 scores 2 --limit 5
  match3 scores meadow --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete recorded scores instead of showing them")
}

func runScores(_ *cobra.Command, args []string) {
	deps, err := setup(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	levelID, title := "", "All levels"
	if len(args) == 1 {
		level, err := deps.Catalogue.Resolve(args[0])
		if err != nil {
			fail("%v\nRun 'match3 levels' to see available levels.", err)
		}
		levelID, title = level.ID, level.Name
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(levelID); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Scores cleared: %s\n", title)
		return
	}

	scores, err := store.TopScores(levelID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'match3 menu' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-5s  %-5s  %s\n", "Rank", "Level", "Score", "Result", "Moves", "Combo", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-5s  %-5s  %s\n", "----", "-----", "-----", "------", "-----", "-----", "----")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-10s  %-8d  %-6s  %-5d  %-5d  %s\n",
			i+1, r.LevelID, r.Score, r.Outcome, r.MovesUsed, r.ComboMax, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if levelID != "" {
		st, err := store.LevelStats(levelID)
		if err != nil {
			fail("retrieving stats: %v", err)
		}
		fmt.Println()
		fmt.Printf("Plays: %d  Wins: %d (%.0f%%)  Best: %d  Average: %.0f\n",
			st.Plays, st.Wins, st.WinRate()*100, st.BestScore, st.AvgScore)
	}
}
