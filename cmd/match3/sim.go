package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/bot"
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagSimStrategy string
	flagSimRuns     int
	flagSimRevives  int
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <level>",
	Short: "Play a level headless with an autoplayer",
	Long: `Runs an autoplayer strategy against a level and prints the results.
Useful for checking that a level is winnable with its move budget.

Run i uses seed --seed+i, so a fixed --seed gives repeatable results.

Examples:
  match3 sim meadow
  match3 sim summit --strategy greedy --runs 50 --seed 1
  match3 sim 5 --revives 1 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimStrategy, "strategy", "greedy", "Autoplayer strategy ("+strategyIDs()+")")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagSimRevives, "revives", 0, "Revives allowed per run")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record results in the scores database")
}

func strategyIDs() string {
	var ids []string
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
	}
	return strings.Join(ids, ", ")
}

func runSim(_ *cobra.Command, args []string) {
	deps, err := setup(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	if !registry.Exists(flagSimStrategy) {
		fail("unknown strategy %q (available: %s)", flagSimStrategy, strategyIDs())
	}
	level, err := deps.Catalogue.Resolve(args[0])
	if err != nil {
		fail("%v\nRun 'match3 levels' to see available levels.", err)
	}

	var store *storage.Store
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fail("opening scores database: %v", err)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rules := deps.Config.EngineRules()
	cfg := config.ApplyDifficulty(level.LevelConfig, deps.Preset, deps.Config.Difficulty)

	fmt.Printf("Simulating %s (%d moves, target %d) with %s\n", level.Name, cfg.Moves, cfg.TargetProgress, flagSimStrategy)
	fmt.Println()
	fmt.Printf("  %-4s  %-6s  %-8s  %-5s  %-5s  %-7s  %s\n", "Run", "Result", "Score", "Moves", "Combo", "Shuffle", "Revives")
	fmt.Printf("  %-4s  %-6s  %-8s  %-5s  %-5s  %-7s  %s\n", "---", "------", "-----", "-----", "-----", "-------", "-------")

	wins, total := 0, 0
	for i := range flagSimRuns {
		runSeed := seed + uint64(i)
		engine := match3.NewEngine(match3.Options{
			Rules:  rules,
			Rand:   match3.NewRandom(runSeed),
			Logger: deps.Logger,
		})
		session, err := match3.NewSession(engine, cfg)
		if err != nil {
			fail("%v", err)
		}
		strategy, err := registry.Create(flagSimStrategy)
		if err != nil {
			fail("%v", err)
		}

		res, err := bot.Play(ctx, session, strategy, bot.Config{
			Revives:     flagSimRevives,
			ReviveMoves: rules.ReviveMoves,
			Rand:        match3.NewRandom(runSeed ^ 0x5eed),
			Logger:      deps.Logger,
		})
		if err != nil {
			fail("run %d: %v", i+1, err)
		}

		fmt.Printf("  %-4d  %-6s  %-8d  %-5d  %-5d  %-7d  %d\n",
			i+1, res.Outcome, res.Score, res.MovesUsed, res.MaxCombo, res.Shuffles, res.Revives)
		if res.Outcome == match3.OutcomeWon {
			wins++
		}
		total += res.Score

		if store != nil {
			if _, err := store.SaveResult(storage.Result{
				LevelID:   res.LevelID,
				Outcome:   res.Outcome,
				Score:     res.Score,
				MovesUsed: res.MovesUsed,
				ComboMax:  res.MaxCombo,
			}); err != nil {
				deps.Logger.Warn("could not save result", "run", i+1, "error", err)
			}
		}
	}

	if flagSimRuns > 0 {
		fmt.Println()
		fmt.Printf("Won %d of %d (%.0f%%), average score %d\n",
			wins, flagSimRuns, float64(wins)*100/float64(flagSimRuns), total/flagSimRuns)
	}
}
