package bot

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Config controls a headless run.
type Config struct {
	Revives     int                 // times a lost level may be revived
	ReviveMoves int                 // moves per revive, 0 means the default rules
	Rand        match3.RandomSource // drives strategy choices
	Logger      *log.Logger
}

// Result summarises a finished run.
type Result struct {
	LevelID   string
	Strategy  string
	Outcome   match3.Outcome
	Score     int
	MovesUsed int
	MaxCombo  int
	Matches   int // cascade steps resolved
	Shuffles  int
	Revives   int
}

// Play runs strategy on session until the level is decided and no revive is
// left, or until ctx is done.
func Play(ctx context.Context, s *match3.Session, strategy registry.Strategy, cfg Config) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rnd := cfg.Rand
	if rnd == nil {
		rnd = match3.NewRandom(1)
	}

	res := Result{LevelID: s.Level().ID, Strategy: strategy.ID()}
	s.Subscribe(func(ev match3.Event) {
		switch ev := ev.(type) {
		case match3.MatchEvent:
			res.Matches++
			if ev.Depth > res.MaxCombo {
				res.MaxCombo = ev.Depth
			}
		case match3.ShuffleEvent:
			res.Shuffles++
		}
	})

	reviveMoves := cfg.ReviveMoves
	if reviveMoves <= 0 {
		reviveMoves = match3.DefaultRules().ReviveMoves
	}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		snap := s.Snapshot()
		if snap.Outcome == match3.OutcomeLost && res.Revives < cfg.Revives {
			res.Revives++
			s.AddMoves(reviveMoves)
			logger.Debug("revived", "level", res.LevelID, "revive", res.Revives)
			continue
		}
		if snap.Done() {
			break
		}

		mv, ok := strategy.Choose(snap, rnd)
		if !ok {
			return res, fmt.Errorf("bot: %s found no move on level %s", strategy.ID(), res.LevelID)
		}
		s.HandleTap(mv.A)
		if !swapped(s.HandleTap(mv.B)) {
			return res, fmt.Errorf("bot: %s chose illegal move %d-%d", strategy.ID(), mv.A, mv.B)
		}
	}

	final := s.Snapshot()
	res.Outcome = final.Outcome
	res.Score = final.Score
	res.MovesUsed = final.MovesUsed
	logger.Info("run finished",
		"level", res.LevelID, "strategy", res.Strategy, "outcome", res.Outcome,
		"score", res.Score, "moves", res.MovesUsed, "max_combo", res.MaxCombo)
	return res, nil
}

// swapped reports whether events contain an accepted swap.
func swapped(events []match3.Event) bool {
	for _, ev := range events {
		if sw, ok := ev.(match3.SwapEvent); ok && sw.Valid {
			return true
		}
	}
	return false
}
