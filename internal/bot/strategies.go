// Package bot contains autoplayers that drive a match-3 session without a
// human. They back the sim command and the long-running engine tests.
package bot

import (
	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

func init() {
	registry.Register("random", func() registry.Strategy { return Random{} })
	registry.Register("greedy", func() registry.Strategy { return Greedy{} })
	registry.Register("hint", func() registry.Strategy { return Hint{} })
}

// Random plays a uniformly chosen legal swap.
type Random struct{}

func (Random) ID() string    { return "random" }
func (Random) Title() string { return "Random legal move" }

func (Random) Choose(snap match3.Snapshot, rnd match3.RandomSource) (match3.Move, bool) {
	moves := match3.PossibleMoves(snap.Board())
	if len(moves) == 0 {
		return match3.Move{}, false
	}
	return moves[rnd.IntN(len(moves))], true
}

// Greedy plays the swap that clears the most cells right away.
// Ties go to the lowest index.
type Greedy struct{}

func (Greedy) ID() string    { return "greedy" }
func (Greedy) Title() string { return "Greedy (largest clear)" }

func (Greedy) Choose(snap match3.Snapshot, _ match3.RandomSource) (match3.Move, bool) {
	b := snap.Board()
	var best match3.Move
	bestScore := 0
	for _, mv := range match3.PossibleMoves(b) {
		if s := match3.EvaluateMove(b, mv); s > bestScore {
			best, bestScore = mv, s
		}
	}
	return best, bestScore > 0
}

// Hint plays the first move the engine would suggest to a player.
type Hint struct{}

func (Hint) ID() string    { return "hint" }
func (Hint) Title() string { return "First hint" }

func (Hint) Choose(snap match3.Snapshot, _ match3.RandomSource) (match3.Move, bool) {
	return match3.FindHint(snap.Board())
}
