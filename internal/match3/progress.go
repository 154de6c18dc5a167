package match3

import "fmt"

// Rules holds the tunable constants of the engine.
type Rules struct {
	BasePointsPerCell int // points per cleared cell before the depth multiplier
	DefaultKinds      int // active kinds when a level does not say
	GeneratorRetries  int // draws per cell during generation
	MaxCascadeDepth   int // cascade steps before the board is force-settled
	ShuffleAttempts   int // permutations tried when the board deadlocks
	ReviveMoves       int // moves granted by a host-side revive
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		BasePointsPerCell: 10,
		DefaultKinds:      5,
		GeneratorRetries:  DefaultGeneratorRetries,
		MaxCascadeDepth:   50,
		ShuffleAttempts:   100,
		ReviveMoves:       5,
	}
}

// withDefaults fills zero fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.BasePointsPerCell <= 0 {
		r.BasePointsPerCell = d.BasePointsPerCell
	}
	if r.DefaultKinds <= 0 {
		r.DefaultKinds = d.DefaultKinds
	}
	if r.GeneratorRetries <= 0 {
		r.GeneratorRetries = d.GeneratorRetries
	}
	if r.MaxCascadeDepth <= 0 {
		r.MaxCascadeDepth = d.MaxCascadeDepth
	}
	if r.ShuffleAttempts <= 0 {
		r.ShuffleAttempts = d.ShuffleAttempts
	}
	if r.ReviveMoves <= 0 {
		r.ReviveMoves = d.ReviveMoves
	}
	return r
}

// StepPoints returns the score for clearing cells at a 1-indexed cascade depth.
func (r Rules) StepPoints(cells, depth int) int {
	return cells * r.BasePointsPerCell * depth
}

// Contribution converts a score to progress in [0, 1].
func Contribution(score, target int) float64 {
	if target <= 0 {
		return 1
	}
	return min(float64(score)/float64(target), 1)
}

// Outcome is the result of a level.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// ParseOutcome resolves an outcome by name.
func ParseOutcome(s string) (Outcome, error) {
	for _, o := range []Outcome{OutcomeInProgress, OutcomeWon, OutcomeLost} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("match3: unknown outcome %q", s)
}

// checkWin marks the level won once contribution reaches 1.
// It reports whether the outcome changed.
func (s *State) checkWin() bool {
	if s.Outcome != OutcomeInProgress {
		return false
	}
	s.Contribution = Contribution(s.Score, s.Level.TargetProgress)
	if s.Contribution < 1 {
		return false
	}
	s.Outcome = OutcomeWon
	return true
}

// checkLoss marks the level lost when moves ran out short of the target.
// It reports whether the outcome changed.
func (s *State) checkLoss() bool {
	if s.Outcome != OutcomeInProgress || s.MovesRemaining > 0 || s.Contribution >= 1 {
		return false
	}
	s.Outcome = OutcomeLost
	return true
}
