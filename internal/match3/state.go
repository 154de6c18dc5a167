package match3

import "fmt"

// Phase is the cascade state machine position.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSwapping
	PhaseMatching
	PhaseFalling
	PhaseRefilling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwapping:
		return "swapping"
	case PhaseMatching:
		return "matching"
	case PhaseFalling:
		return "falling"
	case PhaseRefilling:
		return "refilling"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// NoSelection is the SelectedIndex value when no cell is selected.
const NoSelection = -1

// State is everything that changes while a level is played.
// The engine never mutates a State it was given; it returns a new one.
type State struct {
	Level          LevelConfig
	Board          Board
	Phase          Phase
	SelectedIndex  int
	Score          int
	Contribution   float64
	Combo          int // depth reached by the latest cascade
	MaxCombo       int
	MovesRemaining int
	MovesUsed      int
	Outcome        Outcome
	NextID         uint64 // next cell ID to hand out
}

// Clone returns a copy that shares nothing mutable with s.
func (s State) Clone() State {
	s.Board = s.Board.Clone()
	return s
}

// Accepting reports whether taps and swipes are processed.
func (s State) Accepting() bool {
	return s.Phase == PhaseIdle && s.Outcome == OutcomeInProgress
}

// Snapshot returns a read-only view of the state.
func (s State) Snapshot() Snapshot {
	cells := make([]Cell, len(s.Board.Cells))
	copy(cells, s.Board.Cells)
	return Snapshot{
		LevelID:        s.Level.ID,
		Size:           s.Board.Grid.N,
		Cells:          cells,
		Phase:          s.Phase,
		SelectedIndex:  s.SelectedIndex,
		Score:          s.Score,
		Combo:          s.Combo,
		Contribution:   s.Contribution,
		MovesRemaining: s.MovesRemaining,
		MovesUsed:      s.MovesUsed,
		Outcome:        s.Outcome,
	}
}

func (s *State) selectCell(i int) {
	s.clearSelection()
	s.SelectedIndex = i
	s.Board.Cells[i].Selected = true
}

func (s *State) clearSelection() {
	if s.SelectedIndex != NoSelection && s.Board.Grid.IsValidIndex(s.SelectedIndex) {
		s.Board.Cells[s.SelectedIndex].Selected = false
	}
	s.SelectedIndex = NoSelection
}
