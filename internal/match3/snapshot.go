package match3

// Snapshot is a copy of the observable state, taken after a phase completes.
// Hosts render from snapshots and never touch State directly.
type Snapshot struct {
	LevelID        string
	Size           int
	Cells          []Cell
	Phase          Phase
	SelectedIndex  int
	Score          int
	Combo          int
	Contribution   float64
	MovesRemaining int
	MovesUsed      int
	Outcome        Outcome
}

// Board rebuilds a board from the snapshot cells.
func (s Snapshot) Board() Board {
	cells := make([]Cell, len(s.Cells))
	copy(cells, s.Cells)
	return Board{Grid: NewGrid(s.Size), Cells: cells}
}

// Cell returns the cell at (row, col), or an empty cell off the grid.
func (s Snapshot) Cell(row, col int) Cell {
	i := NewGrid(s.Size).ToIndex(row, col)
	if i < 0 {
		return Cell{Index: -1}
	}
	return s.Cells[i]
}

// Done reports whether the level outcome is decided.
func (s Snapshot) Done() bool {
	return s.Outcome != OutcomeInProgress
}
