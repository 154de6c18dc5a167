package match3

// Cell is one slot of the board.
//
// ID is stable while the cell moves around (swaps, falls) so that a host can
// correlate animations across snapshots. IDs are never reused within a session.
type Cell struct {
	ID       uint64
	Kind     Kind
	Index    int
	Matched  bool // set while a match is being resolved
	Selected bool // at most one cell on the board
	Locked   bool // holds its slot until an adjacent match resolves
}

// IsEmpty reports whether the slot was vacated and awaits refill.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindNone
}

// IsRock reports whether the cell is an obstacle.
func (c Cell) IsRock() bool {
	return c.Kind == KindRock
}

// Movable reports whether the cell can take part in a swap.
func (c Cell) Movable() bool {
	return c.Kind.Playable() && !c.Locked
}

// Matchable reports whether the cell counts towards a run.
func (c Cell) Matchable() bool {
	return c.Kind.Playable() && !c.Locked
}

// Fixed reports whether gravity must leave the cell in place.
func (c Cell) Fixed() bool {
	return c.IsRock() || c.Locked
}
