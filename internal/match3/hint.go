package match3

// Move is a swap of two adjacent cells.
type Move struct {
	A, B int
}

// PossibleMoves lists every swap that would produce a match, scanning
// right and down neighbours in index order.
func PossibleMoves(b Board) []Move {
	work := b.Clone()
	var moves []Move
	for i := range work.Cells {
		for _, d := range [2]Direction{DirRight, DirDown} {
			j, ok := work.Grid.Neighbor(i, d)
			if !ok || !swapMatches(&work, i, j) {
				continue
			}
			moves = append(moves, Move{A: i, B: j})
		}
	}
	return moves
}

// HasPossibleMove reports whether at least one swap produces a match.
func HasPossibleMove(b Board) bool {
	_, ok := FindHint(b)
	return ok
}

// FindHint returns the first match-producing swap.
func FindHint(b Board) (Move, bool) {
	work := b.Clone()
	for i := range work.Cells {
		for _, d := range [2]Direction{DirRight, DirDown} {
			j, ok := work.Grid.Neighbor(i, d)
			if ok && swapMatches(&work, i, j) {
				return Move{A: i, B: j}, true
			}
		}
	}
	return Move{}, false
}

// EvaluateMove returns how many cells the swap clears in its first cascade
// step, or 0 when it is not a legal match-producing swap.
func EvaluateMove(b Board, m Move) int {
	if !b.Grid.Adjacent(m.A, m.B) || !b.Cells[m.A].Movable() || !b.Cells[m.B].Movable() {
		return 0
	}
	work := b.Clone()
	work.swap(m.A, m.B)
	total := 0
	for _, g := range FindMatches(work) {
		total += g.Size()
	}
	return total
}

// swapMatches tries the swap on b and undoes it.
func swapMatches(b *Board, i, j int) bool {
	ci, cj := b.Cells[i], b.Cells[j]
	if !ci.Movable() || !cj.Movable() || ci.Kind == cj.Kind {
		return false
	}
	b.swap(i, j)
	hit := runThrough(*b, i) || runThrough(*b, j)
	b.swap(i, j)
	return hit
}

// shuffleBoard rearranges the movable cells until the board has no match and
// at least one legal move. Permutations are tried first so cells keep their
// IDs and kind counts. If none works the kinds are redrawn match-free.
// It reports whether a legal move exists afterwards.
func shuffleBoard(b *Board, kinds []Kind, r RandomSource, attempts int) bool {
	var slots []int
	for i, c := range b.Cells {
		if c.Movable() {
			slots = append(slots, i)
		}
	}
	if len(slots) < 2 {
		return false
	}

	cells := make([]Cell, len(slots))
	for a := 0; a < attempts; a++ {
		for j, s := range slots {
			cells[j] = b.Cells[s]
		}
		for j := len(cells) - 1; j > 0; j-- {
			k := r.IntN(j + 1)
			cells[j], cells[k] = cells[k], cells[j]
		}
		for j, s := range slots {
			cells[j].Index = s
			b.Cells[s] = cells[j]
		}
		if !HasMatch(*b) && HasPossibleMove(*b) {
			return true
		}
	}

	for a := 0; a < attempts; a++ {
		rerollSettled(b, kinds, r)
		if HasPossibleMove(*b) {
			return true
		}
	}
	return false
}
