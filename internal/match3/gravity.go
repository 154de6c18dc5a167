package match3

import "slices"

// Fall records one cell moving down during gravity.
type Fall struct {
	ID   uint64
	From int
	To   int
}

// FallResult is the outcome of ApplyGravity.
type FallResult struct {
	Falls   []Fall
	Vacated []int // empty slots left behind, ascending
}

// ApplyGravity discards matched cells and compacts the survivors of each
// column towards the bottom row, preserving their order. Rocks and locked
// cells stay where they are and split the column into independent segments.
// Vacated slots end up at the top of each segment.
func ApplyGravity(b *Board) FallResult {
	var res FallResult
	n := b.Grid.N
	for col := 0; col < n; col++ {
		bottom := n - 1
		for row := n - 1; row >= -1; row-- {
			if row >= 0 && !b.Cells[row*n+col].Fixed() {
				continue
			}
			compactSegment(b, col, row+1, bottom, &res)
			bottom = row - 1
		}
	}
	slices.Sort(res.Vacated)
	return res
}

// compactSegment settles rows top..bottom of one column.
func compactSegment(b *Board, col, top, bottom int, res *FallResult) {
	n := b.Grid.N
	write := bottom
	for row := bottom; row >= top; row-- {
		i := row*n + col
		c := b.Cells[i]
		if c.Matched || c.IsEmpty() {
			continue
		}
		to := write*n + col
		if to != i {
			res.Falls = append(res.Falls, Fall{ID: c.ID, From: i, To: to})
			c.Index = to
			b.Cells[to] = c
		}
		write--
	}
	for row := write; row >= top; row-- {
		i := row*n + col
		b.Cells[i] = Cell{Index: i}
		res.Vacated = append(res.Vacated, i)
	}
}

// Refill places a fresh cell in every empty slot, in index order, and returns
// the filled indices. Spawns are not checked against their neighbours, so
// a refill may create a chain match.
func Refill(b *Board, kinds []Kind, r RandomSource, nextID *uint64) []int {
	var spawned []int
	for i := range b.Cells {
		if !b.Cells[i].IsEmpty() {
			continue
		}
		b.Cells[i] = Cell{ID: *nextID, Kind: drawKind(r, kinds), Index: i}
		*nextID++
		spawned = append(spawned, i)
	}
	return spawned
}
