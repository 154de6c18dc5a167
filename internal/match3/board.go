package match3

import (
	"fmt"
	"strings"
)

// Board is the full cell arrangement. Cells holds exactly Grid.Len() entries,
// and Cells[i].Index == i at all times.
type Board struct {
	Grid  Grid
	Cells []Cell
}

// NewBoard returns a board of empty slots.
func NewBoard(g Grid) Board {
	cells := make([]Cell, g.Len())
	for i := range cells {
		cells[i].Index = i
	}
	return Board{Grid: g, Cells: cells}
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return Board{Grid: b.Grid, Cells: cells}
}

// Equal reports whether both boards hold identical cells, field for field.
func (b Board) Equal(other Board) bool {
	if b.Grid != other.Grid || len(b.Cells) != len(other.Cells) {
		return false
	}
	for i := range b.Cells {
		if b.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// At returns the cell at (row, col). Off-grid coordinates yield an empty cell.
func (b Board) At(row, col int) Cell {
	i := b.Grid.ToIndex(row, col)
	if i < 0 {
		return Cell{Index: -1}
	}
	return b.Cells[i]
}

// swap exchanges two cells and keeps their Index fields consistent.
func (b *Board) swap(i, j int) {
	b.Cells[i], b.Cells[j] = b.Cells[j], b.Cells[i]
	b.Cells[i].Index = i
	b.Cells[j].Index = j
}

// String renders the board in the notation accepted by ParseBoard.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(b.Grid.Len() + b.Grid.N)
	for row := 0; row < b.Grid.N; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.Grid.N; col++ {
			c := b.At(row, col)
			ch := c.Kind.Letter()
			if c.Locked && c.Kind.Playable() {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

// ParseBoard builds a board from N rows of N characters:
//
//	A-F  playable kinds
//	a-f  locked playable kinds
//	#    rock
//	.    empty slot
//
// Non-empty cells get IDs 1, 2, ... in index order.
func ParseBoard(rows ...string) (Board, error) {
	n := len(rows)
	if n == 0 {
		return Board{}, fmt.Errorf("match3: parse board: no rows")
	}
	b := NewBoard(NewGrid(n))
	var id uint64
	for row, line := range rows {
		if len(line) != n {
			return Board{}, fmt.Errorf("match3: parse board: row %d has %d columns, want %d", row, len(line), n)
		}
		for col := 0; col < n; col++ {
			c := &b.Cells[row*n+col]
			ch := line[col]
			switch {
			case ch >= 'A' && ch < 'A'+MaxKinds:
				c.Kind = KindRed + Kind(ch-'A')
			case ch >= 'a' && ch < 'a'+MaxKinds:
				c.Kind = KindRed + Kind(ch-'a')
				c.Locked = true
			case ch == '#':
				c.Kind = KindRock
			case ch == '.':
				continue
			default:
				return Board{}, fmt.Errorf("match3: parse board: bad cell %q at row %d col %d", ch, row, col)
			}
			id++
			c.ID = id
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard that panics on malformed input.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// maxID returns the largest cell ID on the board.
func (b Board) maxID() uint64 {
	var id uint64
	for _, c := range b.Cells {
		if c.ID > id {
			id = c.ID
		}
	}
	return id
}
