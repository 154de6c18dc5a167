package match3

import "fmt"

// DefaultSize is the side length of the standard board.
const DefaultSize = 8

// Grid describes the geometry of an N×N board stored row-major:
// index = row*N + col.
type Grid struct {
	N int
}

// NewGrid returns a grid with side n.
func NewGrid(n int) Grid {
	return Grid{N: n}
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return g.N * g.N
}

// IsValidIndex reports whether i addresses a cell.
func (g Grid) IsValidIndex(i int) bool {
	return i >= 0 && i < g.Len()
}

// InBounds reports whether (row, col) lies on the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// ToPosition converts an index to (row, col).
// Returns (-1, -1) for an invalid index.
func (g Grid) ToPosition(i int) (row, col int) {
	if !g.IsValidIndex(i) {
		return -1, -1
	}
	return i / g.N, i % g.N
}

// ToIndex converts (row, col) to an index.
// Returns -1 for coordinates off the grid.
func (g Grid) ToIndex(row, col int) int {
	if !g.InBounds(row, col) {
		return -1
	}
	return row*g.N + col
}

// Adjacent reports whether a and b are one orthogonal step apart.
func (g Grid) Adjacent(a, b int) bool {
	if !g.IsValidIndex(a) || !g.IsValidIndex(b) {
		return false
	}
	ar, ac := g.ToPosition(a)
	br, bc := g.ToPosition(b)
	dr, dc := ar-br, ac-bc
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Neighbor returns the index one step from i in direction d.
func (g Grid) Neighbor(i int, d Direction) (int, bool) {
	row, col := g.ToPosition(i)
	if row < 0 {
		return -1, false
	}
	dr, dc := d.Delta()
	n := g.ToIndex(row+dr, col+dc)
	return n, n >= 0
}

// Neighbors returns the orthogonal neighbours of i in Directions order.
func (g Grid) Neighbors(i int) []int {
	out := make([]int, 0, 4)
	for _, d := range Directions {
		if n, ok := g.Neighbor(i, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Direction is an orthogonal swipe direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in a fixed order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("dir(%d)", uint8(d))
	}
}

// Delta returns the (row, col) step for the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseDirection resolves a direction by name.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("match3: unknown direction %q", s)
}
