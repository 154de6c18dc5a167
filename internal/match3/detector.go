package match3

import "slices"

// MinRun is the shortest line of same-kind cells that counts as a match.
const MinRun = 3

// MatchGroup is one connected component of matched same-kind cells.
// Indices are sorted ascending.
type MatchGroup struct {
	Kind    Kind
	Indices []int
}

// Size returns the number of cells in the group.
func (g MatchGroup) Size() int {
	return len(g.Indices)
}

// IsLarge reports whether the group has four or more cells.
func (g MatchGroup) IsLarge() bool {
	return len(g.Indices) > MinRun
}

// FindMatches returns every match group on the board, ordered by their lowest
// index. A settled board yields nil.
//
// Detection runs in two passes: a row and column scan marks every cell that
// belongs to a run of MinRun or more, then a 4-directional flood fill merges
// marked cells of the same kind into groups. An L or T shape made of a
// horizontal and a vertical run is therefore one group.
func FindMatches(b Board) []MatchGroup {
	raw := scanRuns(b)
	if raw == nil {
		return nil
	}

	var groups []MatchGroup
	visited := make([]bool, len(b.Cells))
	queue := make([]int, 0, len(b.Cells))
	for start, marked := range raw {
		if !marked || visited[start] {
			continue
		}
		kind := b.Cells[start].Kind
		group := MatchGroup{Kind: kind}

		visited[start] = true
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			group.Indices = append(group.Indices, cur)
			for _, d := range Directions {
				next, ok := b.Grid.Neighbor(cur, d)
				if !ok || visited[next] || !raw[next] || b.Cells[next].Kind != kind {
					continue
				}
				visited[next] = true
				queue = append(queue, next)
			}
		}
		slices.Sort(group.Indices)
		groups = append(groups, group)
	}
	return groups
}

// HasMatch reports whether any run exists on the board.
func HasMatch(b Board) bool {
	return scanRuns(b) != nil
}

// scanRuns marks each cell that belongs to a horizontal or vertical run.
// Returns nil when nothing is marked.
func scanRuns(b Board) []bool {
	n := b.Grid.N
	var raw []bool
	mark := func(i int) {
		if raw == nil {
			raw = make([]bool, len(b.Cells))
		}
		raw[i] = true
	}

	// line walks one row or column given its first index and stride.
	line := func(first, stride int) {
		runStart := 0
		for pos := 1; pos <= n; pos++ {
			if pos < n && sameRun(b.Cells[first+(pos-1)*stride], b.Cells[first+pos*stride]) {
				continue
			}
			if pos-runStart >= MinRun && b.Cells[first+runStart*stride].Matchable() {
				for p := runStart; p < pos; p++ {
					mark(first + p*stride)
				}
			}
			runStart = pos
		}
	}

	for row := 0; row < n; row++ {
		line(row*n, 1)
	}
	for col := 0; col < n; col++ {
		line(col, n)
	}
	return raw
}

func sameRun(a, b Cell) bool {
	return a.Matchable() && b.Matchable() && a.Kind == b.Kind
}

// runThrough reports whether the cell at i is part of a run.
func runThrough(b Board, i int) bool {
	c := b.Cells[i]
	if !c.Matchable() {
		return false
	}
	row, col := b.Grid.ToPosition(i)
	count := func(dr, dc int) int {
		total := 0
		for r, cl := row+dr, col+dc; b.Grid.InBounds(r, cl); r, cl = r+dr, cl+dc {
			if !sameRun(c, b.At(r, cl)) {
				break
			}
			total++
		}
		return total
	}
	if 1+count(0, -1)+count(0, 1) >= MinRun {
		return true
	}
	return 1+count(-1, 0)+count(1, 0) >= MinRun
}
